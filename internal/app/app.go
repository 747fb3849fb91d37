package app

import (
	"fmt"
	"io"

	config "github.com/DRSN-tech/inventory/internal/cfg"
	"github.com/DRSN-tech/inventory/internal/domain"
	"github.com/DRSN-tech/inventory/internal/usecase"
	"github.com/DRSN-tech/inventory/pkg/e"
	"github.com/DRSN-tech/inventory/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

// App собирает фабрику и реестр и прогоняет демонстрационный сценарий.
type App struct {
	cfg      *config.Config
	logger   logger.Logger
	out      io.Writer
	factory  usecase.ProductFactory
	registry *usecase.RegistryProvider
}

func NewApp(cfg *config.Config, logger logger.Logger, out io.Writer) *App {
	var factory usecase.ProductFactory = usecase.NewBasicProductFactory()
	if cfg.Catalog.ValidateProducts {
		factory = usecase.NewValidatingProductFactory(factory)
	}

	return &App{
		cfg:      cfg,
		logger:   logger,
		out:      out,
		factory:  factory,
		registry: usecase.NewRegistryProvider(logger),
	}
}

// Registry возвращает реестр приложения.
func (a *App) Registry() *usecase.InventoryRegistry {
	return a.registry.Instance()
}

func (a *App) Run() error {
	inventory := a.registry.Instance()

	electronics := domain.NewCategory("Electronics", "Dispositivos electrónicos")
	electronics.AddAttribute("Brand", "TechCorp")
	electronics.AddAttribute("Model", "XPS-15")

	a.printf("--- Creating the original product with the factory ---\n")
	laptopPro, err := a.factory.CreateProduct(
		"Laptop Pro",
		decimal.RequireFromString("1200.00"),
		5,
		electronics,
		map[string]string{"Brand": "TechCorp", "Model": "XPS-15"},
	)
	if err != nil {
		a.logger.Errorf(err, "failed to create product")
		return e.Wrap(whereami.WhereAmI(), err)
	}
	inventory.AddProduct(laptopPro)
	a.printf("Product '%s' added to inventory.\n", laptopPro.Name())

	a.printf("\n--- Duplicating the product to create a new one ---\n")
	laptopLite := laptopPro.Duplicate()
	laptopLite.SetQuantity(10)
	laptopLite.SetName("Laptop Lite")
	laptopLite.SetPrice(decimal.RequireFromString("800.00"))
	inventory.AddProduct(laptopLite)
	a.printf("Product '%s' added to inventory.\n", laptopLite.Name())

	if err := a.list(inventory); err != nil {
		return err
	}

	inventory.UpdateStock(laptopPro.ID(), 3)
	inventory.UpdateStock(laptopLite.ID(), 15)

	if err := a.list(inventory); err != nil {
		return err
	}

	a.printf("\n--- Registry identity check ---\n")
	first, second := a.registry.Instance(), a.registry.Instance()
	a.printf("Both registries are the same instance? %t\n", first == second)

	a.printf("\n--- Duplication check ---\n")
	original := domain.NewProduct("Original", decimal.NewFromInt(100), 1, domain.NewCategory("Temp", "Temp"))
	duplicate := original.Duplicate()
	a.printf("Original ID: %s\n", original.ID())
	a.printf("Duplicate ID: %s\n", duplicate.ID())
	a.printf("Are they the same object? %t\n", original == duplicate)

	return nil
}

func (a *App) list(inventory usecase.Inventory) error {
	a.printf("\n")
	if err := inventory.ListInventory(a.out); err != nil {
		a.logger.Errorf(err, "failed to list inventory")
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
