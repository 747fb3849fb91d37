package usecase

import (
	"strings"

	"github.com/DRSN-tech/inventory/internal/domain"
	"github.com/DRSN-tech/inventory/pkg/e"
	"github.com/shopspring/decimal"
)

var (
	_ ProductFactory = ProductFactoryFunc(nil)
	_ ProductFactory = (*BasicProductFactory)(nil)
	_ ProductFactory = (*ValidatingProductFactory)(nil)
)

// ProductFactoryFunc позволяет использовать обычную функцию как ProductFactory.
type ProductFactoryFunc func(name string, price decimal.Decimal, quantity int, category *domain.Category, attributes map[string]string) (*domain.Product, error)

func (f ProductFactoryFunc) CreateProduct(name string, price decimal.Decimal, quantity int, category *domain.Category, attributes map[string]string) (*domain.Product, error) {
	return f(name, price, quantity, category, attributes)
}

// BasicProductFactory создает продукт конструктором и заполняет его атрибуты.
// Ошибок не возвращает.
type BasicProductFactory struct{}

func NewBasicProductFactory() *BasicProductFactory {
	return &BasicProductFactory{}
}

func (f *BasicProductFactory) CreateProduct(name string, price decimal.Decimal, quantity int, category *domain.Category, attributes map[string]string) (*domain.Product, error) {
	product := domain.NewProduct(name, price, quantity, category)
	for k, v := range attributes {
		product.AddSpecificAttribute(k, v)
	}

	return product, nil
}

// ValidatingProductFactory проверяет входные данные и делегирует создание другой фабрике.
type ValidatingProductFactory struct {
	next ProductFactory
}

func NewValidatingProductFactory(next ProductFactory) *ValidatingProductFactory {
	return &ValidatingProductFactory{next: next}
}

func (f *ValidatingProductFactory) CreateProduct(name string, price decimal.Decimal, quantity int, category *domain.Category, attributes map[string]string) (*domain.Product, error) {
	const op = "ValidatingProductFactory.CreateProduct"

	if err := validateProduct(name, price, quantity, category); err != nil {
		return nil, e.Wrap(op, e.InvalidArgument(err))
	}

	product, err := f.next.CreateProduct(name, price, quantity, category, attributes)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// validateProduct проверяет корректность полей нового продукта.
func validateProduct(name string, price decimal.Decimal, quantity int, category *domain.Category) error {
	if strings.TrimSpace(name) == "" {
		return e.ErrProductNameRequired
	}

	if price.IsNegative() {
		return e.ErrPriceMustBeNonNegative
	}

	if quantity < 0 {
		return e.ErrQuantityMustBeNonNegative
	}

	if category == nil {
		return e.ErrCategoryRequired
	}

	return nil
}
