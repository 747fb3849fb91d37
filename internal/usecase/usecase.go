package usecase

import (
	"io"

	"github.com/DRSN-tech/inventory/internal/domain"
	"github.com/shopspring/decimal"
)

// ProductFactory собирает продукт из сырых полей и набора атрибутов.
type ProductFactory interface {
	CreateProduct(name string, price decimal.Decimal, quantity int, category *domain.Category, attributes map[string]string) (*domain.Product, error)
}

// Inventory — операции реестра, доступные вызывающему коду.
type Inventory interface {
	AddProduct(product *domain.Product)
	GetProduct(id string) (*domain.Product, bool)
	UpdateStock(id string, newQuantity int) bool
	ListInventory(w io.Writer) error
}
