package usecase

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/DRSN-tech/inventory/internal/domain"
	"github.com/DRSN-tech/inventory/pkg/e"
	"github.com/DRSN-tech/inventory/pkg/logger"
)

var _ Inventory = (*InventoryRegistry)(nil)

// InventoryRegistry владеет всеми продуктами, ключ — идентификатор продукта.
type InventoryRegistry struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
	logger   logger.Logger
}

func NewInventoryRegistry(logger logger.Logger) *InventoryRegistry {
	return &InventoryRegistry{
		products: make(map[string]*domain.Product),
		logger:   logger,
	}
}

// AddProduct сохраняет продукт под его идентификатором.
// Запись с тем же идентификатором молча перезаписывается.
func (r *InventoryRegistry) AddProduct(product *domain.Product) {
	if product == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[product.ID()] = product
}

// GetProduct возвращает продукт по идентификатору; промах не является ошибкой.
func (r *InventoryRegistry) GetProduct(id string) (*domain.Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	return product, ok
}

// UpdateStock меняет количество продукта на месте.
// Для неизвестного идентификатора ничего не делает и возвращает false.
func (r *InventoryRegistry) UpdateStock(id string, newQuantity int) bool {
	r.mu.Lock()
	product, ok := r.products[id]
	var name string
	if ok {
		product.SetQuantity(newQuantity)
		name = product.Name()
	}
	r.mu.Unlock()

	if !ok {
		r.logger.Debugf("stock update skipped, product not found: %s", id)
		return false
	}

	r.logger.Infof("Inventory of '%s' updated. New stock: %d", name, newQuantity)
	return true
}

// Products возвращает снимок хранимых продуктов, отсортированный по идентификатору.
func (r *InventoryRegistry) Products() []*domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedProducts()
}

// sortedProducts вызывается под блокировкой.
func (r *InventoryRegistry) sortedProducts() []*domain.Product {
	res := make([]*domain.Product, 0, len(r.products))
	for _, product := range r.products {
		res = append(res, product)
	}

	sort.Slice(res, func(i, j int) bool {
		return res[i].ID() < res[j].ID()
	})

	return res
}

func (r *InventoryRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products)
}

// ListInventory пишет в w заголовок и по одной строке на каждый продукт.
func (r *InventoryRegistry) ListInventory(w io.Writer) error {
	const op = "InventoryRegistry.ListInventory"

	if _, err := fmt.Fprintln(w, "--- Current inventory ---"); err != nil {
		return e.Wrap(op, err)
	}

	r.mu.RLock()
	products := r.sortedProducts()
	lines := make([]string, len(products))
	for i, product := range products {
		lines[i] = product.String()
	}
	r.mu.RUnlock()

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return e.Wrap(op, err)
		}
	}

	return nil
}
