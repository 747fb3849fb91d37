package usecase

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/DRSN-tech/inventory/internal/domain"
	"github.com/DRSN-tech/inventory/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *InventoryRegistry {
	t.Helper()
	return NewRegistryProvider(logger.NewNopLogger()).Instance()
}

func newLaptop(t *testing.T, category *domain.Category) *domain.Product {
	t.Helper()
	p, err := NewBasicProductFactory().CreateProduct(
		"Laptop Pro", decimal.NewFromFloat(1200.0), 5, category,
		map[string]string{"Brand": "TechCorp", "Model": "XPS-15"},
	)
	require.NoError(t, err)
	return p
}

func TestInventoryRegistry_RoundTrip(t *testing.T) {
	r := newTestRegistry(t)
	p := newLaptop(t, domain.NewCategory("Electronics", ""))

	r.AddProduct(p)

	got, ok := r.GetProduct(p.ID())
	require.True(t, ok)
	assert.Equal(t, p.ID(), got.ID())
	assert.Equal(t, p.Name(), got.Name())
	assert.True(t, p.Price().Equal(got.Price()))
	assert.Equal(t, p.Quantity(), got.Quantity())
}

func TestInventoryRegistry_GetProductMiss(t *testing.T) {
	r := newTestRegistry(t)

	p, ok := r.GetProduct("nonexistent-id")
	assert.False(t, ok)
	assert.Nil(t, p)
}

func TestInventoryRegistry_AddProductOverwrites(t *testing.T) {
	r := newTestRegistry(t)
	p := newLaptop(t, nil)

	r.AddProduct(p)
	p.SetName("Renamed")
	r.AddProduct(p)

	require.Equal(t, 1, r.Len())
	got, _ := r.GetProduct(p.ID())
	assert.Equal(t, "Renamed", got.Name())
}

func TestInventoryRegistry_AddNilIgnored(t *testing.T) {
	r := newTestRegistry(t)
	r.AddProduct(nil)
	assert.Equal(t, 0, r.Len())
}

func TestInventoryRegistry_MutationVisibleThroughRegistry(t *testing.T) {
	r := newTestRegistry(t)
	p := newLaptop(t, nil)
	r.AddProduct(p)

	p.SetPrice(decimal.NewFromInt(999))

	got, _ := r.GetProduct(p.ID())
	assert.True(t, decimal.NewFromInt(999).Equal(got.Price()))
}

func TestInventoryRegistry_UpdateStock(t *testing.T) {
	var buf bytes.Buffer
	r := NewInventoryRegistry(logger.NewSlogLoggerWithOptions(&buf, slog.LevelInfo, false))
	p := newLaptop(t, nil)
	r.AddProduct(p)

	require.True(t, r.UpdateStock(p.ID(), 3))

	assert.Equal(t, 3, p.Quantity())
	assert.Contains(t, buf.String(), "Inventory of 'Laptop Pro' updated. New stock: 3")
}

func TestInventoryRegistry_UpdateStockMiss(t *testing.T) {
	var buf bytes.Buffer
	r := NewInventoryRegistry(logger.NewSlogLoggerWithOptions(&buf, slog.LevelInfo, false))
	p := newLaptop(t, nil)
	r.AddProduct(p)

	assert.False(t, r.UpdateStock("nonexistent-id", 99))

	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 5, p.Quantity())
	assert.Empty(t, buf.String())
}

func TestInventoryRegistry_ListInventory(t *testing.T) {
	r := newTestRegistry(t)
	category := domain.NewCategory("Electronics", "")
	a, b := newLaptop(t, category), newLaptop(t, category)
	r.AddProduct(a)
	r.AddProduct(b)

	var buf bytes.Buffer
	require.NoError(t, r.ListInventory(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "--- Current inventory ---", lines[0])
	assert.ElementsMatch(t, []string{a.String(), b.String()}, lines[1:])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestInventoryRegistry_ListInventoryWriteError(t *testing.T) {
	r := newTestRegistry(t)
	err := r.ListInventory(failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "InventoryRegistry.ListInventory")
}

func TestInventoryRegistry_ProductsSorted(t *testing.T) {
	r := newTestRegistry(t)
	for i := 0; i < 10; i++ {
		r.AddProduct(domain.NewProduct("p", decimal.Zero, i, nil))
	}

	products := r.Products()
	require.Len(t, products, 10)
	for i := 1; i < len(products); i++ {
		assert.Less(t, products[i-1].ID(), products[i].ID())
	}
}

func TestInventoryRegistry_ConcurrentAccess(t *testing.T) {
	r := newTestRegistry(t)
	p := newLaptop(t, nil)
	r.AddProduct(p)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			r.AddProduct(domain.NewProduct("p", decimal.Zero, n, nil))
			r.UpdateStock(p.ID(), n)
			r.GetProduct(p.ID())
			_ = r.ListInventory(&bytes.Buffer{})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 51, r.Len())
}

func TestInventoryRegistry_EndToEnd(t *testing.T) {
	r := newTestRegistry(t)
	electronics := domain.NewCategory("Electronics", "Dispositivos electrónicos")

	laptopPro := newLaptop(t, electronics)
	r.AddProduct(laptopPro)

	laptopLite := laptopPro.Duplicate()
	laptopLite.SetQuantity(10)
	laptopLite.SetPrice(decimal.NewFromFloat(800.0))
	laptopLite.SetName("Laptop Lite")
	r.AddProduct(laptopLite)

	var buf bytes.Buffer
	require.NoError(t, r.ListInventory(&buf))
	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "id='"+laptopPro.ID()+"', name='Laptop Pro', price=1200.00, quantity=5, category=Electronics"))
	assert.Equal(t, 1, strings.Count(out, "id='"+laptopLite.ID()+"', name='Laptop Lite', price=800.00, quantity=10, category=Electronics"))
	require.Equal(t, 2, r.Len())

	r.UpdateStock(laptopPro.ID(), 3)

	pro, _ := r.GetProduct(laptopPro.ID())
	lite, _ := r.GetProduct(laptopLite.ID())
	assert.Equal(t, 3, pro.Quantity())
	assert.Equal(t, 10, lite.Quantity())
}
