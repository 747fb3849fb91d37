package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product описывает продукт
type Product struct {
	id                 string
	name               string
	price              decimal.Decimal
	quantity           int
	category           Shared[Category] // общая ссылка, при дублировании не копируется
	specificAttributes Attributes       // собственный набор, при дублировании копируется
}

// NewProduct создает продукт с новым идентификатором.
// Цена и количество сохраняются как есть, без проверки диапазона.
func NewProduct(name string, price decimal.Decimal, quantity int, category *Category) *Product {
	return &Product{
		id:                 uuid.NewString(),
		name:               name,
		price:              price,
		quantity:           quantity,
		category:           Share(category),
		specificAttributes: NewAttributes(),
	}
}

// Duplicate возвращает новый продукт с собственным идентификатором.
// Категория остается общей с исходным продуктом, атрибуты копируются.
func (p *Product) Duplicate() *Product {
	return &Product{
		id:                 uuid.NewString(),
		name:               p.name,
		price:              p.price,
		quantity:           p.quantity,
		category:           p.category,
		specificAttributes: p.specificAttributes.Clone(),
	}
}

func (p *Product) ID() string {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) SetName(name string) {
	p.name = name
}

func (p *Product) Price() decimal.Decimal {
	return p.price
}

func (p *Product) SetPrice(price decimal.Decimal) {
	p.price = price
}

func (p *Product) Quantity() int {
	return p.quantity
}

func (p *Product) SetQuantity(quantity int) {
	p.quantity = quantity
}

func (p *Product) Category() *Category {
	return p.category.Get()
}

// AddSpecificAttribute добавляет атрибут продукта, существующее значение перезаписывается.
func (p *Product) AddSpecificAttribute(key, value string) {
	p.specificAttributes.Set(key, value)
}

func (p *Product) SpecificAttribute(key string) (string, bool) {
	return p.specificAttributes.Get(key)
}

// SpecificAttributes возвращает копию атрибутов продукта.
func (p *Product) SpecificAttributes() Attributes {
	return p.specificAttributes.Clone()
}

// String возвращает диагностическое представление продукта.
func (p *Product) String() string {
	var categoryName string
	if c := p.Category(); c != nil {
		categoryName = c.Name()
	}

	return fmt.Sprintf(
		"Product{id='%s', name='%s', price=%s, quantity=%d, category=%s}",
		p.id, p.name, p.price.StringFixed(2), p.quantity, categoryName,
	)
}
