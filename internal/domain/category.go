package domain

// Category описывает категорию продукта.
// Одна категория разделяется по ссылке всеми продуктами, которые к ней отнесены.
type Category struct {
	name        string
	description string
	attributes  Attributes
}

func NewCategory(name string, description string) *Category {
	return &Category{
		name:        name,
		description: description,
		attributes:  NewAttributes(),
	}
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) Description() string {
	return c.description
}

// AddAttribute добавляет атрибут категории, существующее значение перезаписывается.
func (c *Category) AddAttribute(key, value string) {
	c.attributes.Set(key, value)
}

func (c *Category) Attribute(key string) (string, bool) {
	return c.attributes.Get(key)
}

// Attributes возвращает копию атрибутов категории.
func (c *Category) Attributes() Attributes {
	return c.attributes.Clone()
}
