package domain

// Attributes — открытый набор строковых атрибутов, принадлежащий владельцу.
type Attributes map[string]string

func NewAttributes() Attributes {
	return make(Attributes)
}

// Set добавляет или молча перезаписывает значение по ключу.
func (a Attributes) Set(key, value string) {
	a[key] = value
}

func (a Attributes) Get(key string) (string, bool) {
	v, ok := a[key]
	return v, ok
}

// Clone возвращает независимую копию набора. Для nil возвращается пустой набор.
func (a Attributes) Clone() Attributes {
	res := make(Attributes, len(a))
	for k, v := range a {
		res[k] = v
	}

	return res
}
