package e

import "fmt"

var (
	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 400 Bad Request
	ErrInvalidArgument           = fmt.Errorf("invalid argument")
	ErrProductNameRequired       = fmt.Errorf("product name is required")
	ErrPriceMustBeNonNegative    = fmt.Errorf("price must be non-negative")
	ErrQuantityMustBeNonNegative = fmt.Errorf("quantity must be non-negative")
	ErrCategoryRequired          = fmt.Errorf("category is required")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// InvalidArgument помечает ошибку как ErrInvalidArgument, сохраняя исходную причину.
func InvalidArgument(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
}
