package e

import "fmt"

var (
	// Ошибки хранилища
	ErrStorageWrite       = fmt.Errorf("storage write failed")
	ErrUnknownStoreDriver = fmt.Errorf("unknown store driver")

	// Ошибки корзины и заказов
	ErrEmptyCart      = fmt.Errorf("cart is empty")
	ErrCartNotCleared = fmt.Errorf("order recorded but cart was not cleared")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrInvalidItemID    = fmt.Errorf("item id must be a positive integer")
	ErrInvalidDelta     = fmt.Errorf("delta must be an integer")
	ErrInvalidBody      = fmt.Errorf("invalid request body")
	ErrInvalidCategory  = fmt.Errorf("unknown category")

	// 404 Not Found
	ErrItemNotFound = fmt.Errorf("catalog item not found")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
