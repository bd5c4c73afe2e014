package e

import "fmt"

var (
	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")

	// Ошибки хранилища
	ErrStorageUnavailable = fmt.Errorf("storage unavailable")

	// 404 Not Found
	ErrProductNotFound  = fmt.Errorf("product not found")
	ErrCategoryNotFound = fmt.Errorf("category not found")
	ErrPostNotFound     = fmt.Errorf("post not found")

	// Ошибки мутаций
	ErrUpdateFailed   = fmt.Errorf("store reported no modified documents")
	ErrDeletionFailed = fmt.Errorf("store reported no deleted documents")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrInvalidID            = fmt.Errorf("invalid document id")
	ErrNameRequired         = fmt.Errorf("name is required")
	ErrSlugRequired         = fmt.Errorf("slug is required")
	ErrInvalidPrice         = fmt.Errorf("price must be a non-negative number")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidInput         = fmt.Errorf("invalid input")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrNoImages             = fmt.Errorf("no images provided")
	ErrTooManyImages        = fmt.Errorf("too many images")
	ErrFileTooLarge         = fmt.Errorf("file too large")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
