package e

import "fmt"

var (
	// Внутренние ошибки
	ErrInternalServerError  = fmt.Errorf("internal server error")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 400 Bad Request
	ErrStatusBadRequest       = fmt.Errorf("bad request")
	ErrExpectedMultipart      = fmt.Errorf("expected multipart/form-data")
	ErrMissingFields          = fmt.Errorf("required fields are missing")
	ErrProductNameRequired    = fmt.Errorf("product name is required")
	ErrInvalidPrice           = fmt.Errorf("invalid price")
	ErrPricePrecision         = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidRating          = fmt.Errorf("rating must be between 1.0 and 5.0")
	ErrUnknownCategory        = fmt.Errorf("unknown category")
	ErrTooManyImages          = fmt.Errorf("too many images")
	ErrNoImages               = fmt.Errorf("no images provided")
	ErrFileTooLarge           = fmt.Errorf("file too large")
	ErrUnsupportedMediaType   = fmt.Errorf("unsupported media type")
	ErrEmptyCart              = fmt.Errorf("cart is empty")
	ErrPaymentMethodRequired  = fmt.Errorf("payment method is required")
	ErrShippingOptionRequired = fmt.Errorf("shipping option is required")
	ErrUnknownPaymentMethod   = fmt.Errorf("unknown payment method")
	ErrUnknownShippingOption  = fmt.Errorf("unknown shipping option")
	ErrAddressRequired        = fmt.Errorf("shipping address is required")
	ErrEmailRequired          = fmt.Errorf("email is required")
	ErrPasswordTooShort       = fmt.Errorf("password must be at least 6 characters")

	// 401 / 403
	ErrInvalidCredentials = fmt.Errorf("invalid email or password")
	ErrInvalidToken       = fmt.Errorf("invalid or expired token")
	ErrForbidden          = fmt.Errorf("forbidden")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")
	ErrCartNotFound    = fmt.Errorf("cart not found")
	ErrUserNotFound    = fmt.Errorf("user not found")
	ErrOrderNotFound   = fmt.Errorf("order not found")

	// 409 Conflict
	ErrProductExists = fmt.Errorf("product already exists")
	ErrEmailTaken    = fmt.Errorf("email is already registered")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
