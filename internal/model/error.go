package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON          = "INVALID_JSON"
	ErrCodeMissingField         = "MISSING_FIELD"
	ErrCodeNotFound             = "NOT_FOUND"
	ErrCodeSlugTaken            = "SLUG_TAKEN"
	ErrCodeInvalidPrice         = "INVALID_PRICE"
	ErrCodeCrossMenuParent      = "CROSS_MENU_PARENT"
	ErrCodeEmailTaken           = "EMAIL_TAKEN"
	ErrCodeInvalidCredentials   = "INVALID_CREDENTIALS"
	ErrCodeAllergenTaken        = "ALLERGEN_TAKEN"
	ErrCodeTranslationFormat    = "TRANSLATION_FORMAT"
	ErrCodeTranslationTimeout   = "TRANSLATION_TIMEOUT"
	ErrCodeDuplicateTranslation = "DUPLICATE_TRANSLATION"
	ErrCodeUnauthorised         = "UNAUTHORIZED"
	ErrCodeForbidden            = "FORBIDDEN"
	ErrCodeInternalError        = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrMenuNotFound        = NewDomainError(ErrCodeNotFound, "Menu not found")
	ErrCategoryNotFound    = NewDomainError(ErrCodeNotFound, "Category not found")
	ErrDishNotFound        = NewDomainError(ErrCodeNotFound, "Dish not found")
	ErrAllergenNotFound    = NewDomainError(ErrCodeNotFound, "Allergen not found")
	ErrUserNotFound        = NewDomainError(ErrCodeNotFound, "User not found")
	ErrTranslationNotFound = NewDomainError(ErrCodeNotFound, "Translation not found")

	ErrSlugTaken       = NewDomainError(ErrCodeSlugTaken, "Menu slug is already in use")
	ErrInvalidPrice    = NewDomainError(ErrCodeInvalidPrice, "Dish price must not be negative")
	ErrCrossMenuParent = NewDomainError(ErrCodeCrossMenuParent, "Parent category belongs to a different menu")

	ErrEmailTaken         = NewDomainError(ErrCodeEmailTaken, "Email is already registered")
	ErrInvalidCredentials = NewDomainError(ErrCodeInvalidCredentials, "Invalid email or password")
	ErrAllergenTaken      = NewDomainError(ErrCodeAllergenTaken, "Allergen name or code is already in use")

	// ErrTranslationFormat indicates the translation service returned a body
	// that was not valid JSON of the expected shape. Nothing is persisted.
	ErrTranslationFormat = NewDomainError(ErrCodeTranslationFormat, "Translation service returned a malformed response")

	// ErrTranslationTimeout indicates the external call exceeded its deadline.
	// The owner may re-trigger the translation; the core never retries.
	ErrTranslationTimeout = NewDomainError(ErrCodeTranslationTimeout, "Translation service did not respond in time")

	// ErrDuplicateTranslation signals a lost uniqueness race on
	// (menu_id, language). It is recovered by re-fetching the existing
	// record and is never surfaced to callers.
	ErrDuplicateTranslation = NewDomainError(ErrCodeDuplicateTranslation, "Translation already exists for this menu and language")
)
