package service

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
)

var (
	ErrEmptyName     = errors.New("contact name is empty")
	ErrInvalidNumber = errors.New("number must be exactly 10 digits")
)

// ContactValidator checks contacts against their struct tags.
type ContactValidator struct {
	validate *validator.Validate
}

// NewContactValidator creates a new ContactValidator.
func NewContactValidator() *ContactValidator {
	return &ContactValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate reports the first rule the contact breaks.
func (v *ContactValidator) Validate(c entities.Contact) error {
	err := v.validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	switch verrs[0].Field() {
	case "Name":
		return ErrEmptyName
	default:
		return ErrInvalidNumber
	}
}

// normalizeName folds a contact name for duplicate checks.
func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
