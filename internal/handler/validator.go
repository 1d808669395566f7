package handler

import (
	"github.com/go-playground/validator/v10"

	"github.com/emberworks/gameledger/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validation for equipment slots
	_ = v.RegisterValidation("slot", validateSlot)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateSlot checks a field names a known equipment slot
func validateSlot(fl validator.FieldLevel) bool {
	return domain.ValidSlot(domain.EquipmentSlot(fl.Field().String()))
}
