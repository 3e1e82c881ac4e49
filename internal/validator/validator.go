package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/CampusPrep-2025/placement-service/internal/models"
)

// Validator wraps the struct validator with this service's custom rules.
type Validator struct {
	structValidator *validator.Validate
}

// New creates a new validator instance with custom rules registered.
func New() *Validator {
	structValidator := validator.New()
	registerCustomValidators(structValidator)

	return &Validator{
		structValidator: structValidator,
	}
}

// ValidateStruct validates struct tags.
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.structValidator.Struct(s)
}

func registerCustomValidators(v *validator.Validate) {
	// user_role: student or admin
	_ = v.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		switch models.UserRole(fl.Field().String()) {
		case models.RoleStudent, models.RoleAdmin:
			return true
		}
		return false
	})

	// difficulty_level: Easy, Medium or Hard (matches the generator prompt)
	_ = v.RegisterValidation("difficulty_level", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "Easy", "Medium", "Hard":
			return true
		}
		return false
	})

	// question_count: bounds for generated mock tests
	_ = v.RegisterValidation("question_count", func(fl validator.FieldLevel) bool {
		n := fl.Field().Int()
		return n >= 1 && n <= 30
	})
}
