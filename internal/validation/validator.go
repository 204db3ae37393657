package validation

import (
	"reflect"
	"strings"
	"time"

	"transaction-seeder/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("scenario", validateScenario)
	_ = v.RegisterValidation("iso_date", validateISODate)
	_ = v.RegisterValidation("category", validateCategory)
	_ = v.RegisterValidation("bank_account", validateBankAccount)
	_ = v.RegisterValidation("db_driver", validateDBDriver)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "env"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// validateScenario accepts the preset scenario names
func validateScenario(fl validator.FieldLevel) bool {
	_, err := models.LookupScenario(fl.Field().String())
	return err == nil
}

// validateISODate accepts calendar dates in YYYY-MM-DD form
func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.DateLayout, fl.Field().String())
	return err == nil
}

func validateCategory(fl validator.FieldLevel) bool {
	return models.IsValidCategory(fl.Field().String())
}

func validateBankAccount(fl validator.FieldLevel) bool {
	return models.IsValidAccount(fl.Field().String())
}

// validateDBDriver accepts the supported gorm dialects
func validateDBDriver(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case "sqlite", "postgres":
		return true
	default:
		return false
	}
}
