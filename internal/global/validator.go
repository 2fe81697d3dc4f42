package global

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// InitValidator initializes the global validator and registers custom rules.
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("objectid", validateObjectID)
	_ = Validate.RegisterValidation("register_number", validateRegisterNumber)
}

// validateObjectID accepts 24-character hex strings (MongoDB ObjectID).
func validateObjectID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return objectIDPattern.MatchString(value)
}

// validateRegisterNumber accepts national register numbers: two Cyrillic
// letters followed by eight digits, or a plain digit sequence for legacy data.
func validateRegisterNumber(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	matched, _ := regexp.MatchString(`^([А-ЯЁӨҮ]{2}\d{8}|\d{6,12})$`, value)
	return matched
}
