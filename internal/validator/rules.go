package validator

import (
	"jobboard_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires the domain-specific rules.
func registerCustomRules(v *validator.Validate) error {
	if err := v.RegisterValidation("howheard", validateHowHeard); err != nil {
		return err
	}
	if err := v.RegisterValidation("appstatus", validateApplicationStatus); err != nil {
		return err
	}
	return nil
}

// validateHowHeard accepts only the fixed enumerated list from the
// application form.
func validateHowHeard(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, choice := range models.HowHeardChoices {
		if value == choice {
			return true
		}
	}
	return false
}

// validateApplicationStatus accepts only the closed status set.
func validateApplicationStatus(fl validator.FieldLevel) bool {
	return models.IsValidApplicationStatus(fl.Field().String())
}
