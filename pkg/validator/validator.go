package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/trimshop/booking-api/internal/model"
)

// Validator validates request payloads against their `validate` tags.
type Validator struct {
	v *validator.Validate
}

func New() (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	// "timeofday" accepts wall-clock values like "09:00" or "09:00:00".
	if err := v.RegisterValidation("timeofday", func(fl validator.FieldLevel) bool {
		_, err := model.ParseTimeOfDay(fl.Field().String())
		return err == nil
	}); err != nil {
		return nil, fmt.Errorf("failed to register timeofday rule: %w", err)
	}

	return &Validator{v: v}, nil
}

func (val *Validator) Validate(i interface{}) error {
	err := val.v.Struct(i)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		msgs = append(msgs, fmt.Sprintf("field %s failed on %s", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}
