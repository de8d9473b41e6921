package handlers

import (
	"errors"
	"fmt"
	"sync"

	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerValidatorsOnce sync.Once
	registerValidatorsErr  error
)

// RegisterValidators adds the budget specific binding tags to gin's validator.
// It is safe to call more than once; every call returns the first call's result.
func RegisterValidators() error {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerValidatorsErr = errors.New("gin binding engine is not a go-playground validator")
			return
		}
		registerValidatorsErr = registerValidations(v)
	})
	return registerValidatorsErr
}

func registerValidations(v *validator.Validate) error {
	validations := []struct {
		tag string
		fn  validator.Func
	}{
		{"itemtype", validateItemType},
		{"budgetkind", validateBudgetKind},
	}
	for _, val := range validations {
		if err := v.RegisterValidation(val.tag, val.fn); err != nil {
			return fmt.Errorf("register %q validation: %w", val.tag, err)
		}
	}
	return nil
}

func validateItemType(fl validator.FieldLevel) bool {
	_, err := domain.ParseItemType(fl.Field().String())
	return err == nil
}

func validateBudgetKind(fl validator.FieldLevel) bool {
	_, err := domain.ParseAmountKind(fl.Field().String())
	return err == nil
}
