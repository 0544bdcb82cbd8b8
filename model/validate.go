package model

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidFluid = errors.New("invalid fluid property")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		x := fl.Field().Float()
		return !math.IsInf(x, 0) && !math.IsNaN(x)
	})
	return v
}

// Validate rejects fluids the pipeline cannot evaluate (empty name, non-positive
// or NaN properties).
func (f Fluid) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %s: %v", ErrInvalidFluid, f.Name, err)
	}
	reasons := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			reasons = append(reasons, fe.Field()+" is required")
		case "finite":
			reasons = append(reasons, fe.Field()+" must be finite")
		case "gt":
			reasons = append(reasons, fmt.Sprintf("%s must be greater than %s, got %v", fe.Field(), fe.Param(), fe.Value()))
		default:
			reasons = append(reasons, fe.Error())
		}
	}
	return fmt.Errorf("%w: %q: %s", ErrInvalidFluid, f.Name, strings.Join(reasons, "; "))
}
