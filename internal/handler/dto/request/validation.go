package request

import (
	"reflect"
	"strings"

	"therapist-management-saas/internal/domain/reservation"
	"therapist-management-saas/internal/domain/timeline"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the domain tags used by request DTOs to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator is not go-playground/validator")
	}
	v.RegisterTagNameFunc(wireFieldName)
	if err := v.RegisterValidation("timepoint", validateTimePoint); err != nil {
		return errors.Wrap(err, "register timepoint")
	}
	if err := v.RegisterValidation("designation", validateDesignation); err != nil {
		return errors.Wrap(err, "register designation")
	}
	return nil
}

// a time of day the shop is open at; 06:00-09:59 is rejected here rather than by the quote
func validateTimePoint(fl validator.FieldLevel) bool {
	tp, err := timeline.ParseTimePoint(fl.Field().String())
	return err == nil && tp.InOperatingWindow()
}

func validateDesignation(fl validator.FieldLevel) bool {
	_, err := reservation.ParseDesignationType(fl.Field().String())
	return err == nil
}

// error details report json or form names instead of Go field names
func wireFieldName(f reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(key), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}
