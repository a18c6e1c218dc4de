package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"flightdesk/scheduler/internal/constants"
	"flightdesk/scheduler/internal/errs"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	maxCoordinate = decimal.New(1, 8) // numeric(12,4) leaves 8 integer digits
)

// newValidator reports fields by their JSON names
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkStruct runs the request's validate tags and converts failures into a
// ValidationError carrying per-field messages.
func checkStruct(v *validator.Validate, req any) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errs.Validation(err.Error())
	}

	fields := errs.FieldErrors{}
	for _, fe := range verrs {
		fields.Add(fieldPath(fe.Namespace()), fieldMessage(fe))
	}
	return errs.ValidationFields(constants.MsgSerializerError, fields)
}

// fieldPath drops the struct name: "CreateAirportReq.location.lat" -> "location.lat"
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "oneof":
		return fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(fe.Value()))
	default:
		return "Invalid value."
	}
}

// checkNotBlank flags partial-update fields that are present but empty
func checkNotBlank(fields errs.FieldErrors, name string, value *string) {
	if value != nil && strings.TrimSpace(*value) == "" {
		fields.Add(name, "This field may not be blank.")
	}
}

// checkCoordinate enforces the numeric(12,4) column shape
func checkCoordinate(fields errs.FieldErrors, name string, d decimal.Decimal) {
	if !d.Equal(d.Round(4)) {
		fields.Add(name, "Ensure that there are no more than 4 decimal places.")
	}
	if d.Abs().GreaterThanOrEqual(maxCoordinate) {
		fields.Add(name, "Ensure that there are no more than 12 digits in total.")
	}
}
