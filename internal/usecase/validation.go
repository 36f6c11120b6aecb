package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError lists every offending field of a request at once.
type ValidationError struct {
	MissingFields []string
	InvalidFields []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.MissingFields) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(e.MissingFields, ", "))
	}
	if len(e.InvalidFields) > 0 {
		parts = append(parts, "invalid fields: "+strings.Join(e.InvalidFields, ", "))
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) empty() bool {
	return len(e.MissingFields) == 0 && len(e.InvalidFields) == 0
}

func (e *ValidationError) addInvalid(field string) {
	e.InvalidFields = append(e.InvalidFields, field)
}

// orNil keeps a nil error interface when nothing failed.
func (e *ValidationError) orNil() error {
	if e.empty() {
		return nil
	}
	return e
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the struct tags and sorts failures into missing
// (required) and invalid (everything else).
func validateStruct(s any) *ValidationError {
	verr := &ValidationError{}
	err := validate.Struct(s)
	if err == nil {
		return verr
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verr.addInvalid(fmt.Sprintf("%T", s))
		return verr
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			verr.MissingFields = append(verr.MissingFields, fe.Field())
			continue
		}
		verr.addInvalid(fe.Field())
	}
	return verr
}

func trimAll(values ...*string) {
	for _, v := range values {
		*v = strings.TrimSpace(*v)
	}
}

func requireStatus(status string) (string, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return "", &ValidationError{MissingFields: []string{"status"}}
	}
	return status, nil
}
