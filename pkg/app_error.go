package pkg

import "fmt"

// AppError is the error envelope handlers translate use case failures into.
type AppError struct {
	Code          string
	Message       string
	Err           error
	HTTPStatus    int
	MissingFields []string
	InvalidFields []string
}

// HTTPError is the JSON body written for every failed request.
type HTTPError struct {
	Code          string   `json:"code"`
	Message       string   `json:"message"`
	MissingFields []string `json:"missing_fields,omitempty"`
	InvalidFields []string `json:"invalid_fields,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Err:        err,
		HTTPStatus: httpStatus,
	}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return NewDomainError(code, message, nil, httpStatus)
}

// WithFields attaches the offending request fields to a validation failure.
func (e *AppError) WithFields(missing, invalid []string) *AppError {
	e.MissingFields = missing
	e.InvalidFields = invalid
	return e
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError never exposes the wrapped cause.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		Code:          e.Code,
		Message:       e.Message,
		MissingFields: e.MissingFields,
		InvalidFields: e.InvalidFields,
	}
}
