package pkg

import "fmt"

// AppError is the error envelope returned by the HTTP layer.
//
// Fields carries field-level validation messages (field name -> message) and is
// only populated for INVALID_REQUEST responses.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
	Fields     map[string]string
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// NewValidationError builds a 400 carrying the per-field messages.
func NewValidationError(fields map[string]string, httpStatus int) *AppError {
	return &AppError{
		Code:       "INVALID_REQUEST",
		Message:    "Dados inválidos. Por favor, verifique os campos e tente novamente.",
		HTTPStatus: httpStatus,
		Fields:     fields,
	}
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

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Fields: e.Fields}
}
