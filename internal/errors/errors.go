package errors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	ErrorFailedToConnectToTheDatabase = "Failed to connect to the database"
	ErrorFailedToRunTheServer         = "Failed to run the server"
	ErrorFailedToShutdownTheServer    = "Failed to shutdown the server"
	ErrorFailedToBuildRegistryClient  = "Failed to build the contact registry client"
	ErrFailedDecodeRequestBody        = "Failed to decode request body"
	ErrInvalidRequestBody             = "Invalid request body"
	ErrFailedGeneratePix              = "Failed to generate pix charge"
	ErrFailedProcessNotification      = "Failed to process notification"
	ErrFailedRecordTransaction        = "Failed to record transaction"
	ErrFailedAppendRoutingNumber      = "Failed to append routing number to the contact registry"
)

type BadRequestError struct {
	Message string
}

func NewBadRequestError(message string) *BadRequestError {
	return &BadRequestError{Message: message}
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("Bad request: %s", e.Message)
}

// GatewayError carries the upstream status code and body of a failed payment
// API call. StatusCode is zero on transport failures.
type GatewayError struct {
	StatusCode int
	Body       string
	Err        error
}

func NewGatewayError(statusCode int, body string) *GatewayError {
	return &GatewayError{StatusCode: statusCode, Body: body}
}

func NewGatewayTransportError(err error) *GatewayError {
	return &GatewayError{Err: err}
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("payment gateway: %v", e.Err)
	}
	return fmt.Sprintf("payment gateway: status %d: %s", e.StatusCode, e.Body)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// Status returns the upstream status code, or 500 when the failure carried none.
func (e *GatewayError) Status() int {
	if e.StatusCode == 0 {
		return http.StatusInternalServerError
	}
	return e.StatusCode
}

type StoreError struct {
	Err error
}

func NewStoreError(err error) *StoreError {
	return &StoreError{Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("transaction store: %v", e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

type RegistryError struct {
	Err error
}

func NewRegistryError(err error) *RegistryError {
	return &RegistryError{Err: err}
}

func (e *RegistryError) Error() string {
	return fmt.Sprintf("contact registry: %v", e.Err)
}

func (e *RegistryError) Unwrap() error {
	return e.Err
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
