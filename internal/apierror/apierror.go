// Package apierror provides the typed error taxonomy and the canonical JSON
// envelope for all API responses. Every error returned to clients goes through
// this package so that internal detail (SQL errors, stack traces) is never
// leaked — it is logged, not returned.
package apierror

import "errors"

// Kind classifies an error for HTTP mapping.
type Kind int

const (
	KindValidation Kind = iota // malformed or missing input
	KindNotFound               // missing entity
	KindConflict               // duplicate unique key
	KindForbidden              // operation not allowed in current state (e.g. no open jornada)
	KindStore                  // connection/query failure — message to caller stays generic
)

// Error is the single error type crossing the service → handler boundary.
type Error struct {
	Kind    Kind
	Message string
	Err     error // wrapped cause, logged but never serialized
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }
func NotFound(msg string) *Error   { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) *Error   { return &Error{Kind: KindConflict, Message: msg} }
func Forbidden(msg string) *Error  { return &Error{Kind: KindForbidden, Message: msg} }

// Store wraps an infrastructure failure. The message is what the caller sees;
// the cause goes to the logs only.
func Store(msg string, cause error) *Error {
	return &Error{Kind: KindStore, Message: msg, Err: cause}
}

// KindOf extracts the Kind from any error chain; unknown errors map to Store.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindStore
}

// ── JSON envelopes ───────────────────────────────────────────────────────────

// ErrorBody is the stable error envelope: {"success":false,"error":"..."}.
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func NewBody(msg string) ErrorBody { return ErrorBody{Success: false, Error: msg} }

// SuccessBody wraps successful payloads: {"success":true,"data":{...}}.
type SuccessBody struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

func NewSuccess(data interface{}) SuccessBody { return SuccessBody{Success: true, Data: data} }

// ValidationBody carries per-field validation errors.
type ValidationBody struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields"`
}

func NewValidationBody(fields map[string]string) ValidationBody {
	return ValidationBody{Success: false, Error: "Error de validacion", Fields: fields}
}
