// Package respond writes the JSON envelope every API route answers with and
// maps domain errors onto HTTP statuses.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/farmfeed/farmfeed/internal/deal"
	"github.com/farmfeed/farmfeed/internal/listing"
	"github.com/farmfeed/farmfeed/internal/offer"
	"github.com/farmfeed/farmfeed/internal/transport"
	"github.com/farmfeed/farmfeed/internal/user"
)

// ErrBadRequest marks malformed request bodies and parameters.
var ErrBadRequest = errors.New("bad request")

type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func JSON(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(env); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, Envelope{Success: true, Data: data})
}

func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, Envelope{Success: true, Data: data})
}

func Message(w http.ResponseWriter, data any, msg string) {
	JSON(w, http.StatusOK, Envelope{Success: true, Data: data, Message: msg})
}

func Fail(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, Envelope{Success: false, Error: msg})
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Decode reads a JSON body into dst and validates its `validate` tags.
func Decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed JSON body", ErrBadRequest)
	}

	return Validate(dst)
}

// DecodeOptional is Decode for routes whose body may be omitted. An empty body,
// chunked or not, leaves dst at its zero value.
func DecodeOptional(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: malformed JSON body", ErrBadRequest)
	}

	return Validate(dst)
}

func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}

	return fmt.Errorf("%w: %s", ErrBadRequest, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "uuid":
		return fe.Field() + " must be a UUID"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	default:
		return fe.Field() + " is invalid"
	}
}

type mapping struct {
	err    error
	status int
	msg    string // Empty uses the error text
}

var mappings = []mapping{
	{listing.ErrNotFound, http.StatusNotFound, "Listing not found"},
	{offer.ErrNotFound, http.StatusNotFound, "Offer not found"},
	{deal.ErrNotFound, http.StatusNotFound, "Deal not found"},
	{transport.ErrDealNotFound, http.StatusNotFound, "Deal not found"},
	{transport.ErrRequestNotFound, http.StatusNotFound, "Transport request not found"},
	{user.ErrNotFound, http.StatusNotFound, "User not found"},

	{offer.ErrNotPending, http.StatusConflict, "Offer is not pending"},
	{deal.ErrInvalidTransition, http.StatusConflict, "Invalid deal status transition"},
	{transport.ErrDealClosed, http.StatusConflict, "Deal is closed"},

	{user.ErrForbidden, http.StatusForbidden, ""},

	{ErrBadRequest, http.StatusBadRequest, ""},
	{listing.ErrInvalid, http.StatusBadRequest, ""},
	{offer.ErrInvalid, http.StatusBadRequest, ""},
	{deal.ErrInvalid, http.StatusBadRequest, ""},
	{deal.ErrInvalidStatus, http.StatusBadRequest, ""},
	{transport.ErrInvalid, http.StatusBadRequest, ""},
}

// Error writes the failure envelope for err. Errors without a mapping are
// logged and answered with a generic 500.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	for _, m := range mappings {
		if !errors.Is(err, m.err) {
			continue
		}

		msg := m.msg
		if msg == "" {
			msg = err.Error()
		}

		Fail(w, m.status, msg)

		return
	}

	slog.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", middleware.GetReqID(r.Context()),
		"error", err,
	)

	Fail(w, http.StatusInternalServerError, "Internal server error")
}
