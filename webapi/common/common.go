// Package common holds the response envelopes and request helpers shared by
// the HTTP routes.
package common

import (
	"errors"
	"reflect"
	"strings"

	"github.com/amirasaad/networth/pkg/domain"
	"github.com/amirasaad/networth/pkg/middleware"
	"github.com/amirasaad/networth/pkg/session"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
	Errors   any    `json:"errors,omitempty"`   // Optional: additional error details
}

const problemJSON = "application/problem+json"

var validate = newValidator()

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

// ErrorToStatusCode maps the domain error taxonomy onto HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrGateway):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// ProblemDetailsJSON writes an application/problem+json response. Optional
// args are a string detail and an int status; without a status it is derived
// from err. Details of unclassified errors are not exposed.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, args ...any) error {
	status := 0
	detail := ""
	for _, arg := range args {
		switch v := arg.(type) {
		case string:
			detail = v
		case int:
			status = v
		}
	}
	if status == 0 {
		status = fiber.StatusBadRequest
		if err != nil {
			status = ErrorToStatusCode(err)
		}
	}
	if detail == "" && err != nil && status < fiber.StatusInternalServerError {
		detail = err.Error()
	}
	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.OriginalURL(),
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		pd.Errors = fields
	}
	return c.Status(status).JSON(pd, problemJSON)
}

// SuccessResponseJSON writes the standard success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{Status: status, Message: message, Data: data})
}

// BindAndValidate parses the request body and validates it using go-playground/validator.
// Returns a pointer to the struct (populated), or writes an error response and returns nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ProblemDetailsJSON(c, "Invalid request body", err, err.Error(), fiber.StatusBadRequest)
	}
	if err := validate.Struct(input); err != nil {
		return nil, ProblemDetailsJSON(c, "Validation failed", err, fiber.StatusBadRequest)
	}
	return &input, nil
}

// ParseID reads a UUID path parameter, writing a 400 response when it is malformed.
func ParseID(c *fiber.Ctx, param string) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Params(param))
	if err != nil {
		return uuid.Nil, false, ProblemDetailsJSON(c, "Invalid "+param, err, param+" must be a valid UUID", fiber.StatusBadRequest)
	}
	return id, true, nil
}

// WithSession resolves the caller's session before running next.
func WithSession(next func(c *fiber.Ctx, sess session.Session) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := middleware.Session(c)
		if err != nil {
			return ProblemDetailsJSON(c, "Unauthorized", err, "missing user context", fiber.StatusUnauthorized)
		}
		return next(c, sess)
	}
}
