package httpx

import (
	"context"
	"errors"
	"net/http"

	apperrors "github.com/ratehub/ratehub-ui/internal/errors"
)

// ErrorRenderer is a function that renders an error template with the given data.
// This allows the error renderer to work with different rendering strategies.
type ErrorRenderer func(w http.ResponseWriter, r *http.Request, data any)

// ErrorOpts contains all options needed to render an error response.
// This struct is used to maintain the ≤3 parameters constraint while providing
// flexibility for different error scenarios.
type ErrorOpts struct {
	// W is the HTTP response writer
	W http.ResponseWriter
	// R is the HTTP request
	R *http.Request
	// Err is the error that occurred (optional, can be nil if only field errors)
	Err error
	// FieldErrors contains field-level validation errors (field name → error message)
	FieldErrors map[string]string
	// Renderer is the function to render the error template
	// This is typically h.renderAppPage or a similar function
	Renderer ErrorRenderer
	// PageMeta contains page metadata (title, current page, etc.)
	PageMeta PageMeta
	// Data contains additional template data to pass to the renderer
	// This is useful for preserving form data, dropdown options, etc.
	Data map[string]any
	// StatusCode is the HTTP status code to set (optional, defaults to 200 for HTMX compatibility)
	StatusCode int
	// ShowToast triggers a toast notification with the error message (optional)
	// When true, sends an HX-Trigger header with showToast event
	ShowToast bool
}

// DetermineErrorStatus determines the appropriate HTTP status code for an error.
// Returns http.StatusConflict (409) for conflicts, 0 (default) otherwise.
// A status of 0 means the caller should use the default behavior (typically 200 for HTMX).
func DetermineErrorStatus(err error) int {
	if err == nil {
		return 0
	}

	if apperrors.IsConflict(err) {
		return http.StatusConflict
	}

	// For all other errors, return 0 to use default behavior
	// (typically 200 for HTMX partial updates, or 500 for server errors)
	return 0
}

// RenderError renders an error response using consistent error handling patterns.
// It supports field-level validation errors, general error messages, and upstream errors.
//
// Usage examples:
//
//	// Validation errors
//	RenderError(ErrorOpts{
//	    W: w, R: r,
//	    FieldErrors: map[string]string{"name": "Name is required."},
//	    Renderer: h.renderAppPage,
//	    PageMeta: PageMeta{Title: "Add Store", CurrentPage: "stores"},
//	})
//
//	// Upstream error
//	RenderError(ErrorOpts{
//	    W: w, R: r,
//	    Err: err, // AppError messages pass through to the user
//	    Renderer: h.renderAppPage,
//	    PageMeta: PageMeta{Title: "Stores", CurrentPage: "stores"},
//	})
func RenderError(opts ErrorOpts) {
	// Guard: ensure renderer is provided
	if opts.Renderer == nil {
		http.Error(opts.W, "misconfigured error renderer", http.StatusInternalServerError)
		return
	}

	builder := NewTemplateData(opts.R, opts.PageMeta)

	// Process the error if present (this may add field errors)
	generalError := processError(opts.Err, &opts.FieldErrors)

	// Add field errors (including any added by processError)
	if len(opts.FieldErrors) > 0 {
		builder.WithFieldErrors(opts.FieldErrors)
	}

	// Add general error message
	if generalError != "" {
		builder.WithError(generalError)
	} else if len(opts.FieldErrors) > 0 {
		// If we have field errors but no general error, use default message
		builder.WithError(errMsgFixBelow)
	}

	// Add any additional data
	if opts.Data != nil {
		for k, v := range opts.Data {
			builder.With(k, v)
		}
	}

	// Trigger toast notification if requested
	if opts.ShowToast && generalError != "" {
		triggerToast(opts.W, generalError, "error")
	}

	// Set HTTP status code if specified
	if opts.StatusCode != 0 {
		opts.W.WriteHeader(opts.StatusCode)
	}

	// Render using the provided renderer
	opts.Renderer(opts.W, opts.R, builder.Build())
}

// processError processes an error and returns a user-friendly error message.
// It also updates fieldErrors if the error can be mapped to a specific field.
// Returns empty string if err is nil.
func processError(err error, fieldErrors *map[string]string) string {
	if err == nil {
		return ""
	}

	// Distinguish between timeout and cancellation for better UX
	if errors.Is(err, context.DeadlineExceeded) {
		return "Request timed out. Please try again."
	}
	if errors.Is(err, context.Canceled) {
		return "Request was canceled."
	}

	// Application errors carry curated user-facing messages
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return processAppError(appErr, fieldErrors)
	}

	// Generic error
	return "An error occurred. Please try again."
}

// processAppError maps an AppError onto field-level or general messages.
func processAppError(appErr *apperrors.AppError, fieldErrors *map[string]string) string {
	if appErr.Field != "" && appErr.Message != "" && fieldErrors != nil {
		if *fieldErrors == nil {
			*fieldErrors = make(map[string]string)
		}
		(*fieldErrors)[appErr.Field] = appErr.Message
		return errMsgFixBelow
	}

	if appErr.Message != "" {
		return appErr.Message
	}

	switch appErr.Code {
	case apperrors.ErrCodeUnauthorized:
		return "Please sign in again."
	case apperrors.ErrCodeNotFound:
		return "The requested item could not be found."
	case apperrors.ErrCodeTimeout:
		return "Request timed out. Please try again."
	default:
		return "An error occurred. Please try again."
	}
}
