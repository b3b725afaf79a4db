package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	apperrors "github.com/ratehub/ratehub-ui/internal/errors"
)

// FormParser parses form data from an HTTP request and returns the parsed data
// along with any field-level validation errors.
type FormParser[T any] func(r *http.Request) (T, map[string]string)

// FormSubmitter executes the operation backing a form submission.
type FormSubmitter[T any] func(ctx context.Context, req T) (any, error)

// FormRenderer is a function that renders the form template with the given data.
// This allows the form handler to work with different rendering strategies.
type FormRenderer func(w http.ResponseWriter, r *http.Request, data map[string]any)

// ErrorHandler is a function that handles service errors and returns field errors and a general error message.
// Return nil for both if the error should be handled by the default handler.
type ErrorHandler func(err error) (fieldErrors map[string]string, generalError string)

// SuccessHandler customizes the response after a successful submission.
type SuccessHandler func(w http.ResponseWriter, r *http.Request, result any)

// FormHandlerOpts contains all options needed to handle a form submission.
// It uses a single struct parameter to maintain the ≤3 parameters constraint.
type FormHandlerOpts[T any] struct {
	W        http.ResponseWriter // Response writer
	R        *http.Request       // Request
	Parser   FormParser[T]       // Function to parse form data
	Submit   FormSubmitter[T]    // Operation to execute
	Renderer FormRenderer        // Function to render form with data
	// Success redirect URL (used when OnSuccess is nil)
	SuccessURL string
	// Page metadata for rendering
	PageMeta PageMeta
	// Optional: additional data to pass to template on error
	ExtraData map[string]any
	// Optional: custom error handler for domain-specific errors
	HandleError ErrorHandler
	// Optional: custom success response (e.g., HTMX refresh with a toast)
	OnSuccess SuccessHandler
	// Optional: HTTP status code to set on validation errors (defaults to 200 for HTMX compatibility)
	ErrorStatus int
}

// HandleForm is a generic form handler that processes form submission workflows.
// It handles form parsing, validation, service calls, error handling, and redirects.
//
// Usage example:
//
//	HandleForm(FormHandlerOpts[model.AddStoreRequest]{
//	    W: w, R: r,
//	    Parser: h.parseStoreForm,
//	    Submit: h.submitStore,
//	    Renderer: h.renderStoreForm,
//	    SuccessURL: "/stores",
//	    PageMeta: PageMeta{Title: "New Store", PageTitle: "New Store", CurrentPage: PageStoreForm},
//	})
func HandleForm[T any](opts FormHandlerOpts[T]) {
	// Guard rails: validate required options
	if opts.Parser == nil || opts.Submit == nil || opts.Renderer == nil {
		http.Error(opts.W, "misconfigured form handler", http.StatusInternalServerError)
		return
	}

	// Parse form data and get validation errors
	data, fieldErrors := opts.Parser(opts.R)

	// If validation errors exist, re-render form with errors
	if len(fieldErrors) > 0 {
		opts.renderFormError(fieldErrors, "", data)
		return
	}

	result, err := opts.Submit(opts.R.Context(), data)
	// Handle service errors
	if err != nil {
		handleFormServiceError(opts, err, data)
		return
	}

	if opts.OnSuccess != nil {
		opts.OnSuccess(opts.W, opts.R, result)
		return
	}

	// Success: redirect using HTMX helper
	HTMX(opts.W).Redirect(opts.SuccessURL)
}

// handleFormServiceError handles errors from form submissions.
func handleFormServiceError[T any](opts FormHandlerOpts[T], err error, data T) {
	// Special-case context cancellation/timeouts to avoid noisy UX
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		http.Error(opts.W, "request canceled", http.StatusRequestTimeout)
		return
	}

	// Try custom error handler first if provided
	if opts.HandleError != nil {
		fieldErrors, generalError := opts.HandleError(err)
		if fieldErrors != nil || generalError != "" {
			opts.renderFormError(fieldErrors, generalError, data)
			return
		}
	}

	// Application errors carry a field and a user-facing message
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Field != "" {
			opts.renderFormError(map[string]string{appErr.Field: appErr.Message}, "", data)
			return
		}
		if appErr.Message != "" {
			opts.renderFormError(nil, appErr.Message, data)
			return
		}
	}

	// Generic error
	opts.renderFormError(nil, "Unable to save. Please try again.", data)
}

// renderFormError renders the form with errors and preserves form data.
func (fh FormHandlerOpts[T]) renderFormError(fieldErrors map[string]string, generalError string, data T) {
	// Debug aid: optionally log form errors for troubleshooting tests
	// Set RH_DEBUG_FORMS=1 to enable
	if os.Getenv("RH_DEBUG_FORMS") == "1" {
		fmt.Fprintf(
			os.Stderr,
			"FormError path=%s fieldErrors=%v general=%q\n",
			fh.R.URL.Path,
			fieldErrors,
			generalError,
		)
	}

	// Set HTTP status code for validation errors if configured
	if fh.ErrorStatus != 0 && len(fieldErrors) > 0 {
		fh.W.WriteHeader(fh.ErrorStatus)
	}

	templateData := NewTemplateData(fh.R, fh.PageMeta)

	// Add field errors if present
	if len(fieldErrors) > 0 {
		templateData.WithFieldErrors(fieldErrors)
	}

	// Add general error if present
	if generalError != "" {
		templateData.WithError(generalError)
	} else if len(fieldErrors) > 0 {
		templateData.WithError(errMsgFixBelow)
	}

	// Add any extra data first (so FormData can override if needed)
	if fh.ExtraData != nil {
		for k, v := range fh.ExtraData {
			templateData.With(k, v)
		}
	}

	// Add form data - this allows templates to access the parsed form data
	// Templates can access individual fields or the whole struct
	templateData.With("FormData", data)

	// Render the form template
	fh.Renderer(fh.W, fh.R, templateData.Build())
}
