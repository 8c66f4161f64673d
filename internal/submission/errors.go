package submission

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"syscall"
)

// Alert texts shown to the applicant. The UI surfaces exactly one of these.
const (
	AlertRejected = "Application submission failed. Please try again."
	AlertNetwork  = "Network error. Please try again later."
)

// ErrorType represents the category of a submission failure
type ErrorType int

const (
	// ErrTypeNetwork indicates a generic transport failure
	ErrTypeNetwork ErrorType = iota
	// ErrTypeTimeout indicates the request did not complete in time
	ErrTypeTimeout
	// ErrTypeConnectionRefused indicates the endpoint refused the connection
	ErrTypeConnectionRefused
	// ErrTypeDNS indicates the endpoint host could not be resolved
	ErrTypeDNS
	// ErrTypeHTTP indicates a non-2xx status code
	ErrTypeHTTP
	// ErrTypeParse indicates an unreadable response body
	ErrTypeParse
	// ErrTypeRejected indicates the endpoint answered success=false
	ErrTypeRejected
	// ErrTypeConfig indicates the client is not usable (no access key, bad URL)
	ErrTypeConfig
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeConnectionRefused:
		return "Connection Refused"
	case ErrTypeDNS:
		return "DNS Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeRejected:
		return "Rejected"
	case ErrTypeConfig:
		return "Configuration Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// SubmitError describes why a submission attempt failed
type SubmitError struct {
	Type       ErrorType // Category of error
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (if applicable)
	Err        error     // Underlying error (if any)
	Retryable  bool      // Whether a manual retry can succeed
	Answered   bool      // Whether the endpoint replied with a JSON body
}

// Error implements the error interface
func (e *SubmitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *SubmitError) Unwrap() error {
	return e.Err
}

// ClassifyNetworkError maps a transport error onto a SubmitError.
func ClassifyNetworkError(err error) *SubmitError {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return &SubmitError{
			Type:      ErrTypeTimeout,
			Message:   "request timed out",
			Err:       err,
			Retryable: true,
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &SubmitError{
			Type:      ErrTypeDNS,
			Message:   fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Err:       err,
			Retryable: dnsErr.IsTemporary,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		return &SubmitError{
			Type:      ErrTypeConnectionRefused,
			Message:   "endpoint refused connection",
			Err:       err,
			Retryable: true,
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil && urlErr.Err != err {
		return ClassifyNetworkError(urlErr.Err)
	}

	return &SubmitError{
		Type:      ErrTypeNetwork,
		Message:   "network error occurred",
		Err:       err,
		Retryable: true,
	}
}

// NewNetworkError creates a transport error with automatic classification
func NewNetworkError(message string, err error) *SubmitError {
	classified := ClassifyNetworkError(err)
	if classified == nil {
		return &SubmitError{Type: ErrTypeNetwork, Message: message, Retryable: true}
	}
	classified.Message = message
	return classified
}

// NewHTTPError creates an error for a non-2xx response
func NewHTTPError(statusCode int, message string) *SubmitError {
	return &SubmitError{
		Type:       ErrTypeHTTP,
		Message:    message,
		StatusCode: statusCode,
		Retryable:  statusCode >= 500 || statusCode == 429,
	}
}

// NewParseError creates an error for a response that could not be decoded
func NewParseError(message string, err error) *SubmitError {
	return &SubmitError{
		Type:    ErrTypeParse,
		Message: message,
		Err:     err,
	}
}

// NewRejectedError creates an error for a success=false response
func NewRejectedError(statusCode int, message string) *SubmitError {
	if message == "" {
		message = "submission rejected"
	}
	return &SubmitError{
		Type:       ErrTypeRejected,
		Message:    message,
		StatusCode: statusCode,
		Retryable:  true,
		Answered:   true,
	}
}

// NewConfigError creates an error raised before any network I/O
func NewConfigError(message string) *SubmitError {
	return &SubmitError{
		Type:    ErrTypeConfig,
		Message: message,
	}
}

func asSubmitError(err error) (*SubmitError, bool) {
	var subErr *SubmitError
	if errors.As(err, &subErr) {
		return subErr, true
	}
	return nil, false
}

// IsNetworkError reports whether err is a transport-level failure (including
// timeout, connection refused and DNS).
func IsNetworkError(err error) bool {
	if subErr, ok := asSubmitError(err); ok {
		return subErr.Type == ErrTypeNetwork ||
			subErr.Type == ErrTypeTimeout ||
			subErr.Type == ErrTypeConnectionRefused ||
			subErr.Type == ErrTypeDNS
	}
	return false
}

// IsTimeout reports whether err is a timeout
func IsTimeout(err error) bool {
	if subErr, ok := asSubmitError(err); ok {
		return subErr.Type == ErrTypeTimeout
	}
	return false
}

// IsHTTPError reports whether err is a non-2xx response
func IsHTTPError(err error) bool {
	if subErr, ok := asSubmitError(err); ok {
		return subErr.Type == ErrTypeHTTP
	}
	return false
}

// IsRejected reports whether the endpoint answered success=false
func IsRejected(err error) bool {
	if subErr, ok := asSubmitError(err); ok {
		return subErr.Type == ErrTypeRejected
	}
	return false
}

// IsConfigError reports whether err is a configuration error
func IsConfigError(err error) bool {
	if subErr, ok := asSubmitError(err); ok {
		return subErr.Type == ErrTypeConfig
	}
	return false
}

// IsRetryable reports whether submitting again may succeed
func IsRetryable(err error) bool {
	if subErr, ok := asSubmitError(err); ok {
		return subErr.Retryable
	}
	return false
}

// AlertMessage returns the single alert shown to the applicant. Only a JSON
// answer from the endpoint that was not a success gets the rejection text;
// transport failures, unreadable bodies and anything unclassified get the
// network text.
func AlertMessage(err error) string {
	if err == nil {
		return ""
	}
	subErr, ok := asSubmitError(err)
	if !ok {
		return AlertNetwork
	}
	switch subErr.Type {
	case ErrTypeRejected:
		return AlertRejected
	case ErrTypeHTTP:
		if subErr.Answered {
			return AlertRejected
		}
		return AlertNetwork
	default:
		return AlertNetwork
	}
}

// ShortMessage returns a concise description for status lines
func ShortMessage(err error) string {
	subErr, ok := asSubmitError(err)
	if !ok {
		return err.Error()
	}

	switch subErr.Type {
	case ErrTypeTimeout:
		return "Endpoint not responding (timeout)"
	case ErrTypeConnectionRefused:
		return "Endpoint refused connection"
	case ErrTypeDNS:
		return "Cannot resolve endpoint hostname"
	case ErrTypeNetwork:
		return "Network error - check connection"
	case ErrTypeHTTP:
		return fmt.Sprintf("Endpoint error (HTTP %d)", subErr.StatusCode)
	case ErrTypeParse:
		return "Unreadable endpoint response"
	case ErrTypeRejected:
		return "Rejected: " + subErr.Message
	default:
		return subErr.Message
	}
}

// TroubleshootingHints returns multi-line advice for CLI output
func TroubleshootingHints(err error) string {
	subErr, ok := asSubmitError(err)
	if !ok {
		return "An unexpected error occurred. Please try again."
	}

	switch subErr.Type {
	case ErrTypeTimeout:
		return strings.Join([]string{
			"The submission endpoint did not respond in time.",
			"Troubleshooting:",
			"  • Check your internet connection",
			"  • Increase submission.timeout_seconds in the config file",
		}, "\n")

	case ErrTypeConnectionRefused, ErrTypeNetwork:
		return strings.Join([]string{
			"The submission endpoint could not be reached.",
			"Troubleshooting:",
			"  • Check your internet connection and proxy settings",
			"  • Verify submission.endpoint in the config file",
		}, "\n")

	case ErrTypeDNS:
		return strings.Join([]string{
			"Could not resolve the endpoint hostname.",
			"Troubleshooting:",
			"  • Verify submission.endpoint for typos",
			"  • Check your DNS settings",
		}, "\n")

	case ErrTypeHTTP:
		if subErr.StatusCode >= 500 {
			return fmt.Sprintf("The endpoint returned HTTP %d. The service may be down; try again later.", subErr.StatusCode)
		}
		return fmt.Sprintf("The endpoint returned HTTP %d. Check the access key and endpoint URL.", subErr.StatusCode)

	case ErrTypeParse:
		return "The endpoint answered with something other than JSON. Verify submission.endpoint."

	case ErrTypeRejected:
		return "The endpoint rejected the application: " + subErr.Message

	case ErrTypeConfig:
		return strings.Join([]string{
			subErr.Message,
			"Troubleshooting:",
			"  • Run 'orbytrixx config init' and set submission.access_key",
			"  • Or export ORBYTRIXX_ACCESS_KEY",
		}, "\n")

	default:
		return "An error occurred. Please check the error message for details."
	}
}
