package merrors

import (
	"errors"
	"fmt"
)

// Error kinds. Callers add context with errors.Wrapf and match with errors.Is;
// the kind only changes the message, never the control flow.
var (
	// ErrMalformedCoordinate is returned for maven coordinates that are not group:artifact:version[:classifier][@ext]
	ErrMalformedCoordinate = errors.New("malformed maven coordinate")
	// ErrNotAnObject is returned if a JSON value is expected to be an object but is not
	ErrNotAnObject = errors.New("not an object")
	// ErrWrongType is returned if a JSON field is missing or has an unexpected type
	ErrWrongType = errors.New("missing or wrong type")
	// ErrTokenNotFound means a marker in a vendor manifest is missing. Usually the format changed upstream
	ErrTokenNotFound = errors.New("token not found")
	// ErrNetwork is returned for transport errors and non 2xx responses
	ErrNetwork = errors.New("network error")
	// ErrMalformedMetadata is returned if the loader meta response lacks the expected structure
	ErrMalformedMetadata = errors.New("malformed loader metadata")
	// ErrLengthUnavailable is returned if an artifact size could neither be read nor counted
	ErrLengthUnavailable = errors.New("artifact length unavailable")
	// ErrAlreadyPatched is returned when a document was already rewritten by pillowgen
	ErrAlreadyPatched = errors.New("document is already patched")
)

// CliError is a error that might get displayed to the user
type CliError struct {
	Err  error
	Help string
}

func (e *CliError) Error() string {
	str := e.Err.Error()
	if e.Help != "" {
		str += fmt.Sprintf(" (help: %s)", e.Help)
	}
	return str
}

func (e *CliError) Unwrap() error {
	return e.Err
}

// WithHelp attaches a help text for known error kinds
func WithHelp(err error) error {
	if err == nil {
		return nil
	}
	var help string
	switch {
	case errors.Is(err, ErrTokenNotFound):
		help = "the input format probably changed upstream"
	case errors.Is(err, ErrAlreadyPatched):
		help = "run pillowgen on the original NeoForge file"
	case errors.Is(err, ErrNetwork):
		help = "check your connection and the configured repository URLs"
	case errors.Is(err, ErrMalformedMetadata):
		help = "check the game and loader versions"
	default:
		return err
	}
	return &CliError{Err: err, Help: help}
}
