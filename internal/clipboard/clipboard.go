package clipboard

import "errors"

// Provider abstracts system clipboard access.
type Provider interface {
	// Get returns the current clipboard content.
	Get() (string, error)

	// Set sets the clipboard content.
	Set(content string) error
}

// Sentinel errors for provider selection and capability gaps.
var (
	// ErrNoProvider means no usable clipboard tool was found on this system.
	ErrNoProvider = errors.New("no clipboard provider available")

	// ErrUnsupported means the provider cannot perform the requested
	// direction, e.g. reading back through OSC 52.
	ErrUnsupported = errors.New("operation not supported by clipboard provider")
)
