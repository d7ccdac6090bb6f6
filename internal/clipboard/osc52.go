package clipboard

import (
	"encoding/base64"
	"fmt"
	"io"
)

// OSC52 writes copies as OSC 52 escape sequences so the hosting terminal
// places the text on its clipboard. Works through SSH and inside most
// multiplexers; reading back is not possible without terminal query
// round-trips, so Get reports ErrUnsupported.
type OSC52 struct {
	w io.Writer
}

// NewOSC52 returns a provider writing escape sequences to w, normally the
// controlling terminal.
func NewOSC52(w io.Writer) *OSC52 {
	return &OSC52{w: w}
}

// Set emits the copy sequence for the "c" (clipboard) selection.
func (o *OSC52) Set(content string) error {
	encoded := base64.StdEncoding.EncodeToString([]byte(content))
	if _, err := fmt.Fprintf(o.w, "\x1b]52;c;%s\a", encoded); err != nil {
		return fmt.Errorf("write osc52 sequence: %w", err)
	}
	return nil
}

// Get is not supported over OSC 52.
func (o *OSC52) Get() (string, error) {
	return "", ErrUnsupported
}
