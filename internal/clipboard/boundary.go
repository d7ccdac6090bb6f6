package clipboard

import "github.com/jdlouhy/termclip/internal/sanitize"

// Boundary is the application-facing clipboard surface. Outgoing text runs
// through the outbound sanitize pipeline before reaching the provider and
// incoming text through the inbound pipeline after leaving it. The Raw
// variants skip sanitization entirely for power users who want the bytes
// as-is.
type Boundary struct {
	provider Provider
}

// NewBoundary wraps provider with sanitizing copy/paste.
func NewBoundary(provider Provider) *Boundary {
	return &Boundary{provider: provider}
}

// Copy sanitizes text for outbound transfer and places it on the clipboard.
func (b *Boundary) Copy(text string) error {
	return b.provider.Set(sanitize.Outbound(text))
}

// CopyRaw places text on the clipboard without sanitization.
func (b *Boundary) CopyRaw(text string) error {
	return b.provider.Set(text)
}

// Paste reads the clipboard and sanitizes the text for inbound use.
func (b *Boundary) Paste() (string, error) {
	text, err := b.provider.Get()
	if err != nil {
		return "", err
	}
	return sanitize.Inbound(text), nil
}

// PasteRaw reads the clipboard without sanitization.
func (b *Boundary) PasteRaw() (string, error) {
	return b.provider.Get()
}
