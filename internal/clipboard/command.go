package clipboard

import (
	"fmt"
	"os/exec"
	"strings"
)

// Command shells out to platform clipboard tools.
type Command struct {
	copyCmd  []string
	pasteCmd []string
}

// NewCommand builds a provider from explicit copy and paste command lines.
// Either may be empty; the matching direction then reports ErrUnsupported.
func NewCommand(copyCmd, pasteCmd []string) *Command {
	return &Command{copyCmd: copyCmd, pasteCmd: pasteCmd}
}

// candidate tool pairs, probed in order.
var commandCandidates = []struct {
	probe    string
	copyCmd  []string
	pasteCmd []string
}{
	{"pbcopy", []string{"pbcopy"}, []string{"pbpaste"}},
	{"wl-copy", []string{"wl-copy"}, []string{"wl-paste", "--no-newline"}},
	{"xclip", []string{"xclip", "-selection", "clipboard"}, []string{"xclip", "-selection", "clipboard", "-o"}},
	{"xsel", []string{"xsel", "--input", "--clipboard"}, []string{"xsel", "--output", "--clipboard"}},
}

// Detect probes for a known clipboard tool and returns a provider using it.
func Detect() (*Command, error) {
	for _, c := range commandCandidates {
		if _, err := exec.LookPath(c.probe); err == nil {
			return NewCommand(c.copyCmd, c.pasteCmd), nil
		}
	}
	return nil, ErrNoProvider
}

// Set pipes content into the copy command.
func (c *Command) Set(content string) error {
	if len(c.copyCmd) == 0 {
		return ErrUnsupported
	}
	cmd := exec.Command(c.copyCmd[0], c.copyCmd[1:]...)
	cmd.Stdin = strings.NewReader(content)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w", c.copyCmd[0], err)
	}
	return nil
}

// Get captures the paste command's output.
func (c *Command) Get() (string, error) {
	if len(c.pasteCmd) == 0 {
		return "", ErrUnsupported
	}
	out, err := exec.Command(c.pasteCmd[0], c.pasteCmd[1:]...).Output()
	if err != nil {
		return "", fmt.Errorf("run %s: %w", c.pasteCmd[0], err)
	}
	return string(out), nil
}
