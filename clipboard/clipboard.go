package clipboard

import (
	"errors"
	"io"
	"os"
	"strings"

	sysclip "github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/mattn/go-isatty"

	"github.com/andareed/siftly-tablegraph/logging"
)

// ErrUnavailable is returned when neither the system clipboard nor OSC52 can be used.
var ErrUnavailable = errors.New("clipboard unavailable")

// Copy puts text on the system clipboard, falling back to an OSC52 escape
// sequence written to stdout when no clipboard utility is installed.
func Copy(text string) error {
	return defaultCopier.Copy(text)
}

// Copier holds the two clipboard backends so tests can replace them.
type Copier struct {
	System func(string) error
	Term   io.Writer
	IsTTY  func() bool
}

var defaultCopier = Copier{
	System: systemCopy,
	Term:   os.Stdout,
	IsTTY:  func() bool { return isTTY(os.Stdout) },
}

func (c Copier) Copy(text string) error {
	if c.System != nil {
		err := c.System(text)
		if err == nil {
			logging.Infof("Clipboard: copied %d bytes via system clipboard", len(text))
			return nil
		}
		logging.Warnf("Clipboard: system clipboard failed: %v", err)
	}
	return c.copyOSC52(text)
}

func systemCopy(text string) error {
	if sysclip.Unsupported {
		return errors.New("no clipboard utility found")
	}
	return sysclip.WriteAll(text)
}

func (c Copier) copyOSC52(text string) error {
	if c.Term == nil || !osc52Supported(c.IsTTY) {
		logging.Warnf("Clipboard: OSC52 unavailable (stdout not TTY or TERM=dumb)")
		return ErrUnavailable
	}

	seq := osc52.New(text)
	switch {
	case os.Getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(os.Getenv("TERM"), "screen"):
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(c.Term); err != nil {
		logging.Warnf("Clipboard: OSC52 write failed: %v", err)
		return err
	}
	logging.Infof("Clipboard: copied via OSC52")
	return nil
}

func osc52Supported(isTTY func() bool) bool {
	if term := os.Getenv("TERM"); term == "" || strings.EqualFold(term, "dumb") {
		return false
	}
	return isTTY == nil || isTTY()
}

func isTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
