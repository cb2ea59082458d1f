package cli

import (
	"fmt"
	"io"
)

// Kind classifies a notice.
type Kind int

const (
	KindInfo Kind = iota
	KindSuccess
	KindError
)

// Notifier is a fire-and-forget sink for transient user notices, the
// terminal stand-in for toast display.
type Notifier interface {
	Notify(kind Kind, title, message string)
}

type consoleNotifier struct {
	w io.Writer
}

// NewConsoleNotifier writes notices to w, one line each.
func NewConsoleNotifier(w io.Writer) Notifier {
	return &consoleNotifier{w: w}
}

func (n *consoleNotifier) Notify(kind Kind, title, message string) {
	prefix := "*"
	switch kind {
	case KindSuccess:
		prefix = "+"
	case KindError:
		prefix = "!"
	}
	fmt.Fprintf(n.w, "[%s] %s: %s\n", prefix, title, message)
}
