package agent

import (
	"fmt"
	"strings"
	"time"
)

// Logbook is the agent's append-only textual trace. It is only cleared by an
// explicit reset. The clock is injectable so tests stay reproducible.
type Logbook struct {
	entries []string
	clock   func() time.Time
}

func NewLogbook() *Logbook {
	return &Logbook{clock: time.Now}
}

func (l *Logbook) Logf(format string, args ...any) string {
	entry := fmt.Sprintf("[%s] %s", l.clock().Format(time.RFC3339), fmt.Sprintf(format, args...))
	l.entries = append(l.entries, entry)
	return entry
}

// Export joins the accumulated entries, newest last.
func (l *Logbook) Export() string {
	return strings.Join(l.entries, "\n")
}

func (l *Logbook) Size() int { return len(l.entries) }

func (l *Logbook) Reset() { l.entries = nil }
