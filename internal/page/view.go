package page

import (
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
)

// View renders snapshots as text on a terminal.
type View struct {
	mu  sync.Mutex
	out io.Writer
}

func NewView(out io.Writer) *View {
	return &View{out: out}
}

// Render writes s to the view's writer. It is safe to use as a Page listener.
func (v *View) Render(s Snapshot) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, err := io.WriteString(v.out, Format(s)); err != nil {
		log.Printf("[PAINEL] erro ao renderizar: %v", err)
	}
}

// Format lays out a snapshot as plain text.
func Format(s Snapshot) string {
	var b strings.Builder

	b.WriteString("==== Infrações")
	if s.Search != "" {
		fmt.Fprintf(&b, " (busca: %s)", s.Search)
	}
	b.WriteString(" ====\n")

	for _, item := range s.Items {
		for i, line := range item.Lines() {
			if i == 0 {
				b.WriteString("* ")
			} else {
				b.WriteString("  ")
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	if s.Notice != nil {
		fmt.Fprintf(&b, "[%s] %s\n", s.Notice.Style, s.Notice.Text)
	}
	if s.Resposta.Visible {
		b.WriteString("---- resposta ----\n")
		b.WriteString(s.Resposta.Body)
		b.WriteByte('\n')
	}
	return b.String()
}
