package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/simaogato/rebalancer-backend/internal/domain"
)

const (
	header    = "=== Portfolio Rebalancing Results ==="
	footer    = "====================================="
	noActions = "No rebalancing actions needed."
)

// Renderer prints rebalancing decisions for a human reader
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Render writes one line per decision, in order
// An empty set of decisions prints a single "no action" line.
func (r *Renderer) Render(decisions *domain.Decisions) error {
	_, err := io.WriteString(r.out, Format(decisions))
	return err
}

// Format returns the rendered text without writing it anywhere
func Format(decisions *domain.Decisions) string {
	var b strings.Builder

	if decisions.Len() == 0 {
		b.WriteString(noActions + "\n")
		return b.String()
	}

	b.WriteString("\n" + header + "\n")
	for _, d := range decisions.All() {
		icon := "📈"
		if d.Sell {
			icon = "📉"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", icon, d.Label()))
	}
	b.WriteString(footer + "\n\n")

	return b.String()
}
