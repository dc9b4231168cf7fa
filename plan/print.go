package plan

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph/encoding/dot"
)

const header = "The following changes are going to be applied:"

var symbolColors = map[OpType]color.Attribute{
	Create: color.FgGreen,
	Update: color.FgYellow,
	Skip:   color.FgWhite,
}

// Print writes a summary of the plan to w. In detailed mode, each object is
// also written as JSON.
func (p *Plan) Print(w io.Writer, detailed bool) error {
	if len(p.ops) == 0 {
		_, err := fmt.Fprintln(w, "No changes.")
		return err
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, op := range p.ops {
		symbol := p.colorize(op.Type, op.Type.Symbol())
		if _, err := fmt.Fprintf(w, "%s%s %s\n", margin, symbol, op.Reference().ConsoleString()); err != nil {
			return err
		}
		if !detailed {
			continue
		}
		j, err := json.MarshalIndent(op.Object, margin+margin, margin)
		if err != nil {
			return errors.Wrapf(err, "marshal %s", op.Reference().ConsoleString())
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", margin+margin, j); err != nil {
			return err
		}
	}
	return nil
}

func (p *Plan) colorize(t OpType, s string) string {
	attr, ok := symbolColors[t]
	if !ok {
		return s
	}
	c := color.New(attr)
	if p.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

// Summary returns a one line summary of the number of operations by type.
func (p *Plan) Summary() string {
	counts := make(map[OpType]int)
	for _, op := range p.ops {
		counts[op.Type]++
	}
	parts := make([]string, 0, 3)
	for _, t := range []OpType{Create, Update, Skip} {
		parts = append(parts, fmt.Sprintf("%d to %s", counts[t], t))
	}
	return "Plan: " + strings.Join(parts, ", ") + "."
}

// WriteDOT writes the dependency graph of the plan in DOT format.
func (p *Plan) WriteDOT(w io.Writer) error {
	b, err := dot.Marshal(p.graph, "plan", "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal graph")
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
