package tui

import (
	"fmt"

	"github.com/neverov-dev/passvault/internal/generator"
)

const (
	genRowLength = iota
	genRowUpper
	genRowLower
	genRowDigits
	genRowSymbols
	genRowAmbiguous
	genRowCount
)

// generatorModel is the interactive policy editor for the secret generator.
// A secret is drawn on entry and redrawn after every policy change, so the
// preview always matches the current options.
type generatorModel struct {
	opts   generator.Options
	idx    int
	secret string

	// toForm routes an accepted secret into the form's password field
	// instead of the clipboard.
	toForm bool
}

func newGeneratorModel(toForm bool) generatorModel {
	opts := generator.DefaultOptions()
	return generatorModel{
		opts:   opts,
		secret: generator.Generate(opts),
		toForm: toForm,
	}
}

func (m *generatorModel) regenerate() {
	m.secret = generator.Generate(m.opts)
}

func (m *generatorModel) adjustLength(delta int) {
	length := m.opts.Length + delta
	if length < generator.MinLength {
		length = generator.MinLength
	}
	if length > generator.MaxLength {
		length = generator.MaxLength
	}
	m.opts.Length = length
	m.regenerate()
}

func (m *generatorModel) toggleCurrent() {
	switch m.idx {
	case genRowUpper:
		m.opts.UseUpper = !m.opts.UseUpper
	case genRowLower:
		m.opts.UseLower = !m.opts.UseLower
	case genRowDigits:
		m.opts.UseDigits = !m.opts.UseDigits
	case genRowSymbols:
		m.opts.UseSymbols = !m.opts.UseSymbols
	case genRowAmbiguous:
		m.opts.ExcludeAmbiguous = !m.opts.ExcludeAmbiguous
	default:
		return
	}
	m.regenerate()
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (m generatorModel) View() string {
	out := titleStyle.Render("Generate secret") + "\n\n"
	out += m.secret + "\n\n"

	rows := []string{
		fmt.Sprintf("Length: %d  (left/right to adjust)", m.opts.Length),
		checkbox(m.opts.UseUpper) + " uppercase",
		checkbox(m.opts.UseLower) + " lowercase",
		checkbox(m.opts.UseDigits) + " digits",
		checkbox(m.opts.UseSymbols) + " symbols",
		checkbox(m.opts.ExcludeAmbiguous) + " exclude look-alikes (0O1lI)",
	}
	for i, row := range rows {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + row + "\n"
	}

	accept := "enter copy to clipboard"
	if m.toForm {
		accept = "enter use as password"
	}
	out += "\n" + helpStyle.Render("space toggle  g redraw  "+accept+"  esc back")
	return out
}
