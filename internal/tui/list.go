package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/neverov-dev/passvault/models"
)

type listModel struct {
	items      []models.VaultRecord
	idx        int
	loading    bool
	refreshing bool
	filtering  bool
	filter     textinput.Model
	spinner    spinner.Model
	status     string
	lastErr    error
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	filter := textinput.New()
	filter.Placeholder = "filter"
	filter.CharLimit = 64
	filter.Width = 30

	return listModel{spinner: s, filter: filter, loading: true}
}

func (m listModel) current() (models.VaultRecord, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.VaultRecord{}, false
	}
	return m.items[m.idx], true
}

// clampIdx keeps the cursor inside the visible collection after the
// item set shrinks.
func (m *listModel) clampIdx() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m listModel) View() string {
	header := titleStyle.Render("passvault")
	if m.refreshing {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	if m.filtering || m.filter.Value() != "" {
		out += "/ " + m.filter.View() + "\n\n"
	}

	if m.loading {
		out += "Loading...\n"
	} else if len(m.items) == 0 {
		if m.filter.Value() != "" {
			out += "No matches\n"
		} else {
			out += "Vault is empty\n"
		}
	} else {
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			line := item.Title
			if item.Username != "" {
				line = fmt.Sprintf("%s  (%s)", item.Title, item.Username)
			}
			out += cursor + line + "\n"
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}
	if m.lastErr != nil {
		out += "\nError: " + m.lastErr.Error() + "\n"
	}

	if m.filtering {
		out += "\n" + helpStyle.Render("enter keep filter  esc clear")
		return out
	}
	out += "\n" + helpStyle.Render("enter open  n new  / filter  g generate  r refresh  ctrl+l sign out  q quit")
	return out
}
