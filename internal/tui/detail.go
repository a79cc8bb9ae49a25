package tui

import (
	"fmt"

	"github.com/neverov-dev/passvault/models"
)

type detailModel struct {
	record models.VaultRecord
	reveal bool
	status string
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func (m detailModel) View() string {
	out := titleStyle.Render(m.record.Title) + "\n\n"

	password := "********"
	if m.reveal {
		password = orDash(m.record.Password)
	}

	out += fmt.Sprintf("Username: %s\n", orDash(m.record.Username))
	out += fmt.Sprintf("Password: %s\n", password)
	out += fmt.Sprintf("URL:      %s\n", orDash(m.record.URL))
	out += fmt.Sprintf("Notes:    %s\n", orDash(m.record.Notes))

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("c copy password  u copy username  p show/hide  e edit  d delete  esc back")
	return out
}
