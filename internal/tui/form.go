package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/neverov-dev/passvault/models"
)

const (
	formFieldTitle = iota
	formFieldUsername
	formFieldPassword
	formFieldURL
	formFieldNotes
)

type formModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	recordID   string
	submitting bool
}

// newFormModel builds the create/edit form. A nil record means a new entry;
// otherwise the inputs are pre-filled and submission updates record.ID.
func newFormModel(record *models.VaultRecord) formModel {
	labels := []struct {
		placeholder string
		limit       int
	}{
		{"title", 128},
		{"username", 128},
		{"password", 256},
		{"url", 256},
		{"notes", 512},
	}

	inputs := make([]textinput.Model, 0, len(labels))
	for i, l := range labels {
		in := textinput.New()
		in.Placeholder = l.placeholder
		in.CharLimit = l.limit
		in.Width = 40
		if i == formFieldPassword {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		inputs = append(inputs, in)
	}
	inputs[formFieldTitle].Focus()

	m := formModel{inputs: inputs}
	if record != nil {
		m.editing = true
		m.recordID = record.ID
		m.inputs[formFieldTitle].SetValue(record.Title)
		m.inputs[formFieldUsername].SetValue(record.Username)
		m.inputs[formFieldPassword].SetValue(record.Password)
		m.inputs[formFieldURL].SetValue(record.URL)
		m.inputs[formFieldNotes].SetValue(record.Notes)
	}
	return m
}

func (m formModel) toRecord() models.VaultRecord {
	return models.VaultRecord{
		ID:       m.recordID,
		Title:    strings.TrimSpace(m.inputs[formFieldTitle].Value()),
		Username: strings.TrimSpace(m.inputs[formFieldUsername].Value()),
		Password: m.inputs[formFieldPassword].Value(),
		URL:      strings.TrimSpace(m.inputs[formFieldURL].Value()),
		Notes:    m.inputs[formFieldNotes].Value(),
	}
}

func (m formModel) View() string {
	header := "New entry"
	if m.editing {
		header = "Edit entry"
	}
	out := titleStyle.Render(header) + "\n\n"
	out += "Title:    " + m.inputs[formFieldTitle].View() + "\n"
	out += "Username: " + m.inputs[formFieldUsername].View() + "\n"
	out += "Password: " + m.inputs[formFieldPassword].View() + "\n"
	out += "URL:      " + m.inputs[formFieldURL].View() + "\n"
	out += "Notes:    " + m.inputs[formFieldNotes].View() + "\n"

	if m.submitting {
		out += "\nSaving...\n"
	}

	out += "\n" + helpStyle.Render("enter save  tab next field  ctrl+g generate password  esc cancel")
	return out
}
