package tui

import "github.com/charmbracelet/bubbles/textinput"

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newRegisterModel() registerModel {
	login := textinput.New()
	login.Placeholder = "login"
	login.CharLimit = 64
	login.Width = 40
	login.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	repeat := textinput.New()
	repeat.Placeholder = "repeat password"
	repeat.CharLimit = 256
	repeat.Width = 40
	repeat.EchoMode = textinput.EchoPassword
	repeat.EchoCharacter = '*'

	return registerModel{inputs: []textinput.Model{login, password, repeat}}
}

func (m registerModel) View() string {
	out := titleStyle.Render("Create account") + "\n\n"
	out += "Login:           " + m.inputs[0].View() + "\n"
	out += "Password:        " + m.inputs[1].View() + "\n"
	out += "Repeat password: " + m.inputs[2].View() + "\n"

	if m.submitting {
		out += "\nCreating account...\n"
	}

	out += "\n" + helpStyle.Render("enter submit  tab next field  esc back  ctrl+c quit")
	return out
}
