package tui

import "github.com/charmbracelet/bubbles/textinput"

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel() loginModel {
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

	return loginModel{inputs: []textinput.Model{login, password}}
}

func (m loginModel) View() string {
	out := titleStyle.Render("Sign in") + "\n\n"
	out += "Login:    " + m.inputs[0].View() + "\n"
	out += "Password: " + m.inputs[1].View() + "\n"

	if m.submitting {
		out += "\nSigning in...\n"
	}

	out += "\n" + helpStyle.Render("enter submit  tab next field  esc back  ctrl+c quit")
	return out
}
