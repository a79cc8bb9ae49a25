package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/neverov-dev/passvault/internal/service"
	"github.com/neverov-dev/passvault/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenList
	screenDetail
	screenForm
	screenGenerator
)

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	mode          appMode
	currentScreen screen

	welcome welcomeModel
	login   loginModel
	reg     registerModel
	list    listModel
	detail  detailModel
	form    formModel
	gen     generatorModel

	// genReturn is where esc from the generator goes back to.
	genReturn screen

	authenticated bool
	logout        bool

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
}

func newLoginAppModel(ctx context.Context, services *service.ClientServices) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		mode:          modeLogin,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		reg:           newRegisterModel(),
		list:          newListModel(),
	}
}

func newMainAppModel(ctx context.Context, services *service.ClientServices) appModel {
	m := newLoginAppModel(ctx, services)
	m.mode = modeMain
	m.currentScreen = screenList
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeMain {
		return m.cmdRefresh()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				return m, m.cmdDelete(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
	case authDoneMsg:
		m.login.submitting = false
		m.reg.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.authenticated = true
		return m, tea.Quit
	case viewMsg:
		m.list.loading = msg.view.Loading
		m.list.refreshing = false
		m.list.lastErr = msg.view.Err
		m.applyFilter()
		return m, nil
	case recordSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.currentScreen = screenList
		m.applyFilter()
		return m, nil
	case recordDeletedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.pendingDelete = ""
		m.currentScreen = screenList
		m.applyFilter()
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		if m.currentScreen == screenDetail {
			m.detail.status = "Copied, clipboard clears shortly"
		}
		m.list.status = "Copied, clipboard clears shortly"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenGenerator:
		return m.updateGenerator(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.reg.View()
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenForm:
		body = m.form.View()
	case screenGenerator:
		body = m.gen.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// applyFilter projects the synchronizer collection through the current
// filter query and re-clamps the cursor.
func (m *appModel) applyFilter() {
	if m.services.Vault == nil {
		return
	}
	m.list.items = m.services.Vault.Filter(m.list.filter.Value())
	m.list.clampIdx()
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNextLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusPrevLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			login := strings.TrimSpace(m.login.inputs[0].Value())
			pass := m.login.inputs[1].Value()
			if login == "" || pass == "" {
				m.showErrorf("Login and password are required")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(models.User{Login: login, Password: pass})
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.reg = focusNextRegister(m.reg)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.reg = focusPrevRegister(m.reg)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.reg.submitting {
				return m, nil
			}
			login := strings.TrimSpace(m.reg.inputs[0].Value())
			pass := m.reg.inputs[1].Value()
			repeat := m.reg.inputs[2].Value()
			if login == "" || pass == "" {
				m.showErrorf("Login and password are required")
				return m, nil
			}
			if pass != repeat {
				m.showErrorf("Passwords do not match")
				return m, nil
			}
			m.reg.submitting = true
			return m, m.cmdRegisterAndLogin(models.User{Login: login, Password: pass})
		}
	}

	var cmd tea.Cmd
	m.reg.inputs[m.reg.focus], cmd = m.reg.inputs[m.reg.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.filtering {
			switch {
			case msg.String() == "ctrl+c":
				return m, tea.Quit
			case key.Matches(msg, keys.enter):
				m.list.filtering = false
				m.list.filter.Blur()
				return m, nil
			case key.Matches(msg, keys.esc):
				m.list.filtering = false
				m.list.filter.SetValue("")
				m.list.filter.Blur()
				m.applyFilter()
				return m, nil
			}
			var cmd tea.Cmd
			m.list.filter, cmd = m.list.filter.Update(msg)
			m.applyFilter()
			return m, cmd
		}

		switch {
		case key.Matches(msg, keys.up):
			if m.list.idx > 0 {
				m.list.idx--
			}
		case key.Matches(msg, keys.down):
			if m.list.idx < len(m.list.items)-1 {
				m.list.idx++
			}
		case key.Matches(msg, keys.enter):
			record, ok := m.list.current()
			if !ok {
				return m, nil
			}
			m.detail = detailModel{record: record}
			m.currentScreen = screenDetail
		case key.Matches(msg, keys.newItem):
			m.form = newFormModel(nil)
			m.currentScreen = screenForm
		case key.Matches(msg, keys.filter):
			m.list.filtering = true
			m.list.filter.Focus()
		case key.Matches(msg, keys.generate):
			m.gen = newGeneratorModel(false)
			m.genReturn = screenList
			m.currentScreen = screenGenerator
		case key.Matches(msg, keys.refresh):
			if m.list.refreshing {
				return m, nil
			}
			m.list.refreshing = true
			return m, tea.Batch(m.list.spinner.Tick, m.cmdRefresh())
		case key.Matches(msg, keys.esc):
			if m.list.filter.Value() != "" {
				m.list.filter.SetValue("")
				m.applyFilter()
			}
		case key.Matches(msg, keys.logout):
			m.logout = true
			return m, tea.Quit
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.list.refreshing {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	case key.Matches(keyMsg, keys.reveal):
		m.detail.reveal = !m.detail.reveal
		return m, nil
	case key.Matches(keyMsg, keys.edit):
		record := m.detail.record
		m.form = newFormModel(&record)
		m.currentScreen = screenForm
		return m, nil
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm.message = m.detail.record.Title
		m.pendingDelete = m.detail.record.ID
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		if m.detail.record.Password == "" {
			return m, nil
		}
		return m, m.cmdCopy(m.detail.record.Password)
	case key.Matches(keyMsg, keys.copyUser):
		if m.detail.record.Username == "" {
			return m, nil
		}
		return m, m.cmdCopy(m.detail.record.Username)
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			if m.form.editing {
				m.currentScreen = screenDetail
			} else {
				m.currentScreen = screenList
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = focusNextForm(m.form)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = focusPrevForm(m.form)
			return m, nil
		case key.Matches(keyMsg, keys.formGen):
			m.gen = newGeneratorModel(true)
			m.genReturn = screenForm
			m.currentScreen = screenGenerator
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			record := m.form.toRecord()
			if err := record.Validate(); err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}
			m.form.submitting = true
			if m.form.editing {
				return m, m.cmdUpdate(m.form.recordID, record)
			}
			return m, m.cmdAdd(record)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateGenerator(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = m.genReturn
		return m, nil
	case key.Matches(keyMsg, keys.up):
		if m.gen.idx > 0 {
			m.gen.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.gen.idx < genRowCount-1 {
			m.gen.idx++
		}
	case key.Matches(keyMsg, keys.left):
		if m.gen.idx == genRowLength {
			m.gen.adjustLength(-1)
		}
	case key.Matches(keyMsg, keys.right):
		if m.gen.idx == genRowLength {
			m.gen.adjustLength(1)
		}
	case key.Matches(keyMsg, keys.toggle):
		m.gen.toggleCurrent()
	case key.Matches(keyMsg, keys.generate):
		m.gen.regenerate()
	case key.Matches(keyMsg, keys.enter):
		secret := m.gen.secret
		if m.gen.toForm {
			m.form.inputs[formFieldPassword].SetValue(secret)
			m.currentScreen = screenForm
			return m, nil
		}
		m.currentScreen = m.genReturn
		return m, m.cmdCopy(secret)
	}

	return m, nil
}

func (m appModel) cmdLogin(user models.User) tea.Cmd {
	ctx := m.ctx
	server := m.services.Server
	return func() tea.Msg {
		return authDoneMsg{err: server.Login(ctx, user)}
	}
}

func (m appModel) cmdRegisterAndLogin(user models.User) tea.Cmd {
	ctx := m.ctx
	server := m.services.Server
	return func() tea.Msg {
		if err := server.Register(ctx, user); err != nil {
			return authDoneMsg{err: err}
		}
		return authDoneMsg{err: server.Login(ctx, user)}
	}
}

func (m appModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	vault := m.services.Vault
	return func() tea.Msg {
		_ = vault.Refresh(ctx)
		return viewMsg{view: vault.Snapshot()}
	}
}

func (m appModel) cmdAdd(record models.VaultRecord) tea.Cmd {
	ctx := m.ctx
	vault := m.services.Vault
	return func() tea.Msg {
		return recordSavedMsg{err: vault.Add(ctx, record)}
	}
}

func (m appModel) cmdUpdate(id string, record models.VaultRecord) tea.Cmd {
	ctx := m.ctx
	vault := m.services.Vault
	return func() tea.Msg {
		return recordSavedMsg{err: vault.Update(ctx, id, record)}
	}
}

func (m appModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	vault := m.services.Vault
	return func() tea.Msg {
		return recordDeletedMsg{err: vault.Delete(ctx, id)}
	}
}

func (m appModel) cmdCopy(text string) tea.Cmd {
	escrow := m.services.Clipboard
	return func() tea.Msg {
		return copiedMsg{err: escrow.CopyWithAutoClear(text, 0)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNextLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextForm(m formModel) formModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevForm(m formModel) formModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
