package tui

import (
	"github.com/neverov-dev/passvault/internal/service"
)

type authDoneMsg struct {
	err error
}

type viewMsg struct {
	view service.View
}

type recordSavedMsg struct {
	err error
}

type recordDeletedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
