package gui

import (
	"errors"

	"github.com/ncruces/zenity"

	"github.com/san-kum/mrua/internal/logging"
)

// Dialogs shows native message boxes. They run on their own goroutine so the
// window keeps drawing while a dialog is open; they never touch the driver.
type Dialogs interface {
	Alert(msg string)
	Summary(text string)
}

type zenityDialogs struct{}

func (zenityDialogs) Alert(msg string) {
	go func() {
		if err := zenity.Error(msg, zenity.Title("Invalid input"), zenity.ErrorIcon); err != nil && !errors.Is(err, zenity.ErrCanceled) {
			logging.For("gui").Warn("alert dialog failed", "error", err)
		}
	}()
}

func (zenityDialogs) Summary(text string) {
	go func() {
		err := zenity.Info(text, zenity.Title("Run summary"), zenity.InfoIcon, zenity.OKLabel("Close"))
		if err != nil && !errors.Is(err, zenity.ErrCanceled) {
			logging.For("gui").Warn("summary dialog failed", "error", err)
		}
	}()
}
