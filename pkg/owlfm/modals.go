package owlfm

import (
	"github.com/rivo/tview"
)

const pageModal = "modal"

func (b *Browser) closeModal() {
	b.pages.RemovePage(pageModal)
	b.app.SetFocus(b.list)
}

func (b *Browser) showError(title, message string) {
	b.log.Warn().Str("title", title).Str("message", message).Msg("error dialog")
	modal := tview.NewModal().
		SetText(title + "\n\n" + message).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(int, string) {
			b.closeModal()
		})
	b.pages.AddPage(pageModal, modal, true, true)
	b.app.SetFocus(modal)
}

func (b *Browser) showInfo(title, message string) {
	modal := tview.NewModal().
		SetText(title + "\n\n" + message).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(int, string) {
			b.closeModal()
		})
	b.pages.AddPage(pageModal, modal, true, true)
	b.app.SetFocus(modal)
}

// confirm shows a yes/no prompt and runs onYes only on explicit consent.
func (b *Browser) confirm(message string, onYes func()) {
	modal := tview.NewModal().
		SetText(message).
		AddButtons([]string{"Yes", "No"}).
		SetDoneFunc(func(_ int, label string) {
			b.closeModal()
			if label == "Yes" {
				onYes()
			}
		})
	b.pages.AddPage(pageModal, modal, true, true)
	b.app.SetFocus(modal)
}
