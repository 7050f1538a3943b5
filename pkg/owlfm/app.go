// Package owlfm is the terminal presentation layer. It renders directory
// listings, captures selection and text input, and dispatches one user
// intent at a time to the Navigator, re-rendering from its return values.
package owlfm

import (
	"github.com/rivo/tview"
	"github.com/rs/zerolog"

	"github.com/owltech/owlfm/pkg/nav"
	"github.com/owltech/owlfm/pkg/owlfm/settings"
)

// uiApp is the slice of *tview.Application the browser needs. Tests swap in
// a fake that runs queued updates synchronously.
type uiApp interface {
	SetFocus(p tview.Primitive)
	QueueUpdateDraw(f func())
	Stop()
}

type tvApp struct {
	*tview.Application
}

func (a tvApp) SetFocus(p tview.Primitive) {
	_ = a.Application.SetFocus(p)
}

func (a tvApp) QueueUpdateDraw(f func()) {
	_ = a.Application.QueueUpdateDraw(f)
}

func (a tvApp) Stop() {
	a.Application.Stop()
}

// SetupApp builds the browser UI and installs it as the application root.
func SetupApp(app *tview.Application, navigator *nav.Navigator, s *settings.Settings, log zerolog.Logger) *Browser {
	b := NewBrowser(tvApp{app}, navigator, s, log)
	app.EnableMouse(true)
	app.SetRoot(b.pages, true)
	app.SetFocus(b.list)
	return b
}
