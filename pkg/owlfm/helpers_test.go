package owlfm

import (
	"testing"

	"github.com/rivo/tview"
	"github.com/rs/zerolog"

	"github.com/owltech/owlfm/pkg/files/osfile"
	"github.com/owltech/owlfm/pkg/nav"
	"github.com/owltech/owlfm/pkg/owlfm/settings"
)

// fakeApp satisfies uiApp without a terminal; queued updates run inline.
type fakeApp struct {
	focused tview.Primitive
	stopped bool
}

func (a *fakeApp) SetFocus(p tview.Primitive) { a.focused = p }
func (a *fakeApp) QueueUpdateDraw(f func())   { f() }
func (a *fakeApp) Stop()                      { a.stopped = true }

func stubStateSeams(t *testing.T) {
	t.Helper()
	origSaveDir := saveCurrentDir
	origSaveEntry := saveCurrentEntry
	t.Cleanup(func() {
		saveCurrentDir = origSaveDir
		saveCurrentEntry = origSaveEntry
	})
	saveCurrentDir = func(string) {}
	saveCurrentEntry = func(string) {}
}

func newTestBrowser(t *testing.T, dir string) (*Browser, *fakeApp) {
	t.Helper()
	stubStateSeams(t)
	app := &fakeApp{}
	s := &settings.Settings{ShowHidden: true, EditorStyle: "dracula"}
	navigator := nav.New(osfile.NewStore(), dir)
	return NewBrowser(app, navigator, s, zerolog.Nop()), app
}

// listedNames returns the entry names currently shown in the table, in row
// order, skipping the header.
func listedNames(b *Browser) []string {
	var result []string
	for row := 1; row < b.list.GetRowCount(); row++ {
		cell := b.list.GetCell(row, 0)
		if cell == nil {
			continue
		}
		if name, ok := cell.GetReference().(string); ok {
			result = append(result, name)
		}
	}
	return result
}

func selectEntry(t *testing.T, b *Browser, name string) {
	t.Helper()
	for row := 1; row < b.list.GetRowCount(); row++ {
		cell := b.list.GetCell(row, 0)
		if cell == nil {
			continue
		}
		if ref, ok := cell.GetReference().(string); ok && ref == name {
			b.list.Select(row, 0)
			b.onSelectionChanged(row, 0)
			return
		}
	}
	t.Fatalf("entry %q not listed", name)
}
