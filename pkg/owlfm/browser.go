package owlfm

import (
	"context"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"

	"github.com/owltech/owlfm/pkg/files"
	"github.com/owltech/owlfm/pkg/fsutils"
	"github.com/owltech/owlfm/pkg/gitutils"
	"github.com/owltech/owlfm/pkg/nav"
	"github.com/owltech/owlfm/pkg/owlfm/appstate"
	"github.com/owltech/owlfm/pkg/owlfm/settings"
	"github.com/owltech/owlfm/pkg/previewers"
)

// Seams for tests.
var saveCurrentDir = appstate.SaveCurrentDir
var saveCurrentEntry = appstate.SaveCurrentEntry
var repositoryRoot = gitutils.RepositoryRoot
var currentBranch = gitutils.CurrentBranch
var probeImage = previewers.ProbeImage

const pageMain = "main"

const modifiedTimeLayout = "2006-01-02 15:04"

// Browser is the whole window: path header, entry list and name input on
// the left, editor with status line on the right. Selection lives here as a
// plain entry name keyed into the last listing; the Navigator knows nothing
// about rows.
type Browser struct {
	app uiApp
	nav *nav.Navigator
	s   *settings.Settings
	log zerolog.Logger

	pages     *tview.Pages
	pathView  *tview.TextView
	list      *tview.Table
	nameInput *tview.InputField
	editor    *tview.TextArea
	preview   *tview.TextView
	right     *tview.Pages
	status    *tview.TextView

	entries  []files.Entry
	selected string
	viewMode bool
}

func NewBrowser(app uiApp, navigator *nav.Navigator, s *settings.Settings, log zerolog.Logger) *Browser {
	b := &Browser{
		app: app,
		nav: navigator,
		s:   s,
		log: log,
	}

	b.pathView = tview.NewTextView().SetTextColor(Style.PathColor)

	b.list = tview.NewTable()
	b.list.SetBorder(true).SetTitle(" " + navigator.Store().RootTitle() + " ")
	b.list.SetSelectable(true, false)
	b.list.SetSelectionChangedFunc(b.onSelectionChanged)
	b.list.SetSelectedFunc(b.onActivated)
	b.list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			b.goUp()
			return nil
		}
		return event
	})

	b.nameInput = tview.NewInputField().
		SetLabel("Name: ").
		SetPlaceholder("file or folder ending with /").
		SetFieldWidth(0)

	b.editor = tview.NewTextArea()
	b.editor.SetBorder(true).SetTitle(" Editor ")

	b.preview = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetScrollable(true)
	b.preview.SetBorder(true).SetTitle(" Preview ")

	b.right = tview.NewPages()
	b.right.AddPage("edit", b.editor, true, true)
	b.right.AddPage("view", b.preview, true, false)

	b.status = tview.NewTextView().SetTextColor(Style.StatusColor)
	b.status.SetText(statusNone)

	upBtn := tview.NewButton("Go Up").SetSelectedFunc(b.goUp)
	newBtn := tview.NewButton("New").SetSelectedFunc(b.createNew)
	renameBtn := tview.NewButton("Rename").SetSelectedFunc(b.renameSelected)
	deleteBtn := tview.NewButton("Delete").SetSelectedFunc(b.deleteSelected)
	saveBtn := tview.NewButton("Save Changes").SetSelectedFunc(b.saveSelected)
	viewBtn := tview.NewButton("View/Edit").SetSelectedFunc(b.toggleViewMode)

	header := tview.NewFlex().
		AddItem(b.pathView, 0, 1, false).
		AddItem(upBtn, 8, 0, false)

	leftButtons := tview.NewFlex().
		AddItem(newBtn, 0, 1, false).
		AddItem(nil, 1, 0, false).
		AddItem(renameBtn, 0, 1, false).
		AddItem(nil, 1, 0, false).
		AddItem(deleteBtn, 0, 1, false)

	left := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(b.list, 0, 1, true).
		AddItem(b.nameInput, 1, 0, false).
		AddItem(leftButtons, 1, 0, false)

	rightButtons := tview.NewFlex().
		AddItem(saveBtn, 0, 1, false).
		AddItem(nil, 1, 0, false).
		AddItem(viewBtn, 0, 1, false)

	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(b.right, 0, 1, false).
		AddItem(rightButtons, 1, 0, false).
		AddItem(b.status, 1, 0, false)

	columns := tview.NewFlex().
		AddItem(left, 0, 2, true).
		AddItem(right, 0, 3, false)

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(header, 1, 0, false).
		AddItem(columns, 0, 1, true)

	b.pages = tview.NewPages()
	b.pages.AddPage(pageMain, root, true, true)

	b.refresh()

	return b
}

// refresh re-lists the current directory and re-renders everything from the
// fresh listing. Called after every navigation and mutation; listings are
// never patched in place.
func (b *Browser) refresh() {
	ctx := context.Background()
	entries, err := b.nav.List(ctx)
	if err != nil {
		b.showError("Navigation Error", err.Error())
		return
	}
	b.entries = entries
	b.selected = ""
	b.rebuildList()
	b.editor.SetText("", false)
	b.preview.SetText("")
	b.setStatus(statusNone)
	b.renderPath()
	saveCurrentDir(b.nav.CurrentPath())
}

func (b *Browser) rebuildList() {
	b.list.Clear()
	for column, title := range []string{"Name", "Size", "Modified"} {
		b.list.SetCell(0, column, tview.NewTableCell(title).
			SetTextColor(Style.TableHeaderColor).
			SetSelectable(false))
	}
	b.list.GetCell(0, 0).SetExpansion(1)
	b.list.SetFixed(1, 0)

	ctx := context.Background()
	row := 1
	for _, entry := range b.entries {
		if !b.s.ShowHidden && strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		cell := tview.NewTableCell(entryLabel(entry)).
			SetReference(entry.Name()).
			SetExpansion(1)
		if entry.IsDir() {
			cell.SetTextColor(Style.DirColor)
		} else {
			cell.SetTextColor(Style.FileColor)
		}
		b.list.SetCell(row, 0, cell)
		size, modified := b.entryColumns(ctx, entry)
		b.list.SetCell(row, 1, tview.NewTableCell(size).SetAlign(tview.AlignRight))
		b.list.SetCell(row, 2, tview.NewTableCell(modified))
		row++
	}
	if row > 1 {
		b.list.Select(1, 0)
	}
}

// entryColumns renders the size and modified cells from a stat probe. A
// failed stat leaves both blank; the row stays listed and selectable.
func (b *Browser) entryColumns(ctx context.Context, entry files.Entry) (string, string) {
	meta, err := b.nav.StatEntry(ctx, entry.Name())
	if err != nil {
		return "", ""
	}
	modified := meta.ModTime.Format(modifiedTimeLayout)
	if entry.IsDir() {
		return "", modified
	}
	return fsutils.GetSizeShortText(meta.Size), modified
}

func entryLabel(entry files.Entry) string {
	if entry.IsDir() {
		return "📁 " + entry.Name()
	}
	return "📄 " + entry.Name()
}

func (b *Browser) renderPath() {
	text := b.nav.CurrentPath()
	if root := repositoryRoot(b.nav.CurrentPath()); root != "" {
		if branch, err := currentBranch(root); err == nil && branch != "" {
			text += "  🌿" + branch
		}
	}
	b.pathView.SetText(text)
}

// entryAt resolves a table row back to its listing entry.
func (b *Browser) entryAt(row int) (files.Entry, bool) {
	cell := b.list.GetCell(row, 0)
	if cell == nil {
		return files.Entry{}, false
	}
	name, ok := cell.GetReference().(string)
	if !ok {
		return files.Entry{}, false
	}
	for _, entry := range b.entries {
		if entry.Name() == name {
			return entry, true
		}
	}
	return files.Entry{}, false
}

func (b *Browser) onSelectionChanged(row, _ int) {
	entry, ok := b.entryAt(row)
	if !ok {
		b.selected = ""
		return
	}
	b.selected = entry.Name()
	saveCurrentEntry(entry.Name())
}

func (b *Browser) onActivated(row, _ int) {
	entry, ok := b.entryAt(row)
	if !ok {
		return
	}
	if entry.IsDir() {
		ctx := context.Background()
		if _, err := b.nav.Descend(ctx, entry.Name()); err != nil {
			b.showError("Navigation Error", err.Error())
			return
		}
		b.refresh()
		b.setStatus(statusDirView)
		return
	}
	b.loadFile(entry.Name())
}

// loadFile reads the activated file into the editor and reports its
// metadata. A failed stat does not hide the content: the two outcomes are
// surfaced independently.
func (b *Browser) loadFile(name string) {
	ctx := context.Background()
	fc, err := b.nav.ReadFile(ctx, name)
	if err != nil {
		b.showError("File Read Error", err.Error())
		b.editor.SetText("", false)
		b.setStatus(statusReadFailed)
		return
	}
	b.editor.SetText(string(fc.Data), false)
	if b.viewMode {
		b.renderPreview(name, fc.Data)
	}
	status := formatFileStatus(name, fc)
	if meta := probeImage(fc.Path); meta != nil {
		status += formatImageMeta(meta)
	}
	b.setStatus(status)
}

func (b *Browser) goUp() {
	before := b.nav.CurrentPath()
	if b.nav.Ascend() == before {
		return // already at the filesystem root
	}
	b.refresh()
}

func (b *Browser) setStatus(text string) {
	b.status.SetText(text)
}
