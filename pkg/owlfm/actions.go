package owlfm

import (
	"context"
	"errors"
	"strings"

	"github.com/owltech/owlfm/pkg/chromaterm"
	"github.com/owltech/owlfm/pkg/files"
)

// classifyNewName splits the typed name into the entry name and the
// is-directory flag: a trailing / or \ marks a directory. The marker is a UI
// convention; the core only ever sees the trimmed name.
func classifyNewName(typed string) (name string, isDir bool) {
	isDir = strings.HasSuffix(typed, "/") || strings.HasSuffix(typed, `\`)
	name = strings.TrimRight(typed, `/\`)
	return name, isDir
}

func (b *Browser) createNew() {
	typed := b.nameInput.GetText()
	if typed == "" {
		b.showError("Create Error", "Please enter a name.")
		return
	}
	name, isDir := classifyNewName(typed)
	if name == "" {
		b.showError("Create Error", "Please enter a name.")
		return
	}

	ctx := context.Background()
	if err := b.nav.CreateEntry(ctx, name, isDir); err != nil {
		if errors.Is(err, files.ErrAlreadyExists) {
			b.showError("Create Error", "File or directory already exists.")
		} else {
			b.showError("Create Error", err.Error())
		}
		return
	}
	b.log.Info().Str("name", name).Bool("dir", isDir).Msg("created entry")

	b.refresh()
	if isDir {
		b.showInfo("Success", "Directory created.")
	} else {
		b.showInfo("Success", "File created.")
	}
	b.nameInput.SetText("")
}

func (b *Browser) saveSelected() {
	if b.selected == "" {
		b.showError("Save Error", "Please select a file to save.")
		return
	}
	name := b.selected

	ctx := context.Background()
	if err := b.nav.WriteFile(ctx, name, []byte(b.editor.GetText())); err != nil {
		if errors.Is(err, files.ErrIsDirectory) {
			b.showError("Save Error", "Cannot save content to a directory.")
		} else {
			b.showError("Save Error", err.Error())
		}
		return
	}
	b.log.Info().Str("name", name).Msg("saved file")

	b.showInfo("Success", "File saved (updated).")
	// Re-read so the status line reflects the new size and mtime.
	b.loadFile(name)
}

func (b *Browser) deleteSelected() {
	if b.selected == "" {
		b.showError("Delete Error", "Please select an item.")
		return
	}
	name := b.selected

	b.confirm(
		"Confirm deletion of \""+name+"\"? This cannot be undone.",
		func() {
			b.doDelete(name)
		})
}

func (b *Browser) doDelete(name string) {
	ctx := context.Background()
	if err := b.nav.DeleteEntry(ctx, name); err != nil {
		b.showError("Delete Error", err.Error())
		return
	}
	b.log.Info().Str("name", name).Msg("deleted entry")
	b.refresh()
	b.showInfo("Success", "Item deleted.")
}

func (b *Browser) renameSelected() {
	newName := b.nameInput.GetText()
	if newName == "" {
		b.showError("Rename Error", "Please enter new name.")
		return
	}
	if b.selected == "" {
		b.showError("Rename Error", "Please select an item.")
		return
	}
	oldName := b.selected

	ctx := context.Background()
	if err := b.nav.RenameEntry(ctx, oldName, newName); err != nil {
		if errors.Is(err, files.ErrAlreadyExists) {
			b.showError("Rename Error", "Item with the new name already exists.")
		} else {
			b.showError("Rename Error", err.Error())
		}
		return
	}
	b.log.Info().Str("from", oldName).Str("to", newName).Msg("renamed entry")

	b.refresh()
	b.showInfo("Success", "Item renamed.")
	b.nameInput.SetText("")
}

// toggleViewMode flips the right pane between the editable plain-text
// editor and the read-only highlighted preview of the same content.
func (b *Browser) toggleViewMode() {
	b.viewMode = !b.viewMode
	if b.viewMode {
		b.renderPreview(b.selected, []byte(b.editor.GetText()))
		b.right.SwitchToPage("view")
	} else {
		b.right.SwitchToPage("edit")
	}
}

func (b *Browser) renderPreview(name string, data []byte) {
	colorized, ok := chromaterm.ColorizeFile(name, b.s.EditorStyle, data)
	b.preview.SetDynamicColors(ok)
	b.preview.SetText(colorized)
	b.preview.ScrollToBeginning()
}
