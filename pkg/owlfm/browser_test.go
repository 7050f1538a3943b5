package owlfm

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBrowser_Listing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "apple.txt"), nil, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Banana"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cherry.txt"), nil, 0644))

	b, _ := newTestBrowser(t, dir)

	assert.Equal(t, []string{"apple.txt", "Banana", "cherry.txt"}, listedNames(b))
	assert.Equal(t, statusNone, b.status.GetText(true))
	assert.Contains(t, b.pathView.GetText(true), dir)
}

func TestBrowser_ListingColumns(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.txt"), []byte("12345"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "stuff"), 0755))

	b, _ := newTestBrowser(t, dir)

	require.Equal(t, 3, b.list.GetColumnCount())
	assert.Equal(t, "Name", b.list.GetCell(0, 0).Text)
	assert.Equal(t, "Size", b.list.GetCell(0, 1).Text)
	assert.Equal(t, "Modified", b.list.GetCell(0, 2).Text)

	year := time.Now().Format("2006")
	// doc.txt sorts before stuff
	assert.Equal(t, "5B", b.list.GetCell(1, 1).Text)
	assert.Contains(t, b.list.GetCell(1, 2).Text, year)

	// directories carry no size
	assert.Equal(t, "", b.list.GetCell(2, 1).Text)
	assert.Contains(t, b.list.GetCell(2, 2).Text, year)
}

func TestBrowser_ListTitleShowsStoreRoot(t *testing.T) {
	b, _ := newTestBrowser(t, t.TempDir())
	host, err := os.Hostname()
	require.NoError(t, err)
	assert.Contains(t, b.list.GetTitle(), host)
}

func TestBrowser_HiddenFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shown.txt"), nil, 0644))

	t.Run("shown_by_default", func(t *testing.T) {
		b, _ := newTestBrowser(t, dir)
		assert.Equal(t, []string{".hidden", "shown.txt"}, listedNames(b))
	})

	t.Run("filtered_when_disabled", func(t *testing.T) {
		b, _ := newTestBrowser(t, dir)
		b.s.ShowHidden = false
		b.refresh()
		assert.Equal(t, []string{"shown.txt"}, listedNames(b))
	})
}

func TestBrowser_ActivateDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "child")
	require.NoError(t, os.Mkdir(sub, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "inner.txt"), nil, 0644))

	b, _ := newTestBrowser(t, dir)
	selectEntry(t, b, "child")
	row, _ := b.list.GetSelection()
	b.onActivated(row, 0)

	assert.Equal(t, sub, b.nav.CurrentPath())
	assert.Equal(t, []string{"inner.txt"}, listedNames(b))
	assert.Equal(t, statusDirView, b.status.GetText(true))
}

func TestBrowser_ActivateFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.txt"), []byte("file body"), 0644))

	b, _ := newTestBrowser(t, dir)
	selectEntry(t, b, "doc.txt")
	row, _ := b.list.GetSelection()
	b.onActivated(row, 0)

	assert.Equal(t, "file body", b.editor.GetText())
	status := b.status.GetText(true)
	assert.Contains(t, status, "Current File: doc.txt")
	assert.Contains(t, status, "Size: 9 bytes")
	assert.Contains(t, status, "Modified: ")
}

func TestBrowser_ActivateUnreadableFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "secret.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0000))
	if _, err := os.ReadFile(path); err == nil {
		t.Skip("running as a user that ignores file modes")
	}

	b, _ := newTestBrowser(t, dir)
	selectEntry(t, b, "secret.txt")
	row, _ := b.list.GetSelection()
	b.onActivated(row, 0)

	assert.Equal(t, statusReadFailed, b.status.GetText(true))
	assert.True(t, b.pages.HasPage(pageModal))
	assert.Equal(t, "", b.editor.GetText())
}

func TestBrowser_GoUp(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0755))

	t.Run("from_subdirectory", func(t *testing.T) {
		b, _ := newTestBrowser(t, sub)
		b.goUp()
		assert.Equal(t, dir, b.nav.CurrentPath())
		assert.Equal(t, []string{"nested"}, listedNames(b))
	})

	t.Run("noop_at_root", func(t *testing.T) {
		b, _ := newTestBrowser(t, "/")
		b.goUp()
		assert.Equal(t, "/", b.nav.CurrentPath())
	})
}

func TestBrowser_UnreadableStartDir(t *testing.T) {
	dir := t.TempDir()
	b, _ := newTestBrowser(t, filepath.Join(dir, "does-not-exist"))
	assert.True(t, b.pages.HasPage(pageModal))
}

func TestBrowser_SelectionTracksRows(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), nil, 0644))

	b, _ := newTestBrowser(t, dir)
	selectEntry(t, b, "b.txt")
	assert.Equal(t, "b.txt", b.selected)

	selectEntry(t, b, "a.txt")
	assert.Equal(t, "a.txt", b.selected)
}
