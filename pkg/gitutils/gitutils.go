// Package gitutils answers the one question the status bar asks: is this
// directory inside a git repository, and if so on what branch.
package gitutils

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

var osStat = os.Stat
var gitPlainOpen = git.PlainOpen

// RepositoryRoot walks up from dirPath looking for a .git directory and
// returns the containing directory, or "" when dirPath is not inside a
// repository.
func RepositoryRoot(dirPath string) string {
	dir := filepath.Clean(dirPath)
	for {
		if info, err := osStat(filepath.Join(dir, git.GitDirName)); err == nil && info.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// CurrentBranch returns the short name of HEAD's branch, or the abbreviated
// commit hash on a detached HEAD. An unborn HEAD reports "master", matching
// what git shows for a freshly initialised repository.
func CurrentBranch(repoRoot string) (string, error) {
	repo, err := gitPlainOpen(repoRoot)
	if err != nil {
		return "", err
	}
	head, err := repo.Head()
	if err != nil {
		if err == plumbing.ErrReferenceNotFound {
			return "master", nil
		}
		return "", err
	}
	if head.Name().IsBranch() {
		return head.Name().Short(), nil
	}
	return head.Hash().String()[:7], nil
}
