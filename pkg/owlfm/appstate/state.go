package appstate

import (
	"os"
	"path/filepath"

	"github.com/owltech/owlfm/pkg/fsutils"
)

const defaultSettingsDir = "~/.owlfm"
const stateFileName = "owlfm-state.json"

var settingsDirPath = fsutils.ExpandHome(defaultSettingsDir)

// State is what survives between runs: where the user was and what was
// selected. It is best-effort; any IO failure is swallowed.
type State struct {
	CurrentDir   string `json:"current_dir,omitempty"`
	CurrentEntry string `json:"current_entry,omitempty"`
}

var readJSON = fsutils.ReadJSONFile
var writeJSON = fsutils.WriteJSONFile

var logErr = func(v ...any) {
}

func stateFilePath() string {
	return filepath.Join(settingsDirPath, stateFileName)
}

func Get() (*State, error) {
	var state State
	return &state, readJSON(stateFilePath(), false, &state)
}

func SaveCurrentDir(dir string) {
	save(func(state *State) {
		state.CurrentDir = dir
	})
}

func SaveCurrentEntry(name string) {
	save(func(state *State) {
		state.CurrentEntry = name
	})
}

func save(f func(state *State)) {
	filePath := stateFilePath()
	var state State
	if err := readJSON(filePath, false, &state); err != nil {
		logErr("error reading state file:", err)
	}

	if info, err := os.Stat(settingsDirPath); err != nil {
		if os.IsNotExist(err) {
			if err = os.MkdirAll(settingsDirPath, os.ModePerm); err != nil {
				logErr("error creating settings directory:", err)
				return
			}
		}
	} else if !info.IsDir() {
		logErr("settings path is not a directory:", settingsDirPath)
		return
	}

	f(&state)
	if err := writeJSON(filePath, state); err != nil {
		logErr("error writing state file:", err)
	}
}
