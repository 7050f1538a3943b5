package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime/pprof"

	"github.com/rivo/tview"
	"github.com/rs/zerolog"

	"github.com/owltech/owlfm/pkg/files/osfile"
	"github.com/owltech/owlfm/pkg/fsutils"
	"github.com/owltech/owlfm/pkg/logging"
	"github.com/owltech/owlfm/pkg/nav"
	"github.com/owltech/owlfm/pkg/owlfm"
	"github.com/owltech/owlfm/pkg/owlfm/appstate"
	"github.com/owltech/owlfm/pkg/owlfm/settings"
	"github.com/owltech/owlfm/pkg/profiling"
)

var (
	startDir   = flag.String("dir", "", "directory to open on start")
	configFile = flag.String("config", "", "path to the settings file")
	cpuProfile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memProfile = flag.String("memprofile", "", "write memory profile to `file`")
	pprofAddr  = flag.String("pprof", "", "start pprof http server on `address` (e.g. localhost:6060)")
)

var httpListenAndServe = http.ListenAndServe
var osExit = os.Exit
var osGetwd = os.Getwd
var pprofStopCPUProfile = pprof.StopCPUProfile
var loadSettings = settings.Load
var newLogger = logging.New

// logCloser holds the log file open for the lifetime of the app; run closes
// it after the event loop returns.
var logCloser io.Closer

func main() {
	app := newOwlfmApp()
	run(app)
}

func newOwlfmApp() (app *tview.Application) {
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			err := httpListenAndServe(*pprofAddr, nil)
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "pprof server error: %v\n", err)
			}
		}()
	}

	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Recovered from panic: %v\n", r)
			pprofStopCPUProfile()
			osExit(1)
		}
	}()

	if *cpuProfile != "" {
		stopCPUProfiling := profiling.DoCPUProfiling(*cpuProfile)
		defer stopCPUProfiling()
	}

	if *memProfile != "" {
		stopMemProfiling := profiling.DoMemProfiling(*memProfile)
		defer stopMemProfiling()
	}

	app = newApp()
	return
}

var setupApp = func(app *tview.Application) {
	s, err := loadSettings(*configFile)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to load settings: %v\n", err)
		s = &settings.Settings{ShowHidden: true, EditorStyle: "dracula"}
	}

	logger, closer, err := newLogger(fsutils.ExpandHome(s.LogFile))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		logger = zerolog.Nop()
	} else {
		logCloser = closer
	}

	store := osfile.NewStore()
	navigator := nav.New(store, resolveStartDir(), nav.WithLogger(logger))
	owlfm.SetupApp(app, navigator, s, logger)
}

// resolveStartDir picks the first usable start directory: the -dir flag,
// then the persisted last directory, then the process working directory.
func resolveStartDir() string {
	if *startDir != "" {
		return fsutils.ExpandHome(*startDir)
	}
	if state, err := appstate.Get(); err == nil && state.CurrentDir != "" {
		if ok, _ := fsutils.DirExists(state.CurrentDir); ok {
			return state.CurrentDir
		}
	}
	if wd, err := osGetwd(); err == nil {
		return wd
	}
	return "/"
}

var newApp = func() *tview.Application {
	app := tview.NewApplication()
	setupApp(app)
	return app
}

type application interface{ Run() error }

var run = func(app application) {
	if err := app.Run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	if logCloser != nil {
		_ = logCloser.Close()
	}
}
