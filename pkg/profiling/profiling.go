package profiling

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

var osCreate = os.Create
var startCPUProfile = pprof.StartCPUProfile
var stopCPUProfile = pprof.StopCPUProfile
var writeHeapProfile = pprof.WriteHeapProfile

// DoCPUProfiling starts CPU profiling into the named file and returns a stop
// function to be deferred by the caller.
func DoCPUProfiling(fileName string) func() {
	f, err := osCreate(fileName)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "could not create CPU profile: %v\n", err)
		return func() {}
	}
	if err = startCPUProfile(f); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "could not start CPU profile: %v\n", err)
		_ = f.Close()
		return func() {}
	}
	return func() {
		stopCPUProfile()
		_ = f.Close()
	}
}

// DoMemProfiling returns a function that writes a heap profile to the named
// file; defer it to capture the profile at shutdown.
func DoMemProfiling(fileName string) func() {
	return func() {
		f, err := osCreate(fileName)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "could not create memory profile: %v\n", err)
			return
		}
		defer func() {
			_ = f.Close()
		}()
		runtime.GC()
		if err = writeHeapProfile(f); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "could not write memory profile: %v\n", err)
		}
	}
}
