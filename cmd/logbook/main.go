package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"sync"
	"syscall"
	"time"

	"github.com/Qendolin/logbook/pkg/app"
	"github.com/Qendolin/logbook/pkg/journal"
	"github.com/Qendolin/logbook/pkg/logging"
	"github.com/Qendolin/logbook/pkg/menu"
	"github.com/Qendolin/logbook/pkg/ui"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code. Every path out of it, including the
// signal handler, closes the diagnostics file first.
func run() int {
	cliArgs := app.ParseCLIArgs()

	var cfg *app.Config
	if cliArgs.ConfigPath != "" {
		var err error
		cfg, err = app.LoadConfig(cliArgs.ConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	settings := app.Resolve(cliArgs, cfg)

	// 1. Setup diagnostics logging first.
	mainLogger := logging.NewLogger()
	closeLog := func() {}
	if settings.LogDir != "" {
		logFile, err := openLogFile(settings.LogDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		closeLog = sync.OnceFunc(func() { closeDiagnostics(mainLogger, logFile) })
		mainLogger.SetWriter(logFile)
	}
	defer closeLog()
	mainLogger.SetDebug(settings.Verbose)
	logging.SetDefault(mainLogger)
	// Libraries using the standard logger end up in the diagnostics too.
	log.SetFlags(0)
	log.SetOutput(mainLogger)

	logging.Infof("Main: Interface %q, color %v, verbose %v.", settings.Interface, settings.Color, settings.Verbose)
	if mainLogger.IsDebugEnabled() {
		logBuildInfo()
	}

	// 2. Resolve the shared store and verify it is a single instance.
	checkSingleton(os.Stdout)
	store := journal.Shared()

	// 3. Setup OS signal trapping
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// 4. Run the selected front-end
	var err error
	switch settings.Interface {
	case app.InterfaceTUI:
		browser := ui.NewBrowser(store, mainLogger)
		go func() {
			sig := <-sigChan
			logging.Infof("Main: Received %v, stopping browser.", sig)
			browser.Stop()
		}()
		err = browser.Run()
	default:
		go func() {
			sig := <-sigChan
			// A blocked line read cannot be interrupted, so the exit is immediate.
			logging.Infof("Main: Received %v, exiting with %d records.", sig, store.Len())
			closeLog()
			os.Exit(0)
		}()
		m := menu.New(os.Stdin, os.Stdout, store, menu.WithLogger(mainLogger), menu.WithColor(settings.Color))
		err = m.Run(context.Background())
	}

	if err != nil {
		logging.Errorf("Main: Application exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	logging.Infof("Main: Application exited gracefully with %d records.", store.Len())
	return 0
}

// closeDiagnostics detaches f from the logger before closing it, so a late
// line from another goroutine is dropped instead of hitting a closed file.
func closeDiagnostics(logger *logging.Logger, f *os.File) {
	logger.SetWriter(nil)
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close log file: %v\n", err)
	}
}

func logBuildInfo() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	logging.Debugf("Main: Go %s, module %s %s.", info.GoVersion, info.Main.Path, info.Main.Version)
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" || setting.Key == "vcs.time" {
			logging.Debugf("Main: Build %s: %s", setting.Key, setting.Value)
		}
	}
}

// checkSingleton resolves the shared store twice and reports whether both
// lookups returned the same instance.
func checkSingleton(w io.Writer) bool {
	logger1 := journal.Shared()
	logger2 := journal.Shared()

	if logger1 == logger2 {
		fmt.Fprintln(w, "Singleton test passed: Both logger1 and logger2 are the same instance.")
		return true
	}
	fmt.Fprintln(w, "Singleton test failed: logger1 and logger2 are different instances.")
	logging.Errorf("Main: Shared store resolved to %p and %p.", logger1, logger2)
	return false
}

// openLogFile creates a unique, timestamped diagnostics file in dir.
func openLogFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	name := fmt.Sprintf("logbook-%s.log", time.Now().Format("2006-01-02_15-04-05"))
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}
