package app

import (
	"flag"
	"fmt"
	"os"

	"github.com/titanous/json5"
)

const (
	InterfaceMenu = "menu"
	InterfaceTUI  = "tui"
)

// CLIArgs holds all command-line arguments passed to the application.
type CLIArgs struct {
	Verbose    bool
	LogDir     string
	TUI        bool
	NoColor    bool
	ConfigPath string

	// set records which flags were given explicitly, so that Resolve
	// only lets those override the config file.
	set map[string]bool
}

// Config is the optional JSON5 configuration file.
type Config struct {
	Verbose   *bool  `json:"verbose"`
	LogDir    string `json:"logDir"`
	Interface string `json:"interface"`
	Color     *bool  `json:"color"`
}

// Settings is the effective configuration after merging flags and file.
type Settings struct {
	Verbose   bool
	LogDir    string
	Interface string
	Color     bool
}

// ParseCLIArgs parses the command-line flags and returns a populated CLIArgs struct.
func ParseCLIArgs() *CLIArgs {
	args, err := parseArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		// flag.ExitOnError has already reported and exited.
		os.Exit(2)
	}
	return args
}

func parseArgs(fs *flag.FlagSet, arguments []string) (*CLIArgs, error) {
	args := &CLIArgs{set: make(map[string]bool)}

	fs.BoolVar(&args.Verbose, "verbose", false, "Enable verbose (debug) diagnostics logging.")
	fs.StringVar(&args.LogDir, "log-dir", "", "Directory for diagnostics log files. Diagnostics are discarded when empty.")
	fs.BoolVar(&args.TUI, "tui", false, "Start the terminal browser instead of the line menu.")
	fs.BoolVar(&args.NoColor, "no-color", false, "Disable styled menu output.")
	fs.StringVar(&args.ConfigPath, "config", "", "Path to an optional JSON5 configuration file.")
	if err := fs.Parse(arguments); err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		args.set[f.Name] = true
	})
	return args, nil
}

// LoadConfig reads a JSON5 configuration file. Comments and trailing commas are allowed.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file '%s': %w", path, err)
	}

	var cfg Config
	if err := json5.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file '%s': %w", path, err)
	}

	switch cfg.Interface {
	case "", InterfaceMenu, InterfaceTUI:
	default:
		return nil, fmt.Errorf("config file '%s': %w '%s' (expected '%s' or '%s')",
			path, ErrUnknownInterface, cfg.Interface, InterfaceMenu, InterfaceTUI)
	}
	return &cfg, nil
}

// Resolve merges defaults, the config file (may be nil) and explicitly set flags,
// in increasing order of precedence.
func Resolve(args *CLIArgs, cfg *Config) Settings {
	s := Settings{
		Interface: InterfaceMenu,
		Color:     true,
	}

	if cfg != nil {
		if cfg.Verbose != nil {
			s.Verbose = *cfg.Verbose
		}
		if cfg.LogDir != "" {
			s.LogDir = cfg.LogDir
		}
		if cfg.Interface != "" {
			s.Interface = cfg.Interface
		}
		if cfg.Color != nil {
			s.Color = *cfg.Color
		}
	}

	if args == nil {
		return s
	}
	if args.set["verbose"] {
		s.Verbose = args.Verbose
	}
	if args.set["log-dir"] {
		s.LogDir = args.LogDir
	}
	if args.set["tui"] {
		s.Interface = InterfaceMenu
		if args.TUI {
			s.Interface = InterfaceTUI
		}
	}
	if args.set["no-color"] {
		s.Color = !args.NoColor
	}
	return s
}
