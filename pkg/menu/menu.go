// Package menu implements the line-oriented interactive front-end over a
// journal.Store.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Qendolin/logbook/pkg/journal"
	"github.com/Qendolin/logbook/pkg/logging"
)

const (
	menuText = "\nLogger Menu:\n" +
		"1. Add log\n" +
		"2. Show all logs\n" +
		"3. Exit\n" +
		"Enter your choice: "
	typePrompt    = "Enter log type (info, warning, error): "
	messagePrompt = "Enter log message: "

	addedNotice       = "Log added: "
	invalidTypeNotice = "Invalid log type!"
	emptyNotice       = "No logs available."
	listHeader        = "All logs:"
	exitNotice        = "Exiting program."
	invalidChoice     = "Invalid choice. Please try again."
)

const (
	choiceAdd  = "1"
	choiceShow = "2"
	choiceExit = "3"
)

type state int

const (
	awaitingChoice state = iota
	awaitingLogType
	awaitingLogMessage
	terminated
)

// Menu reads selections one line at a time and drives the store.
type Menu struct {
	in     *bufio.Reader
	out    io.Writer
	store  *journal.Store
	logger *logging.Logger
	color  bool
	styles palette
}

// Option configures a Menu.
type Option func(*Menu)

// WithLogger sets the diagnostics logger. The default is logging.Default().
func WithLogger(l *logging.Logger) Option {
	return func(m *Menu) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithColor enables or disables styled notice lines. Styling is on by
// default; output that cannot show colors, such as a pipe or a buffer,
// always gets the plain text.
func WithColor(enable bool) Option {
	return func(m *Menu) {
		m.color = enable
	}
}

// New creates a menu reading from in and printing to out.
func New(in io.Reader, out io.Writer, store *journal.Store, opts ...Option) *Menu {
	m := &Menu{
		in:     bufio.NewReader(in),
		out:    out,
		store:  store,
		logger: logging.Default(),
		color:  true,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.styles = newPalette(out, m.color)
	return m
}

// Run drives the menu until the exit selection or the end of input, both of
// which return nil. A cancelled context is checked before every prompt.
func (m *Menu) Run(ctx context.Context) error {
	m.logger.Infof("Menu: Session started with %d stored records.", m.store.Len())

	var logType string
	for st := awaitingChoice; st != terminated; {
		if err := ctx.Err(); err != nil {
			m.logger.Infof("Menu: Session cancelled: %v", err)
			return err
		}

		var prompt string
		switch st {
		case awaitingChoice:
			prompt = menuText
		case awaitingLogType:
			prompt = typePrompt
		case awaitingLogMessage:
			prompt = messagePrompt
		}
		fmt.Fprint(m.out, prompt)

		line, err := m.readLine()
		if err != nil {
			return m.endOfInput(err)
		}

		switch st {
		case awaitingChoice:
			st = m.choose(line)
		case awaitingLogType:
			logType = line
			st = awaitingLogMessage
		case awaitingLogMessage:
			m.addLog(logType, line)
			st = awaitingChoice
		}
	}

	m.logger.Infof("Menu: Session ended by user.")
	return nil
}

func (m *Menu) choose(choice string) state {
	switch choice {
	case choiceAdd:
		return awaitingLogType
	case choiceShow:
		m.showLogs()
		return awaitingChoice
	case choiceExit:
		m.println(m.styles.apply(m.styles.notice, exitNotice))
		return terminated
	default:
		m.logger.Warnf("Menu: %v", fmt.Errorf("%w: %q", ErrUnknownChoice, choice))
		m.println(m.styles.apply(m.styles.invalid, invalidChoice))
		return awaitingChoice
	}
}

func (m *Menu) addLog(logType, message string) {
	r, ok := m.store.Add(logType, message)
	if !ok {
		m.logger.Warnf("Menu: %v", fmt.Errorf("%w: %q", ErrUnknownLogType, logType))
		m.println(m.styles.apply(m.styles.invalid, invalidTypeNotice))
		return
	}
	m.logger.Debugf("Menu: Stored record #%d (%s).", m.store.Len(), r.Severity())
	m.println(addedNotice + m.styles.record(r))
}

func (m *Menu) showLogs() {
	records := m.store.All()
	if len(records) == 0 {
		m.println(m.styles.apply(m.styles.notice, emptyNotice))
		return
	}
	m.println(m.styles.apply(m.styles.title, listHeader))
	for _, r := range records {
		m.println(m.styles.record(r))
	}
}

func (m *Menu) println(line string) {
	fmt.Fprintln(m.out, line)
}

// readLine returns the next line without its terminator. An unterminated
// final line is returned as-is; the following call reports io.EOF.
func (m *Menu) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

func (m *Menu) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		m.logger.Infof("Menu: Input exhausted, ending session.")
		return nil
	}
	m.logger.Errorf("Menu: Failed to read input: %v", err)
	return fmt.Errorf("reading menu input: %w", err)
}
