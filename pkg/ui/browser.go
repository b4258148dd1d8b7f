// Package ui provides a full-screen terminal browser over a journal.Store as
// an alternative to the line menu.
package ui

import (
	"fmt"
	"strings"

	"github.com/Qendolin/logbook/pkg/journal"
	"github.com/Qendolin/logbook/pkg/logging"
	"github.com/Qendolin/logbook/pkg/ui/widgets"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	addedStatus       = "Log added: "
	invalidTypeStatus = "Invalid log type!"
	emptyList         = "No logs available."
)

var severityColors = map[journal.Severity]string{
	journal.Info:    "green",
	journal.Warning: "yellow",
	journal.Error:   "red",
}

// Browser is a tview application with a form to add records, the list of
// stored records and a status line.
type Browser struct {
	app    *tview.Application
	store  *journal.Store
	logger *logging.Logger

	root         *tview.Flex
	counters     *tview.TextView
	status       *tview.TextView
	form         *tview.Form
	typeField    *tview.DropDown
	messageField *tview.InputField
	list         *tview.TextView
	listFrame    *widgets.TitleFrame
}

// NewBrowser builds the browser over store. A nil logger uses logging.Default().
func NewBrowser(store *journal.Store, logger *logging.Logger) *Browser {
	if logger == nil {
		logger = logging.Default()
	}
	b := &Browser{
		app:      tview.NewApplication(),
		store:    store,
		logger:   logger,
		root:     tview.NewFlex().SetDirection(tview.FlexRow),
		counters: tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignRight),
		status:   tview.NewTextView().SetDynamicColors(true),
		list:     tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(true),
	}
	b.setupLayout()
	b.refresh()
	b.status.SetText("Choose a type, enter a message and press Add.")
	return b
}

func (b *Browser) setupLayout() {
	labels := make([]string, len(journal.Severities))
	for i, s := range journal.Severities {
		labels[i] = s.Label()
	}

	b.typeField = tview.NewDropDown().
		SetLabel("Type ").
		SetOptions(labels, nil).
		SetCurrentOption(0)
	b.messageField = tview.NewInputField().
		SetLabel("Message ").
		SetFieldWidth(0).
		SetDoneFunc(func(key tcell.Key) {
			if key == tcell.KeyEnter {
				b.submitForm()
			}
		})

	b.form = tview.NewForm().
		AddFormItem(b.typeField).
		AddFormItem(b.messageField).
		AddButton("Add", b.submitForm).
		AddButton("Quit", b.Stop)

	b.listFrame = widgets.NewTitleFrame(b.list, "")

	header := tview.NewFlex().
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(b.status, 0, 1, false).
		AddItem(b.counters, 40, 0, false).
		AddItem(tview.NewBox(), 1, 0, false)

	footer := tview.NewTextView().SetDynamicColors(true).
		SetText(" [yellow]Tab[-] Next field  [yellow]Enter[-] Add  [yellow]ESC[-] Quit")

	b.root.SetBorder(true).
		SetTitle(" Logbook ").
		SetTitleAlign(tview.AlignLeft)
	b.root.AddItem(header, 1, 0, false).
		AddItem(b.form, 9, 0, true).
		AddItem(b.listFrame, 0, 1, false).
		AddItem(footer, 1, 0, false)

	b.app.SetRoot(b.root, true).SetFocus(b.form)
	b.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			b.Stop()
			return nil
		}
		return event
	})
}

// submitForm adds a record from the current form values.
func (b *Browser) submitForm() {
	_, label := b.typeField.GetCurrentOption()
	if _, ok := b.Submit(label, b.messageField.GetText()); ok {
		b.messageField.SetText("")
	}
}

// Submit adds a record through the store and updates the view. It reports
// whether the type label was recognized.
func (b *Browser) Submit(typeLabel, message string) (journal.Record, bool) {
	r, ok := b.store.Add(typeLabel, message)
	if !ok {
		b.logger.Warnf("Browser: Rejected log type %q.", typeLabel)
		b.status.SetText("[red]" + invalidTypeStatus + "[-]")
		return r, false
	}
	b.logger.Debugf("Browser: Stored record #%d (%s).", b.store.Len(), r.Severity())
	b.status.SetText(addedStatus + formatRecord(r))
	b.refresh()
	return r, true
}

// refresh redraws the record list, its title and the severity counters.
func (b *Browser) refresh() {
	records := b.store.All()
	b.list.SetText(renderRecords(records))
	b.list.ScrollToEnd()
	b.listFrame.SetTitle(fmt.Sprintf("All logs (%d)", len(records)))
	b.counters.SetText(renderCounters(records))
}

// Status returns the status line without color tags.
func (b *Browser) Status() string {
	return b.status.GetText(true)
}

// SetScreen makes the browser draw on s instead of the terminal.
func (b *Browser) SetScreen(s tcell.Screen) {
	b.app.SetScreen(s)
}

// Run blocks until the browser is stopped.
func (b *Browser) Run() error {
	b.logger.Infof("Browser: Starting with %d stored records.", b.store.Len())
	if err := b.app.Run(); err != nil {
		return fmt.Errorf("running terminal browser: %w", err)
	}
	b.logger.Infof("Browser: Stopped.")
	return nil
}

// Stop ends Run.
func (b *Browser) Stop() {
	b.app.Stop()
}

func formatRecord(r journal.Record) string {
	return "[" + severityColors[r.Severity()] + "]" + tview.Escape(r.Rendered()) + "[-]"
}

func renderRecords(records []journal.Record) string {
	if len(records) == 0 {
		return "[gray]" + emptyList + "[-]"
	}
	var sb strings.Builder
	for _, r := range records {
		sb.WriteString(formatRecord(r))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func renderCounters(records []journal.Record) string {
	counts := make(map[journal.Severity]int, len(journal.Severities))
	for _, r := range records {
		counts[r.Severity()]++
	}
	parts := make([]string, len(journal.Severities))
	for i, s := range journal.Severities {
		parts[i] = fmt.Sprintf("[%s]%s: %d[-]", severityColors[s], s.Tag(), counts[s])
	}
	return strings.Join(parts, "  ")
}
