package ui

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Qendolin/logbook/pkg/journal"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func TestSubmitStoresRecord(t *testing.T) {
	store := journal.NewStore()
	b := NewBrowser(store, nil)

	r, ok := b.Submit("warning", "low disk")
	if !ok {
		t.Fatalf("Submit(warning) was rejected")
	}
	if r.Rendered() != "[WARNING]: low disk" {
		t.Errorf("unexpected record %q", r.Rendered())
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 record, got %d", store.Len())
	}
	if !strings.HasPrefix(b.Status(), "Log added: ") {
		t.Errorf("unexpected status %q", b.Status())
	}
	if b.listFrame.Title() != "All logs (1)" {
		t.Errorf("unexpected list title %q", b.listFrame.Title())
	}
}

func TestSubmitRejectsUnknownType(t *testing.T) {
	store := journal.NewStore()
	b := NewBrowser(store, nil)

	if _, ok := b.Submit("Warning", "x"); ok {
		t.Fatalf("Submit(Warning) should be rejected")
	}
	if store.Len() != 0 {
		t.Errorf("expected no records, got %d", store.Len())
	}
	if b.Status() != "Invalid log type!" {
		t.Errorf("unexpected status %q", b.Status())
	}
	if b.listFrame.Title() != "All logs (0)" {
		t.Errorf("unexpected list title %q", b.listFrame.Title())
	}
}

func TestRenderRecords(t *testing.T) {
	if got := renderRecords(nil); got != "[gray]No logs available.[-]" {
		t.Errorf("unexpected empty rendering %q", got)
	}

	info, _ := journal.Create("info", "a")
	failure, _ := journal.Create("error", "b")
	expected := "[green]" + tview.Escape("[INFO]: a") + "[-]\n" +
		"[red]" + tview.Escape("[ERROR]: b") + "[-]\n"
	if got := renderRecords([]journal.Record{info, failure}); got != expected {
		t.Errorf("unexpected rendering:\n%q\nwant:\n%q", got, expected)
	}
}

func TestRenderCounters(t *testing.T) {
	store := journal.NewStore()
	store.Add("info", "a")
	store.Add("error", "b")
	store.Add("error", "c")

	expected := "[green]INFO: 1[-]  [yellow]WARNING: 0[-]  [red]ERROR: 2[-]"
	if got := renderCounters(store.All()); got != expected {
		t.Errorf("unexpected counters %q, want %q", got, expected)
	}
}

// runOnSimulation starts b on a simulation screen and returns once the first
// frame has been drawn, so queued events reach a running event loop.
func runOnSimulation(t *testing.T, b *Browser) <-chan error {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.SetSize(80, 24)
	b.SetScreen(screen)

	drawn := make(chan struct{})
	var once sync.Once
	b.app.SetAfterDrawFunc(func(tcell.Screen) {
		once.Do(func() { close(drawn) })
	})

	done := make(chan error, 1)
	go func() { done <- b.Run() }()

	select {
	case <-drawn:
	case <-time.After(5 * time.Second):
		b.Stop()
		t.Fatalf("browser never drew its first frame")
	}
	return done
}

func sendKey(b *Browser, key tcell.Key) {
	b.app.QueueEvent(tcell.NewEventKey(key, 0, tcell.ModNone))
}

func sendText(b *Browser, text string) {
	for _, r := range text {
		b.app.QueueEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

func waitStopped(t *testing.T, b *Browser, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned an error: %v", err)
		}
	case <-time.After(5 * time.Second):
		b.Stop()
		t.Fatalf("browser did not stop on ESC")
	}
}

func TestRunStopsOnEscape(t *testing.T) {
	b := NewBrowser(journal.NewStore(), nil)
	done := runOnSimulation(t, b)

	sendKey(b, tcell.KeyEscape)
	waitStopped(t, b, done)
}

func TestFormSubmitsOnEnter(t *testing.T) {
	store := journal.NewStore()
	b := NewBrowser(store, nil)
	b.typeField.SetCurrentOption(2)
	done := runOnSimulation(t, b)

	// Focus starts on the type drop-down; Tab moves to the message field.
	sendKey(b, tcell.KeyTab)
	sendText(b, "disk full")
	sendKey(b, tcell.KeyEnter)
	sendKey(b, tcell.KeyEscape)
	waitStopped(t, b, done)

	all := store.All()
	if len(all) != 1 {
		t.Fatalf("expected 1 record, got %d", len(all))
	}
	if all[0].Rendered() != "[ERROR]: disk full" {
		t.Errorf("unexpected record %q", all[0].Rendered())
	}
	if b.messageField.GetText() != "" {
		t.Errorf("message field should be cleared after a submit, got %q", b.messageField.GetText())
	}
	if b.listFrame.Title() != "All logs (1)" {
		t.Errorf("unexpected list title %q", b.listFrame.Title())
	}
}
