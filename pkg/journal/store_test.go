package journal_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/Qendolin/logbook/pkg/journal"
)

func TestSharedIsSingleInstance(t *testing.T) {
	first := journal.Shared()
	second := journal.Shared()
	if first != second {
		t.Fatalf("Shared() returned different instances: %p and %p", first, second)
	}
	if first == journal.NewStore() {
		t.Fatalf("NewStore() must not return the shared instance")
	}
}

func TestNewStoreIsEmpty(t *testing.T) {
	s := journal.NewStore()
	if n := s.Len(); n != 0 {
		t.Fatalf("expected empty store, got %d records", n)
	}
	if all := s.All(); len(all) != 0 {
		t.Fatalf("expected zero-length listing, got %v", all)
	}
}

func TestAppendPreservesOrder(t *testing.T) {
	s := journal.NewStore()
	labels := []string{"warning", "error", "info", "info", "error"}
	for i, label := range labels {
		r, ok := journal.Create(label, fmt.Sprintf("msg-%d", i))
		if !ok {
			t.Fatalf("Create(%q) failed", label)
		}
		s.Append(r)
		if s.Len() != i+1 {
			t.Fatalf("after %d appends expected length %d, got %d", i+1, i+1, s.Len())
		}
	}

	all := s.All()
	if len(all) != len(labels) {
		t.Fatalf("expected %d records, got %d", len(labels), len(all))
	}
	for i, r := range all {
		if r.Severity().Label() != labels[i] || r.Message() != fmt.Sprintf("msg-%d", i) {
			t.Errorf("record %d out of order: %q", i, r.Rendered())
		}
	}

	// Listing twice must not change the store.
	s.All()
	if s.Len() != len(labels) {
		t.Errorf("All() changed store length to %d", s.Len())
	}
}

func TestAllReturnsCopy(t *testing.T) {
	s := journal.NewStore()
	s.Add("info", "original")

	all := s.All()
	replacement, _ := journal.Create("error", "replaced")
	all[0] = replacement

	if got := s.All()[0].Rendered(); got != "[INFO]: original" {
		t.Errorf("store was modified through the listing: %q", got)
	}
}

func TestAddUnknownTypeLeavesStoreUnchanged(t *testing.T) {
	s := journal.NewStore()
	if _, ok := s.Add("bogus", "x"); ok {
		t.Fatalf("Add with unknown type reported success")
	}
	if s.Len() != 0 {
		t.Fatalf("expected no records, got %d", s.Len())
	}

	r, ok := s.Add("info", "hello")
	if !ok {
		t.Fatalf("Add(info) failed")
	}
	if r.Rendered() != "[INFO]: hello" {
		t.Errorf("unexpected record %q", r.Rendered())
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 record, got %d", s.Len())
	}
}

func TestConcurrentAppend(t *testing.T) {
	s := journal.NewStore()
	const writers, perWriter = 8, 100

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				s.Add("info", "x")
				_ = s.All()
			}
		}()
	}
	wg.Wait()

	if s.Len() != writers*perWriter {
		t.Errorf("expected %d records, got %d", writers*perWriter, s.Len())
	}
}
