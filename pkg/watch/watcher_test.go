package watch

import (
	"sync"
	"testing"
	"time"
)

func TestMatchesPatterns(t *testing.T) {
	watcher := New("/tmp/drop", func(string) {}, Config{})

	tests := []struct {
		name string
		want bool
	}{
		{"regulation.txt", true},
		{"page.html", true},
		{"page.htm", true},
		{"notes.md", false},
		{"archive.zip", false},
	}

	for _, tt := range tests {
		if got := watcher.matchesPatterns(tt.name); got != tt.want {
			t.Errorf("matchesPatterns(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMatchesPatterns_Custom(t *testing.T) {
	watcher := New("/tmp/drop", func(string) {}, Config{Patterns: []string{"celex-*.txt"}})

	if !watcher.matchesPatterns("celex-32016R0679.txt") {
		t.Error("custom pattern did not match")
	}
	if watcher.matchesPatterns("regulation.txt") {
		t.Error("custom pattern matched an unrelated name")
	}
}

func TestScheduleHandle_Debounces(t *testing.T) {
	var mu sync.Mutex
	var handledPaths []string
	handler := func(path string) {
		mu.Lock()
		handledPaths = append(handledPaths, path)
		mu.Unlock()
	}

	watcher := New("/tmp/drop", handler, Config{Debounce: 20 * time.Millisecond})

	// Three rapid events for the same file must collapse into one call.
	watcher.scheduleHandle("/tmp/drop/doc.txt")
	watcher.scheduleHandle("/tmp/drop/doc.txt")
	watcher.scheduleHandle("/tmp/drop/doc.txt")

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(handledPaths) != 1 {
		t.Fatalf("handler called %d times, want 1", len(handledPaths))
	}
	if handledPaths[0] != "/tmp/drop/doc.txt" {
		t.Errorf("handled path = %q, want the event path", handledPaths[0])
	}
}

func TestScheduleHandle_SeparateFiles(t *testing.T) {
	var mu sync.Mutex
	handledPaths := make(map[string]int)
	handler := func(path string) {
		mu.Lock()
		handledPaths[path]++
		mu.Unlock()
	}

	watcher := New("/tmp/drop", handler, Config{Debounce: 20 * time.Millisecond})

	watcher.scheduleHandle("/tmp/drop/first.txt")
	watcher.scheduleHandle("/tmp/drop/second.txt")

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if handledPaths["/tmp/drop/first.txt"] != 1 || handledPaths["/tmp/drop/second.txt"] != 1 {
		t.Errorf("handled counts = %v, want one call per file", handledPaths)
	}
}

func TestNew_Defaults(t *testing.T) {
	watcher := New("/tmp/drop", func(string) {}, Config{})

	if watcher.debounce != DefaultDebounce {
		t.Errorf("debounce = %v, want %v", watcher.debounce, DefaultDebounce)
	}
	if len(watcher.patterns) != len(DefaultPatterns) {
		t.Errorf("patterns = %v, want defaults", watcher.patterns)
	}
	if watcher.logger == nil {
		t.Error("logger is nil, want slog default")
	}
}
