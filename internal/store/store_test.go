package store

import (
	"strings"
	"testing"
	"time"

	"github.com/luki/parkassist/internal/sensor"
	"github.com/luki/parkassist/internal/session"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s := session.New(session.Config{ReverseMode: true})
	s.Advance(sensor.Reading{Left: 0.9, Center: 0.8, Right: 0.7})
	s.Advance(sensor.Reading{Left: 0.2, Center: 0.2, Right: 0.2})
	s.Advance(sensor.Reading{Left: 0.4, Center: 0.4, Right: 0.4})

	when := time.Date(2026, 8, 29, 14, 30, 0, 0, time.Local)
	path, err := Save(s, dir, when)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasSuffix(path, "session-2026-08-29T143000.csv") {
		t.Errorf("unexpected path %q", path)
	}

	steps, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}

	if steps[0].Index != 1 || steps[0].Left != 0.9 {
		t.Errorf("first step: got %+v", steps[0])
	}
	if !strings.Contains(steps[1].Status, "OPPOSITE MOVEMENT") {
		t.Errorf("second step status: got %q", steps[1].Status)
	}
	if steps[2].Status != "Perfectly Parked" {
		t.Errorf("third step status: got %q", steps[2].Status)
	}
}

func TestListNewestFirst(t *testing.T) {
	dir := t.TempDir()

	s := session.New(session.Config{})
	s.Advance(sensor.Reading{Left: 0.4, Center: 0.4, Right: 0.4})

	early := time.Date(2026, 8, 28, 9, 0, 0, 0, time.Local)
	late := time.Date(2026, 8, 29, 9, 0, 0, 0, time.Local)
	if _, err := Save(s, dir, early); err != nil {
		t.Fatal(err)
	}
	if _, err := Save(s, dir, late); err != nil {
		t.Fatal(err)
	}

	paths, err := List(dir)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 transcripts, got %d", len(paths))
	}
	if !strings.Contains(paths[0], "2026-08-29") {
		t.Errorf("newest first: got %q", paths[0])
	}
}
