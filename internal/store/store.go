// Package store writes completed parking sessions to CSV transcript
// files and loads them back for the replay viewer. Transcripts live in
// ~/.parkassist/ as session-<timestamp>.csv and are log artifacts only:
// nothing is ever resumed from them.
package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/luki/parkassist/internal/session"
)

const (
	dirName    = ".parkassist"
	fileLayout = "2006-01-02T150405"
)

// StoredStep is a single row from a transcript file.
type StoredStep struct {
	Index  int
	Left   float64
	Center float64
	Right  float64
	Status string
}

// DataDir returns the default transcript directory.
func DataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, dirName)
}

// Save writes the session's history to a new transcript file in dir
// (DataDir when empty) and returns the file path. File format:
//
//	step,left,center,right,status
func Save(s *session.Session, dir string, t time.Time) (string, error) {
	if dir == "" {
		dir = DataDir()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("cannot create transcript dir: %w", err)
	}

	path := filepath.Join(dir, "session-"+t.Format(fileLayout)+".csv")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Write([]string{"step", "left", "center", "right", "status"})
	for _, step := range s.History() {
		w.Write([]string{
			strconv.Itoa(step.Index),
			fmt.Sprintf("%.2f", step.Reading.Left),
			fmt.Sprintf("%.2f", step.Reading.Center),
			fmt.Sprintf("%.2f", step.Reading.Right),
			step.Label(),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return path, nil
}

// LoadFile reads all steps from a transcript file.
func LoadFile(path string) ([]StoredStep, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	var steps []StoredStep
	for i, row := range records {
		if i == 0 && len(row) > 0 && row[0] == "step" {
			continue
		}
		if len(row) < 5 {
			continue
		}

		idx, err := strconv.Atoi(row[0])
		if err != nil {
			continue
		}
		left, _ := strconv.ParseFloat(row[1], 64)
		center, _ := strconv.ParseFloat(row[2], 64)
		right, _ := strconv.ParseFloat(row[3], 64)

		steps = append(steps, StoredStep{
			Index:  idx,
			Left:   left,
			Center: center,
			Right:  right,
			Status: row[4],
		})
	}

	return steps, nil
}

// List returns transcript paths in dir (DataDir when empty), newest
// first.
func List(dir string) ([]string, error) {
	if dir == "" {
		dir = DataDir()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, "session-") && strings.HasSuffix(name, ".csv") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(paths)))
	return paths, nil
}
