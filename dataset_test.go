package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestShouldReadDataset(t *testing.T) {
	in := "0.0,0.0,0.0\n" +
		"0.001, 1.5, 9.0\n" +
		"0.002,2.8,9.0,extra\n"
	ds, err := readDataset(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Expected no error, but got %v", err)
	}
	if len(ds.seconds) != 3 {
		t.Fatalf("Expected 3 rows, but got %v", len(ds.seconds))
	}
	if ds.seconds[1] != 0.001 {
		t.Errorf("Expected 0.001, but got %v", ds.seconds[1])
	}
	if ds.capacitor[1] != 1.5 {
		t.Errorf("Expected 1.5, but got %v", ds.capacitor[1])
	}
	if ds.output[2] != 9.0 {
		t.Errorf("Expected 9.0, but got %v", ds.output[2])
	}
}

func TestShouldRejectBadDatasetRows(t *testing.T) {
	expectations := []struct {
		in  string
		out string
	}{
		{"0.0,0.0\n", "row 1: expected at least 3 columns, got 2"},
		{"0.0,0.0,0.0\n0.001,x,9.0\n", "row 2: bad number \"x\""},
	}
	for _, e := range expectations {
		_, err := readDataset(strings.NewReader(e.in))
		if err == nil {
			t.Errorf("Expected an error for %q", e.in)
			continue
		}
		if !strings.Contains(err.Error(), e.out) {
			t.Errorf("Expected error containing %q, but got %q",
				e.out, err.Error())
		}
	}
}

func TestShouldRejectEmptyDataset(t *testing.T) {
	_, err := readDataset(strings.NewReader(""))
	if !errors.Is(err, errEmptyDataset) {
		t.Errorf("Expected errEmptyDataset, but got %v", err)
	}
}

func TestShouldLoadDatasetFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.csv")
	contents := "0.0,0.0,9.0\n0.001,1.5,9.0\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	ds, err := loadDataset(path, false)
	if err != nil {
		t.Fatalf("Expected no error, but got %v", err)
	}
	if len(ds.seconds) != 2 {
		t.Errorf("Expected 2 rows, but got %v", len(ds.seconds))
	}
}

func TestShouldReportMissingDataFile(t *testing.T) {
	_, err := loadDataset(filepath.Join(t.TempDir(), "trace.csv"), false)
	if err == nil {
		t.Fatal("Expected an error")
	}
	if !strings.Contains(err.Error(), "cannot open data file") {
		t.Errorf("Unexpected error %q", err.Error())
	}
}
