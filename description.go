package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

const (
	keyFile        = "FILE"
	keyResistance  = "RESISTANCE"
	keyCapacitance = "CAPACITANCE"
)

// description names the simulation run to plot: where the time-series
// data lives and the component values that produced it. Resistance is
// in ohms, capacitance in farads.
type description struct {
	dataFile    string
	resistance  float64
	capacitance float64
}

type missingDescriptionError struct {
	path string
}

func (m *missingDescriptionError) Error() string {
	return fmt.Sprintf("Description file %v not found", m.path)
}

type missingKeyError struct {
	key string
}

func (m *missingKeyError) Error() string {
	return fmt.Sprintf("missing required key %v", m.key)
}

type badValueError struct {
	key, value string
}

func (b *badValueError) Error() string {
	return fmt.Sprintf("%v must be a positive number, got %q", b.key, b.value)
}

// loadDescription reads and validates the description file. A file
// that does not exist is reported as a missingDescriptionError, the
// one failure mode a normal run is expected to hit.
func loadDescription(path string) (description, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return description{}, &missingDescriptionError{path: path}
		}
		return description{}, err
	}
	defer f.Close()
	d, err := parseDescription(f)
	if err != nil {
		return description{}, fmt.Errorf("%v: %w", path, err)
	}
	return d, nil
}

// parseDescription reads KEY = VALUE lines. Blank lines and lines
// starting with # are skipped. All three keys are required and must
// appear exactly once.
func parseDescription(r io.Reader) (description, error) {
	values := make(map[string]string)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		key, value, found := strings.Cut(text, "=")
		if !found {
			return description{}, fmt.Errorf(
				"line %v: expected KEY = VALUE, got %q", line, text)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if _, ok := values[key]; ok {
			return description{}, fmt.Errorf(
				"line %v: duplicate key %v", line, key)
		}
		switch key {
		case keyFile, keyResistance, keyCapacitance:
		default:
			return description{}, fmt.Errorf(
				"line %v: unknown key %v", line, key)
		}
		values[key] = value
	}
	if err := scanner.Err(); err != nil {
		return description{}, err
	}

	d := description{}
	var ok bool
	if d.dataFile, ok = values[keyFile]; !ok {
		return description{}, &missingKeyError{key: keyFile}
	}
	if d.dataFile == "" {
		return description{}, errEmptyDataFile
	}
	var err error
	if d.resistance, err = componentValue(keyResistance, values); err != nil {
		return description{}, err
	}
	if d.capacitance, err = componentValue(keyCapacitance, values); err != nil {
		return description{}, err
	}
	return d, nil
}

func componentValue(key string, values map[string]string) (float64, error) {
	raw, ok := values[key]
	if !ok {
		return 0, &missingKeyError{key: key}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, &badValueError{key: key, value: raw}
	}
	return v, nil
}
