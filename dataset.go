package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cheggaaa/pb"
)

// datasetColumns is the number of leading columns the plot consumes:
// time, capacitor voltage, output voltage. Extra columns are ignored.
const datasetColumns = 3

// dataset holds the simulation trace as parallel column slices.
type dataset struct {
	seconds   []float64
	capacitor []float64
	output    []float64
}

// loadDataset reads the comma-delimited trace named by the
// description file. With progress enabled a byte-count bar tracks the
// read, which matters for long simulation runs.
func loadDataset(path string, progress bool) (*dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open data file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if progress {
		if info, serr := f.Stat(); serr == nil && info.Size() > 0 {
			bar := pb.New64(info.Size()).SetUnits(pb.U_BYTES)
			bar.Start()
			defer bar.Finish()
			r = bar.NewProxyReader(f)
		}
	}

	ds, err := readDataset(r)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return ds, nil
}

func readDataset(r io.Reader) (*dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	ds := new(dataset)
	row := 0
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		row++
		if len(record) < datasetColumns {
			return nil, fmt.Errorf(
				"row %v: expected at least %v columns, got %v",
				row, datasetColumns, len(record))
		}
		var cols [datasetColumns]float64
		for i := 0; i < datasetColumns; i++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(record[i]), 64)
			if err != nil {
				return nil, fmt.Errorf(
					"row %v: bad number %q", row, record[i])
			}
			cols[i] = v
		}
		ds.seconds = append(ds.seconds, cols[0])
		ds.capacitor = append(ds.capacitor, cols[1])
		ds.output = append(ds.output, cols[2])
	}
	if len(ds.seconds) == 0 {
		return nil, errEmptyDataset
	}
	return ds, nil
}
