package main

import (
	"fmt"
	"os"
)

func main() {
	cfg, err := parser.parse(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
	if err := cfg.checkArgs(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
	if cfg.runSelfTest {
		if err := runSelfTest(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitFailure)
		}
		return
	}
	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
}

// run is the whole reporting pass: description, data, chart.
func run(cfg config) error {
	descr, err := loadDescription(cfg.descriptionPath)
	if err != nil {
		return err
	}
	ds, err := loadDataset(descr.dataFile, !cfg.noProgress)
	if err != nil {
		return err
	}
	outputFile := cfg.imagePath()
	if err := renderChart(ds, descr, cfg.precision, outputFile); err != nil {
		return err
	}
	fmt.Printf("Output file is %v\n", outputFile)
	return nil
}
