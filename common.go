package main

import "errors"

const (
	exitFailure = 1

	defaultDescriptionPath = "description.dat"
	defaultPrecision       = 5
	maxPrecision           = 15

	defaultPDFOutput = "plot.pdf"
	defaultPNGOutput = "plot.png"
)

var (
	version = "unspecified"

	emptyConf = config{}
	parser    = newKingpinParser()

	errNoDescriptionPath = errors.New(
		"no description file path")
	errInvalidPrecision = errors.New(
		"invalid precision(must be between 1 and 15)")
	errUnsupportedImageFormat = errors.New(
		"output file must end in .pdf or .png")
	errEmptyDataset = errors.New(
		"data file contains no samples")
	errEmptyDataFile = errors.New(
		"FILE must not be empty")
)
