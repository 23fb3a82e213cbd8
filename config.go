package main

import "path/filepath"

type config struct {
	descriptionPath string
	outputPath      string
	png             bool
	runSelfTest     bool
	precision       int32
	noProgress      bool
}

func (c *config) checkArgs() error {
	if c.descriptionPath == "" {
		return errNoDescriptionPath
	}
	if c.precision < 1 || c.precision > maxPrecision {
		return errInvalidPrecision
	}
	if c.outputPath != "" {
		ext := filepath.Ext(c.outputPath)
		if ext != ".pdf" && ext != ".png" {
			return errUnsupportedImageFormat
		}
	}
	return nil
}

// imagePath resolves the chart file name. An explicit --output wins,
// otherwise --png picks between the two defaults.
func (c *config) imagePath() string {
	if c.outputPath != "" {
		return c.outputPath
	}
	if c.png {
		return defaultPNGOutput
	}
	return defaultPDFOutput
}
