package main

import "testing"

func TestShouldAcceptValidConfig(t *testing.T) {
	c := config{
		descriptionPath: defaultDescriptionPath,
		precision:       defaultPrecision,
	}
	if err := c.checkArgs(); err != nil {
		t.Errorf("Expected no error, but got %v", err)
	}
	c.outputPath = "chart.png"
	if err := c.checkArgs(); err != nil {
		t.Errorf("Expected no error, but got %v", err)
	}
}

func TestShouldRejectInvalidConfig(t *testing.T) {
	expectations := []struct {
		in  config
		out error
	}{
		{
			config{descriptionPath: "", precision: defaultPrecision},
			errNoDescriptionPath,
		},
		{
			config{descriptionPath: defaultDescriptionPath, precision: 0},
			errInvalidPrecision,
		},
		{
			config{descriptionPath: defaultDescriptionPath, precision: 16},
			errInvalidPrecision,
		},
		{
			config{
				descriptionPath: defaultDescriptionPath,
				precision:       defaultPrecision,
				outputPath:      "plot.gif",
			},
			errUnsupportedImageFormat,
		},
	}
	for _, e := range expectations {
		if err := e.in.checkArgs(); err != e.out {
			t.Errorf("Expected %v, but got %v", e.out, err)
		}
	}
}

func TestImagePathSelection(t *testing.T) {
	expectations := []struct {
		in  config
		out string
	}{
		{config{}, defaultPDFOutput},
		{config{png: true}, defaultPNGOutput},
		{config{png: true, outputPath: "runs/chart.pdf"}, "runs/chart.pdf"},
		{config{outputPath: "chart.png"}, "chart.png"},
	}
	for _, e := range expectations {
		if actual := e.in.imagePath(); actual != e.out {
			t.Errorf("Expected %q, but got %q", e.out, actual)
		}
	}
}
