package main

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const (
	chartWidth  = 10 * vg.Inch
	chartHeight = 7.5 * vg.Inch
)

// renderChart draws the capacitor and output voltage curves against
// time and writes the image to path. The format follows the file
// extension (.pdf or .png).
func renderChart(ds *dataset, descr description, prec int32, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Relaxation oscillator, R = %v, C = %v",
		formatEng(descr.resistance, "Ω", prec),
		formatEng(descr.capacitance, "F", prec))
	p.X.Label.Text = "seconds"
	p.Y.Label.Text = "volts"

	capLine, err := plotter.NewLine(curve(ds.seconds, ds.capacitor))
	if err != nil {
		return err
	}
	capLine.Color = plotutil.Color(0)
	outLine, err := plotter.NewLine(curve(ds.seconds, ds.output))
	if err != nil {
		return err
	}
	outLine.Color = plotutil.Color(1)

	p.Add(capLine, outLine)
	p.Legend.Add("capacitor", capLine)
	p.Legend.Add("output", outLine)
	p.Legend.Top = true

	return p.Save(chartWidth, chartHeight, path)
}

func curve(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}
