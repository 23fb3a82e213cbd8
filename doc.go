/*
Command line utility relaxation renders the output of a relaxation
oscillator simulation as a labeled two-curve chart.

The simulator leaves behind a small description file naming the
time-series data file and the component values of the run:

	FILE = oscillator.csv
	RESISTANCE = 470000
	CAPACITANCE = 0.00000022

The data file is a comma-delimited table of time, capacitor voltage
and output voltage. relaxation plots both voltages against time, with
the resistance and capacitance formatted with SI prefixes in the
title, and saves the chart as plot.pdf (or plot.png with --png).

Usage:

	relaxation [<flags>]

Flags:

	    --help                        Show context-sensitive help (also try
	                                  --help-long and --help-man).
	    --version                     Show application version.
	-f, --description=description.dat Path to the simulation description file
	-o, --output=plot.pdf             Chart file path(the extension selects
	                                  the format)
	    --png                         Write a PNG image instead of a PDF
	    --precision=5                 Significant digits in formatted
	                                  component values
	    --no-progress                 Don't show a progress bar while loading
	                                  the data file
	    --test                        Run the unit formatter self-test and
	                                  exit

relaxation exits with status 0 on success, including a passing --test
run, and 1 on any failure, with a diagnostic on the standard error
stream.
*/
package main
