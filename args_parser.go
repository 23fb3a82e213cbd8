package main

import (
	"runtime"
	"strconv"

	"github.com/alecthomas/kingpin"
)

type argsParser interface {
	parse([]string) (config, error)
}

type kingpinParser struct {
	app *kingpin.Application

	descriptionPath string
	outputPath      string
	png             bool
	selfTest        bool
	precision       int
	noProgress      bool
}

func newKingpinParser() argsParser {
	kparser := &kingpinParser{
		descriptionPath: defaultDescriptionPath,
		outputPath:      "",
		png:             false,
		selfTest:        false,
		precision:       defaultPrecision,
		noProgress:      false,
	}

	app := kingpin.New("", "Plots the capacitor and output voltage traces"+
		" produced by a relaxation oscillator simulation").
		Version("relaxation version " + version + " " + runtime.GOOS + "/" +
			runtime.GOARCH)
	app.Flag("description", "Path to the simulation description file").
		Short('f').
		PlaceHolder(defaultDescriptionPath).
		StringVar(&kparser.descriptionPath)
	app.Flag("output", "Chart file path(the extension selects the format)").
		Short('o').
		PlaceHolder(defaultPDFOutput).
		StringVar(&kparser.outputPath)
	app.Flag("png", "Write a PNG image instead of a PDF").
		BoolVar(&kparser.png)
	app.Flag("precision",
		"Significant digits in formatted component values").
		PlaceHolder(strconv.Itoa(defaultPrecision)).
		IntVar(&kparser.precision)
	app.Flag("no-progress",
		"Don't show a progress bar while loading the data file").
		BoolVar(&kparser.noProgress)
	app.Flag("test", "Run the unit formatter self-test and exit").
		BoolVar(&kparser.selfTest)

	kparser.app = app
	return argsParser(kparser)
}

func (k *kingpinParser) parse(args []string) (config, error) {
	k.app.Name = args[0]
	_, err := k.app.Parse(args[1:])
	if err != nil {
		return emptyConf, err
	}
	return config{
		descriptionPath: k.descriptionPath,
		outputPath:      k.outputPath,
		png:             k.png,
		runSelfTest:     k.selfTest,
		precision:       int32(k.precision),
		noProgress:      k.noProgress,
	}, nil
}
