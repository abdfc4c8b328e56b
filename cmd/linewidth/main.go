// Command linewidth prints thermal line widths for common ions.
//
// Usage:
//
//	linewidth [flags] [ion-name ...]
//
// Without arguments it prints widths for all built-in ions.
//
// Examples:
//
//	linewidth hydrogen
//	linewidth -temp 2e6 iron oxygen
//	linewidth -logtemp 6.2 -wavelength 195.119 iron
//	linewidth -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-astro/spectral/thermal"
)

type ionEntry struct {
	name    string
	symbol  string
	massAMU float64
}

var registry = []ionEntry{
	{"hydrogen", "H", 1.008},
	{"helium", "He", 4.0026},
	{"carbon", "C", 12.011},
	{"nitrogen", "N", 14.007},
	{"oxygen", "O", 15.999},
	{"neon", "Ne", 20.180},
	{"magnesium", "Mg", 24.305},
	{"silicon", "Si", 28.085},
	{"sulfur", "S", 32.06},
	{"calcium", "Ca", 40.078},
	{"iron", "Fe", 55.845},
	{"nickel", "Ni", 58.693},
}

func main() {
	temp := flag.Float64("temp", 1e6, "temperature in Kelvin")
	logTemp := flag.Float64("logtemp", math.NaN(), "log10 temperature (overrides -temp)")
	wavelength := flag.Float64("wavelength", 0, "rest wavelength in Angstrom; adds a wavelength width column")
	list := flag.Bool("list", false, "list available ion names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: linewidth [flags] [ion-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints thermal line widths for common ions.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints widths for all built-in ions.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  linewidth hydrogen iron\n")
		fmt.Fprintf(os.Stderr, "  linewidth -logtemp 6.2 -wavelength 195.119 iron\n")
		fmt.Fprintf(os.Stderr, "  linewidth -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	tempK := *temp
	if !math.IsNaN(*logTemp) {
		tempK = math.Pow(10, *logTemp)
	}

	entries := resolveEntries(flag.Args())
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching ions\n")
		os.Exit(1)
	}

	printWidths(entries, tempK, *wavelength)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []ionEntry {
	if len(names) == 0 {
		return registry
	}

	byName := make(map[string]ionEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
		byName[strings.ToLower(e.symbol)] = e
	}

	var result []ionEntry
	for _, name := range names {
		e, ok := byName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown ion %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printWidths(entries []ionEntry, tempK, wavelength float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	header := "Ion\tMass [amu]\tT [K]\tFWHM [km/s]\tMean speed [km/s]"
	if wavelength > 0 {
		header += "\tFWHM [A]"
	}
	fmt.Fprintln(tw, header)

	for _, e := range entries {
		fwhm, err := thermal.FWHMVelocity(e.massAMU, tempK)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.name, err)
			continue
		}

		mean, err := thermal.MeanSpeed(e.massAMU, tempK)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.name, err)
			continue
		}

		row := fmt.Sprintf("%s (%s)\t%.3f\t%.3g\t%.2f\t%.2f", e.name, e.symbol, e.massAMU, tempK, fwhm, mean)
		if wavelength > 0 {
			row += fmt.Sprintf("\t%.4f", thermal.VelocityToWidth(fwhm, wavelength))
		}
		fmt.Fprintln(tw, row)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
