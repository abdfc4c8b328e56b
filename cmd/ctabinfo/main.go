// Command ctabinfo inspects the bundled color tables and palettes.
//
// Usage:
//
//	ctabinfo [flags]
//
// Examples:
//
//	ctabinfo -list
//	ctabinfo -dump viridis > viridis.csv
//	ctabinfo -legend muted -o muted.png
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/cwbudde/algo-astro/viz/colortable"
	"github.com/cwbudde/algo-astro/viz/tol"
	"github.com/cwbudde/algo-astro/viz/velfield"
)

func main() {
	list := flag.Bool("list", false, "list bundled color tables and palettes")
	dump := flag.String("dump", "", "dump the named color table as CSV to stdout")
	legend := flag.String("legend", "", "write a legend PNG for the named Tol palette")
	out := flag.String("o", "legend.png", "output file for -legend")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ctabinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Inspects the bundled color tables and palettes.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ctabinfo -list\n")
		fmt.Fprintf(os.Stderr, "  ctabinfo -dump viridis > viridis.csv\n")
		fmt.Fprintf(os.Stderr, "  ctabinfo -legend muted -o muted.png\n")
	}
	flag.Parse()

	switch {
	case *list:
		printList()
	case *dump != "":
		if err := dumpTable(*dump); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case *legend != "":
		if err := writeLegend(*legend, *out); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func printList() {
	fmt.Println("color tables:")
	for i, name := range colortable.Names() {
		fmt.Printf("  %d  %s\n", i, name)
	}
	fmt.Println("  -  velocity (diverging blue-white-red)")

	fmt.Println("palettes:")
	for _, name := range tol.Names() {
		p, err := tol.Palette(name)
		if err != nil {
			continue
		}
		fmt.Printf("  %s (%d colors)\n", name, len(p))
	}
}

func dumpTable(name string) error {
	var (
		tbl colortable.Table
		err error
	)

	if name == "velocity" {
		tbl = velfield.Table()
	} else {
		tbl, err = colortable.Load(name)
		if err != nil {
			return err
		}
	}

	for _, e := range tbl {
		fmt.Printf("%d,%d,%d\n", e.R, e.G, e.B)
	}

	return nil
}

func writeLegend(name, path string) error {
	img, err := tol.Legend(name)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", path)
	return nil
}
