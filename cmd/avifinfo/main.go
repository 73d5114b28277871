// Command avifinfo prints an AVIF file's size, bit depth, alpha, range,
// and matrix-coefficients metadata.
//
// Usage:
//
//	avifinfo [options] <input.avif>
package main

import (
	"fmt"
	"os"

	"github.com/goavif/avifcore"
	"github.com/goavif/avifcore/internal/isobmff"
	"github.com/spf13/pflag"
)

func main() {
	logFile := pflag.String("log-file", "", "rotate debug logs to this path instead of discarding them")
	logMaxSizeMB := pflag.Int("log-max-size", 10, "log file rotation size in megabytes")
	pflag.Parse()

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: avifinfo [options] <input.avif>")
		pflag.PrintDefaults()
		os.Exit(1)
	}

	if *logFile != "" {
		avif.SetLogFile(*logFile, *logMaxSizeMB, 3, 28)
	}

	if err := run(pflag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "avifinfo: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	file, err := isobmff.ParseFile(data)
	if err != nil {
		return fmt.Errorf("parsing container: %w", err)
	}

	primary, ok := file.Items[file.PrimaryItem]
	if !ok {
		return fmt.Errorf("no primary item %d in file", file.PrimaryItem)
	}

	var alphaItem *isobmff.ItemInfo
	for _, it := range file.Items {
		for _, target := range it.AuxForItems {
			if target == primary.ID && it.AuxType != "" && isAlphaURN(it.AuxType) {
				alphaItem = it
			}
		}
	}

	fmt.Printf("File:       %s\n", path)
	fmt.Printf("Brand:      %s\n", file.MajorBrand)

	width, height := 0, 0
	if primary.Ispe != nil {
		width, height = int(primary.Ispe.Width), int(primary.Ispe.Height)
	}
	fmt.Printf("Dimensions: %d x %d\n", width, height)

	bitDepth := 8
	if primary.AV1Config != nil {
		bitDepth = primary.AV1Config.BitDepth()
	}
	fmt.Printf("Bit depth:  %d\n", bitDepth)
	fmt.Printf("Alpha:      %v\n", alphaItem != nil)

	if primary.Colr != nil && primary.Colr.HasNclx {
		fmt.Printf("Primaries:  %d\n", primary.Colr.Primaries)
		fmt.Printf("Transfer:   %d\n", primary.Colr.Transfer)
		fmt.Printf("Matrix:     %d\n", primary.Colr.MatrixCoefficients)
		fmt.Printf("Range:      %s\n", rangeString(primary.Colr.FullRange))
	} else {
		fmt.Println("Color info: absent (decoder falls back to Limited range, BT.601 matrix)")
	}

	if fi, err := os.Stat(path); err == nil {
		fmt.Printf("File size:  %d bytes\n", fi.Size())
	}
	return nil
}

func rangeString(full bool) string {
	if full {
		return "Full"
	}
	return "Limited"
}

func isAlphaURN(urn string) bool {
	const suffix = ":alpha"
	return len(urn) >= len(suffix) && urn[len(urn)-len(suffix):] == suffix
}
