// Command lagdump binarizes a page scan and prints its horizontal sections.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"omr-workbench/internal/lag"
	"omr-workbench/internal/scan"
)

func main() {
	imagePath := flag.String("image", "", "Path to page scan (TIFF, BMP, PNG, or JPEG)")
	minWeight := flag.Int("min-weight", 0, "Only list sections with at least this many pixels")
	limit := flag.Int("limit", 50, "Maximum number of sections listed (0 = all)")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: lagdump -image <path> [-min-weight 0] [-limit 50]")
		os.Exit(1)
	}

	img, err := scan.Load(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	bounds := img.Bounds()
	fmt.Printf("Loaded image: %dx%d pixels\n", bounds.Dx(), bounds.Dy())

	mask, err := scan.Binarize(img)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Binarization failed: %v\n", err)
		os.Exit(1)
	}

	index := lag.BuildHorizontal(mask)
	sections := index.Sections()
	sort.Slice(sections, func(i, j int) bool {
		return sections[i].Weight() > sections[j].Weight()
	})

	var ink int
	for _, s := range sections {
		ink += s.Weight()
	}
	fmt.Printf("Sections: %d, ink pixels: %d\n\n", len(sections), ink)

	fmt.Printf("%-20s %8s %10s %10s\n", "Section", "Weight", "Thickness", "W/H")
	listed := 0
	for _, s := range sections {
		if s.Weight() < *minWeight {
			break
		}
		if *limit > 0 && listed == *limit {
			break
		}
		b := s.Bounds()
		fmt.Printf("%-20s %8d %10d %10.2f\n", s, s.Weight(), s.Thickness(), float64(b.Width)/float64(b.Height))
		listed++
	}
}
