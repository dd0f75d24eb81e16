// Command export renders every registered test case with the package's own
// rasterizer over a transparent background and writes each image's alpha
// (coverage) channel as a grayscale testdata/reference/<category>_<name>.png.
// Run from the raster module root directory.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/inkraster/raster"
	"github.com/inkraster/raster/testcases"
	"github.com/inkraster/raster/texture"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := renderCase(tc, name); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func renderCase(tc testcases.TestCase, name string) error {
	img := raster.Render(tc.Width, tc.Height, texture.Transparent, tc.Scene())

	out := image.NewGray(image.Rect(0, 0, tc.Width, tc.Height))
	for y := 0; y < tc.Height; y++ {
		for x := 0; x < tc.Width; x++ {
			p := img.At(x, y)
			out.SetGray(x, y, color.Gray{Y: p.A})
		}
	}

	f, err := os.Create(filepath.Join(refDir, name+".png"))
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, out)
}
