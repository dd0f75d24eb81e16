package testcases

import (
	_ "embed"
	"fmt"
	"strconv"

	"github.com/inkraster/raster/texture"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/gradients.yaml
var gradientFixturesYAML []byte

type gradientStopFixture struct {
	Offset float64 `yaml:"offset"`
	Color  string  `yaml:"color"`
}

type gradientFixture struct {
	Name    string                `yaml:"name"`
	Sampler string                `yaml:"sampler"`
	Stops   []gradientStopFixture `yaml:"stops"`
}

var gradientFixtures = loadGradientFixtures()

func loadGradientFixtures() map[string]gradientFixture {
	var list []gradientFixture
	if err := yaml.Unmarshal(gradientFixturesYAML, &list); err != nil {
		panic(fmt.Sprintf("testcases: parsing gradient fixtures: %v", err))
	}
	m := make(map[string]gradientFixture, len(list))
	for _, f := range list {
		m[f.Name] = f
	}
	return m
}

// gradientStops returns the color-stop table for a named fixture, decoded
// from testdata/gradients.yaml.
func gradientStops(name string) []texture.Stop {
	f, ok := gradientFixtures[name]
	if !ok {
		panic(fmt.Sprintf("testcases: unknown gradient fixture %q", name))
	}
	stops := make([]texture.Stop, len(f.Stops))
	for i, s := range f.Stops {
		stops[i] = texture.Stop{Offset: s.Offset, Color: parseHexColor(s.Color)}
	}
	return stops
}

// gradientSampler returns the spread method a named fixture was authored
// with.
func gradientSampler(name string) texture.Sampler {
	switch gradientFixtures[name].Sampler {
	case "repeat":
		return texture.SamplerRepeat
	case "reflect":
		return texture.SamplerReflect
	default:
		return texture.SamplerPad
	}
}

// parseHexColor decodes a "#RRGGBBAA" straight-alpha string into a
// premultiplied Color.
func parseHexColor(s string) texture.Color {
	if len(s) != 9 || s[0] != '#' {
		panic(fmt.Sprintf("testcases: malformed color %q, want #RRGGBBAA", s))
	}
	r := hexByte(s[1:3])
	g := hexByte(s[3:5])
	b := hexByte(s[5:7])
	a := hexByte(s[7:9])
	return texture.FromStraight(r, g, b, a)
}

func hexByte(s string) float64 {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		panic(fmt.Sprintf("testcases: malformed hex byte %q: %v", s, err))
	}
	return float64(v) / 255
}
