package rfont

import "github.com/rivo/uniseg"

// Cluster is one grapheme cluster of a text run: the runes that make it
// up (e.g. a base letter plus combining marks, or a single multi-rune
// emoji) treated as a single placement unit by TextFill/WithPathOrientation.
type Cluster struct {
	Runes []rune
	// Width is the sum of the advances of Runes, as reported by Glyphs.
	Width float64
}

// Clusters splits text into grapheme clusters using Unicode text
// segmentation, so combining marks and multi-rune emoji are placed (and
// advanced along a path) as a single unit rather than split mid-cluster.
func Clusters(text string, g Glyphs) []Cluster {
	var out []Cluster
	state := -1
	remaining := text
	for len(remaining) > 0 {
		var cluster string
		cluster, remaining, _, state = uniseg.FirstGraphemeClusterInString(remaining, state)
		if cluster == "" {
			break
		}
		c := Cluster{Runes: []rune(cluster)}
		for _, r := range c.Runes {
			c.Width += g.Advance(r)
		}
		out = append(out, c)
	}
	return out
}
