package chart

import "github.com/lucasb-eyer/go-colorful"

// Paired is the twelve-color qualitative "Paired" scheme.
var Paired = []string{
	"#a6cee3", "#1f78b4", "#b2df8a", "#33a02c",
	"#fb9a99", "#e31a1c", "#fdbf6f", "#ff7f00",
	"#cab2d6", "#6a3d9a", "#ffff99", "#b15928",
}

// Palette is an ordinal color scale: keys get colors in the order they
// are first seen, cycling through the scheme.
type Palette struct {
	colors []colorful.Color
	index  map[string]int
}

// NewPalette parses a list of hex colors. Unparseable entries become
// mid grey.
func NewPalette(hex []string) *Palette {
	p := &Palette{index: make(map[string]int)}
	for _, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			c = colorful.Color{R: 0.5, G: 0.5, B: 0.5}
		}
		p.colors = append(p.colors, c)
	}
	return p
}

// Color returns the color for key, assigning the next one if key is
// new.
func (p *Palette) Color(key string) colorful.Color {
	i, ok := p.index[key]
	if !ok {
		i = len(p.index)
		p.index[key] = i
	}
	return p.colors[i%len(p.colors)]
}

// Highlight lightens c toward white for hover emphasis.
func Highlight(c colorful.Color) colorful.Color {
	return c.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, 0.45).Clamped()
}
