// Package card lays out and serializes the top-languages SVG card.
//
// Rendering is split into two deterministic passes: [Layout] computes a
// structured scene (background, title, bar segments, legend cells) at exact
// coordinates, and [RenderSVG] serializes that scene into SVG markup. The
// split keeps the layout arithmetic independently testable from the text
// serialization. Identical inputs always produce byte-identical output.
package card

// Default card geometry.
const (
	DefaultWidth            = 600
	DefaultBarHeight        = 12
	DefaultLegendItemHeight = 25
	DefaultPadding          = 10
	DefaultLegendColumns    = 2
	DefaultTitle            = "Top Languages"

	// titleHeight is the fixed vertical space reserved for the title row.
	titleHeight = 20
)

// DefaultPalette is the segment color cycle. Entries past its length reuse
// colors at index mod len, so a card with more languages than colors repeats
// the cycle predictably.
var DefaultPalette = []string{
	"#2f80ed", // blue
	"#27ae60", // green
	"#f2c94c", // yellow
	"#eb5757", // red
	"#9b51e0", // purple
	"#f2994a", // orange
	"#56ccf2", // light blue
	"#6fcf97", // light green
}

// Options control card geometry and text. Zero values fall back to the
// package defaults, so the zero Options is usable as-is.
type Options struct {
	Width            int
	BarHeight        int
	LegendItemHeight int
	Padding          int
	LegendColumns    int
	Title            string
	Palette          []string
}

// ApplyDefaults fills unset fields with the package defaults.
func (o *Options) ApplyDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.BarHeight == 0 {
		o.BarHeight = DefaultBarHeight
	}
	if o.LegendItemHeight == 0 {
		o.LegendItemHeight = DefaultLegendItemHeight
	}
	if o.Padding == 0 {
		o.Padding = DefaultPadding
	}
	if o.LegendColumns == 0 {
		o.LegendColumns = DefaultLegendColumns
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if len(o.Palette) == 0 {
		o.Palette = DefaultPalette
	}
}
