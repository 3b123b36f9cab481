package card

import (
	"github.com/matzehuels/toplangs/pkg/langstats"
)

// Scene is the structured description of a card, built by [Layout] and
// consumed by [RenderSVG]. All coordinates are final; serialization adds no
// arithmetic of its own.
type Scene struct {
	Width  int
	Height int

	Background string
	Title      TitleLabel
	Segments   []Segment
	Legend     []LegendCell
}

// TitleLabel positions the centered card title.
type TitleLabel struct {
	X, Y int
	Text string
}

// Segment is one colored slice of the proportional bar. Segments are stored
// left to right; each X equals the previous segment's right edge.
type Segment struct {
	X, W  float64
	Y, H  int
	Color string
}

// LegendCell is one legend row-cell: a color swatch, the language label and
// its percentage. Inner coordinates are precomputed so the serializer stays
// arithmetic-free.
type LegendCell struct {
	SwatchX, SwatchY float64
	SwatchSize       int
	TextX, TextY     float64
	Color            string
	Label            string
	Percent          float64
}

// swatchSize is the side length of the legend color swatch.
const swatchSize = 10

// Layout computes the card scene for a ranking. The canvas height is a
// closed-form function of the inputs:
//
//	titleHeight + 2*padding + barHeight + legendRows*legendItemHeight + padding
//
// where legendRows = ceil(len(ranking) / legendColumns). An empty ranking
// produces a card with the title, an empty bar region and no legend rows.
func Layout(ranking []langstats.Entry, opts Options) Scene {
	opts.ApplyDefaults()

	rows := (len(ranking) + opts.LegendColumns - 1) / opts.LegendColumns
	height := titleHeight + 2*opts.Padding + opts.BarHeight + rows*opts.LegendItemHeight + opts.Padding

	s := Scene{
		Width:      opts.Width,
		Height:     height,
		Background: backgroundColor,
		Title: TitleLabel{
			X:    opts.Width / 2,
			Y:    titleBaseline,
			Text: opts.Title,
		},
	}

	barWidth := float64(opts.Width - 2*opts.Padding)
	barY := titleHeight + opts.Padding

	x := float64(opts.Padding)
	for i, entry := range ranking {
		w := entry.Percent / 100 * barWidth
		s.Segments = append(s.Segments, Segment{
			X:     x,
			W:     w,
			Y:     barY,
			H:     opts.BarHeight,
			Color: opts.Palette[i%len(opts.Palette)],
		})
		x += w
	}

	colWidth := barWidth / float64(opts.LegendColumns)
	legendTop := barY + opts.BarHeight + opts.Padding

	for i, entry := range ranking {
		row := i / opts.LegendColumns
		col := i % opts.LegendColumns
		cellX := float64(opts.Padding) + float64(col)*colWidth
		cellY := float64(legendTop + row*opts.LegendItemHeight)

		s.Legend = append(s.Legend, LegendCell{
			SwatchX:    cellX,
			SwatchY:    cellY + float64(opts.LegendItemHeight-swatchSize)/2,
			SwatchSize: swatchSize,
			TextX:      cellX + swatchSize + 6,
			TextY:      cellY + float64(opts.LegendItemHeight)/2 + 4,
			Color:      opts.Palette[i%len(opts.Palette)],
			Label:      entry.Label,
			Percent:    entry.Percent,
		})
	}

	return s
}
