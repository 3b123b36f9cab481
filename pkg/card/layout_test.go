package card

import (
	"math"
	"testing"

	"github.com/matzehuels/toplangs/pkg/langstats"
)

func sampleRanking(n int) []langstats.Entry {
	labels := []string{"Go", "Rust", "Python", "HTML", "CSS", "Shell", "TypeScript", "C", "Lua", "Zig"}
	entries := make([]langstats.Entry, 0, n)
	share := math.Round(1000.0/float64(n)) / 10
	for i := 0; i < n; i++ {
		entries = append(entries, langstats.Entry{Label: labels[i%len(labels)], Percent: share})
	}
	return entries
}

// TestLayoutHeightFormula checks the closed-form canvas height for a range
// of entry counts and legend column counts.
func TestLayoutHeightFormula(t *testing.T) {
	tests := []struct {
		name    string
		entries int
		columns int
	}{
		{"empty", 0, 2},
		{"single entry", 1, 2},
		{"one full row", 2, 2},
		{"partial second row", 3, 2},
		{"three columns", 7, 3},
		{"single column", 4, 1},
		{"more columns than entries", 2, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{LegendColumns: tt.columns}
			s := Layout(sampleRanking(tt.entries), opts)

			rows := (tt.entries + tt.columns - 1) / tt.columns
			want := titleHeight + 2*DefaultPadding + DefaultBarHeight + rows*DefaultLegendItemHeight + DefaultPadding
			if s.Height != want {
				t.Errorf("Height = %d, want %d (rows=%d)", s.Height, want, rows)
			}
		})
	}
}

func TestLayoutSegmentsContiguous(t *testing.T) {
	ranking := []langstats.Entry{
		{Label: "Go", Percent: 55.5},
		{Label: "Rust", Percent: 30.2},
		{Label: "HTML", Percent: 14.3},
	}
	s := Layout(ranking, Options{})

	if len(s.Segments) != 3 {
		t.Fatalf("len(Segments) = %d, want 3", len(s.Segments))
	}
	if s.Segments[0].X != float64(DefaultPadding) {
		t.Errorf("Segments[0].X = %v, want %d", s.Segments[0].X, DefaultPadding)
	}
	for i := 1; i < len(s.Segments); i++ {
		prevRight := s.Segments[i-1].X + s.Segments[i-1].W
		if math.Abs(s.Segments[i].X-prevRight) > 1e-9 {
			t.Errorf("Segments[%d].X = %v, want previous right edge %v", i, s.Segments[i].X, prevRight)
		}
	}

	barWidth := float64(DefaultWidth - 2*DefaultPadding)
	for i, seg := range s.Segments {
		want := ranking[i].Percent / 100 * barWidth
		if math.Abs(seg.W-want) > 1e-9 {
			t.Errorf("Segments[%d].W = %v, want %v", i, seg.W, want)
		}
	}
}

func TestLayoutLegendGrid(t *testing.T) {
	s := Layout(sampleRanking(5), Options{})

	if len(s.Legend) != 5 {
		t.Fatalf("len(Legend) = %d, want 5", len(s.Legend))
	}

	colWidth := float64(DefaultWidth-2*DefaultPadding) / float64(DefaultLegendColumns)
	legendTop := titleHeight + DefaultPadding + DefaultBarHeight + DefaultPadding

	for i, cell := range s.Legend {
		row := i / DefaultLegendColumns
		col := i % DefaultLegendColumns
		wantX := float64(DefaultPadding) + float64(col)*colWidth
		wantY := float64(legendTop+row*DefaultLegendItemHeight) + float64(DefaultLegendItemHeight-swatchSize)/2
		if math.Abs(cell.SwatchX-wantX) > 1e-9 {
			t.Errorf("Legend[%d].SwatchX = %v, want %v", i, cell.SwatchX, wantX)
		}
		if math.Abs(cell.SwatchY-wantY) > 1e-9 {
			t.Errorf("Legend[%d].SwatchY = %v, want %v", i, cell.SwatchY, wantY)
		}
	}
}

func TestLayoutPaletteCycles(t *testing.T) {
	n := len(DefaultPalette) + 2
	s := Layout(sampleRanking(n), Options{LegendColumns: 1})

	if got := s.Segments[len(DefaultPalette)].Color; got != DefaultPalette[0] {
		t.Errorf("segment past palette end has color %s, want cycle back to %s", got, DefaultPalette[0])
	}
	for i, seg := range s.Segments {
		if seg.Color != s.Legend[i].Color {
			t.Errorf("segment %d color %s != legend color %s", i, seg.Color, s.Legend[i].Color)
		}
	}
}

func TestLayoutEmptyRanking(t *testing.T) {
	s := Layout(nil, Options{})

	if len(s.Segments) != 0 {
		t.Errorf("len(Segments) = %d, want 0", len(s.Segments))
	}
	if len(s.Legend) != 0 {
		t.Errorf("len(Legend) = %d, want 0", len(s.Legend))
	}
	if s.Title.Text != DefaultTitle {
		t.Errorf("Title.Text = %q, want %q", s.Title.Text, DefaultTitle)
	}
	want := titleHeight + 2*DefaultPadding + DefaultBarHeight + DefaultPadding
	if s.Height != want {
		t.Errorf("Height = %d, want %d", s.Height, want)
	}
}

func TestOptionsApplyDefaults(t *testing.T) {
	var opts Options
	opts.ApplyDefaults()

	if opts.Width != DefaultWidth || opts.Title != DefaultTitle || opts.LegendColumns != DefaultLegendColumns {
		t.Errorf("ApplyDefaults() = %+v, defaults not applied", opts)
	}

	custom := Options{Width: 800, Title: "Langs"}
	custom.ApplyDefaults()
	if custom.Width != 800 || custom.Title != "Langs" {
		t.Errorf("ApplyDefaults() overwrote explicit values: %+v", custom)
	}
}
