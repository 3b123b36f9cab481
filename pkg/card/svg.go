package card

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/toplangs/pkg/langstats"
)

// Fixed card colors.
const (
	backgroundColor = "#fffefe"
	titleColor      = "#2f80ed"
	textColor       = "#434d58"
	fontFamily      = "'Segoe UI', Ubuntu, Sans-Serif"

	// titleBaseline is the text baseline of the title within its
	// titleHeight-tall row.
	titleBaseline = 15
)

// Render lays out a ranking and serializes it to SVG in one call.
func Render(ranking []langstats.Entry, opts Options) []byte {
	return RenderSVG(Layout(ranking, opts))
}

// RenderSVG serializes a scene into SVG markup. The output depends only on
// the scene contents: no timestamps, no randomness, no map iteration.
func RenderSVG(s Scene) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		s.Width, s.Height, s.Width, s.Height)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%d" height="%d" rx="4" fill="%s"/>`+"\n",
		s.Width, s.Height, s.Background)
	fmt.Fprintf(&buf, `  <text x="%d" y="%d" text-anchor="middle" font-family="%s" font-size="14" font-weight="600" fill="%s">%s</text>`+"\n",
		s.Title.X, s.Title.Y, fontFamily, titleColor, escapeText(s.Title.Text))

	for _, seg := range s.Segments {
		fmt.Fprintf(&buf, `  <rect x="%.2f" y="%d" width="%.2f" height="%d" fill="%s"/>`+"\n",
			seg.X, seg.Y, seg.W, seg.H, seg.Color)
	}

	for _, cell := range s.Legend {
		fmt.Fprintf(&buf, `  <rect x="%.2f" y="%.2f" width="%d" height="%d" rx="2" fill="%s"/>`+"\n",
			cell.SwatchX, cell.SwatchY, cell.SwatchSize, cell.SwatchSize, cell.Color)
		fmt.Fprintf(&buf, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="11" fill="%s">%s %.1f%%</text>`+"\n",
			cell.TextX, cell.TextY, fontFamily, textColor, escapeText(cell.Label), cell.Percent)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// escapeText escapes markup-significant characters in label text. Language
// names like "C#" or "F*" pass through unchanged.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}
