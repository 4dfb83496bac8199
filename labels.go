package quadgraph

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLabelSize is the label font size in points.
const DefaultLabelSize = 12.0

// minLabelSpacing is the smallest screen distance between two axis labels.
const minLabelSpacing = 64.0

var labelPrinter = message.NewPrinter(language.English)

// LoadLabelFace returns the Go Regular font at size points, suitable for
// gg.Context.SetFont before rendering labels.
func LoadLabelFace(size float64) (text.Face, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("quadgraph: load label font: %w", err)
	}
	return src.Face(size), nil
}

// TickStep rounds raw up to the next 1, 2 or 5 times a power of ten.
// Invalid input returns 1.
func TickStep(raw float64) float64 {
	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 1
	}
	pow := math.Pow(10, math.Floor(math.Log10(raw)))
	if pow == 0 || math.IsInf(pow, 0) {
		return 1
	}
	switch frac := raw / pow; {
	case frac <= 1:
		return pow
	case frac <= 2:
		return 2 * pow
	case frac <= 5:
		return 5 * pow
	default:
		return 10 * pow
	}
}

// FormatTick formats an axis value compactly, with digit grouping for
// large magnitudes. Non-finite values format as "".
func FormatTick(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	av := math.Abs(v)
	switch {
	case av < 1e-9:
		return "0"
	case av >= 1e6 || av < 0.01:
		return labelPrinter.Sprintf("%.2g", v)
	case av >= 10:
		return labelPrinter.Sprintf("%.0f", v)
	case av >= 1:
		return trimZeros(labelPrinter.Sprintf("%.2f", v))
	default:
		return trimZeros(labelPrinter.Sprintf("%.3f", v))
	}
}

// trimZeros drops trailing fractional zeros: "2.50" becomes "2.5" and
// "3.00" becomes "3".
func trimZeros(s string) string {
	dot := strings.LastIndexByte(s, '.')
	if dot < 0 {
		return s
	}
	end := len(s)
	for end > dot+1 && s[end-1] == '0' {
		end--
	}
	if end == dot+1 {
		end = dot
	}
	return s[:end]
}

// FormatPoint formats a world point as "(x, y)" for the cursor readout.
func FormatPoint(x, y float64) string {
	return labelPrinter.Sprintf("(%.3f, %.3f)", x, y)
}
