// Where: cli/internal/palette/palette.go
// What: Deterministic display colors for environment names.
// Why: Give each environment a stable color across both tables without storing one.
package palette

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	saturation = 0.8
	value      = 0.9
	hueSpread  = 12
)

// ColorFor returns the #RRGGBB color assigned to name.
func ColorFor(name string) string {
	r, g, b := rgb(Hue(name))
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// Hue maps name to a hue in [0, 1).
// The first six hex digits of the MD5 digest pick a degree, and multiplying
// by hueSpread keeps neighbouring degrees from clustering near red.
func Hue(name string) float64 {
	sum := md5.Sum([]byte(name))
	prefix := hex.EncodeToString(sum[:])[:6]
	n, _ := strconv.ParseUint(prefix, 16, 32)
	hue := float64(n%360) / 360.0
	_, frac := math.Modf(hue * hueSpread)
	return frac
}

// Style returns a foreground style in the color assigned to name.
func Style(name string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorFor(name)))
}

func rgb(hue float64) (uint8, uint8, uint8) {
	c := colorful.Hsv(hue*360, saturation, value)
	return channel(c.R), channel(c.G), channel(c.B)
}

// channel truncates rather than rounds so the palette matches integer scaling.
func channel(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Floor(v*255))))
}
