package palette

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var hexColor = regexp.MustCompile(`^#[0-9A-F]{6}$`)

func TestColorForIsDeterministic(t *testing.T) {
	assert.Equal(t, ColorFor("prod"), ColorFor("prod"))
	assert.NotEqual(t, ColorFor("prod"), ColorFor("prod2"))
}

func TestColorForFormat(t *testing.T) {
	for _, name := range []string{"", "prod", "dev", "staging-eu", "日本", "a very long environment name"} {
		assert.Regexp(t, hexColor, ColorFor(name), name)
	}
}

func TestHueRange(t *testing.T) {
	for _, name := range []string{"", "prod", "dev", "qa", "uat"} {
		hue := Hue(name)
		assert.GreaterOrEqual(t, hue, 0.0)
		assert.Less(t, hue, 1.0)
	}
}

func TestHueForEmptyName(t *testing.T) {
	// md5("") starts with d41d8c: 0xd41d8c % 360 = 156.
	want := 156.0 / 360.0 * hueSpread
	want -= float64(int(want))
	assert.InDelta(t, want, Hue(""), 1e-9)
}

func TestRGBPrimaryHues(t *testing.T) {
	r, g, b := rgb(0)
	assert.Equal(t, [3]uint8{229, 45, 45}, [3]uint8{r, g, b})
}
