package orion

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// DefaultClearColor is the color every frame is cleared to unless configured otherwise.
var DefaultClearColor = ColorLinearRGBA(0.1, 0.9, 0.3, 1.0)

var ColorWhite = ColorLinearRGBA(1, 1, 1, 1)
var ColorBlack = ColorLinearRGBA(0, 0, 0, 1)

// Color is an a straight rgba color value with alpha in linear rgb color space.
// Components are kept in double precision, the precision of a webgpu clear value.
type Color struct {
	r, g, b, a float64
}

// ColorLinearRGBA creates a new Color value from the given color values.
func ColorLinearRGBA(r, g, b, a float64) Color {
	return Color{r: r, g: g, b: b, a: a}
}

// ColorSRGBA creates a Color value from non linear srgb encoded values. The color values
// will be transferred into linear rgb space.
func ColorSRGBA(r, g, b, a float64) Color {
	return ColorLinearRGBA(degamma(r), degamma(g), degamma(b), a)
}

// ParseColor parses a color given as "#rrggbb", "#rrggbbaa" or as an svg
// color name like "cornflowerblue". Both forms are interpreted as srgb.
func ParseColor(text string) (Color, error) {
	text = strings.TrimSpace(text)

	if hex, ok := strings.CutPrefix(text, "#"); ok {
		return parseHexColor(hex)
	}

	named, ok := colornames.Map[strings.ToLower(text)]
	if !ok {
		return Color{}, fmt.Errorf("unknown color name %q", text)
	}

	return ColorSRGBA(
		float64(named.R)/255,
		float64(named.G)/255,
		float64(named.B)/255,
		float64(named.A)/255,
	), nil
}

func parseHexColor(hex string) (Color, error) {
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid hex color %q", "#"+hex)
	}

	if len(hex) == 6 {
		hex += "ff"
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", "#"+hex, err)
	}

	component := func(shift uint) float64 {
		return float64((value>>shift)&0xff) / 255
	}

	return ColorSRGBA(component(24), component(16), component(8), component(0)), nil
}

// Components returns the color components in linear rgb space.
func (c Color) Components() (r, g, b, a float64) {
	return c.r, c.g, c.b, c.a
}

// ToArray returns the components as an array, ready to be handed to the gpu.
func (c Color) ToArray() [4]float64 {
	return [4]float64{c.r, c.g, c.b, c.a}
}

func (c Color) Alpha() float64 {
	return c.a
}

// WithAlpha returns a new color with the alpha component set to the given value.
func (c Color) WithAlpha(alpha float64) Color {
	c.a = alpha
	return c
}

func (c Color) String() string {
	r, g, b, a := c.Components()
	return fmt.Sprintf("rgba(%1.3f, %1.3f, %1.3f, %1.3f)", r, g, b, a)
}

func degamma(x float64) float64 {
	// https://www.w3.org/TR/css-color-4/#color-conversion-code
	sign := math.Copysign(1, x)
	abs := math.Abs(x)
	if abs <= 0.04045 {
		return x / 12.92
	}

	return sign * math.Pow((abs+0.055)/1.055, 2.4)
}
