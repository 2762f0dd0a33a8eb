package config

import (
	"fmt"
	"image/color"
	"strings"
)

// namedColors are raylib's stock colors, so names in the config match what
// the renderer would call them.
var namedColors = map[string]color.RGBA{
	"red":       {R: 230, G: 41, B: 55, A: 255},
	"blue":      {R: 0, G: 121, B: 241, A: 255},
	"yellow":    {R: 253, G: 249, B: 0, A: 255},
	"green":     {R: 0, G: 228, B: 48, A: 255},
	"black":     {R: 0, G: 0, B: 0, A: 255},
	"orange":    {R: 255, G: 161, B: 0, A: 255},
	"pink":      {R: 255, G: 109, B: 194, A: 255},
	"purple":    {R: 200, G: 122, B: 255, A: 255},
	"maroon":    {R: 190, G: 33, B: 55, A: 255},
	"darkgreen": {R: 0, G: 117, B: 44, A: 255},
	"skyblue":   {R: 102, G: 191, B: 255, A: 255},
	"gray":      {R: 130, G: 130, B: 130, A: 255},
}

// Colors resolves the palette names (raylib color names or #RGB / #RRGGBB).
func (c Config) Colors() ([]color.RGBA, error) {
	out := make([]color.RGBA, 0, len(c.Palette))
	for _, name := range c.Palette {
		col, ok := ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("config: unknown palette color %q", name)
		}
		out = append(out, col)
	}
	return out, nil
}

// ParseColor parses a color name or #RGB / #RRGGBB hex string (alpha 255).
func ParseColor(s string) (color.RGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, true
	}
	if len(s) < 4 || s[0] != '#' {
		return color.RGBA{}, false
	}
	hex := s[1:]
	for i := 0; i < len(hex); i++ {
		if _, ok := hexByte(hex[i]); !ok {
			return color.RGBA{}, false
		}
	}
	nib := func(i int) uint8 {
		v, _ := hexByte(hex[i])
		return v
	}
	switch len(hex) {
	case 3:
		return color.RGBA{R: nib(0) * 17, G: nib(1) * 17, B: nib(2) * 17, A: 255}, true
	case 6:
		return color.RGBA{R: nib(0)<<4 + nib(1), G: nib(2)<<4 + nib(3), B: nib(4)<<4 + nib(5), A: 255}, true
	}
	return color.RGBA{}, false
}

func hexByte(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
