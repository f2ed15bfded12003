package imaging

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor reads "#RGB", "#RRGGBB", "#RRGGBBAA", "none" or "transparent".
func ParseColor(name string) (color.NRGBA, error) {
	name = strings.TrimSpace(name)
	switch strings.ToLower(name) {
	case "none", "transparent":
		return color.NRGBA{}, nil
	}

	alpha := uint8(255)
	if len(name) == 9 && name[0] == '#' {
		a, err := strconv.ParseUint(name[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in color %q: %w", name, err)
		}
		alpha = uint8(a)
		name = name[:7]
	}

	c, err := colorful.Hex(name)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", name, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// HexColor formats c as "#RRGGBB", ignoring alpha.
func HexColor(c color.Color) string {
	cf, _ := colorful.MakeColor(opaque(c))
	return strings.ToUpper(cf.Hex())
}

func opaque(c color.Color) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 255
	return n
}
