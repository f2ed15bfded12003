package geometry

import (
	"strconv"
	"strings"
)

// Format writes rect and flags back as a canonical geometry string:
//
//	[W][xH][%][{+-}X{+-}Y][!][<][>][@]
//
// Only the parts flagged as present are written. Offsets carry a '-' when
// the matching Negative flag is set or the value is below zero, so "-0"
// survives a round trip. The grammar has no way to give a y offset without
// an x offset, so YValue alone is written with an x offset of +0.
func Format(rect Rectangle, flags Flags) string {
	var b strings.Builder

	if flags&WidthValue != 0 {
		b.WriteString(strconv.Itoa(max(rect.Width, 0)))
	}
	if flags&HeightValue != 0 {
		b.WriteByte('x')
		b.WriteString(strconv.Itoa(max(rect.Height, 0)))
	}
	if flags&PercentValue != 0 {
		b.WriteByte('%')
	}

	if flags&(XValue|YValue) != 0 {
		if flags&XValue != 0 {
			writeOffset(&b, rect.X, flags&XNegative != 0)
		} else {
			writeOffset(&b, 0, false)
		}
		if flags&YValue != 0 {
			writeOffset(&b, rect.Y, flags&YNegative != 0)
		}
	}

	if flags&AspectValue != 0 {
		b.WriteByte('!')
	}
	if flags&(LessValue|MinimumValue) != 0 {
		b.WriteByte('<')
	}
	if flags&(GreaterValue|MinimumValue) != 0 {
		b.WriteByte('>')
	}
	if flags&AreaValue != 0 {
		b.WriteByte('@')
	}

	return b.String()
}

func writeOffset(b *strings.Builder, v int, negative bool) {
	if v < 0 {
		negative = true
		v = -v
	}
	if negative {
		b.WriteByte('-')
	} else {
		b.WriteByte('+')
	}
	b.WriteString(strconv.Itoa(v))
}
