package geometry

import "strings"

// Flags is a bitmask describing which parts of a geometry were present and
// which meta characters were seen.
type Flags uint32

// Flag bits. The numbering matches the toolkit the syntax comes from so that
// masks can be exchanged with code written against it.
const (
	NoValue      Flags = 0x00000
	XValue       Flags = 0x00001
	YValue       Flags = 0x00002
	WidthValue   Flags = 0x00004
	HeightValue  Flags = 0x00008
	XNegative    Flags = 0x00010
	YNegative    Flags = 0x00020
	PercentValue Flags = 0x01000 // %
	AspectValue  Flags = 0x02000 // !
	LessValue    Flags = 0x04000 // <
	GreaterValue Flags = 0x08000 // >
	MinimumValue Flags = 0x10000 // < and > together
	AreaValue    Flags = 0x20000 // @

	// SizeValues is set in full when both dimensions were given.
	SizeValues = WidthValue | HeightValue
	// AllValues is set in full when size and both offsets were given.
	AllValues = XValue | YValue | WidthValue | HeightValue
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{XValue, "XValue"},
	{YValue, "YValue"},
	{WidthValue, "WidthValue"},
	{HeightValue, "HeightValue"},
	{XNegative, "XNegative"},
	{YNegative, "YNegative"},
	{PercentValue, "PercentValue"},
	{AspectValue, "AspectValue"},
	{LessValue, "LessValue"},
	{GreaterValue, "GreaterValue"},
	{MinimumValue, "MinimumValue"},
	{AreaValue, "AreaValue"},
}

// Has reports whether every bit of mask is set in f.
func (f Flags) Has(mask Flags) bool {
	return mask != 0 && f&mask == mask
}

// Names returns the names of the single-bit flags set in f, lowest bit first.
func (f Flags) Names() []string {
	names := make([]string, 0, len(flagNames))
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			names = append(names, fn.name)
		}
	}
	return names
}

func (f Flags) String() string {
	if f == NoValue {
		return "NoValue"
	}
	return strings.Join(f.Names(), "|")
}

// FlagsFromNames is the inverse of Flags.Names. Matching is case-insensitive;
// "AllValues", "SizeValues" and "NoValue" are accepted as well. The second
// return value lists the names that were not recognized.
func FlagsFromNames(names []string) (Flags, []string) {
	var f Flags
	var unknown []string
	for _, n := range names {
		switch {
		case strings.EqualFold(n, "NoValue"):
			continue
		case strings.EqualFold(n, "AllValues"):
			f |= AllValues
			continue
		case strings.EqualFold(n, "SizeValues"):
			f |= SizeValues
			continue
		}
		found := false
		for _, fn := range flagNames {
			if strings.EqualFold(n, fn.name) {
				f |= fn.flag
				found = true
				break
			}
		}
		if !found {
			unknown = append(unknown, n)
		}
	}
	return f, unknown
}
