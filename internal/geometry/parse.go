package geometry

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode"
)

// ErrInvalidArgument is returned when Parse is called without a
// specification or without a rectangle to fill.
var ErrInvalidArgument = errors.New("invalid argument")

// Rectangle receives the values found in a geometry. X and Y are signed
// offsets; Width and Height are non-negative magnitudes (or percentages when
// PercentValue is set).
type Rectangle struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ParseRef is Parse for callers that distinguish an absent specification
// from an empty one, such as optional JSON fields. A nil spec fails with
// ErrInvalidArgument and leaves rect untouched.
func ParseRef(spec *string, rect *Rectangle) (Flags, error) {
	if spec == nil {
		return NoValue, fmt.Errorf("%w: geometry is absent", ErrInvalidArgument)
	}
	return Parse(*spec, rect)
}

// Parse reads a geometry specification into rect and returns the flags
// describing what was found.
//
// Only the fields present in spec are written; the others keep the caller's
// values. Malformed fragments are skipped rather than reported, and an empty
// spec returns NoValue with rect unchanged. The only error is
// ErrInvalidArgument for a nil rect.
//
// Examples:
//
//	"100x200"        width, height
//	"100x200-10+20"  width, height, x=-10 (XNegative), y=20
//	"50%"            width=50 with PercentValue
//	"x200"           height only
//	"640x480>"       width, height, GreaterValue
func Parse(spec string, rect *Rectangle) (Flags, error) {
	if rect == nil {
		return NoValue, fmt.Errorf("%w: rectangle is nil", ErrInvalidArgument)
	}

	flags, body := splitMeta(spec)
	s := scanner{src: body}

	if v, ok := s.number(); ok {
		rect.Width = v
		flags |= WidthValue
	}

	if s.accept('x') || s.accept('X') {
		if v, ok := s.number(); ok {
			rect.Height = v
			flags |= HeightValue
		}
	}

	if v, neg, ok := s.offset(); ok {
		rect.X = v
		flags |= XValue
		if neg {
			flags |= XNegative
		}
		if v, neg, ok := s.offset(); ok {
			rect.Y = v
			flags |= YValue
			if neg {
				flags |= YNegative
			}
		}
	}

	return flags, nil
}

// splitMeta pulls the meta characters out of spec, wherever they are, and
// drops whitespace. What remains is the numeric part of the geometry.
func splitMeta(spec string) (Flags, string) {
	var flags Flags
	body := make([]byte, 0, len(spec))
	for _, r := range spec {
		switch {
		case unicode.IsSpace(r):
		case r == '%':
			flags |= PercentValue
		case r == '!':
			flags |= AspectValue
		case r == '<':
			flags |= LessValue
		case r == '>':
			flags |= GreaterValue
		case r == '@':
			flags |= AreaValue
		default:
			body = append(body, string(r)...)
		}
	}
	if flags.Has(LessValue | GreaterValue) {
		flags |= MinimumValue
	}
	return flags, string(body)
}

type scanner struct {
	src string
	pos int
}

func (s *scanner) peek() byte {
	if s.pos >= len(s.src) {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) accept(c byte) bool {
	if s.peek() == c {
		s.pos++
		return true
	}
	return false
}

func (s *scanner) digits() int {
	n := 0
	for c := s.peek(); c >= '0' && c <= '9'; c = s.peek() {
		s.pos++
		n++
	}
	return n
}

// number reads digits [ '.' [digits] ] or '.' digits and returns the value
// rounded half up. A lone dot is not a number.
func (s *scanner) number() (int, bool) {
	start := s.pos
	whole := s.digits()
	if s.accept('.') && s.digits() == 0 && whole == 0 {
		s.pos = start
		return 0, false
	}
	if s.pos == start {
		return 0, false
	}
	v, err := strconv.ParseFloat(s.src[start:s.pos], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		s.pos = start
		return 0, false
	}
	return roundMagnitude(v), true
}

// offset reads a signed number. A sign with no number after it is not an
// offset and is left unconsumed.
func (s *scanner) offset() (int, bool, bool) {
	sign := s.peek()
	if sign != '+' && sign != '-' {
		return 0, false, false
	}
	start := s.pos
	s.pos++
	v, ok := s.number()
	if !ok {
		s.pos = start
		return 0, false, false
	}
	if sign == '-' {
		return -v, true, true
	}
	return v, false, true
}

func roundMagnitude(v float64) int {
	v = math.Floor(v + 0.5)
	if v > math.MaxInt32 || math.IsInf(v, 1) {
		return math.MaxInt32
	}
	return int(v)
}
