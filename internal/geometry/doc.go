// Package geometry parses and formats image geometry specifications.
//
// A geometry specification is the compact sizing string used by most image
// toolkits on the command line:
//
//	<width>x<height>{+-}<xoffset>{+-}<yoffset>{%!<>@}
//
// Every part is optional. Parse fills only the Rectangle fields it finds and
// reports what it saw in a Flags bitmask; fields that are absent from the
// string keep whatever the caller put there, so a Rectangle doubles as the
// set of defaults.
//
// # Leniency
//
// Parse never fails on malformed text. It consumes the longest valid prefix
// of each grammar position and ignores the rest, while meta characters
// (%, !, <, >, @) are honoured wherever they appear. The only error is
// ErrInvalidArgument, returned when the specification or the rectangle is
// absent altogether.
//
// A leading '%' (as in "%50") is accepted as an extension; the percent flag
// is a property of the whole geometry, not of a particular number.
//
// # Percentages
//
// The parser does not convert percentages to pixels. "50%" yields Width=50
// with PercentValue set and the caller decides what the 50 is relative to.
//
// # Concurrency
//
// Parse and Format are pure functions. Concurrent calls are safe as long as
// each call writes to its own Rectangle.
package geometry
