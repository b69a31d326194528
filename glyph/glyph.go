package glyph

// segmentBase is the first code point of the Unicode segmented-digit block
// (U+1FBC0 renders as a seven-segment style zero)
const segmentBase rune = 0x1FBC0

// Segmentify maps every ASCII decimal digit in s to its segmented-digit
// glyph and passes all other characters through unchanged. It returns the
// transformed string and the number of characters processed; the count is
// used for centering, each source character counting as one cell
func Segmentify(s string) (string, int) {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			r = segmentBase + (r - '0')
		}
		out = append(out, r)
	}
	return string(out), len(out)
}
