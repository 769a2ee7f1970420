package utils

// IsLatinLetter reports whether a rune is an ASCII Latin letter, the only
// characters that open or extend a spelling buffer.
func IsLatinLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsSelectDigit reports whether a rune selects a candidate row (1-5).
func IsSelectDigit(r rune) bool {
	return r >= '1' && r <= '5'
}
