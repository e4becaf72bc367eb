package numeric

import (
	"regexp"
	"strconv"
	"strings"
)

// Regex pattern components for integer literal formats. Underscores may
// separate digits but never lead or trail.
const (
	HexDigits = `[0-9a-fA-F]`
	HexNumber = `0[xX]` + HexDigits + `(?:` + HexDigits + `|_` + HexDigits + `)*`

	OctDigits = `[0-7]`
	OctNumber = `0[oO]` + OctDigits + `(?:` + OctDigits + `|_` + OctDigits + `)*`

	BinDigits = `[01]`
	BinNumber = `0[bB]` + BinDigits + `(?:` + BinDigits + `|_` + BinDigits + `)*`

	DecDigits = `[0-9]`
	DecNumber = DecDigits + `(?:` + DecDigits + `|_` + DecDigits + `)*`
)

var (
	decimalRegex = regexp.MustCompile(`^-?` + DecNumber + `$`)
	hexRegex     = regexp.MustCompile(`^` + HexNumber + `$`)
	octalRegex   = regexp.MustCompile(`^` + OctNumber + `$`)
	binaryRegex  = regexp.MustCompile(`^` + BinNumber + `$`)
)

// IsDecimal checks if the string represents a decimal
func IsDecimal(s string) bool {
	return decimalRegex.MatchString(s)
}

// IsHexadecimal checks if the string represents a hexadecimal integer
func IsHexadecimal(s string) bool {
	return hexRegex.MatchString(s)
}

// IsOctal checks if the string represents an octal integer
func IsOctal(s string) bool {
	return octalRegex.MatchString(s)
}

// IsBinary checks if the string represents a binary integer
func IsBinary(s string) bool {
	return binaryRegex.MatchString(s)
}

// StringToInteger parses an integer literal in any of the supported radixes.
// Misplaced underscores are rejected.
func StringToInteger(s string) (int64, error) {
	switch {
	case IsHexadecimal(s):
		return strconv.ParseInt(strings.ReplaceAll(s[2:], "_", ""), 16, 64)
	case IsOctal(s):
		return strconv.ParseInt(strings.ReplaceAll(s[2:], "_", ""), 8, 64)
	case IsBinary(s):
		return strconv.ParseInt(strings.ReplaceAll(s[2:], "_", ""), 2, 64)
	case IsDecimal(s):
		return strconv.ParseInt(strings.ReplaceAll(s, "_", ""), 10, 64)
	}
	return 0, &strconv.NumError{Func: "StringToInteger", Num: s, Err: strconv.ErrSyntax}
}

// FitsInBitSize checks if value is within the range of an integer of the
// given bit size.
func FitsInBitSize(value int64, bitSize int, signed bool) bool {
	if bitSize >= 64 {
		return signed || value >= 0
	}
	if signed {
		min := int64(-1) << (bitSize - 1)
		max := int64(1)<<(bitSize-1) - 1
		return value >= min && value <= max
	}
	return value >= 0 && value <= int64(1)<<bitSize-1
}
