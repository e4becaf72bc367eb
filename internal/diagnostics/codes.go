package diagnostics

// Error codes for the lumen compiler
const (
	// Lexer errors (L prefix)
	ErrUnexpectedCharacter = "L0001"

	// Parser errors (P prefix)
	ErrUnexpectedToken   = "P0001"
	ErrExpectedToken     = "P0002"
	ErrInvalidExpression = "P0003"
	ErrInvalidStatement  = "P0004"
	ErrInvalidNumber     = "P0005"
	ErrMissingIdentifier = "P0006"
	ErrInvalidType       = "P0007"

	// Generator errors (G prefix)
	ErrGenMissingType     = "G0001"
	ErrGenRedeclaration   = "G0002"
	ErrGenUndefined       = "G0003"
	ErrGenUnsupportedType = "G0004"
	ErrGenUnimplemented   = "G0005"

	// Warnings (W prefix)
	WarnIntegerTruncated = "W0001"
)
