package cli

// Error codes reported in CLI error responses.
const (
	// ErrCodeInvalidInput indicates the argument was not exactly six
	// decimal digits.
	ErrCodeInvalidInput = "E001"

	// ErrCodeConfig indicates the config file could not be read or
	// failed schema validation.
	ErrCodeConfig = "E002"

	// ErrCodeClipboard indicates the system clipboard was unavailable
	// or the copy failed.
	ErrCodeClipboard = "E003"

	// ErrCodeSelfTest indicates the selftest found a property
	// violation (round-trip mismatch or output collision).
	ErrCodeSelfTest = "E004"
)
