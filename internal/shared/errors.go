package shared

type Error string

// Implement the error interface
func (e Error) Error() string { return string(e) }

//------------
// Definitions
//------------

// capacity errors
const (
	ErrCapacityMalformed = Error("malformed capacity")
	ErrCapacityOverflow  = Error("capacity exceeds 64-bit range")
)

// config errors
const (
	ErrConfigSyntax              = Error("invalid configuration syntax")
	ErrDuplicateServer           = Error("server addresses must be unique")
	ErrDuplicateStorageDirectory = Error("storage directories must be unique")
	ErrMissingStorageDirectory   = Error("storage entry is missing a directory")
	ErrAllocationExceedsDisk     = Error("allocated space exceeds disk size")
	ErrInvalidUTF8               = Error("value is not valid UTF-8")
)

// cli errors
const ErrorFileExists = Error("file already exists")
