package guid

import "errors"

var (
	// ErrInvalidFormat indicates that the input does not match the canonical
	// GUID format
	ErrInvalidFormat = errors.New("guid: malformed GUID, expecting XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX")

	// ErrInvalidLength indicates that a byte input has incorrect length
	ErrInvalidLength = errors.New("guid: invalid GUID length (expected 16 bytes)")
)
