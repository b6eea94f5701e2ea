package guid

import "github.com/google/uuid"

// ToUUID converts the GUID to a github.com/google/uuid UUID.
// The mapping is byte-for-byte; no version or variant bits are adjusted,
// so the result round-trips through FromUUID losslessly but is not
// guaranteed to be a well-formed RFC 4122 UUID.
func (g GUID) ToUUID() uuid.UUID {
	return uuid.UUID(g)
}

// FromUUID converts a github.com/google/uuid UUID to a GUID, preserving
// all 16 bytes verbatim.
func FromUUID(u uuid.UUID) GUID {
	return GUID(u)
}
