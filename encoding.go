package guid

import (
	"encoding/base64"
	"encoding/hex"
)

// EncodeToHex encodes the GUID to a hexadecimal string without hyphens
func (g GUID) EncodeToHex() string {
	return hex.EncodeToString(g[:])
}

// EncodeToBase64 encodes the GUID to a base64 string (URL-safe, no padding)
func (g GUID) EncodeToBase64() string {
	return base64.RawURLEncoding.EncodeToString(g[:])
}

// EncodeToBase64Std encodes the GUID to a standard base64 string
func (g GUID) EncodeToBase64Std() string {
	return base64.StdEncoding.EncodeToString(g[:])
}

// DecodeFromHex decodes a 32 character hexadecimal string to GUID.
// This is the compact form; Parse accepts only the hyphenated canonical form.
func DecodeFromHex(s string) (GUID, error) {
	var g GUID
	if len(s) != 32 {
		return g, ErrInvalidFormat
	}
	_, err := hex.Decode(g[:], []byte(s))
	if err != nil {
		return g, ErrInvalidFormat
	}
	return g, nil
}

// DecodeFromBase64 decodes a base64 string to GUID (URL-safe encoding)
func DecodeFromBase64(s string) (GUID, error) {
	var g GUID
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return g, ErrInvalidFormat
	}
	if len(data) != 16 {
		return g, ErrInvalidLength
	}
	copy(g[:], data)
	return g, nil
}

// DecodeFromBase64Std decodes a standard base64 string to GUID
func DecodeFromBase64Std(s string) (GUID, error) {
	var g GUID
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return g, ErrInvalidFormat
	}
	if len(data) != 16 {
		return g, ErrInvalidLength
	}
	copy(g[:], data)
	return g, nil
}

// FromBytes creates a GUID from a 16 byte slice. The bytes are copied
// verbatim with no interpretation.
func FromBytes(b []byte) (GUID, error) {
	var g GUID
	if len(b) != 16 {
		return g, ErrInvalidLength
	}
	copy(g[:], b)
	return g, nil
}

// MustFromBytes is like FromBytes but panics on error
func MustFromBytes(b []byte) GUID {
	g, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return g
}
