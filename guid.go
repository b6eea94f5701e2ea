package guid

import (
	"database/sql/driver"
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// GUID represents a 128-bit globally unique identifier backed by a 16 byte
// array. The bytes are logically partitioned into four fields, all stored
// in big-endian (network) byte order:
//
//	Data1  uint32   bytes 0-3
//	Data2  uint16   bytes 4-5
//	Data3  uint16   bytes 6-7
//	Data4  [8]byte  bytes 8-15
//
// Unlike an RFC 4122 UUID, a GUID carries no version or variant bits:
// every 16 byte pattern is a valid GUID.
type GUID [16]byte

// Nil is the nil GUID (all zeros)
var Nil GUID

// FromComponents constructs a GUID from its four fields. Data1, Data2 and
// Data3 are serialized in big-endian order into bytes 0-7; d4 is copied
// verbatim into bytes 8-15.
func FromComponents(d1 uint32, d2 uint16, d3 uint16, d4 [8]byte) GUID {
	var g GUID
	binary.BigEndian.PutUint32(g[0:4], d1)
	binary.BigEndian.PutUint16(g[4:6], d2)
	binary.BigEndian.PutUint16(g[6:8], d3)
	copy(g[8:16], d4[:])
	return g
}

// Data1 returns the first field (bytes 0-3) as a big-endian uint32
func (g GUID) Data1() uint32 {
	return binary.BigEndian.Uint32(g[0:4])
}

// Data2 returns the second field (bytes 4-5) as a big-endian uint16
func (g GUID) Data2() uint16 {
	return binary.BigEndian.Uint16(g[4:6])
}

// Data3 returns the third field (bytes 6-7) as a big-endian uint16
func (g GUID) Data3() uint16 {
	return binary.BigEndian.Uint16(g[6:8])
}

// Data4 returns the fourth field (bytes 8-15) as an 8 byte array
func (g GUID) Data4() [8]byte {
	var d4 [8]byte
	copy(d4[:], g[8:16])
	return d4
}

// String returns the canonical string representation of the GUID
// in the format: XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX (uppercase hex)
func (g GUID) String() string {
	var buf [36]byte
	encodeCanonical(buf[:], g)
	return string(buf[:])
}

const hexUpper = "0123456789ABCDEF"

// encodeCanonical encodes a GUID to its canonical uppercase hex representation
func encodeCanonical(dst []byte, g GUID) {
	encodeHexUpper(dst[0:8], g[0:4])
	dst[8] = '-'
	encodeHexUpper(dst[9:13], g[4:6])
	dst[13] = '-'
	encodeHexUpper(dst[14:18], g[6:8])
	dst[18] = '-'
	encodeHexUpper(dst[19:23], g[8:10])
	dst[23] = '-'
	encodeHexUpper(dst[24:36], g[10:16])
}

// encodeHexUpper is hex.Encode with an uppercase digit table
func encodeHexUpper(dst, src []byte) {
	for i, b := range src {
		dst[i*2] = hexUpper[b>>4]
		dst[i*2+1] = hexUpper[b&0x0f]
	}
}

// Parse parses a GUID from its canonical string representation:
// XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX (36 characters, hex digits in
// either case). No other format is accepted: braces, urn:uuid: prefixes,
// the 32 character compact form, surrounding whitespace and trailing data
// all yield ErrInvalidFormat.
func Parse(s string) (GUID, error) {
	var g GUID

	if len(s) != 36 {
		return g, ErrInvalidFormat
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return g, ErrInvalidFormat
	}
	// Decode each segment
	if err := decodeHexSegment(g[0:4], s[0:8]); err != nil {
		return g, err
	}
	if err := decodeHexSegment(g[4:6], s[9:13]); err != nil {
		return g, err
	}
	if err := decodeHexSegment(g[6:8], s[14:18]); err != nil {
		return g, err
	}
	if err := decodeHexSegment(g[8:10], s[19:23]); err != nil {
		return g, err
	}
	if err := decodeHexSegment(g[10:16], s[24:36]); err != nil {
		return g, err
	}
	return g, nil
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) GUID {
	g, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("guid: Parse(%q): %v", s, err))
	}
	return g
}

// decodeHexSegment decodes a hex string segment into a byte slice
func decodeHexSegment(dst []byte, src string) error {
	if _, err := hex.Decode(dst, []byte(src)); err != nil {
		return ErrInvalidFormat
	}
	return nil
}

// Bytes returns the GUID as a byte slice
func (g GUID) Bytes() []byte {
	return g[:]
}

// IsNil returns true if the GUID is the nil GUID (all zeros)
func (g GUID) IsNil() bool {
	return g == Nil
}

// MarshalText implements the encoding.TextMarshaler interface.
// The output is the canonical uppercase form.
func (g GUID) MarshalText() ([]byte, error) {
	var buf [36]byte
	encodeCanonical(buf[:], g)
	return buf[:], nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// The error names the offending input.
func (g *GUID) UnmarshalText(data []byte) error {
	id, err := Parse(string(data))
	if err != nil {
		return fmt.Errorf("guid: cannot unmarshal %q: %w", string(data), err)
	}
	*g = id
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (g GUID) MarshalBinary() ([]byte, error) {
	return g[:], nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (g *GUID) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return ErrInvalidLength
	}
	copy(g[:], data)
	return nil
}

// Scan implements the sql.Scanner interface for database compatibility
func (g *GUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		id, err := Parse(src)
		if err != nil {
			return err
		}
		*g = id
		return nil
	case []byte:
		if len(src) == 16 {
			copy(g[:], src)
			return nil
		}
		if len(src) == 0 {
			return nil
		}
		id, err := Parse(string(src))
		if err != nil {
			return err
		}
		*g = id
		return nil
	default:
		return fmt.Errorf("guid: cannot scan type %T into GUID", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility
func (g GUID) Value() (driver.Value, error) {
	return g.String(), nil
}

// Compare returns an integer comparing two GUIDs lexicographically.
// The result will be 0 if g==other, -1 if g < other, and +1 if g > other.
func (g GUID) Compare(other GUID) int {
	for i := 0; i < 16; i++ {
		if g[i] < other[i] {
			return -1
		}
		if g[i] > other[i] {
			return 1
		}
	}
	return 0
}

// Equal returns true if g and other represent the same GUID
func (g GUID) Equal(other GUID) bool {
	return g == other
}
