// Package guid provides a lightweight 128-bit globally unique identifier
// backed by a 16 byte array, with construction from raw bytes or field
// components, random generation, and bidirectional conversion to the
// canonical hyphenated string form.
//
// A GUID is partitioned into four fields, all serialized in big-endian
// (network) byte order regardless of host platform:
//   - Data1: 32-bit unsigned integer (bytes 0-3)
//   - Data2: 16-bit unsigned integer (bytes 4-5)
//   - Data3: 16-bit unsigned integer (bytes 6-7)
//   - Data4: opaque 8 byte sequence (bytes 8-15)
//
// Basic Usage:
//
//	// Generate a random GUID
//	id, err := guid.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id.String()) // 87935CDE-7094-4C2B-A0F4-DD7D512DD261
//
//	// Parse a GUID from its canonical form
//	id, err := guid.Parse("87935CDE-7094-4C2B-A0F4-DD7D512DD261")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Build from components or raw bytes
//	id = guid.FromComponents(0x87935CDE, 0x7094, 0x4C2B,
//	    [8]byte{0xA0, 0xF4, 0xDD, 0x7D, 0x51, 0x2D, 0xD2, 0x61})
//	id, err = guid.FromBytes(raw)
//
// Canonical Form:
//
// The textual form is exactly 36 characters: 32 hexadecimal digits in
// five dash-separated groups of 8-4-4-4-12. Parse accepts either digit
// case but nothing else - no braces, no urn:uuid: prefix, no compact
// 32 character form, no surrounding whitespace. String always renders
// uppercase, so Parse(s).String() is the uppercase normalization of any
// valid input and String followed by Parse reproduces the value exactly.
//
// Thread Safety:
//
// A GUID is an immutable value and is freely copyable and shareable
// across goroutines. The package-level New function is safe for
// concurrent use without coordination.
//
// Standards Note:
//
// This is not an RFC 4122 UUID. The byte layout is opaque: no version or
// variant bits are reserved or interpreted, and random generation fills
// all 128 bits from the entropy source, so any 16 byte pattern is a
// valid GUID. Uniqueness rests entirely on the uniformity of the random
// source; no further collision mitigation is attempted. For
// interoperability with RFC UUID ecosystems see ToUUID and FromUUID.
package guid
