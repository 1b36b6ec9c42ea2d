// Package leb128 implements LEB128 (Little-Endian Base-128) variable-length
// integer encoding and decoding, in both its unsigned (ULEB128) and signed
// (SLEB128) forms.
//
// Encoding splits an integer into 7-bit groups, little-endian by group, and
// sets the high bit on every group except the last. Signed encoding adds
// one sign-extension rule on top: the last emitted byte's bit 6 must match
// the sign of the value being encoded, so decoders can tell a small negative
// number from a small positive one without an external length.
//
// Decoding is available over an in-memory byte slice (DecodeUnsigned,
// DecodeSigned) and over a pull-style ByteSource (DecodeUnsignedFrom,
// DecodeSignedFrom) for streaming callers that only have one byte at a time,
// such as a buffered file reader.
//
// Reference vectors (from the LEB128 Wikipedia article, also used by the
// original QSH parser's test suite):
//
//	624485  (unsigned) <-> 0xE5 0x8E 0x26
//	-624485 (signed)   <-> 0x9B 0xF1 0x59
package leb128
