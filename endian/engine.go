// Package endian provides the byte-order engine used to read QSH's
// fixed-width integer fields.
//
// QSH v4 is always little-endian on the wire, so this package is a thin
// wrapper rather than a pluggable multi-byte-order abstraction: it exists so
// primitive.Reader depends on a small local interface instead of importing
// encoding/binary directly, and so tests can substitute a fake engine.
package endian

import "encoding/binary"

// Engine combines encoding/binary's ByteOrder and AppendByteOrder
// interfaces; primitive.Reader uses the ByteOrder read methods.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Little is the little-endian Engine. QSH v4 has no other byte order.
var Little Engine = binary.LittleEndian
