// Package primitive reads the fixed-width and length-prefixed values that
// make up the non-delta parts of a QSH file: single bytes, little-endian
// fixed-width integers, IEEE-754 doubles, .NET-ticks datetimes, and
// ULEB128-length-prefixed UTF-8 strings.
//
// Every read consumes a fixed, caller-known number of bytes (or, for
// strings, a length read as part of the value itself) from a Source and
// fails with qsherr.ErrTruncated if the source cannot supply them.
package primitive
