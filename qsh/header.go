package qsh

import "time"

// signature is the literal 19-byte ASCII prefix every QSH file must start
// with, unterminated.
const signature = "QScalp History Data"

// supportedVersion is the only format_version this parser accepts.
const supportedVersion = 4

// FileHeader is the fixed-shape preamble common to every QSH v4 file.
type FileHeader struct {
	Version         uint8
	AppName         string
	UserComment     string
	RecordStartTime time.Time
	StreamCount     uint8
}
