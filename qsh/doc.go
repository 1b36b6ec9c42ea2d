// Package qsh decodes QScalp History (QSH) version 4 files: a compact
// binary container for tick-level market data used by Russian trading
// platforms. It exposes a single-pass, pull-based Parser that reads the
// file header and stream descriptor, then yields one Frame per record.
package qsh
