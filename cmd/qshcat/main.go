// Command qshcat decodes a QSH v4 file and prints its header, stream
// descriptor and frames as a sequence of JSON values, one per record, or
// runs the LEB128 codec's self-test against its reference vectors.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dvoshchepynets/qsh/internal/framehash"
	"github.com/dvoshchepynets/qsh/leb128"
	"github.com/dvoshchepynets/qsh/qsh"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "qshcat: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("qshcat", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	runSelfTest := fs.Bool("run_self_test", false, "run the LEB128 reference-vector self-test and exit")
	readFile := fs.String("read_file", "", "decode the QSH v4 file at this path and print its frames as JSON")

	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *runSelfTest:
		return selfTest()
	case *readFile != "":
		return catFile(*readFile)
	default:
		printUsage(fs)
		return fmt.Errorf("no action given")
	}
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, "usage: qshcat -run_self_test | -read_file <path>")
	fs.PrintDefaults()
}

// selfTest checks the LEB128 codec against its reference vectors
// (624485 <-> E5 8E 26, -624485 <-> 9B F1 59) and round-trips a handful of
// edge values, so a build can be sanity-checked without a real QSH file on
// hand.
func selfTest() error {
	if enc := leb128.EncodeUnsigned(nil, 624485); string(enc) != "\xE5\x8E\x26" {
		return fmt.Errorf("self test: unsigned reference vector encoded as % X", enc)
	}
	if v, _, err := leb128.DecodeUnsigned([]byte{0xE5, 0x8E, 0x26}, 4); err != nil || v != 624485 {
		return fmt.Errorf("self test: unsigned reference vector decoded as %d (%v)", v, err)
	}
	if enc := leb128.EncodeSigned(nil, -624485); string(enc) != "\x9B\xF1\x59" {
		return fmt.Errorf("self test: signed reference vector encoded as % X", enc)
	}
	if v, _, err := leb128.DecodeSigned([]byte{0x9B, 0xF1, 0x59}, 10); err != nil || v != -624485 {
		return fmt.Errorf("self test: signed reference vector decoded as %d (%v)", v, err)
	}

	cases := []int64{0, 1, -1, 63, -64, 64, -65, 268_435_455, -268_435_455, 1 << 40, -(1 << 40)}
	for _, want := range cases {
		enc := leb128.EncodeSigned(nil, want)
		got, consumed, err := leb128.DecodeSigned(enc, len(enc)+1)
		if err != nil {
			return fmt.Errorf("self test: decode %d: %w", want, err)
		}
		if consumed != len(enc) || got != want {
			return fmt.Errorf("self test: round-trip mismatch for %d: got %d (consumed %d/%d)", want, got, consumed, len(enc))
		}
	}

	ucases := []uint64{0, 1, 127, 128, 268_435_455, 1 << 40}
	for _, want := range ucases {
		enc := leb128.EncodeUnsigned(nil, want)
		got, consumed, err := leb128.DecodeUnsigned(enc, len(enc)+1)
		if err != nil {
			return fmt.Errorf("self test: decode %d: %w", want, err)
		}
		if consumed != len(enc) || got != want {
			return fmt.Errorf("self test: round-trip mismatch for %d: got %d (consumed %d/%d)", want, got, consumed, len(enc))
		}
	}

	fmt.Println("self test: ok")

	return nil
}

// catFile decodes the file at path and writes its header and frames to
// stdout as JSON.
func catFile(path string) error {
	loc := resolveLocation()

	p, err := qsh.Open(path, qsh.WithLocation(loc))
	if err != nil {
		return err
	}
	defer p.Close()

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if err := enc.Encode(p.Header()); err != nil {
		return err
	}
	if err := enc.Encode(p.Stream()); err != nil {
		return err
	}

	for frame, ferr := range p.Frames() {
		if ferr != nil {
			return ferr
		}

		body, err := json.Marshal(frame)
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "frame@%s hash=%x\n", frame.Kind, framehash.Sum(body))

		if err := enc.Encode(frame); err != nil {
			return err
		}
	}

	return nil
}

// resolveLocation honors QSH_TZ for the wall-clock zone frames are printed
// in, falling back to UTC (with a warning) if it names an unknown zone.
func resolveLocation() *time.Location {
	name, ok := os.LookupEnv("QSH_TZ")
	if !ok || name == "" {
		name = "Europe/Moscow"
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("qshcat: unknown QSH_TZ %q, falling back to UTC: %v", name, err)
		return time.UTC
	}

	return loc
}
