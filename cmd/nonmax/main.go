// Command nonmax inspects the nonmax integer types: their limits, how text
// parses into them, and how each value encodes in every supported format.
//
// Usage:
//
//	nonmax widths
//	nonmax parse [--dump] [--option] [--] WIDTH TEXT...
//	nonmax encode [--format F] [--option] [--] WIDTH TEXT
//	nonmax decode [--format F] [--option] [--] WIDTH DATA
//
// binary and msgpack data are read and written as hex.
//
// A negative value would be read as a flag, so flags go first and the
// positional arguments follow "--":
//
//	nonmax encode -f binary -- i8 -1
package main

import (
	"log"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("nonmax: ")
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}
