// Package lut reads and writes the fixed binary table formats the
// rendering pipeline consumes: a 16 byte little-endian header followed
// by row-major samples, either half precision or float32 as declared
// by the header's datatype tag.
package lut

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	Magic          = 1234
	CurrentVersion = 2

	DatatypeHalf  = 0
	DatatypeFloat = 1
)

type Header struct {
	Magic    uint32
	Version  uint16
	Channels uint8
	Datatype uint8
	Wd       uint32
	Ht       uint32
}

func (h Header) Write(w io.Writer) error {
	return binary.Write(w, binary.LittleEndian, h)
}

func ReadHeader(r io.Reader) (h Header, err error) {
	if err = binary.Read(r, binary.LittleEndian, &h); err != nil {
		return h, fmt.Errorf("reading table header: %w", err)
	}
	if h.Magic != Magic {
		return h, fmt.Errorf("bad table magic %d, expected %d", h.Magic, Magic)
	}
	return h, nil
}
