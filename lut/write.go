package lut

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/x448/float16"
)

// WriteFloatTable writes a float32 table: header plus wd*ht cells of
// the given channel count.
func WriteFloatTable(path string, wd, ht, channels int, pix []float32) error {
	if len(pix) != wd*ht*channels {
		return fmt.Errorf("%s: have %d samples, want %d", path, len(pix), wd*ht*channels)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	h := Header{
		Magic:    Magic,
		Version:  CurrentVersion,
		Channels: uint8(channels),
		Datatype: DatatypeFloat,
		Wd:       uint32(wd),
		Ht:       uint32(ht),
	}
	if err := h.Write(w); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, pix); err != nil {
		return err
	}
	return w.Flush()
}

// WriteHalfTable writes a half precision table: header plus wd*ht
// cells of the given channel count, each sample rounded to the nearest
// representable half float.
func WriteHalfTable(path string, wd, ht, channels int, pix []float32) error {
	if len(pix) != wd*ht*channels {
		return fmt.Errorf("%s: have %d samples, want %d", path, len(pix), wd*ht*channels)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	h := Header{
		Magic:    Magic,
		Version:  CurrentVersion,
		Channels: uint8(channels),
		Datatype: DatatypeHalf,
		Wd:       uint32(wd),
		Ht:       uint32(ht),
	}
	if err := h.Write(w); err != nil {
		return err
	}
	raw := make([]uint16, len(pix))
	for k, v := range pix {
		raw[k] = float16.Fromfloat32(v).Bits()
	}
	if err := binary.Write(w, binary.LittleEndian, raw); err != nil {
		return err
	}
	return w.Flush()
}
