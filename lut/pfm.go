package lut

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
)

// WritePFM writes a 3 channel floating point image for debugging:
// ASCII header, then raw little-endian float32 scanlines.
func WritePFM(path string, wd, ht int, pix []float32) error {
	if len(pix) != wd*ht*3 {
		return fmt.Errorf("%s: have %d samples, want %d", path, len(pix), wd*ht*3)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if _, err := fmt.Fprintf(w, "PF\n%d %d\n-1.0\n", wd, ht); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, pix); err != nil {
		return err
	}
	return w.Flush()
}
