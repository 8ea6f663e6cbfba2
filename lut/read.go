package lut

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/x448/float16"
)

// BrightnessMap is the externally supplied maximum-achievable
// brightness per chromaticity, loaded fully into memory before the
// fitting loop starts and read-only afterwards.
type BrightnessMap struct {
	Wd, Ht int
	Pix    []float32
}

// At samples the map with nearest lookup for a cell of an res x res
// grid.
func (m *BrightnessMap) At(i, j, res int) float64 {
	ii := min(m.Wd-1, max(0, i*m.Wd/res))
	jj := min(m.Ht-1, max(0, j*m.Ht/res))
	return float64(m.Pix[ii+m.Wd*jj])
}

// ReadBrightness loads a single channel half precision table. Any
// malformed input is a setup error and fatal to the run.
func ReadBrightness(path string) (*BrightnessMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := bufio.NewReader(f)
	h, err := ReadHeader(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if h.Version != CurrentVersion {
		return nil, fmt.Errorf("%s: unsupported table version %d", path, h.Version)
	}
	if h.Channels != 1 {
		return nil, fmt.Errorf("%s: expected 1 channel, got %d", path, h.Channels)
	}
	n := int(h.Wd) * int(h.Ht)
	raw := make([]uint16, n)
	if err := binary.Read(r, binary.LittleEndian, raw); err != nil {
		return nil, fmt.Errorf("%s: reading %d samples: %w", path, n, err)
	}
	m := &BrightnessMap{Wd: int(h.Wd), Ht: int(h.Ht), Pix: make([]float32, n)}
	for k, v := range raw {
		m.Pix[k] = float16.Frombits(v).Float32()
	}
	return m, nil
}
