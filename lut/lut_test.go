package lut

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{Magic: Magic, Version: CurrentVersion, Channels: 4, Datatype: DatatypeFloat, Wd: 512, Ht: 512}
	buf := &bytes.Buffer{}
	require.NoError(t, h.Write(buf))
	require.Equal(t, 16, buf.Len())
	got, err := ReadHeader(buf)
	require.NoError(t, err)
	require.Equal(t, h, got)
}

func TestHeaderBadMagic(t *testing.T) {
	h := Header{Magic: 999, Version: CurrentVersion, Channels: 1, Wd: 1, Ht: 1}
	buf := &bytes.Buffer{}
	require.NoError(t, h.Write(buf))
	_, err := ReadHeader(buf)
	require.Error(t, err)
}

func write_brightness(t *testing.T, h Header, samples []uint16) string {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, h.Write(buf))
	require.NoError(t, binary.Write(buf, binary.LittleEndian, samples))
	path := filepath.Join(t.TempDir(), "macadam.lut")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o666))
	return path
}

func TestReadBrightness(t *testing.T) {
	one := float16.Fromfloat32(1.0).Bits()
	half := float16.Fromfloat32(0.5).Bits()

	t.Run("valid", func(t *testing.T) {
		h := Header{Magic: Magic, Version: CurrentVersion, Channels: 1, Datatype: DatatypeHalf, Wd: 2, Ht: 2}
		m, err := ReadBrightness(write_brightness(t, h, []uint16{one, half, one, half}))
		require.NoError(t, err)
		require.Equal(t, 2, m.Wd)
		require.Equal(t, 2, m.Ht)
		require.Equal(t, []float32{1, 0.5, 1, 0.5}, m.Pix)
	})

	t.Run("wrong channel count", func(t *testing.T) {
		h := Header{Magic: Magic, Version: CurrentVersion, Channels: 3, Datatype: DatatypeHalf, Wd: 1, Ht: 1}
		_, err := ReadBrightness(write_brightness(t, h, []uint16{one, one, one}))
		require.ErrorContains(t, err, "channel")
	})

	t.Run("wrong version", func(t *testing.T) {
		h := Header{Magic: Magic, Version: 1, Channels: 1, Datatype: DatatypeHalf, Wd: 1, Ht: 1}
		_, err := ReadBrightness(write_brightness(t, h, []uint16{one}))
		require.ErrorContains(t, err, "version")
	})

	t.Run("truncated", func(t *testing.T) {
		h := Header{Magic: Magic, Version: CurrentVersion, Channels: 1, Datatype: DatatypeHalf, Wd: 4, Ht: 4}
		_, err := ReadBrightness(write_brightness(t, h, []uint16{one, one}))
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadBrightness(filepath.Join(t.TempDir(), "nope.lut"))
		require.Error(t, err)
	})
}

func TestBrightnessAt(t *testing.T) {
	m := &BrightnessMap{Wd: 2, Ht: 2, Pix: []float32{1, 2, 3, 4}}
	// nearest sampling of a 4x4 grid against a 2x2 map
	require.Equal(t, 1.0, m.At(0, 0, 4))
	require.Equal(t, 2.0, m.At(3, 0, 4))
	require.Equal(t, 3.0, m.At(0, 3, 4))
	require.Equal(t, 4.0, m.At(3, 3, 4))
}

func TestWriteFloatTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spectra.lut")
	pix := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	require.NoError(t, WriteFloatTable(path, 2, 1, 4, pix))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	h, err := ReadHeader(f)
	require.NoError(t, err)
	require.Equal(t, uint8(4), h.Channels)
	require.Equal(t, uint8(DatatypeFloat), h.Datatype)
	got := make([]float32, len(pix))
	require.NoError(t, binary.Read(f, binary.LittleEndian, got))
	require.Equal(t, pix, got)
}

func TestWriteHalfTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abney.lut")
	pix := []float32{0.25, 0.5, 0.75, 1}
	require.NoError(t, WriteHalfTable(path, 2, 1, 2, pix))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	h, err := ReadHeader(f)
	require.NoError(t, err)
	require.Equal(t, uint8(DatatypeHalf), h.Datatype)
	got := make([]uint16, len(pix))
	require.NoError(t, binary.Read(f, binary.LittleEndian, got))
	for k, v := range pix {
		require.Equal(t, v, float16.Frombits(got[k]).Float32())
	}
}

func TestWriteTableSizeMismatch(t *testing.T) {
	dir := t.TempDir()
	require.Error(t, WriteFloatTable(filepath.Join(dir, "a"), 2, 2, 4, []float32{1}))
	require.Error(t, WriteHalfTable(filepath.Join(dir, "b"), 2, 2, 2, []float32{1}))
	require.Error(t, WritePFM(filepath.Join(dir, "c"), 2, 2, []float32{1}))
}

func TestWritePFM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.pfm")
	pix := make([]float32, 4*2*3)
	for k := range pix {
		pix[k] = float32(k)
	}
	require.NoError(t, WritePFM(path, 4, 2, pix))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	header := []byte("PF\n4 2\n-1.0\n")
	require.Equal(t, header, raw[:len(header)])
	require.Equal(t, len(header)+4*2*3*4, len(raw))
}
