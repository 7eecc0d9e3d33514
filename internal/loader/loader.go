// Package loader handles ROM file loading and byte-order normalization.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/n64codescan/internal/region"
	"github.com/retroenv/n64codescan/internal/romutil"
)

// firstWord values that identify a ROM's on-disk byte order, read with the
// same little-endian convention region.Word uses.
const (
	magicNative   = 0x80371240 // already in the engine's word order, no swap
	magicByteSwap = 0x40123780 // every word byte-reversed, needs a swap
	magicV64      = 0x12408037 // half-swapped .v64 order, unsupported
)

// ROM is a loaded, byte-order-normalized N64 ROM image.
type ROM struct {
	// Path is the file the ROM was loaded from.
	Path string
	// Data holds the ROM image ready for region.Word reads.
	Data []byte
}

// Load opens path, rounds its size up to a multiple of 4 bytes, and
// normalizes its byte order based on the first word's magic value. It
// returns an error for truncated files, unsupported .v64 images, and any
// first word it doesn't recognize.
func Load(path string) (*ROM, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ROM file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat'ing ROM file %s: %w", path, err)
	}

	size := romutil.RoundUpMultiple(int(info.Size()), 4)
	data := make([]byte, size)
	if _, err := io.ReadFull(file, data[:info.Size()]); err != nil {
		return nil, fmt.Errorf("reading ROM file %s: %w", path, err)
	}

	if len(data) < 4 {
		return nil, fmt.Errorf("ROM file %s is too small to contain a header", path)
	}

	switch region.Word(data, 0) {
	case magicNative:
		// already in the engine's word order
	case magicByteSwap:
		byteSwapWords(data)
	case magicV64:
		return nil, fmt.Errorf("ROM file %s is in unsupported .v64 byte order", path)
	default:
		return nil, fmt.Errorf("ROM file %s has unrecognized header word 0x%08X", path, region.Word(data, 0))
	}

	return &ROM{Path: path, Data: data}, nil
}

// byteSwapWords reverses the 4 bytes of every word in place, the transform
// that turns a big-endian-dumped ROM into the engine's expected word order.
func byteSwapWords(data []byte) {
	for i := 0; i+4 <= len(data); i += 4 {
		data[i], data[i+1], data[i+2], data[i+3] =
			data[i+3], data[i+2], data[i+1], data[i]
	}
}
