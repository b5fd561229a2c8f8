// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package artifacts

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

var npyMagic = []byte("\x93NUMPY")

// maxNPYHeader bounds the header allocation for corrupt files.
const maxNPYHeader = 1 << 20

var (
	npyDescrRe   = regexp.MustCompile(`'descr'\s*:\s*'([^']*)'`)
	npyFortranRe = regexp.MustCompile(`'fortran_order'\s*:\s*(True|False)`)
	npyShapeRe   = regexp.MustCompile(`'shape'\s*:\s*\(([^)]*)\)`)
)

type npyHeader struct {
	itemSize int
	fortran  bool
	rows     int
	cols     int
	length   int64 // bytes consumed by magic, version and header
}

// payloadSize is rows*cols*itemSize, or false on overflow.
func (h npyHeader) payloadSize() (int64, bool) {
	if h.rows > math.MaxInt32 || h.cols > math.MaxInt32 {
		return 0, false
	}
	n := int64(h.rows) * int64(h.cols)
	if n > math.MaxInt64/int64(h.itemSize) || n > int64(math.MaxInt)/8 {
		return 0, false
	}
	return n * int64(h.itemSize), true
}

// inputSize reports the total byte size of r when it is a file or an
// in-memory reader.
func inputSize(r io.Reader) (int64, bool) {
	switch v := r.(type) {
	case interface{ Stat() (os.FileInfo, error) }:
		fi, err := v.Stat()
		if err != nil || !fi.Mode().IsRegular() {
			return 0, false
		}
		return fi.Size(), true
	case interface{ Size() int64 }:
		return v.Size(), true
	}
	return 0, false
}

// ReadNPY decodes a two-dimensional little-endian float32 or float64 array
// in NumPy .npy format (versions 1.0 through 3.0) into a dense matrix.
// When r is a file or an in-memory reader, the shape is checked against
// the bytes actually present before anything is allocated.
func ReadNPY(r io.Reader) (*mat.Dense, error) {
	size, sized := inputSize(r)
	br := bufio.NewReaderSize(r, 1<<16)

	h, err := readNPYHeader(br)
	if err != nil {
		return nil, err
	}

	payload, ok := h.payloadSize()
	if !ok {
		return nil, fmt.Errorf("npy: shape (%d, %d) overflows", h.rows, h.cols)
	}
	if sized && size-h.length < payload {
		return nil, fmt.Errorf("npy: shape (%d, %d) needs %d data bytes, file has %d",
			h.rows, h.cols, payload, max(size-h.length, 0))
	}

	data := make([]float64, h.rows*h.cols)
	buf := make([]byte, h.itemSize*h.cols)
	if h.fortran {
		buf = make([]byte, h.itemSize*h.rows)
	}
	outer, inner := h.rows, h.cols
	if h.fortran {
		outer, inner = h.cols, h.rows
	}

	for i := 0; i < outer; i++ {
		if _, err := io.ReadFull(br, buf); err != nil {
			return nil, fmt.Errorf("npy: reading data: %w", err)
		}
		for j := 0; j < inner; j++ {
			v := decodeFloat(buf[j*h.itemSize:], h.itemSize)
			if h.fortran {
				data[j*h.cols+i] = v
			} else {
				data[i*h.cols+j] = v
			}
		}
	}

	return mat.NewDense(h.rows, h.cols, data), nil
}

func readNPYHeader(r io.Reader) (npyHeader, error) {
	var h npyHeader

	prefix := make([]byte, len(npyMagic)+2)
	if _, err := io.ReadFull(r, prefix); err != nil {
		return h, fmt.Errorf("npy: reading magic: %w", err)
	}
	if !bytes.Equal(prefix[:len(npyMagic)], npyMagic) {
		return h, errors.New("npy: not a NumPy array file")
	}

	var headerLen int
	h.length = int64(len(prefix))
	switch major := prefix[len(npyMagic)]; major {
	case 1:
		h.length += 2
		var n uint16
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return h, fmt.Errorf("npy: reading header length: %w", err)
		}
		headerLen = int(n)
	case 2, 3:
		h.length += 4
		var n uint32
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return h, fmt.Errorf("npy: reading header length: %w", err)
		}
		if n > maxNPYHeader {
			return h, fmt.Errorf("npy: header length %d too large", n)
		}
		headerLen = int(n)
	default:
		return h, fmt.Errorf("npy: unsupported format version %d", major)
	}

	raw := make([]byte, headerLen)
	if _, err := io.ReadFull(r, raw); err != nil {
		return h, fmt.Errorf("npy: reading header: %w", err)
	}
	h.length += int64(headerLen)
	header := string(raw)

	m := npyDescrRe.FindStringSubmatch(header)
	if m == nil {
		return h, errors.New("npy: header has no descr")
	}
	switch m[1] {
	case "<f8":
		h.itemSize = 8
	case "<f4":
		h.itemSize = 4
	default:
		return h, fmt.Errorf("npy: unsupported dtype %q (want <f4 or <f8)", m[1])
	}

	if m = npyFortranRe.FindStringSubmatch(header); m != nil {
		h.fortran = m[1] == "True"
	}

	m = npyShapeRe.FindStringSubmatch(header)
	if m == nil {
		return h, errors.New("npy: header has no shape")
	}
	var shape []int
	for _, part := range strings.Split(m[1], ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return h, fmt.Errorf("npy: invalid shape %q", m[1])
		}
		shape = append(shape, n)
	}
	if len(shape) != 2 {
		return h, fmt.Errorf("npy: want a 2-D array, got %d dimensions", len(shape))
	}
	if shape[0] == 0 || shape[1] == 0 {
		return h, fmt.Errorf("npy: empty array (%dx%d)", shape[0], shape[1])
	}
	h.rows, h.cols = shape[0], shape[1]
	return h, nil
}

func decodeFloat(b []byte, size int) float64 {
	if size == 4 {
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}
