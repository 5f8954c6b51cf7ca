// SPDX-License-Identifier: MIT

package matfile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/QuadnucYard/dsa-practice-code/matrix"
)

const (
	opEncode = "Encode"
	opDecode = "Decode"
)

// Size returns the encoded size in bytes of a rows×cols matrix.
func Size(rows, cols int) int64 {
	return headerSize + int64(rows)*int64(cols)*fieldSize
}

// Encode writes m to w in format f. The payload is streamed in blockSize
// chunks straight from the matrix buffer; w is not buffered further.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil m.
//   - ErrUnknownLayout / ErrUnknownOrder for an invalid f.
//   - ErrShapeTooLarge when a dimension does not fit uint32.
//   - any error returned by w.
func Encode(w io.Writer, m *matrix.Dense, f Format) error {
	if m == nil {
		return fmt.Errorf("%s: %w", opEncode, matrix.ErrNilMatrix)
	}
	bo, err := f.check()
	if err != nil {
		return fmt.Errorf("%s: %w", opEncode, err)
	}
	rows, cols := m.Shape()
	if uint64(rows) > math.MaxUint32 || uint64(cols) > math.MaxUint32 {
		return fmt.Errorf("%s: %dx%d: %w", opEncode, rows, cols, ErrShapeTooLarge)
	}

	var header [headerSize]byte
	bo.PutUint32(header[0:], uint32(rows))
	bo.PutUint32(header[fieldSize:], uint32(cols))

	if f.Layout == HeaderFirst {
		if _, err = w.Write(header[:]); err != nil {
			return fmt.Errorf("%s: header: %w", opEncode, err)
		}
	}
	if err = writeElements(w, bo, m.Raw()); err != nil {
		return fmt.Errorf("%s: data: %w", opEncode, err)
	}
	if f.Layout == DataFirst {
		if _, err = w.Write(header[:]); err != nil {
			return fmt.Errorf("%s: header: %w", opEncode, err)
		}
	}

	return nil
}

// writeElements encodes data as int32 fields, one block at a time.
func writeElements(w io.Writer, bo binary.AppendByteOrder, data []int32) error {
	buf := make([]byte, 0, blockSize)
	for _, v := range data {
		buf = bo.AppendUint32(buf, uint32(v))
		if len(buf) == blockSize {
			if _, err := w.Write(buf); err != nil {
				return err
			}
			buf = buf[:0]
		}
	}
	if len(buf) > 0 {
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}

	return nil
}

// Decode reads exactly one matrix in format f from r.
//
// HeaderFirst input is streamed: the header is read, then rows*cols
// elements, then r must be at EOF. DataFirst input is read to EOF and the
// header is taken from the trailing 8 bytes, since its position is only
// known relative to the end.
//
// Errors:
//   - ErrShortFile when input ends early (HeaderFirst) or holds < 8 bytes.
//   - ErrBadHeader for a zero dimension or more than MaxElements elements.
//   - ErrShapeMismatch when payload length disagrees with the header.
//   - ErrUnknownLayout / ErrUnknownOrder for an invalid f.
func Decode(r io.Reader, f Format) (*matrix.Dense, error) {
	bo, err := f.check()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecode, err)
	}
	var m *matrix.Dense
	if f.Layout == HeaderFirst {
		m, err = decodeHeaderFirst(r, bo)
	} else {
		m, err = decodeDataFirst(r, bo)
	}
	if err != nil {
		return nil, fmt.Errorf("%s(%v): %w", opDecode, f, err)
	}

	return m, nil
}

func decodeHeaderFirst(r io.Reader, bo binary.ByteOrder) (*matrix.Dense, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, shortOr(err, "header")
	}
	rows, cols, err := parseHeader(bo, header[:])
	if err != nil {
		return nil, err
	}

	count := rows * cols
	data := make([]int32, 0, min(count, blockSize/fieldSize))
	buf := make([]byte, blockSize)
	for remaining := count * fieldSize; remaining > 0; {
		chunk := buf[:min(remaining, blockSize)]
		if _, err = io.ReadFull(r, chunk); err != nil {
			return nil, shortOr(err, fmt.Sprintf("data (%d of %d elements)", len(data), count))
		}
		for off := 0; off < len(chunk); off += fieldSize {
			data = append(data, int32(bo.Uint32(chunk[off:])))
		}
		remaining -= len(chunk)
	}

	var extra [1]byte
	if n, _ := io.ReadFull(r, extra[:]); n > 0 {
		return nil, fmt.Errorf("trailing bytes after %dx%d payload: %w", rows, cols, ErrShapeMismatch)
	}

	return matrix.NewDenseFrom(rows, cols, data)
}

func decodeDataFirst(r io.Reader, bo binary.ByteOrder) (*matrix.Dense, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(raw) < headerSize {
		return nil, fmt.Errorf("%d bytes, need at least %d: %w", len(raw), headerSize, ErrShortFile)
	}
	payload, header := raw[:len(raw)-headerSize], raw[len(raw)-headerSize:]
	rows, cols, err := parseHeader(bo, header)
	if err != nil {
		return nil, err
	}
	if len(payload) != rows*cols*fieldSize {
		return nil, fmt.Errorf("header %dx%d wants %d data bytes, have %d: %w",
			rows, cols, rows*cols*fieldSize, len(payload), ErrShapeMismatch)
	}

	data := make([]int32, rows*cols)
	for i := range data {
		data[i] = int32(bo.Uint32(payload[i*fieldSize:]))
	}

	return matrix.NewDenseFrom(rows, cols, data)
}

// parseHeader decodes (rows, cols) and applies the header sanity rules.
func parseHeader(bo binary.ByteOrder, header []byte) (rows, cols int, err error) {
	r, c := bo.Uint32(header[0:]), bo.Uint32(header[fieldSize:])
	if r == 0 || c == 0 {
		return 0, 0, fmt.Errorf("shape %dx%d: %w", r, c, ErrBadHeader)
	}
	if uint64(r)*uint64(c) > MaxElements {
		return 0, 0, fmt.Errorf("shape %dx%d exceeds %d elements: %w", r, c, MaxElements, ErrBadHeader)
	}

	return int(r), int(c), nil
}

// shortOr maps io.EOF/io.ErrUnexpectedEOF to ErrShortFile and passes other
// read errors through.
func shortOr(err error, what string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%s: %w", what, ErrShortFile)
	}

	return fmt.Errorf("%s: %w", what, err)
}
