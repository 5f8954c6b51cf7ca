// SPDX-License-Identifier: MIT

package matfile

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/QuadnucYard/dsa-practice-code/matrix"
)

// WriteFile creates or truncates path and writes m in format f through a
// buffered writer. The file handle is closed on every path; the first error
// among encode, flush and close is returned.
//
// Concurrent writers to the same path are not coordinated: the last one
// wins and a reader may observe a partially written file.
func WriteFile(path string, m *matrix.Dense, f Format) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("matfile: %w", err)
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("matfile: %w", cerr)
		}
	}()

	bw := bufio.NewWriterSize(fh, blockSize)
	if err = Encode(bw, m, f); err != nil {
		return fmt.Errorf("matfile: %s: %w", path, err)
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("matfile: %s: %w", path, err)
	}

	return nil
}

// ReadFile opens path and decodes one matrix in format f.
func ReadFile(path string, f Format) (*matrix.Dense, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matfile: %w", err)
	}
	defer fh.Close()

	m, err := Decode(bufio.NewReaderSize(fh, blockSize), f)
	if err != nil {
		return nil, fmt.Errorf("matfile: %s: %w", path, err)
	}

	return m, nil
}

// Probe reports which layouts are consistent with the file at path when
// read in byte order o: the candidate header must hold non-zero dimensions
// whose payload exactly fills the rest of the file. An empty result means
// neither layout fits. A small matrix can fit both.
func Probe(path string, o Order) ([]Layout, error) {
	bo, err := o.byteOrder()
	if err != nil {
		return nil, fmt.Errorf("matfile: Probe: %w", err)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matfile: %w", err)
	}
	defer fh.Close()

	st, err := fh.Stat()
	if err != nil {
		return nil, fmt.Errorf("matfile: %w", err)
	}
	size := st.Size()
	if size < headerSize {
		return nil, nil
	}

	var head, tail [headerSize]byte
	if _, err = fh.ReadAt(head[:], 0); err != nil && err != io.EOF {
		return nil, fmt.Errorf("matfile: %w", err)
	}
	if _, err = fh.ReadAt(tail[:], size-headerSize); err != nil && err != io.EOF {
		return nil, fmt.Errorf("matfile: %w", err)
	}

	var out []Layout
	if fits(bo, head[:], size) {
		out = append(out, HeaderFirst)
	}
	if fits(bo, tail[:], size) {
		out = append(out, DataFirst)
	}

	return out, nil
}

func fits(bo binary.ByteOrder, header []byte, size int64) bool {
	r, c := int64(bo.Uint32(header[0:])), int64(bo.Uint32(header[fieldSize:]))

	return r > 0 && c > 0 && headerSize+r*c*fieldSize == size
}
