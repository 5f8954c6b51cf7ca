// SPDX-License-Identifier: MIT

package matfile

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// FormatVersion identifies the header-first/data-first pair of layouts
// described in this package. Manifests record it next to the Format.
const FormatVersion = 1

const (
	headerFields = 2
	fieldSize    = 4
	headerSize   = headerFields * fieldSize

	// blockSize is the I/O chunk in bytes used by Encode/Decode.
	blockSize = 4096

	// MaxElements caps rows*cols accepted from a header so a corrupt file
	// cannot request an absurd allocation.
	MaxElements = 1 << 30
)

// Layout says where the shape header sits relative to the element data.
type Layout int

const (
	// HeaderFirst writes (rows, cols) before the elements.
	HeaderFirst Layout = iota
	// DataFirst writes the elements first and (rows, cols) as the last 8 bytes.
	DataFirst
)

// String returns "header-first" or "data-first".
func (l Layout) String() string {
	switch l {
	case HeaderFirst:
		return "header-first"
	case DataFirst:
		return "data-first"
	}

	return fmt.Sprintf("Layout(%d)", int(l))
}

func (l Layout) valid() bool { return l == HeaderFirst || l == DataFirst }

// ParseLayout accepts "header-first"/"header" and "data-first"/"data".
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "header-first", "header":
		return HeaderFirst, nil
	case "data-first", "data":
		return DataFirst, nil
	}

	return 0, fmt.Errorf("ParseLayout(%q): %w", s, ErrUnknownLayout)
}

// Order selects the byte order of every field.
type Order int

const (
	// Native is the byte order of the running host.
	Native Order = iota
	// LittleEndian forces little-endian fields.
	LittleEndian
	// BigEndian forces big-endian fields.
	BigEndian
)

// String returns "native", "little" or "big".
func (o Order) String() string {
	switch o {
	case Native:
		return "native"
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	}

	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder accepts "native", "little"/"le" and "big"/"be".
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "native", "":
		return Native, nil
	case "little", "le", "little-endian":
		return LittleEndian, nil
	case "big", "be", "big-endian":
		return BigEndian, nil
	}

	return 0, fmt.Errorf("ParseOrder(%q): %w", s, ErrUnknownOrder)
}

// Resolve maps Native to the concrete order of this host; explicit orders
// are returned unchanged.
func (o Order) Resolve() Order {
	if o != Native {
		return o
	}
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 1)
	if probe[0] == 1 {
		return LittleEndian
	}

	return BigEndian
}

// fieldOrder is implemented by binary.LittleEndian, binary.BigEndian and
// binary.NativeEndian.
type fieldOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

func (o Order) byteOrder() (fieldOrder, error) {
	switch o {
	case Native:
		return binary.NativeEndian, nil
	case LittleEndian:
		return binary.LittleEndian, nil
	case BigEndian:
		return binary.BigEndian, nil
	}

	return nil, fmt.Errorf("%v: %w", o, ErrUnknownOrder)
}

// Format is the complete on-disk convention of a matrix file.
type Format struct {
	Layout Layout
	Order  Order
}

// The two historical producers. Both wrote host byte order.
var (
	// SweepFormat is used by the square-size sweep and the fixed 8×8×8 set.
	SweepFormat = Format{Layout: HeaderFirst, Order: Native}
	// ArgsFormat is used by the argument-driven generator.
	ArgsFormat = Format{Layout: DataFirst, Order: Native}
)

// String renders "header-first/little" etc.
func (f Format) String() string { return f.Layout.String() + "/" + f.Order.String() }

// Resolve returns f with a concrete byte order.
func (f Format) Resolve() Format { return Format{Layout: f.Layout, Order: f.Order.Resolve()} }

// ParseFormat builds a Format from a layout name and an order name.
func ParseFormat(layout, order string) (Format, error) {
	l, err := ParseLayout(layout)
	if err != nil {
		return Format{}, err
	}
	o, err := ParseOrder(order)
	if err != nil {
		return Format{}, err
	}

	return Format{Layout: l, Order: o}, nil
}

// check validates f and returns its byte order.
func (f Format) check() (fieldOrder, error) {
	if !f.Layout.valid() {
		return nil, fmt.Errorf("%v: %w", f.Layout, ErrUnknownLayout)
	}

	return f.Order.byteOrder()
}

// Validate returns ErrUnknownLayout or ErrUnknownOrder for an invalid f.
func (f Format) Validate() error {
	_, err := f.check()

	return err
}
