// Package integer reads and writes fixed-width unsigned big-endian integers.
//
// Fields in the settlement details are packed back to back without padding
// and with widths that do not line up with Go's integer types (e.g. 3 byte
// durations and rate bumps). Values are always unsigned, so there is no sign
// extension: the most significant byte comes first and missing high bytes are
// zero.
package integer

import (
	"math/big"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

// Field widths in bytes.
const (
	Uint8  = 1
	Uint16 = 2
	Uint24 = 3
	Uint32 = 4
	Uint64 = 8
)

// Max returns the largest value representable in width bytes.
func Max(width int) uint64 {
	if width >= Uint64 {
		return ^uint64(0)
	}

	return uint64(1)<<(8*uint(width)) - 1
}

// Uint decodes data as a big-endian unsigned integer. The width of the field
// is len(data) and must not exceed 8 bytes.
func Uint(data []byte) uint64 {
	var v uint64

	for _, b := range data {
		v = v<<8 | uint64(b)
	}

	return v
}

// At decodes the width byte field at offset. The caller is responsible for
// bounds checking.
func At(data []byte, offset, width int) uint64 {
	return Uint(data[offset : offset+width])
}

// Put encodes v into data as a big-endian unsigned integer filling all of
// data. It fails if v does not fit.
func Put(data []byte, v uint64) (err error) {
	if len(data) > Uint64 {
		return Error.New("invalid width: %d", len(data))
	}

	if v > Max(len(data)) {
		return Error.New("overflow: %d does not fit in %d bytes", v, len(data))
	}

	for i := len(data) - 1; i >= 0; i-- {
		data[i] = byte(v)
		v >>= 8
	}

	return nil
}

// Append appends v to dst as a width byte big-endian integer.
func Append(dst []byte, width int, v uint64) (_ []byte, err error) {
	var buf [Uint64]byte

	if width < 0 || width > Uint64 {
		return dst, Error.New("invalid width: %d", width)
	}

	err = Put(buf[:width], v)
	if err != nil {
		return dst, err
	}

	return append(dst, buf[:width]...), nil
}

// Pack concatenates the big-endian fields into a single value with the first
// field in the most significant position.
//
// Note: big.Int encodes zero as an empty byte array so a zero value packs as
// zero regardless of the field widths.
func Pack(fields ...[]byte) *big.Int {
	var size int
	for _, f := range fields {
		size += len(f)
	}

	data := make([]byte, 0, size)
	for _, f := range fields {
		data = append(data, f...)
	}

	return new(big.Int).SetBytes(data)
}
