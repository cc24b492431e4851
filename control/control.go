package control

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("control")

// Section sizes in bytes.
const (
	HeaderSize    = 19
	ResolverSize  = 3
	PointSize     = 5
	TakingFeeSize = 24
)

// Flags is the decoded flags byte.
type Flags struct {
	HasTakingFee bool
	Resolvers    int
	Points       int
}

// Parse decodes the flags byte. Every byte value is a valid flags byte.
func Parse(b byte) Flags {
	return Flags{
		HasTakingFee: Fee.Get(b) == 1,
		Resolvers:    int(Resolvers.Get(b)),
		Points:       int(Points.Get(b)),
	}
}

// Byte encodes the flags. It fails if the resolver or point counts do not fit
// in their fields.
func (f Flags) Byte() (b byte, err error) {
	if f.Resolvers < 0 || f.Resolvers > int(Resolvers.Max()) {
		return 0, Error.New("too many resolvers: %d > %d", f.Resolvers, Resolvers.Max())
	}

	if f.Points < 0 || f.Points > int(Points.Max()) {
		return 0, Error.New("too many points: %d > %d", f.Points, Points.Max())
	}

	if f.HasTakingFee {
		b = Fee.Set(b, 1)
	}

	b = Resolvers.Set(b, uint8(f.Resolvers))
	b = Points.Set(b, uint8(f.Points))

	return b, nil
}

// ResolversOffset is the offset of the first resolver entry.
func (f Flags) ResolversOffset() int {
	return HeaderSize
}

// PointsOffset is the offset of the first auction point.
func (f Flags) PointsOffset() int {
	return HeaderSize + ResolverSize*f.Resolvers
}

// Length returns the number of bytes the details must contain.
func (f Flags) Length() int {
	n := f.PointsOffset() + PointSize*f.Points
	if f.HasTakingFee {
		n += TakingFeeSize
	}

	return n
}

func (f Flags) String() string {
	return fmt.Sprintf("%s=%t %s=%d %s=%d",
		Fee.Abbr, f.HasTakingFee,
		Resolvers.Abbr, f.Resolvers,
		Points.Abbr, f.Points,
	)
}
