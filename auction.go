package settlement

import (
	"github.com/calebcase/settlement/control"
	"github.com/calebcase/settlement/integer"
)

// Point is a decoded auction point.
type Point struct {
	Bump  uint32 `json:"bump"` // 24 bits
	Delta uint16 `json:"delta"`

	// Time is the absolute time of the point: the auction start plus the
	// deltas of this and every earlier point.
	Time uint64 `json:"time,omitempty"`
}

// walkPoints visits the auction points of length checked details in order.
// It stops early if fn returns false.
func walkPoints(details []byte, fn func(p Point) (more bool)) {
	h := header(details)

	t := h.AuctionStart()
	offset := h.Flags.PointsOffset()

	for i := 0; i < h.Flags.Points; i++ {
		bump := uint32(integer.At(details, offset, pointBumpWidth))
		delta := uint16(integer.At(details, offset+pointBumpWidth, pointDeltaWidth))
		offset += control.PointSize

		t += uint64(delta)

		if !fn(Point{Bump: bump, Delta: delta, Time: t}) {
			return
		}
	}
}

// Points returns the auction schedule in the order it appears in the
// details.
func Points(details []byte) (ps []Point, err error) {
	_, err = Length(details)
	if err != nil {
		return nil, err
	}

	walkPoints(details, func(p Point) bool {
		ps = append(ps, p)
		return true
	})

	return ps, nil
}

// RateBump returns the rate bump in effect at now.
//
// Until the auction starts the initial rate bump applies and after it
// finishes the rate bump is zero. In between the rate bump is linearly
// interpolated between the surrounding auction points, with the auction start
// at the initial rate bump and the auction finish at zero.
func RateBump(details []byte, now uint64) (bump uint64, err error) {
	h, err := ParseHeader(details)
	if err != nil {
		return 0, err
	}

	start := h.AuctionStart()
	finish := h.AuctionFinish()

	switch {
	case now <= start:
		return uint64(h.InitialRateBump), nil
	case now >= finish:
		return 0, nil
	}

	prevTime, prevBump := start, uint64(h.InitialRateBump)
	found := false

	walkPoints(details, func(p Point) bool {
		if p.Time > now {
			bump = interpolate(now, prevTime, prevBump, p.Time, uint64(p.Bump))
			found = true

			return false
		}

		prevTime, prevBump = p.Time, uint64(p.Bump)

		return true
	})
	if found {
		return bump, nil
	}

	return interpolate(now, prevTime, prevBump, finish, 0), nil
}

// interpolate returns the value at t on the line through (t1, v1) and
// (t2, v2). It requires t1 <= t < t2.
func interpolate(t, t1, v1, t2, v2 uint64) uint64 {
	return ((t-t1)*v2 + (t2-t)*v1) / (t2 - t1)
}
