package settlement

import (
	"github.com/calebcase/settlement/control"
	"github.com/calebcase/settlement/integer"
)

// Header field offsets and widths.
const (
	flagsOffset           = 0
	startTimeOffset       = 1
	auctionDelayOffset    = 5
	auctionDurationOffset = 7
	initialRateBumpOffset = 10
	resolverFeeOffset     = 13
	publicTimeDelayOffset = 17

	resolverIndexWidth = integer.Uint8
	resolverDeltaWidth = integer.Uint16
	pointBumpWidth     = integer.Uint24
	pointDeltaWidth    = integer.Uint16
	takingFeeWidth     = integer.Uint32
)

// Header is the fixed size prefix of the details.
type Header struct {
	Flags control.Flags `json:"-"`

	StartTime       uint32 `json:"startTime"`
	AuctionDelay    uint16 `json:"auctionDelay"`
	AuctionDuration uint32 `json:"auctionDuration"` // 24 bits
	InitialRateBump uint32 `json:"initialRateBump"` // 24 bits
	ResolverFee     uint32 `json:"resolverFee"`
	PublicTimeDelay uint16 `json:"publicTimeDelay"`
}

// AuctionStart is the time at which the rate bump starts to decay.
func (h Header) AuctionStart() uint64 {
	return uint64(h.StartTime) + uint64(h.AuctionDelay)
}

// AuctionFinish is the time at which the rate bump reaches zero.
func (h Header) AuctionFinish() uint64 {
	return h.AuctionStart() + uint64(h.AuctionDuration)
}

// PublicTime is the time after which any resolver may fill.
func (h Header) PublicTime() uint64 {
	return uint64(h.StartTime) + uint64(h.PublicTimeDelay)
}

// Length returns the number of bytes the details declare. It fails with
// TruncatedMessage if the details are shorter than that.
func Length(details []byte) (n int, err error) {
	if len(details) == 0 {
		return 0, TruncatedMessage.New("missing flags")
	}

	n = control.Parse(details[flagsOffset]).Length()
	if len(details) < n {
		return n, TruncatedMessage.New("details length %d < %d", len(details), n)
	}

	return n, nil
}

// ParseHeader validates the details length and decodes the header.
func ParseHeader(details []byte) (h Header, err error) {
	_, err = Length(details)
	if err != nil {
		return h, err
	}

	return header(details), nil
}

// header decodes the header of length checked details.
func header(details []byte) Header {
	return Header{
		Flags:           control.Parse(details[flagsOffset]),
		StartTime:       uint32(integer.At(details, startTimeOffset, integer.Uint32)),
		AuctionDelay:    uint16(integer.At(details, auctionDelayOffset, integer.Uint16)),
		AuctionDuration: uint32(integer.At(details, auctionDurationOffset, integer.Uint24)),
		InitialRateBump: uint32(integer.At(details, initialRateBumpOffset, integer.Uint24)),
		ResolverFee:     uint32(integer.At(details, resolverFeeOffset, integer.Uint32)),
		PublicTimeDelay: uint16(integer.At(details, publicTimeDelayOffset, integer.Uint16)),
	}
}

// ResolverFee returns the fixed fee owed per fill.
func ResolverFee(details []byte) (fee uint32, err error) {
	h, err := ParseHeader(details)
	if err != nil {
		return 0, err
	}

	return h.ResolverFee, nil
}

// appendHeader encodes h (except for the flags) after flags.
func appendHeader(dst []byte, flags byte, h Header) (_ []byte, err error) {
	dst = append(dst, flags)

	fields := []struct {
		width int
		value uint64
		name  string
	}{
		{integer.Uint32, uint64(h.StartTime), "start time"},
		{integer.Uint16, uint64(h.AuctionDelay), "auction delay"},
		{integer.Uint24, uint64(h.AuctionDuration), "auction duration"},
		{integer.Uint24, uint64(h.InitialRateBump), "initial rate bump"},
		{integer.Uint32, uint64(h.ResolverFee), "resolver fee"},
		{integer.Uint16, uint64(h.PublicTimeDelay), "public time delay"},
	}

	for _, f := range fields {
		dst, err = integer.Append(dst, f.width, f.value)
		if err != nil {
			return dst, Error.New("%s: %v", f.name, err)
		}
	}

	return dst, nil
}
