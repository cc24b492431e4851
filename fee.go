package settlement

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/calebcase/settlement/control"
	"github.com/calebcase/settlement/integer"
)

// TakingFee is the optional fee block at the end of the details. The zero
// value means no taking fee.
type TakingFee struct {
	Amount    uint32         `json:"amount"`
	Recipient common.Address `json:"recipient"`
}

// Packed returns the fee as a single value with the recipient in the low 160
// bits and the amount in the 32 bits above it.
func (f TakingFee) Packed() *big.Int {
	return integer.Pack(appendTakingFee(nil, f))
}

// IsZero reports whether f is the no fee sentinel.
func (f TakingFee) IsZero() bool {
	return f == TakingFee{}
}

// TakingFeeOf returns the taking fee of the details, or the zero TakingFee if
// the details do not carry one.
func TakingFeeOf(details []byte) (fee TakingFee, err error) {
	h, err := ParseHeader(details)
	if err != nil {
		return fee, err
	}

	if !h.Flags.HasTakingFee {
		return fee, nil
	}

	block := details[len(details)-control.TakingFeeSize:]

	fee.Amount = uint32(integer.At(block, 0, takingFeeWidth))
	copy(fee.Recipient[:], block[takingFeeWidth:])

	return fee, nil
}

// appendTakingFee encodes f.
func appendTakingFee(dst []byte, f TakingFee) []byte {
	var amount [takingFeeWidth]byte

	// A uint32 always fits.
	_ = integer.Put(amount[:], uint64(f.Amount))

	dst = append(dst, amount[:]...)

	return append(dst, f.Recipient[:]...)
}
