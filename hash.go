package settlement

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/calebcase/settlement/control"
)

// signedResolverSize is the size of a resolver entry in the signed form of
// the details: the compressed address followed by the time delta.
const signedResolverSize = CompressedSize + resolverDeltaWidth

// signedLength returns the size of the signed form of details with flags.
func signedLength(flags control.Flags) int {
	n := control.HeaderSize +
		signedResolverSize*flags.Resolvers +
		control.PointSize*flags.Points
	if flags.HasTakingFee {
		n += control.TakingFeeSize
	}

	return n
}

// Hash returns the Keccak-256 digest of the details as the maker signed them:
// with every resolver index replaced by the compressed address it refers to
// in the address table of the interaction.
//
// The digest does not depend on where in the address table a resolver's
// address is stored, only on the address itself.
func Hash(details, interaction []byte) (h common.Hash, err error) {
	_, err = Length(details)
	if err != nil {
		return h, err
	}

	flags := control.Parse(details[flagsOffset])

	preimage := make([]byte, 0, signedLength(flags))
	preimage = append(preimage, details[:control.HeaderSize]...)

	err = walkResolvers(details, interaction, func(r Resolver) bool {
		preimage = append(preimage, r.ID[:]...)
		preimage = append(preimage, byte(r.Delta>>8), byte(r.Delta))

		return true
	})
	if err != nil {
		return h, err
	}

	points := flags.PointsOffset()
	preimage = append(preimage, details[points:points+control.PointSize*flags.Points]...)

	if flags.HasTakingFee {
		preimage = append(preimage, details[len(details)-control.TakingFeeSize:]...)
	}

	return crypto.Keccak256Hash(preimage), nil
}
