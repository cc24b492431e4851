package settlement_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/settlement"
)

var (
	alice = common.HexToAddress("0x11111111111111111111aaaaaaaaaaaaaaaaaaaa")
	bob   = common.HexToAddress("0x22222222222222222222bbbbbbbbbbbbbbbbbbbb")
	carol = common.HexToAddress("0x33333333333333333333cccccccccccccccccccc")
	dave  = common.HexToAddress("0x44444444444444444444dddddddddddddddddddd")
	eve   = common.HexToAddress("0x55555555555555555555eeeeeeeeeeeeeeeeeeee")

	// mallory shares the low 80 bits of alice.
	mallory = common.HexToAddress("0x99999999999999999999aaaaaaaaaaaaaaaaaaaa")

	recipient = common.HexToAddress("0x00000000000000000000000000000000000f33d5")
)

// calldata stands in for the rest of the interaction the address table is
// appended to.
var calldata = []byte("resolver calldata that precedes the address table")

func interactionOf(table []byte) []byte {
	interaction := make([]byte, 0, len(calldata)+len(table))
	interaction = append(interaction, calldata...)

	return append(interaction, table...)
}

func encode(t *testing.T, m *settlement.Message) (details, interaction []byte) {
	t.Helper()

	details, table, err := m.Encode()
	require.NoError(t, err)

	return details, interactionOf(table)
}

// fixture is a message with every section populated.
func fixture() *settlement.Message {
	return &settlement.Message{
		Header: settlement.Header{
			StartTime:       1_000,
			AuctionDelay:    10,
			AuctionDuration: 100,
			InitialRateBump: 1_000,
			ResolverFee:     7_777,
			PublicTimeDelay: 300,
		},
		Resolvers: []settlement.WhitelistEntry{
			{Address: alice, Delta: 10},
			{Address: bob, Delta: 20},
		},
		Points: []settlement.Point{
			{Bump: 600, Delta: 20},
			{Bump: 200, Delta: 40},
		},
		TakingFee: &settlement.TakingFee{
			Amount:    42,
			Recipient: recipient,
		},
	}
}
