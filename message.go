package settlement

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/calebcase/settlement/control"
	"github.com/calebcase/settlement/integer"
)

// WhitelistEntry grants Address the right to fill Delta seconds after the
// previous entry (or the start time for the first entry).
type WhitelistEntry struct {
	Address common.Address `json:"address"`
	Delta   uint16         `json:"delta"`
}

// Message is the maker's view of the settlement details, with full resolver
// addresses instead of address table indexes.
type Message struct {
	// Header.Flags is ignored; it is derived from the other fields.
	Header Header `json:"header"`

	Resolvers []WhitelistEntry `json:"resolvers,omitempty"`

	// Point.Time is ignored.
	Points []Point `json:"points,omitempty"`

	TakingFee *TakingFee `json:"takingFee,omitempty"`
}

// Flags returns the flags byte describing m.
func (m *Message) Flags() control.Flags {
	return control.Flags{
		HasTakingFee: m.TakingFee != nil,
		Resolvers:    len(m.Resolvers),
		Points:       len(m.Points),
	}
}

// Whitelist returns the distinct compressed resolver addresses in the order
// they are first listed.
func (m *Message) Whitelist() (ids []Compressed) {
	seen := map[Compressed]bool{}

	for _, r := range m.Resolvers {
		id := Compress(r.Address)
		if seen[id] {
			continue
		}

		seen[id] = true
		ids = append(ids, id)
	}

	return ids
}

// Encode returns the compact details and the address table their indexes
// refer to. The address table must be placed at the very end of the
// interaction.
func (m *Message) Encode() (details, table []byte, err error) {
	defer Error.WrapP(&err)

	flags := m.Flags()

	fb, err := flags.Byte()
	if err != nil {
		return nil, nil, err
	}

	ids := m.Whitelist()

	table, err = AppendWhitelist(nil, ids)
	if err != nil {
		return nil, nil, err
	}

	index := make(map[Compressed]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	details = make([]byte, 0, flags.Length())

	details, err = appendHeader(details, fb, m.Header)
	if err != nil {
		return nil, nil, err
	}

	for _, r := range m.Resolvers {
		details = append(details, byte(index[Compress(r.Address)]))
		details, err = integer.Append(details, resolverDeltaWidth, uint64(r.Delta))
		if err != nil {
			return nil, nil, err
		}
	}

	details, err = m.appendPoints(details)
	if err != nil {
		return nil, nil, err
	}

	if m.TakingFee != nil {
		details = appendTakingFee(details, *m.TakingFee)
	}

	return details, table, nil
}

// Hash returns the digest the maker signs. It equals Hash over the encoded
// details and any interaction ending in their address table.
func (m *Message) Hash() (h common.Hash, err error) {
	defer Error.WrapP(&err)

	flags := m.Flags()

	fb, err := flags.Byte()
	if err != nil {
		return h, err
	}

	preimage := make([]byte, 0, signedLength(flags))

	preimage, err = appendHeader(preimage, fb, m.Header)
	if err != nil {
		return h, err
	}

	for _, r := range m.Resolvers {
		id := Compress(r.Address)
		preimage = append(preimage, id[:]...)
		preimage, err = integer.Append(preimage, resolverDeltaWidth, uint64(r.Delta))
		if err != nil {
			return h, err
		}
	}

	preimage, err = m.appendPoints(preimage)
	if err != nil {
		return h, err
	}

	if m.TakingFee != nil {
		preimage = appendTakingFee(preimage, *m.TakingFee)
	}

	return crypto.Keccak256Hash(preimage), nil
}

func (m *Message) appendPoints(dst []byte) (_ []byte, err error) {
	for i, p := range m.Points {
		dst, err = integer.Append(dst, pointBumpWidth, uint64(p.Bump))
		if err != nil {
			return dst, Error.New("point %d bump: %v", i, err)
		}

		dst, err = integer.Append(dst, pointDeltaWidth, uint64(p.Delta))
		if err != nil {
			return dst, Error.New("point %d delta: %v", i, err)
		}
	}

	return dst, nil
}
