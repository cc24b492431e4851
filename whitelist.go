package settlement

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/calebcase/settlement/control"
	"github.com/calebcase/settlement/integer"
)

// CompressedSize is the size of an address table entry.
const CompressedSize = 10

// MaxWhitelistSize is the largest address table the count byte can declare.
const MaxWhitelistSize = 255

// Compressed is the low 80 bits of an address.
type Compressed [CompressedSize]byte

// Compress returns the low 80 bits of addr.
func Compress(addr common.Address) (c Compressed) {
	copy(c[:], addr[common.AddressLength-CompressedSize:])

	return c
}

// Matches reports whether c is the compressed form of addr.
func (c Compressed) Matches(addr common.Address) bool {
	return bytes.Equal(c[:], addr[common.AddressLength-CompressedSize:])
}

func (c Compressed) String() string {
	return hexutil.Encode(c[:])
}

// MarshalText implements encoding.TextMarshaler.
func (c Compressed) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// WhitelistSize returns the number of entries the address table at the end
// of the interaction declares. It fails with InvalidWhitelistStructure if the
// declared entries do not fit in the interaction.
func WhitelistSize(interaction []byte) (k int, err error) {
	if len(interaction) == 0 {
		return 0, InvalidWhitelistStructure.New("missing address table size")
	}

	k = int(interaction[len(interaction)-1])
	if 1+CompressedSize*k > len(interaction) {
		return k, InvalidWhitelistStructure.New(
			"address table size %d exceeds interaction length %d",
			k,
			len(interaction),
		)
	}

	return k, nil
}

// WhitelistAt returns the compressed address at index i of the address table
// at the end of the interaction.
func WhitelistAt(interaction []byte, i int) (c Compressed, err error) {
	k, err := WhitelistSize(interaction)
	if err != nil {
		return c, err
	}

	if i < 0 || i >= k {
		return c, InvalidWhitelistStructure.New("index %d out of range [0, %d)", i, k)
	}

	start := len(interaction) - 1 - CompressedSize*k + CompressedSize*i
	copy(c[:], interaction[start:start+CompressedSize])

	return c, nil
}

// AppendWhitelist appends an address table containing ids to dst.
func AppendWhitelist(dst []byte, ids []Compressed) (_ []byte, err error) {
	if len(ids) > MaxWhitelistSize {
		return dst, Error.New("too many address table entries: %d > %d", len(ids), MaxWhitelistSize)
	}

	for _, id := range ids {
		dst = append(dst, id[:]...)
	}

	return append(dst, byte(len(ids))), nil
}

// Resolver is a decoded whitelist entry.
type Resolver struct {
	Index int        `json:"index"`
	ID    Compressed `json:"id"`
	Delta uint16     `json:"delta"`

	// Time is the cumulative activation time of the entry: the resolver may
	// fill once the current time is past it.
	Time uint64 `json:"time"`
}

// walkResolvers visits the whitelist of length checked details in order. It
// stops early if fn returns false.
func walkResolvers(details, interaction []byte, fn func(r Resolver) (more bool)) (err error) {
	h := header(details)

	t := uint64(h.StartTime)
	offset := h.Flags.ResolversOffset()

	for i := 0; i < h.Flags.Resolvers; i++ {
		index := int(integer.At(details, offset, resolverIndexWidth))
		delta := uint16(integer.At(details, offset+resolverIndexWidth, resolverDeltaWidth))
		offset += control.ResolverSize

		t += uint64(delta)

		id, err := WhitelistAt(interaction, index)
		if err != nil {
			return err
		}

		if !fn(Resolver{Index: index, ID: id, Delta: delta, Time: t}) {
			break
		}
	}

	return nil
}

// Resolvers returns the whitelist in the order it appears in the details.
func Resolvers(details, interaction []byte) (rs []Resolver, err error) {
	_, err = Length(details)
	if err != nil {
		return nil, err
	}

	err = walkResolvers(details, interaction, func(r Resolver) bool {
		rs = append(rs, r)
		return true
	})
	if err != nil {
		return nil, err
	}

	return rs, nil
}

// Allowed reports whether resolver may execute the settlement at now.
//
// Anyone may once now is past the public time. Before that only whitelisted
// resolvers may, each once now is past its activation time. The first entry
// matching the resolver decides; later entries for the same id are ignored.
func Allowed(details, interaction []byte, resolver common.Address, now uint64) (ok bool, err error) {
	h, err := ParseHeader(details)
	if err != nil {
		return false, err
	}

	if now > h.PublicTime() {
		return true, nil
	}

	err = walkResolvers(details, interaction, func(r Resolver) bool {
		if !r.ID.Matches(resolver) {
			return true
		}

		ok = now > r.Time

		return false
	})
	if err != nil {
		return false, err
	}

	return ok, nil
}
