package settlement_test

import (
	"fmt"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/settlement"
)

func TestCompress(t *testing.T) {
	id := settlement.Compress(alice)
	require.Equal(t, "0xaaaaaaaaaaaaaaaaaaaa", id.String())

	require.True(t, id.Matches(alice))
	require.True(t, id.Matches(mallory))
	require.False(t, id.Matches(bob))
}

func TestWhitelistAt(t *testing.T) {
	ids := []settlement.Compressed{
		settlement.Compress(alice),
		settlement.Compress(bob),
		settlement.Compress(carol),
	}

	table, err := settlement.AppendWhitelist(nil, ids)
	require.NoError(t, err)
	require.Len(t, table, 31)
	require.Equal(t, byte(3), table[30])

	interaction := interactionOf(table)

	k, err := settlement.WhitelistSize(interaction)
	require.NoError(t, err)
	require.Equal(t, 3, k)

	for i, id := range ids {
		got, err := settlement.WhitelistAt(interaction, i)
		require.NoError(t, err)
		require.Equal(t, id, got)
	}

	_, err = settlement.WhitelistAt(interaction, 3)
	require.Error(t, err)
	require.True(t, settlement.InvalidWhitelistStructure.Has(err))

	_, err = settlement.WhitelistAt(interaction, -1)
	require.Error(t, err)
	require.True(t, settlement.InvalidWhitelistStructure.Has(err))
}

func TestWhitelistSizeInvalid(t *testing.T) {
	type TC struct {
		name        string
		interaction []byte
		Mark        error
	}

	tcs := []TC{
		{
			name:        "empty",
			interaction: nil,
			Mark:        oops.New("unexpected"),
		},
		{
			name:        "count only",
			interaction: []byte{1},
			Mark:        oops.New("unexpected"),
		},
		{
			name:        "one byte short",
			interaction: append(make([]byte, 19), 2),
			Mark:        oops.New("unexpected"),
		},
		{
			name:        "max count",
			interaction: append(make([]byte, 2000), 255),
			Mark:        oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			_, err := settlement.WhitelistSize(tc.interaction)
			require.Error(t, err, tc.Mark)
			require.True(t, settlement.InvalidWhitelistStructure.Has(err), tc.Mark)
		})
	}

	k, err := settlement.WhitelistSize(append(make([]byte, 20), 2))
	require.NoError(t, err)
	require.Equal(t, 2, k)

	k, err = settlement.WhitelistSize([]byte{0})
	require.NoError(t, err)
	require.Equal(t, 0, k)
}

func TestAppendWhitelistTooLarge(t *testing.T) {
	_, err := settlement.AppendWhitelist(nil, make([]settlement.Compressed, 256))
	require.Error(t, err)
	require.True(t, settlement.Error.Has(err))
}

func TestResolvers(t *testing.T) {
	details, interaction := encode(t, fixture())

	rs, err := settlement.Resolvers(details, interaction)
	require.NoError(t, err)

	t.Logf("Resolvers: %s\n", spew.Sdump(rs))

	require.Equal(t, []settlement.Resolver{
		{Index: 0, ID: settlement.Compress(alice), Delta: 10, Time: 1_010},
		{Index: 1, ID: settlement.Compress(bob), Delta: 20, Time: 1_030},
	}, rs)
}

func TestAllowed(t *testing.T) {
	m := &settlement.Message{
		Header: settlement.Header{
			StartTime:       1_000,
			PublicTimeDelay: 300,
		},
		Resolvers: []settlement.WhitelistEntry{
			{Address: alice, Delta: 10},
			{Address: bob, Delta: 20},
			{Address: carol, Delta: 0},
			{Address: dave, Delta: 30},
			// Never considered: carol already matched above.
			{Address: carol, Delta: 0},
		},
	}

	details, interaction := encode(t, m)

	type TC struct {
		name     string
		resolver common.Address
		now      uint64
		ok       bool
		Mark     error
	}

	tcs := []TC{
		{
			name:     "alice at start",
			resolver: alice,
			now:      1_000,
			ok:       false,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "alice at activation",
			resolver: alice,
			now:      1_010,
			ok:       false,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "alice after activation",
			resolver: alice,
			now:      1_011,
			ok:       true,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "mallory shares alice's id",
			resolver: mallory,
			now:      1_011,
			ok:       true,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "bob before activation",
			resolver: bob,
			now:      1_020,
			ok:       false,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "bob after activation",
			resolver: bob,
			now:      1_031,
			ok:       true,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "carol activates with bob",
			resolver: carol,
			now:      1_031,
			ok:       true,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "dave before activation",
			resolver: dave,
			now:      1_060,
			ok:       false,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "dave after activation",
			resolver: dave,
			now:      1_061,
			ok:       true,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "eve not listed",
			resolver: eve,
			now:      1_200,
			ok:       false,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "eve at public time",
			resolver: eve,
			now:      1_300,
			ok:       false,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "eve after public time",
			resolver: eve,
			now:      1_301,
			ok:       true,
			Mark:     oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			ok, err := settlement.Allowed(details, interaction, tc.resolver, tc.now)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.ok, ok, tc.Mark)
		})
	}
}

func TestAllowedFirstMatchDecides(t *testing.T) {
	m := &settlement.Message{
		Header: settlement.Header{
			StartTime:       1_000,
			PublicTimeDelay: 1_000,
		},
		Resolvers: []settlement.WhitelistEntry{
			{Address: carol, Delta: 10},
			{Address: dave, Delta: 50},
			{Address: carol, Delta: 0},
		},
	}

	details, interaction := encode(t, m)

	// The second carol entry only activates at 1060, but the first one
	// already decided.
	ok, err := settlement.Allowed(details, interaction, carol, 1_020)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = settlement.Allowed(details, interaction, carol, 1_010)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAllowedPublicWithoutWhitelist(t *testing.T) {
	m := &settlement.Message{
		Header: settlement.Header{
			StartTime:       1_000,
			PublicTimeDelay: 0,
		},
	}

	details, _, err := m.Encode()
	require.NoError(t, err)

	// The address table is not consulted when there are no resolvers.
	ok, err := settlement.Allowed(details, nil, eve, 1_000)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = settlement.Allowed(details, nil, eve, 1_001)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAllowedInvalidWhitelist(t *testing.T) {
	m := &settlement.Message{
		Header: settlement.Header{
			StartTime:       1_000,
			PublicTimeDelay: 300,
		},
		Resolvers: []settlement.WhitelistEntry{
			{Address: alice, Delta: 10},
			{Address: bob, Delta: 20},
		},
	}

	details, interaction := encode(t, m)

	t.Run("index equals table size", func(t *testing.T) {
		bad := append([]byte(nil), details...)
		bad[19] = 2

		_, err := settlement.Allowed(bad, interaction, bob, 1_100)
		require.Error(t, err)
		require.True(t, settlement.InvalidWhitelistStructure.Has(err))
	})

	t.Run("table larger than interaction", func(t *testing.T) {
		_, err := settlement.Allowed(details, []byte{0, 0, 3}, alice, 1_100)
		require.Error(t, err)
		require.True(t, settlement.InvalidWhitelistStructure.Has(err))
	})

	t.Run("public time skips the whitelist", func(t *testing.T) {
		ok, err := settlement.Allowed(details, nil, alice, 1_301)
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := settlement.Allowed(details[:len(details)-1], interaction, alice, 1_301)
		require.Error(t, err)
		require.True(t, settlement.TruncatedMessage.Has(err))
	})
}
