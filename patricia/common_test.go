package patricia

import (
	"encoding/binary"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustKey(t testing.TB, s string) Key {
	t.Helper()

	k, err := KeyFromPrefix(netip.MustParsePrefix(s))
	require.NoError(t, err)

	return k
}

func hostKey(t testing.TB, addr netip.Addr) Key {
	t.Helper()

	k, err := KeyFromPrefix(netip.PrefixFrom(addr, addr.BitLen()))
	require.NoError(t, err)

	return k
}

func int2addr(val uint32) netip.Addr {
	var a [4]byte
	binary.BigEndian.PutUint32(a[:], val)
	return netip.AddrFrom4(a)
}

func newTrie(t testing.TB, prefixes ...string) *Trie[string] {
	t.Helper()

	tr := NewV4[string]()
	for _, s := range prefixes {
		_, err := tr.Insert(mustKey(t, s), s)
		require.NoError(t, err)
	}
	require.NoError(t, tr.verify())

	return tr
}
