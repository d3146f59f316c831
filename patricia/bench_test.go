package patricia

import (
	"net/netip"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

func BenchmarkTrie_Insert(b *testing.B) {
	var (
		keys = getKeys(b, b.N)
		tr   = NewV4[int]()
	)

	b.ResetTimer()

	for i, k := range keys {
		_, _ = tr.Insert(k, i)
	}
}

func BenchmarkTrie_SearchExact(b *testing.B) {
	var (
		keys = getKeys(b, b.N)
		tr   = NewV4[int]()
	)

	for i, k := range keys {
		_, _ = tr.Insert(k, i)
	}

	b.ResetTimer()

	for _, k := range keys {
		_ = tr.SearchExact(k)
	}
}

func BenchmarkTrie_SearchBest(b *testing.B) {
	var (
		keys = getKeys(b, b.N)
		tr   = NewV4[int]()
	)

	for i, k := range keys {
		_, _ = tr.Insert(k, i)
	}

	b.ResetTimer()

	for _, k := range keys {
		_ = tr.SearchBest(k)
	}
}

func getKeys(b *testing.B, total int) []Key {
	const seed = 1234567890

	var (
		faker = gofakeit.New(seed)
		keys  = make([]Key, total)
	)

	for i := range keys {
		addr := netip.MustParseAddr(faker.IPv4Address())
		k, err := KeyFromPrefix(netip.PrefixFrom(addr, faker.Number(8, 32)))
		if err != nil {
			b.Fatal(err)
		}
		keys[i] = k
	}

	return keys
}
