package radix

import (
	"io"
	"iter"
	"net/netip"

	"github.com/aglyzov/go-radix/patricia"
)

// Table maps IP prefixes to values. It is not safe for concurrent use.
type Table[V any] struct {
	trie4 *patricia.Trie[V]
	trie6 *patricia.Trie[V]
}

func New[V any]() *Table[V] {
	return &Table[V]{
		trie4: patricia.NewV4[V](),
		trie6: patricia.NewV6[V](),
	}
}

// trie picks the trie of the key family.
func (t *Table[V]) trie(k patricia.Key) *patricia.Trie[V] {
	if k.Width() == patricia.Width4 {
		return t.trie4
	}
	return t.trie6
}

// Insert stores val under exactly pfx, replacing the value of an existing
// entry, and returns the node holding it.
func (t *Table[V]) Insert(pfx netip.Prefix, val V) (*patricia.Node[V], error) {
	k, err := patricia.KeyFromPrefix(pfx)
	if err != nil {
		return nil, err
	}
	return t.trie(k).Insert(k, val)
}

// Set is Insert without the node: an exact store, NOT the counterpart of Get.
func (t *Table[V]) Set(pfx netip.Prefix, val V) error {
	_, err := t.Insert(pfx, val)
	return err
}

// Add stores pfx with a zero value unless it is already present.
func (t *Table[V]) Add(pfx netip.Prefix) (*patricia.Node[V], error) {
	k, err := patricia.KeyFromPrefix(pfx)
	if err != nil {
		return nil, err
	}

	n, _, err := t.trie(k).Add(k)

	return n, err
}

// Get returns the longest stored prefix covering pfx (best match), or nil.
// Unlike Set it does not look for pfx itself.
func (t *Table[V]) Get(pfx netip.Prefix) *patricia.Node[V] {
	return t.SearchBest(pfx)
}

// SearchBest returns the longest stored prefix covering pfx, or nil.
func (t *Table[V]) SearchBest(pfx netip.Prefix) *patricia.Node[V] {
	k, err := patricia.KeyFromPrefix(pfx)
	if err != nil {
		return nil
	}
	return t.trie(k).SearchBest(k)
}

// SearchExact returns the entry stored under exactly pfx, or nil.
func (t *Table[V]) SearchExact(pfx netip.Prefix) *patricia.Node[V] {
	k, err := patricia.KeyFromPrefix(pfx)
	if err != nil {
		return nil
	}
	return t.trie(k).SearchExact(k)
}

// Lookup returns the longest stored prefix containing addr, or nil.
func (t *Table[V]) Lookup(addr netip.Addr) *patricia.Node[V] {
	if !addr.IsValid() {
		return nil
	}
	return t.SearchBest(netip.PrefixFrom(addr, addr.BitLen()))
}

// Delete removes the entry stored under exactly pfx and returns its value.
func (t *Table[V]) Delete(pfx netip.Prefix) (val V, ok bool) {
	k, err := patricia.KeyFromPrefix(pfx)
	if err != nil {
		return
	}
	return t.trie(k).Remove(k)
}

// Len returns the number of stored prefixes of both families.
func (t *Table[V]) Len() int {
	return t.trie4.Len() + t.trie6.Len()
}

func (t *Table[V]) Clear() {
	t.trie4.Clear()
	t.trie6.Clear()
}

// All returns an iterator over all the entries: IPv4 first, then IPv6, each
// family in trie order.
func (t *Table[V]) All() iter.Seq2[netip.Prefix, V] {
	return func(yield func(netip.Prefix, V) bool) {
		for _, tr := range []*patricia.Trie[V]{t.trie4, t.trie6} {
			for k, v := range tr.All() {
				if !yield(k.Prefix(), v) {
					return
				}
			}
		}
	}
}

// EachPair calls fn with every prefix in CIDR notation and its value.
func (t *Table[V]) EachPair(fn func(key string, val V)) {
	t.trie4.EachPair(fn)
	t.trie6.EachPair(fn)
}

// Keys returns all the prefixes in CIDR notation, in All order.
func (t *Table[V]) Keys() []string {
	return append(t.trie4.Keys(), t.trie6.Keys()...)
}

// Values returns all the values, in All order.
func (t *Table[V]) Values() []V {
	return append(t.trie4.Values(), t.trie6.Values()...)
}

// ToMap copies the table into a map keyed by CIDR strings.
func (t *Table[V]) ToMap() map[string]V {
	m := make(map[string]V, t.Len())
	t.EachPair(func(k string, v V) {
		m[k] = v
	})
	return m
}

// Dump writes the structure of both tries to w.
func (t *Table[V]) Dump(w io.Writer) {
	t.trie4.Dump(w)
	t.trie6.Dump(w)
}
