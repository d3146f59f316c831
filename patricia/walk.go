package patricia

import "iter"

// Nodes returns an iterator over the active nodes in order: left subtree,
// the node itself, right subtree. Every call walks from the root again.
//
// The trie must not be modified while iterating; a yield function that does
// so makes the iterator panic with ErrModifiedDuringIteration.
func (t *Trie[V]) Nodes() iter.Seq[*Node[V]] {
	return func(yield func(*Node[V]) bool) {
		var (
			gen   = t.gen
			stack = make([]*Node[V], 0, t.width+1)
			n     = t.root
		)

		// walk the tree without function recursion
		for n != nil || len(stack) > 0 {
			for ; n != nil; n = n.child[0] {
				stack = append(stack, n)
			}

			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if n.active {
				if !yield(n) {
					return
				}
				if t.gen != gen {
					panic(ErrModifiedDuringIteration)
				}
			}

			n = n.child[1]
		}
	}
}

// All returns an iterator over the stored keys and values, in Nodes order.
func (t *Trie[V]) All() iter.Seq2[Key, V] {
	return func(yield func(Key, V) bool) {
		for n := range t.Nodes() {
			if !yield(n.key, n.val) {
				return
			}
		}
	}
}

// EachPair calls fn with every prefix in CIDR notation and its value.
func (t *Trie[V]) EachPair(fn func(key string, val V)) {
	for n := range t.Nodes() {
		fn(n.key.String(), n.val)
	}
}

// Keys returns all the stored prefixes in CIDR notation.
func (t *Trie[V]) Keys() []string {
	keys := make([]string, 0, t.size)
	for k := range t.All() {
		keys = append(keys, k.String())
	}
	return keys
}

// Values returns all the stored values, in the same order as Keys.
func (t *Trie[V]) Values() []V {
	vals := make([]V, 0, t.size)
	for _, v := range t.All() {
		vals = append(vals, v)
	}
	return vals
}
