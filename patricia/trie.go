package patricia

import (
	"fmt"

	"github.com/pkg/errors"
)

// Trie is a PATRICIA trie over prefixes of one address family.
//
// Only the bits where stored keys diverge are materialized as branch nodes,
// so the number of nodes stays below twice the number of stored prefixes.
// A Trie is not safe for concurrent use; callers must serialize access.
type Trie[V any] struct {
	root  *Node[V]
	width int
	size  int
	// gen changes on every mutation, iterators use it to detect one
	gen uint64
}

// New returns an empty trie for keys of the given width (Width4 or Width6).
func New[V any](width int) *Trie[V] {
	if width != Width4 && width != Width6 {
		panic(fmt.Sprintf("patricia: unsupported key width %d", width))
	}
	return &Trie[V]{width: width}
}

func NewV4[V any]() *Trie[V] { return New[V](Width4) }
func NewV6[V any]() *Trie[V] { return New[V](Width6) }

// Width returns the key width the trie was created for.
func (t *Trie[V]) Width() int {
	return t.width
}

// Len returns the number of stored prefixes.
func (t *Trie[V]) Len() int {
	return t.size
}

// Clear drops all the nodes.
func (t *Trie[V]) Clear() {
	t.root = nil
	t.size = 0
	t.gen++
}

// Insert stores val under k. An existing exact entry gets its value replaced,
// otherwise a new node is created. It returns the node holding val.
func (t *Trie[V]) Insert(k Key, val V) (*Node[V], error) {
	if k.Width() != t.width {
		return nil, errors.Wrapf(ErrFamilyMismatch, "%d bit key into a %d bit trie", k.Width(), t.width)
	}

	n, _ := t.insert(k)
	n.val = val

	return n, nil
}

// Add stores k with a zero value unless it is already present; an existing
// value is left alone. It reports whether a node was created.
func (t *Trie[V]) Add(k Key) (*Node[V], bool, error) {
	if k.Width() != t.width {
		return nil, false, errors.Wrapf(ErrFamilyMismatch, "%d bit key into a %d bit trie", k.Width(), t.width)
	}

	n, added := t.insert(k)

	return n, added, nil
}

// insert finds or creates the active node for k.
func (t *Trie[V]) insert(k Key) (*Node[V], bool) {
	length := k.Len()

	if t.root == nil {
		t.root = &Node[V]{bit: length, key: k, active: true}
		t.grow()
		return t.root, true
	}

	// walk down to a leaf-most active node along k's bits
	n := t.root
	for n.bit < length || !n.active {
		next := n.child[k.bit(n.bit)]
		if next == nil {
			break
		}
		n = next
	}

	// find the first differing bit
	leaf := n
	differ := k.commonLen(leaf.key, min(leaf.bit, length))

	// climb to the highest node still branching at or below it
	for n.parent != nil && n.parent.bit >= differ {
		n = n.parent
	}

	if differ == length && n.bit == length {
		if !n.active {
			// promote a glue node sitting exactly at k
			n.key = k
			n.active = true
			t.grow()
			return n, true
		}
		return n, false
	}

	nn := &Node[V]{bit: length, key: k, active: true}
	t.grow()

	switch {
	case n.bit == differ:
		// k extends n
		nn.parent = n
		n.child[k.bit(n.bit)] = nn
	case differ == length:
		// k is a prefix of everything below n
		nn.child[leaf.key.bit(length)] = n
		t.replace(n, nn)
		n.parent = nn
	default:
		// k and n split at differ: join them under a glue node
		glue := &Node[V]{bit: differ}
		dir := k.bit(differ)
		glue.child[dir] = nn
		glue.child[1-dir] = n
		nn.parent = glue
		t.replace(n, glue)
		n.parent = glue
	}

	return nn, true
}

// replace puts nn into old's place under old's parent.
func (t *Trie[V]) replace(old, nn *Node[V]) {
	nn.parent = old.parent
	if old.parent == nil {
		t.root = nn
		return
	}
	old.parent.child[old.parent.dir(old)] = nn
}

func (t *Trie[V]) grow() {
	t.size++
	t.gen++
}

// SearchExact returns the node stored under exactly k, or nil.
func (t *Trie[V]) SearchExact(k Key) *Node[V] {
	if k.Width() != t.width {
		return nil
	}

	length := k.Len()

	n := t.root
	for n != nil && n.bit < length {
		n = n.child[k.bit(n.bit)]
	}

	if n == nil || n.bit != length || !n.active || n.key != k {
		return nil
	}
	return n
}

// SearchBest returns the node with the longest stored prefix containing k
// (longest-prefix match), or nil if no stored prefix covers k.
func (t *Trie[V]) SearchBest(k Key) *Node[V] {
	if k.Width() != t.width {
		return nil
	}

	var (
		best   *Node[V]
		length = k.Len()
		n      = t.root
	)

	for n != nil && n.bit < length {
		if n.active && n.key.Contains(k) {
			best = n
		}
		n = n.child[k.bit(n.bit)]
	}

	if n != nil && n.active && n.key.Contains(k) {
		best = n
	}

	return best
}
