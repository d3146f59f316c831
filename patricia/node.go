package patricia

import "net/netip"

// Node is a trie node. Nodes handed out by a Trie are always active, i.e.
// they hold a value. Inactive (glue) nodes only join two subtrees at the bit
// where their keys diverge.
type Node[V any] struct {
	// bit is the position this node branches on; for an active node it
	// equals key.Len()
	bit    int
	key    Key
	active bool
	val    V
	child  [2]*Node[V]
	parent *Node[V] // not owning
}

func (n *Node[V]) Key() Key             { return n.key }
func (n *Node[V]) Prefix() netip.Prefix { return n.key.Prefix() }
func (n *Node[V]) PrefixLen() int       { return n.key.Len() }
func (n *Node[V]) Family() int          { return n.key.Family() }
func (n *Node[V]) Value() V             { return n.val }

// Network returns the address part of the prefix without its length.
func (n *Node[V]) Network() string {
	return n.key.Addr().String()
}

func (n *Node[V]) String() string {
	if !n.active {
		return "<glue>"
	}
	return n.key.String()
}

// dir returns which child slot of n holds c.
func (n *Node[V]) dir(c *Node[V]) int {
	if n.child[1] == c {
		return 1
	}
	return 0
}

func (n *Node[V]) children() int {
	cnt := 0
	for _, c := range n.child {
		if c != nil {
			cnt++
		}
	}
	return cnt
}
