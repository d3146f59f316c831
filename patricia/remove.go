package patricia

// Remove deletes the entry stored under exactly k and returns its value.
// Removing an absent key is a no-op reporting false.
func (t *Trie[V]) Remove(k Key) (val V, ok bool) {
	n := t.SearchExact(k)
	if n == nil {
		return
	}

	val, ok = n.val, true

	var zero V
	n.val = zero
	n.key = Key{}
	n.active = false
	t.size--
	t.gen++

	if n.child[0] != nil && n.child[1] != nil {
		// still a branch point: keep it as glue
		return
	}

	t.compact(n)

	return
}

// compact splices out n and then every ancestor that is left as a glue node
// with fewer than two children.
func (t *Trie[V]) compact(n *Node[V]) {
	for n != nil && !n.active && n.children() < 2 {
		child := n.child[0]
		if child == nil {
			child = n.child[1]
		}

		parent := n.parent
		if child != nil {
			child.parent = parent
		}

		if parent == nil {
			t.root = child
		} else {
			parent.child[parent.dir(n)] = child
		}

		n.parent = nil
		n.child = [2]*Node[V]{}

		n = parent
	}
}
