package patricia

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes the tree structure to w, one node per line, for debugging.
func (t *Trie[V]) Dump(w io.Writer) {
	fmt.Fprintf(w, "### IPv%d: size(%d)\n", t.family(), t.size)
	if t.root != nil {
		t.dump(w, t.root, "T:", "")
	}
}

func (t *Trie[V]) dumpString() string {
	w := new(strings.Builder)
	t.Dump(w)

	return w.String()
}

func (t *Trie[V]) dump(w io.Writer, n *Node[V], tag string, indent string) {
	if n.active {
		fmt.Fprintf(w, "%s%s NODE bit=%d pfx=%s val=%v\n", indent, tag, n.bit, n.key, n.val)
	} else {
		fmt.Fprintf(w, "%s%s GLUE bit=%d\n", indent, tag, n.bit)
	}

	if n.child[0] != nil {
		t.dump(w, n.child[0], "L:", indent+"  ")
	}
	if n.child[1] != nil {
		t.dump(w, n.child[1], "R:", indent+"  ")
	}
}

func (t *Trie[V]) family() int {
	if t.width == Width4 {
		return 4
	}
	return 6
}
