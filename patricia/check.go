package patricia

import "github.com/pkg/errors"

// verify walks the whole tree and returns the first structural violation found.
func (t *Trie[V]) verify() error {
	if t.root == nil {
		if t.size != 0 {
			return errors.Errorf("empty tree with size %d", t.size)
		}
		return nil
	}
	if t.root.parent != nil {
		return errors.Errorf("root %v has a parent", t.root)
	}

	active, err := t.verifyNode(t.root)
	if err != nil {
		return err
	}
	if active != t.size {
		return errors.Errorf("size %d, but %d active nodes", t.size, active)
	}
	return nil
}

func (t *Trie[V]) verifyNode(n *Node[V]) (int, error) {
	if n.bit < 0 || n.bit > t.width {
		return 0, errors.Errorf("node %v: bit %d out of range", n, n.bit)
	}

	active := 0
	if n.active {
		active++
		if n.key.Width() != t.width || n.key.Len() != n.bit {
			return 0, errors.Errorf("node %v: key does not match bit %d", n, n.bit)
		}
	} else if n.children() < 2 {
		return 0, errors.Errorf("glue node at bit %d with %d children", n.bit, n.children())
	}

	for dir, c := range n.child {
		if c == nil {
			continue
		}
		if c.parent != n {
			return 0, errors.Errorf("node %v: broken parent link of child %v", n, c)
		}
		if c.bit <= n.bit {
			return 0, errors.Errorf("node %v: child %v does not branch deeper", n, c)
		}
		if c.active {
			if n.active && !n.key.Contains(c.key) {
				return 0, errors.Errorf("node %v: child %v is not below it", n, c)
			}
			if int(c.key.bit(n.bit)) != dir {
				return 0, errors.Errorf("node %v: child %v on the wrong side", n, c)
			}
		}

		cnt, err := t.verifyNode(c)
		if err != nil {
			return 0, err
		}
		active += cnt
	}
	return active, nil
}
