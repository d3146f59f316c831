// Package patricia implements a PATRICIA (radix) trie keyed by IP prefixes.
//
// A key is an address of a fixed width (32 or 128 bits) plus a prefix length.
// Each node tests a single bit of the key and has up to two children:
// child[0] for keys having that bit clear, child[1] for keys having it set.
//
// There are two kinds of nodes:
// ----------------------------
//
//   - Active node: holds a key and a value. Its bit equals the key length and
//     its children (if any) hold longer keys extending it.
//   - Glue node: holds nothing. It only joins two subtrees at the first bit
//     where their keys diverge and always has exactly two children.
//
// Bit positions strictly grow from a parent to its children; bits where all
// the keys below a node agree are skipped.
//
// Example trie:
// ------------
//
//	                      ,-- [node:4.3.2.0/24]
//	[glue:bit=4] ---------+
//	                      `-- [node:10.0.0.0/8] -- [node:10.1.0.0/16]
//
// Removing 4.3.2.0/24 above leaves the glue node with a single child, so it is
// spliced out too and 10.0.0.0/8 becomes the root.
//
// Lookups:
// -------
//
//   - SearchExact matches the stored prefix and its length exactly.
//   - SearchBest returns the longest stored prefix covering the key.
//
// A Trie is not safe for concurrent use.
package patricia
