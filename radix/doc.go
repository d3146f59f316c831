// Package radix is an IP prefix table on top of the patricia trie.
//
// A Table keeps one trie per address family, so IPv4 and IPv6 prefixes can be
// stored side by side:
//
//	t := radix.New[string]()
//	t.Set(netip.MustParsePrefix("10.0.0.0/8"), "message 1")
//	n := t.Get(netip.MustParsePrefix("10.0.0.1/32")) // n.Value() == "message 1"
//
// Note the asymmetry of Set and Get: Set stores under exactly the given
// prefix, while Get returns the longest stored prefix covering it. Use
// SearchExact when only an exact match will do.
package radix
