package radix

import (
	"encoding/binary"
	"net/netip"
	"strings"

	"github.com/hideo55/go-popcount"
	"github.com/pkg/errors"
)

var ErrInvalidMask = errors.New("netmask is not contiguous or has a wrong size")

// ParsePrefix parses "a.b.c.d/len" or "x:x::x/len". A bare address stands for
// a host route (/32 or /128).
func ParsePrefix(s string) (netip.Prefix, error) {
	if strings.Contains(s, "/") {
		pfx, err := netip.ParsePrefix(s)
		if err != nil {
			return netip.Prefix{}, errors.Wrapf(err, "parse prefix %q", s)
		}
		return pfx, nil
	}

	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Prefix{}, errors.Wrapf(err, "parse prefix %q", s)
	}

	return netip.PrefixFrom(addr, addr.BitLen()), nil
}

// MustParsePrefix is like ParsePrefix but panics on error.
func MustParsePrefix(s string) netip.Prefix {
	pfx, err := ParsePrefix(s)
	if err != nil {
		panic(err)
	}
	return pfx
}

// PrefixFromMask builds a prefix from an address and a netmask such as
// 255.255.255.0. The mask must be as long as the address and its set bits
// contiguous from the left.
func PrefixFromMask(addr netip.Addr, mask []byte) (netip.Prefix, error) {
	if !addr.IsValid() || len(mask)*8 != addr.BitLen() {
		return netip.Prefix{}, errors.Wrapf(ErrInvalidMask, "%d byte mask for %s", len(mask), addr)
	}

	var buf [16]byte
	copy(buf[:], mask)

	var (
		hi   = binary.BigEndian.Uint64(buf[:8])
		lo   = binary.BigEndian.Uint64(buf[8:])
		ones = int(popcount.Count(hi) + popcount.Count(lo))
	)

	if hi != leadingOnes(ones) || lo != leadingOnes(ones-64) {
		return netip.Prefix{}, errors.Wrapf(ErrInvalidMask, "% x", mask)
	}

	return netip.PrefixFrom(addr, ones).Masked(), nil
}

// leadingOnes returns a word with its n high bits set.
func leadingOnes(n int) uint64 {
	switch {
	case n <= 0:
		return 0
	case n >= 64:
		return ^uint64(0)
	}
	return ^uint64(0) << (64 - n)
}
