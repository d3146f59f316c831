package patricia

import (
	"math/bits"
	"net/netip"

	"github.com/pkg/errors"
)

const (
	byteWidth = 8

	// Width4 and Width6 are the key widths of IPv4 and IPv6 tries.
	Width4 = 32
	Width6 = 128
)

// Key is an address prefix: the leading Len bits of a 32 or 128 bit address,
// most significant bit first. Bits past Len are always zero, so keys of the
// same prefix compare equal with ==.
type Key struct {
	addr  [16]byte
	len   uint8
	width uint8
}

// NewKey builds a key from a 4 or 16 byte big-endian address and a prefix length.
func NewKey(addr []byte, length int) (Key, error) {
	var k Key

	switch len(addr) {
	case Width4 / byteWidth, Width6 / byteWidth:
	default:
		return k, errors.Wrapf(ErrInvalidAddress, "got %d bytes", len(addr))
	}

	width := len(addr) * byteWidth
	if length < 0 || length > width {
		return k, errors.Wrapf(ErrInvalidPrefixLength, "%d is not in [0..%d]", length, width)
	}

	copy(k.addr[:], addr)
	k.len = uint8(length)
	k.width = uint8(width)
	k.mask()

	return k, nil
}

// KeyFromPrefix converts a netip prefix. IPv4 prefixes get width 32, all
// others (including IPv4-mapped IPv6) width 128.
func KeyFromPrefix(pfx netip.Prefix) (Key, error) {
	if !pfx.IsValid() {
		return Key{}, errors.Wrapf(ErrInvalidPrefixLength, "invalid prefix %q", pfx.String())
	}

	if addr := pfx.Addr(); addr.Is4() {
		a := addr.As4()
		return NewKey(a[:], pfx.Bits())
	}

	a := pfx.Addr().As16()

	return NewKey(a[:], pfx.Bits())
}

// mask clears every bit past the prefix length.
func (k *Key) mask() {
	n := int(k.len)
	i := n / byteWidth

	if r := n % byteWidth; r != 0 {
		k.addr[i] &^= 0xFF >> r
		i++
	}
	for ; i < len(k.addr); i++ {
		k.addr[i] = 0
	}
}

func (k Key) Len() int   { return int(k.len) }
func (k Key) Width() int { return int(k.width) }

// Family returns 4 or 6.
func (k Key) Family() int {
	if k.width == Width4 {
		return 4
	}
	return 6
}

// Bytes returns a copy of the (masked) address bytes, 4 or 16 of them.
func (k Key) Bytes() []byte {
	return append([]byte(nil), k.addr[:k.width/byteWidth]...)
}

func (k Key) Addr() netip.Addr {
	switch k.width {
	case Width4:
		return netip.AddrFrom4([4]byte(k.addr[:4]))
	case Width6:
		return netip.AddrFrom16(k.addr)
	}
	return netip.Addr{}
}

func (k Key) Prefix() netip.Prefix {
	return netip.PrefixFrom(k.Addr(), k.Len())
}

// String formats the key in CIDR notation, e.g. "10.0.0.0/8" or "2001:db8::/32".
func (k Key) String() string {
	return k.Prefix().String()
}

// Contains reports whether k is a bit-prefix of other: same family, k is not
// longer and the leading k.Len() bits agree.
func (k Key) Contains(other Key) bool {
	return k.width == other.width &&
		k.len <= other.len &&
		k.commonLen(other, int(k.len)) == int(k.len)
}

// bit returns the i-th bit counting from the most significant one.
func (k Key) bit(i int) byte {
	if i >= int(k.width) {
		return 0
	}
	return (k.addr[i>>3] >> (7 - i&7)) & 1
}

// commonLen returns the index of the first bit where k and other differ,
// capped at limit.
func (k Key) commonLen(other Key, limit int) int {
	for i := 0; i*byteWidth < limit; i++ {
		if x := k.addr[i] ^ other.addr[i]; x != 0 {
			return min(i*byteWidth+bits.LeadingZeros8(x), limit)
		}
	}
	return limit
}
