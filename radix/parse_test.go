package radix

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrefix(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Str   string
		Exp   string
		ExpOK bool
	}{
		{"10.0.0.0/8", "10.0.0.0/8", true},
		{"192.168.0.1", "192.168.0.1/32", true},
		{"2001:db8::/32", "2001:db8::/32", true},
		{"2001:db8::1", "2001:db8::1/128", true},
		{"10.0.0.0/33", "", false},
		{"10.0.0/8", "", false},
		{"not an address", "", false},
		{"", "", false},
	} {
		tcase := tcase

		t.Run(tcase.Str, func(t *testing.T) {
			pfx, err := ParsePrefix(tcase.Str)
			if !tcase.ExpOK {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tcase.Exp, pfx.String())
		})
	}

	assert.Panics(t, func() { MustParsePrefix("bogus") })
}

func TestPrefixFromMask(t *testing.T) {
	t.Parallel()

	v4 := netip.MustParseAddr("192.168.1.77")
	v6 := netip.MustParseAddr("2001:db8::1")

	full6 := make([]byte, 16)
	for i := range full6 {
		full6[i] = 0xFF
	}

	for _, tcase := range []*struct {
		Name  string
		Addr  netip.Addr
		Mask  []byte
		Exp   string
		ExpOK bool
	}{
		{"v4/24", v4, []byte{255, 255, 255, 0}, "192.168.1.0/24", true},
		{"v4/0", v4, []byte{0, 0, 0, 0}, "0.0.0.0/0", true},
		{"v4/32", v4, []byte{255, 255, 255, 255}, "192.168.1.77/32", true},
		{"v4/20", v4, []byte{255, 255, 240, 0}, "192.168.0.0/20", true},
		{"v4 holes", v4, []byte{255, 0, 255, 0}, "", false},
		{"v4 inverted", v4, []byte{0, 0, 0, 255}, "", false},
		{"v4 short", v4, []byte{255, 255}, "", false},
		{"v4 with v6 mask", v4, full6, "", false},
		{"v6/128", v6, full6, "2001:db8::1/128", true},
		{"v6/64", v6, []byte{255, 255, 255, 255, 255, 255, 255, 255, 0, 0, 0, 0, 0, 0, 0, 0}, "2001:db8::/64", true},
		{"v6/72", v6, []byte{255, 255, 255, 255, 255, 255, 255, 255, 255, 0, 0, 0, 0, 0, 0, 0}, "2001:db8::/72", true},
		{"v6 holes", v6, []byte{255, 255, 255, 255, 255, 255, 255, 254, 255, 0, 0, 0, 0, 0, 0, 0}, "", false},
		{"invalid addr", netip.Addr{}, nil, "", false},
	} {
		tcase := tcase

		t.Run(tcase.Name, func(t *testing.T) {
			pfx, err := PrefixFromMask(tcase.Addr, tcase.Mask)
			if !tcase.ExpOK {
				require.ErrorIs(t, err, ErrInvalidMask)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tcase.Exp, pfx.String())
		})
	}
}

func TestLeadingOnes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(0), leadingOnes(-64))
	assert.Equal(t, uint64(0), leadingOnes(0))
	assert.Equal(t, uint64(1)<<63, leadingOnes(1))
	assert.Equal(t, uint64(0xFFFFFF0000000000), leadingOnes(24))
	assert.Equal(t, ^uint64(0), leadingOnes(64))
	assert.Equal(t, ^uint64(0), leadingOnes(100))
}
