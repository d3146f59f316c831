package patricia

import "github.com/pkg/errors"

var (
	ErrInvalidAddress          = errors.New("address must be 4 or 16 bytes long")
	ErrInvalidPrefixLength     = errors.New("prefix length out of range")
	ErrFamilyMismatch          = errors.New("key family does not match the trie")
	ErrModifiedDuringIteration = errors.New("trie modified during iteration")
)
