package types

import (
	"fmt"
	"strings"
)

// Kind is the value encoding category of an item. Its numeric value is the
// kind index stored in bits 1-2 of the item flags.
type Kind int

const (
	// KindUTF8 marks UTF-8 text values.
	KindUTF8 Kind = iota // utf8
	// KindBinary marks arbitrary binary values.
	KindBinary // binary
	// KindExternal marks UTF-8 locators of external data.
	KindExternal // external
	// KindReserved is reserved by the format.
	KindReserved // reserved
)

var kindNames = [...]string{"utf8", "binary", "external", "reserved"}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k is one of the four defined kinds.
func (k Kind) Valid() bool {
	return k >= KindUTF8 && k <= KindReserved
}

// RequiresUTF8 reports whether values of this kind must be valid UTF-8.
func (k Kind) RequiresUTF8() bool {
	return k == KindUTF8 || k == KindExternal
}

// ParseKind returns the kind with the given name (case-insensitive).
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(i), nil
		}
	}
	return 0, NewTagError("invalid item type %q", name)
}
