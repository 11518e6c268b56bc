// internal/assetid/address.go
package assetid

import (
	"slices"
	"strings"
)

// String serializes the Address into its canonical dotted form.
func (a *Address) String() string {
	if a == nil {
		return ""
	}
	return strings.Join(a.Path, ".")
}

// Equal checks two addresses segment by segment.
func (a *Address) Equal(other *Address) bool {
	if a == nil || other == nil {
		return a == other
	}
	return slices.Equal(a.Path, other.Path)
}
