// internal/assetid/parser.go
package assetid

import (
	"fmt"
	"regexp"
	"strings"
)

var segmentRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateSegment reports whether name can be used as a group or entry name.
func ValidateSegment(name string) error {
	if name == "" {
		return fmt.Errorf("segment cannot be empty")
	}
	if !segmentRegex.MatchString(name) {
		return fmt.Errorf("invalid segment name: %q", name)
	}
	return nil
}

// Parse creates a new Address by parsing its canonical string representation.
func Parse(rawID string) (*Address, error) {
	if rawID == "" {
		return nil, fmt.Errorf("identifier cannot be empty")
	}

	addr := &Address{}
	for _, segment := range strings.Split(rawID, ".") {
		if segment == "" {
			return nil, fmt.Errorf("identifier %q contains empty segment", rawID)
		}
		if err := ValidateSegment(segment); err != nil {
			return nil, err
		}
		addr.Path = append(addr.Path, segment)
	}

	return addr, nil
}
