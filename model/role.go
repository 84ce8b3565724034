package model

import (
	"fmt"
	"strings"
)

// SemanticRole is the structural label of a text block or paragraph.
type SemanticRole int

const (
	// RoleUnset marks a block that no classifier has labelled yet.
	RoleUnset SemanticRole = iota
	RoleBodyText
	RoleHeading
	RolePageHeader
	RolePageFooter
	RoleTitle
	RoleCaption
	RoleReference
)

var roleNames = [...]string{
	RoleUnset:      "unset",
	RoleBodyText:   "body",
	RoleHeading:    "heading",
	RolePageHeader: "page-header",
	RolePageFooter: "page-footer",
	RoleTitle:      "title",
	RoleCaption:    "caption",
	RoleReference:  "reference",
}

// Roles returns every assignable role, in declaration order.
func Roles() []SemanticRole {
	return []SemanticRole{
		RoleBodyText,
		RoleHeading,
		RolePageHeader,
		RolePageFooter,
		RoleTitle,
		RoleCaption,
		RoleReference,
	}
}

// String returns a string representation of the role.
func (r SemanticRole) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return roleNames[RoleUnset]
	}
	return roleNames[r]
}

// IsSet reports whether a classifier has assigned the role.
func (r SemanticRole) IsSet() bool {
	return r > RoleUnset && int(r) < len(roleNames)
}

// ParseRole parses a role name as produced by String. Matching is
// case-insensitive and accepts underscores in place of dashes.
func ParseRole(s string) (SemanticRole, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, n := range roleNames {
		if n == name {
			return SemanticRole(i), nil
		}
	}
	return RoleUnset, fmt.Errorf("unknown semantic role %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (r SemanticRole) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *SemanticRole) UnmarshalText(text []byte) error {
	role, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = role
	return nil
}
