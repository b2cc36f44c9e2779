package model

import "fmt"

// AccessClass is a requested kind of file access.
type AccessClass int

// Access classes, in triad-slot order.
const (
	Read AccessClass = iota
	Write
	Execute
)

// Glyph returns the single character that marks this class as granted
// in a triad slot ('r', 'w' or 'x').
func (c AccessClass) Glyph() byte {
	return "rwx"[c]
}

func (c AccessClass) String() string {
	switch c {
	case Read:
		return "read"
	case Write:
		return "write"
	case Execute:
		return "execute"
	}
	return fmt.Sprintf("access(%d)", int(c))
}

// Slot selects which three characters of a triad apply.
type Slot int

// Triad slots, in on-disk order.
const (
	OwnerSlot Slot = iota
	GroupSlot
	OtherSlot
)

// TriadWidth is the width of one slot within a triad.
const TriadWidth = 3

// DefaultTriad is the permission string assigned to newly created
// files: owner read+write, nothing for group or other.
const DefaultTriad Triad = "rw-------"

// Triad is a fixed nine-character permission string, three characters
// for each of owner, group and other. The engine compares glyphs
// exactly; it never interprets the characters as bits.
type Triad string

// Allows reports whether the triad grants the given access class in
// the given slot. The check is an exact glyph comparison against the
// class's success glyph.
func (t Triad) Allows(class AccessClass, slot Slot) bool {
	i := int(slot)*TriadWidth + int(class)
	if i >= len(t) {
		return false
	}
	return t[i] == class.Glyph()
}

// SlotString returns the three characters of one slot, as written to
// the durable file table.
func (t Triad) SlotString(slot Slot) string {
	start := int(slot) * TriadWidth
	if start+TriadWidth > len(t) {
		return ""
	}
	return string(t[start : start+TriadWidth])
}

// CombineTriad assembles a triad from its three slot strings. All nine
// characters are replaced together; the caller never patches a single
// slot in place. The slot strings are accepted verbatim as long as
// each is exactly three characters, matching the forgiving behavior of
// the chmod command.
func CombineTriad(owner, group, other string) (Triad, error) {
	if len(owner) != TriadWidth || len(group) != TriadWidth || len(other) != TriadWidth {
		return "", fmt.Errorf("each permission group must be exactly %d characters", TriadWidth)
	}
	return Triad(owner + group + other), nil
}
