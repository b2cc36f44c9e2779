package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriadAllows(t *testing.T) {
	// Owner may read+write, group may read, other may write+execute.
	triad := Triad("rw-r---wx")

	tests := []struct {
		name    string
		class   AccessClass
		slot    Slot
		granted bool
	}{
		{"owner read", Read, OwnerSlot, true},
		{"owner write", Write, OwnerSlot, true},
		{"owner execute", Execute, OwnerSlot, false},
		{"group read", Read, GroupSlot, true},
		{"group write", Write, GroupSlot, false},
		{"group execute", Execute, GroupSlot, false},
		{"other read", Read, OtherSlot, false},
		{"other write", Write, OtherSlot, true},
		{"other execute", Execute, OtherSlot, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.granted, triad.Allows(tt.class, tt.slot))
		})
	}
}

func TestTriadGlyphComparisonIsExact(t *testing.T) {
	// A glyph in the wrong position never grants the class.
	triad := Triad("wrx------")
	assert.False(t, triad.Allows(Read, OwnerSlot))
	assert.False(t, triad.Allows(Write, OwnerSlot))
	assert.True(t, triad.Allows(Execute, OwnerSlot))
}

func TestDefaultTriad(t *testing.T) {
	assert.Equal(t, Triad("rw-------"), DefaultTriad)
	assert.True(t, DefaultTriad.Allows(Read, OwnerSlot))
	assert.True(t, DefaultTriad.Allows(Write, OwnerSlot))
	assert.False(t, DefaultTriad.Allows(Execute, OwnerSlot))
	assert.False(t, DefaultTriad.Allows(Read, GroupSlot))
	assert.False(t, DefaultTriad.Allows(Read, OtherSlot))
}

func TestCombineTriad(t *testing.T) {
	t.Run("valid groups", func(t *testing.T) {
		triad, err := CombineTriad("rwx", "r--", "---")
		require.NoError(t, err)
		assert.Equal(t, Triad("rwxr-----"), triad)
	})

	t.Run("arbitrary characters are accepted", func(t *testing.T) {
		// chmod is deliberately forgiving about glyph legality.
		triad, err := CombineTriad("abc", "def", "ghi")
		require.NoError(t, err)
		assert.Equal(t, Triad("abcdefghi"), triad)
		assert.False(t, triad.Allows(Read, OwnerSlot))
	})

	t.Run("wrong length rejected", func(t *testing.T) {
		_, err := CombineTriad("rw", "r--", "---")
		assert.Error(t, err)
		_, err = CombineTriad("rwxx", "r--", "---")
		assert.Error(t, err)
	})
}

func TestSlotString(t *testing.T) {
	triad := Triad("rw-r---wx")
	assert.Equal(t, "rw-", triad.SlotString(OwnerSlot))
	assert.Equal(t, "r--", triad.SlotString(GroupSlot))
	assert.Equal(t, "-wx", triad.SlotString(OtherSlot))
}

func TestSortedMembers(t *testing.T) {
	grp := NewGroup("dev")
	grp.Members["carol"] = true
	grp.Members["alice"] = true
	grp.Members["bob"] = true

	assert.Equal(t, []string{"alice", "bob", "carol"}, grp.SortedMembers())
}
