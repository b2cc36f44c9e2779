package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glorpus-work/authsim/pkg/model"
)

type fakeMembership map[string]map[string]bool

func (f fakeMembership) IsMember(user, groupName string) bool {
	return f[groupName][user]
}

func TestIsGrantedPrecedence(t *testing.T) {
	// Owner: rw-, group: r--, other: -wx. Each identity must be judged
	// by exactly one slot, independent of every other slot.
	rec := &model.FileRecord{
		Name:  "f1",
		Owner: "alice",
		Group: "dev",
		Perms: model.Triad("rw-r---wx"),
	}
	eval := NewEvaluator(fakeMembership{"dev": {"bob": true}})

	tests := []struct {
		name    string
		acting  string
		class   model.AccessClass
		granted bool
	}{
		{"root read", "root", model.Read, true},
		{"root write", "root", model.Write, true},
		{"root execute", "root", model.Execute, true},

		{"owner read", "alice", model.Read, true},
		{"owner write", "alice", model.Write, true},
		{"owner denied execute despite other x", "alice", model.Execute, false},

		{"member read", "bob", model.Read, true},
		{"member denied write despite owner w", "bob", model.Write, false},
		{"member denied execute despite other x", "bob", model.Execute, false},

		{"stranger denied read", "carol", model.Read, false},
		{"stranger write", "carol", model.Write, true},
		{"stranger execute", "carol", model.Execute, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.granted, eval.IsGranted(rec, tt.acting, tt.class))
		})
	}
}

func TestIsGrantedNilGroupFallsToOther(t *testing.T) {
	// With group "nil" even an actual member of some group named "nil"
	// could not match; everyone but the owner gets the other slot.
	rec := &model.FileRecord{
		Name:  "f1",
		Owner: "alice",
		Group: model.NilGroup,
		Perms: model.Triad("rwxrwx---"),
	}
	eval := NewEvaluator(fakeMembership{})

	assert.True(t, eval.IsGranted(rec, "alice", model.Execute))
	assert.False(t, eval.IsGranted(rec, "bob", model.Read))
	assert.False(t, eval.IsGranted(rec, "bob", model.Execute))
}

func TestIsGrantedNonMemberUsesOtherSlot(t *testing.T) {
	// A user outside the file's group is judged by the other slot even
	// though the file has a real group.
	rec := &model.FileRecord{
		Name:  "f1",
		Owner: "alice",
		Group: "dev",
		Perms: model.Triad("------r--"),
	}
	eval := NewEvaluator(fakeMembership{"dev": {"bob": true}})

	assert.True(t, eval.IsGranted(rec, "carol", model.Read))
	assert.False(t, eval.IsGranted(rec, "bob", model.Read))
}
