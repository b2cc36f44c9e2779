// Package permission implements the access decision for file
// operations: UNIX-style owner, group, other precedence with a root
// override.
package permission

import "github.com/glorpus-work/authsim/pkg/model"

// Membership is the group-store view the evaluator needs.
type Membership interface {
	IsMember(user, groupName string) bool
}

// Evaluator decides whether an identity may access a file.
type Evaluator struct {
	groups Membership
}

// NewEvaluator creates an evaluator over the given membership view.
func NewEvaluator(groups Membership) *Evaluator {
	return &Evaluator{groups: groups}
}

// IsGranted reports whether acting may perform the given access class
// on the file described by rec. Exactly one triad slot ever applies,
// first match wins:
//
//  1. root is always granted;
//  2. the owner is judged by the owner slot alone;
//  3. a member of the file's group (when the group is not "nil") is
//     judged by the group slot alone;
//  4. everyone else, including non-members when the file has no group,
//     is judged by the other slot.
func (e *Evaluator) IsGranted(rec *model.FileRecord, acting string, class model.AccessClass) bool {
	if acting == model.RootName {
		return true
	}

	if acting == rec.Owner {
		return rec.Perms.Allows(class, model.OwnerSlot)
	}

	if rec.Group != model.NilGroup && e.groups.IsMember(acting, rec.Group) {
		return rec.Perms.Allows(class, model.GroupSlot)
	}

	return rec.Perms.Allows(class, model.OtherSlot)
}
