// Package group implements the group store: named, unordered sets of
// member usernames. Groups are created empty, grow one member at a
// time, and are never deleted.
package group

import (
	"fmt"
	"sort"
	"strings"

	"github.com/glorpus-work/authsim/pkg/errors"
	"github.com/glorpus-work/authsim/pkg/model"
)

// AccountChecker is the subset of the account store the group store
// needs: existence checks for prospective members.
type AccountChecker interface {
	Exists(name string) bool
}

// Manager defines the interface for the group store.
type Manager interface {
	Create(name, acting string) error
	AddMember(user, groupName, acting string) error
	Exists(name string) bool
	IsMember(user, groupName string) bool
	Snapshot() []model.Group
}

// ManagerImpl holds the groups by name.
type ManagerImpl struct {
	accounts AccountChecker
	groups   map[string]*model.Group
}

// NewManager creates an empty group store.
func NewManager(accounts AccountChecker) *ManagerImpl {
	return &ManagerImpl{
		accounts: accounts,
		groups:   make(map[string]*model.Group),
	}
}

// Create adds a new empty group. Only root may create groups. The
// reserved sentinel "nil" is not a legal group name.
func (m *ManagerImpl) Create(name, acting string) error {
	if acting != model.RootName {
		return fmt.Errorf("only root can add groups: %w", errors.ErrForbidden)
	}

	if name == "" || len(name) > model.MaxNameLen {
		return fmt.Errorf("group name must be 1-%d characters: %w", model.MaxNameLen, errors.ErrInvalidInput)
	}
	if name == model.NilGroup {
		return fmt.Errorf("group name '%s' is reserved: %w", model.NilGroup, errors.ErrInvalidInput)
	}
	if strings.ContainsAny(name, "/:") {
		return fmt.Errorf("group name may not contain '/' or ':': %w", errors.ErrInvalidInput)
	}

	if _, ok := m.groups[name]; ok {
		return errors.ErrGroupExistsWithName(name)
	}

	m.groups[name] = model.NewGroup(name)
	return nil
}

// AddMember adds a user to a group. Only root may change memberships.
// Re-adding an existing member succeeds silently.
func (m *ManagerImpl) AddMember(user, groupName, acting string) error {
	if acting != model.RootName {
		return fmt.Errorf("only root can change group membership: %w", errors.ErrForbidden)
	}

	if !m.accounts.Exists(user) {
		return errors.ErrAccountNotFoundWithName(user)
	}

	grp, ok := m.groups[groupName]
	if !ok {
		return errors.ErrGroupNotFoundWithName(groupName)
	}

	grp.Members[user] = true
	return nil
}

// Exists reports whether a group with the given name exists.
func (m *ManagerImpl) Exists(name string) bool {
	_, ok := m.groups[name]
	return ok
}

// IsMember reports whether user belongs to the named group.
func (m *ManagerImpl) IsMember(user, groupName string) bool {
	grp, ok := m.groups[groupName]
	return ok && grp.Members[user]
}

// Snapshot returns all groups sorted by name, each with its member set
// copied, for the persistence sink.
func (m *ManagerImpl) Snapshot() []model.Group {
	groups := make([]model.Group, 0, len(m.groups))
	for _, grp := range m.groups {
		members := make(map[string]bool, len(grp.Members))
		for name := range grp.Members {
			members[name] = true
		}
		groups = append(groups, model.Group{Name: grp.Name, Members: members})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })
	return groups
}
