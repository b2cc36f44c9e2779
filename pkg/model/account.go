// Package model provides the data structures shared by the authsim
// stores and the replay engine: accounts, groups, file access-control
// records, permission triads and the decoded command union.
package model

import "sort"

// Naming rules shared by accounts, groups and files.
const (
	// MaxNameLen is the maximum length of a username, password, group
	// name or file name.
	MaxNameLen = 30

	// RootName is the mandatory first-created account with
	// unconditional access.
	RootName = "root"

	// NilGroup is the reserved sentinel meaning "no group". A file
	// whose group is NilGroup grants group-triad access to nobody, and
	// no group may be created with this name.
	NilGroup = "nil"
)

// Account is a registered username/password pair. Accounts are never
// mutated or deleted once created.
type Account struct {
	Name     string
	Password string
}

// Group is a named, unordered set of member usernames.
type Group struct {
	Name    string
	Members map[string]bool
}

// NewGroup creates an empty group.
func NewGroup(name string) *Group {
	return &Group{
		Name:    name,
		Members: make(map[string]bool),
	}
}

// SortedMembers returns the member usernames in lexicographic order,
// the order used by the durable group table.
func (g *Group) SortedMembers() []string {
	members := make([]string, 0, len(g.Members))
	for name := range g.Members {
		members = append(members, name)
	}
	sort.Strings(members)
	return members
}

// FileRecord is the access-control record attached to a file: owner,
// owning group (or NilGroup) and the nine-character permission triad.
type FileRecord struct {
	Name  string
	Owner string
	Group string
	Perms Triad
}
