//go:generate mockgen -destination=./mocks/engine.go -package=mocks . Source,Accounts,Groups,Files,SessionStore,Audit,Sink

// Package engine implements the command dispatcher: the state machine
// that gates every operation behind session and authorization checks,
// routes each command to a store, and emits exactly one audit outcome
// per recognized command.
package engine

import "github.com/glorpus-work/authsim/pkg/model"

// Source yields commands from the instruction script.
type Source interface {
	Next() (model.Command, error)
}

// Accounts is the subset of the account store used by the engine.
type Accounts interface {
	Create(name, password, acting string) error
}

// Groups is the subset of the group store used by the engine.
type Groups interface {
	Create(name, acting string) error
	AddMember(user, groupName, acting string) error
	Snapshot() []model.Group
}

// Files is the subset of the file registry used by the engine.
type Files interface {
	Create(name, acting string) error
	ChangeOwner(name, newOwner, acting string) error
	ChangeGroup(name, groupName, acting string) error
	ChangePermissions(name, ownerTriad, groupTriad, otherTriad, acting string) error
	Stat(name, acting string) (model.FileRecord, error)
	Append(name, line, acting string) error
	ReadAll(name, acting string) ([]string, error)
	Exec(name, acting string) error
	Snapshot() []model.FileRecord
}

// SessionStore tracks the single active identity.
type SessionStore interface {
	Login(name, password string) error
	Logout() error
	Current() string
}

// Audit receives one line per command outcome.
type Audit interface {
	Log(line string) error
}

// Sink receives the final group and file table snapshots on the
// terminating command.
type Sink interface {
	WriteGroups(groups []model.Group) error
	WriteFiles(records []model.FileRecord) error
}

// Result summarizes a completed replay.
type Result struct {
	// Commands counts recognized commands, accepted or rejected.
	Commands int
	// Accepted counts commands that mutated or read state successfully.
	Accepted int
	// Rejected counts commands refused by a recoverable check.
	Rejected int
	// Ignored counts lines with unrecognized verbs, skipped silently.
	Ignored int
	// Ended reports whether the script reached an explicit end command
	// and the tables were snapshotted.
	Ended bool
}
