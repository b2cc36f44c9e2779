package model

// Verb is the first token of an instruction line.
type Verb string

// The recognized command verbs.
const (
	VerbUserAdd  Verb = "useradd"
	VerbLogin    Verb = "login"
	VerbLogout   Verb = "logout"
	VerbGroupAdd Verb = "groupadd"
	VerbUserGrp  Verb = "usergrp"
	VerbMkFile   Verb = "mkfile"
	VerbChmod    Verb = "chmod"
	VerbChown    Verb = "chown"
	VerbChgrp    Verb = "chgrp"
	VerbRead     Verb = "read"
	VerbWrite    Verb = "write"
	VerbExecute  Verb = "execute"
	VerbLs       Verb = "ls"
	VerbEnd      Verb = "end"
)

// Command is one decoded instruction. Only the fields relevant to the
// verb are populated; the engine switches exhaustively on Verb.
type Command struct {
	Verb Verb

	// User is the target username (useradd, login, usergrp) or the new
	// owner (chown).
	User string

	// Password accompanies useradd and login.
	Password string

	// Group is the target group name (groupadd, usergrp, chgrp).
	Group string

	// File is the target file name for all file operations.
	File string

	// Line is the text appended by write.
	Line string

	// Chmod triad groups, three characters each.
	OwnerTriad string
	GroupTriad string
	OtherTriad string

	// Raw is the original instruction line, used verbatim in audit
	// messages.
	Raw string
}
