package engine

import (
	"context"
	"errors"
	"fmt"
	"io"

	apperrors "github.com/glorpus-work/authsim/pkg/errors"
	"github.com/glorpus-work/authsim/pkg/model"
)

// Engine ties the stores, the session, the audit trail and the
// persistence sink together for one replay.
type Engine struct {
	Accounts Accounts
	Groups   Groups
	Files    Files
	Session  SessionStore
	Audit    Audit
	Sink     Sink
}

// Run consumes commands from src until the script ends. The very
// first command must be "useradd root <password>"; anything else is a
// bootstrap violation that terminates the run before any state is
// touched. Every recognized command afterwards produces exactly one
// audit outcome line; unrecognized verbs are skipped silently. An end
// command snapshots the group and file tables to the sink and halts
// the engine permanently. Storage failures abort the run.
func (e *Engine) Run(ctx context.Context, src Source) (Result, error) {
	var res Result
	bootstrapped := false

	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		cmd, err := src.Next()
		if errors.Is(err, io.EOF) {
			if !bootstrapped {
				return res, fmt.Errorf("empty script: %w", apperrors.ErrBootstrap)
			}
			// No end command: the run finishes without a snapshot.
			return res, nil
		}
		if err != nil {
			if !bootstrapped {
				return res, fmt.Errorf("%v: %w", err, apperrors.ErrBootstrap)
			}
			if errors.Is(err, apperrors.ErrUnknownVerb) {
				res.Ignored++
				continue
			}
			// Malformed invocation (bad quoting, wrong argument count).
			return res, err
		}

		if !bootstrapped {
			if cmd.Verb != model.VerbUserAdd || cmd.User != model.RootName {
				return res, fmt.Errorf("got '%s': %w", cmd.Raw, apperrors.ErrBootstrap)
			}
			bootstrapped = true
		}

		res.Commands++

		if cmd.Verb == model.VerbEnd {
			if err := e.snapshot(); err != nil {
				return res, err
			}
			res.Ended = true
			if err := e.Audit.Log(cmd.Raw + ": group and file tables saved"); err != nil {
				return res, err
			}
			res.Accepted++
			return res, nil
		}

		outcome, extra, err := e.dispatch(cmd)
		if err != nil {
			if errors.Is(err, apperrors.ErrStorage) {
				return res, err
			}
			res.Rejected++
			if logErr := e.Audit.Log(fmt.Sprintf("%s: rejected: %v", cmd.Raw, err)); logErr != nil {
				return res, logErr
			}
			continue
		}

		res.Accepted++
		if err := e.Audit.Log(fmt.Sprintf("%s: %s", cmd.Raw, outcome)); err != nil {
			return res, err
		}
		for _, line := range extra {
			if err := e.Audit.Log(line); err != nil {
				return res, err
			}
		}
	}
}

// dispatch routes one non-terminal command to its store and returns
// the success message plus any extra audit lines (file content echoed
// by read).
func (e *Engine) dispatch(cmd model.Command) (string, []string, error) {
	acting := e.Session.Current()

	switch cmd.Verb {
	case model.VerbUserAdd:
		if err := e.Accounts.Create(cmd.User, cmd.Password, acting); err != nil {
			return "", nil, err
		}
		return "account created", nil, nil

	case model.VerbLogin:
		if err := e.Session.Login(cmd.User, cmd.Password); err != nil {
			return "", nil, err
		}
		return "session opened", nil, nil

	case model.VerbLogout:
		if err := e.Session.Logout(); err != nil {
			return "", nil, err
		}
		return "session closed", nil, nil

	case model.VerbGroupAdd:
		if err := e.Groups.Create(cmd.Group, acting); err != nil {
			return "", nil, err
		}
		return "group created", nil, nil

	case model.VerbUserGrp:
		if err := e.Groups.AddMember(cmd.User, cmd.Group, acting); err != nil {
			return "", nil, err
		}
		return "member added", nil, nil

	case model.VerbMkFile:
		if err := e.Files.Create(cmd.File, acting); err != nil {
			return "", nil, err
		}
		return "file created", nil, nil

	case model.VerbChmod:
		if err := e.Files.ChangePermissions(cmd.File, cmd.OwnerTriad, cmd.GroupTriad, cmd.OtherTriad, acting); err != nil {
			return "", nil, err
		}
		return "permissions changed", nil, nil

	case model.VerbChown:
		if err := e.Files.ChangeOwner(cmd.File, cmd.User, acting); err != nil {
			return "", nil, err
		}
		return "owner changed", nil, nil

	case model.VerbChgrp:
		if err := e.Files.ChangeGroup(cmd.File, cmd.Group, acting); err != nil {
			return "", nil, err
		}
		return "group changed", nil, nil

	case model.VerbRead:
		lines, err := e.Files.ReadAll(cmd.File, acting)
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("%d line(s)", len(lines)), lines, nil

	case model.VerbWrite:
		if err := e.Files.Append(cmd.File, cmd.Line, acting); err != nil {
			return "", nil, err
		}
		return "line appended", nil, nil

	case model.VerbExecute:
		if err := e.Files.Exec(cmd.File, acting); err != nil {
			return "", nil, err
		}
		return "executed", nil, nil

	case model.VerbLs:
		rec, err := e.Files.Stat(cmd.File, acting)
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("%s %s %s %s %s", rec.Owner, rec.Group,
			rec.Perms.SlotString(model.OwnerSlot),
			rec.Perms.SlotString(model.GroupSlot),
			rec.Perms.SlotString(model.OtherSlot)), nil, nil
	}

	return "", nil, apperrors.ErrUnknownVerbWithName(string(cmd.Verb))
}

func (e *Engine) snapshot() error {
	if err := e.Sink.WriteGroups(e.Groups.Snapshot()); err != nil {
		return err
	}
	return e.Sink.WriteFiles(e.Files.Snapshot())
}
