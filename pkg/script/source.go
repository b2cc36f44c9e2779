// Package script reads an instruction script and decodes each line
// into a model.Command. The engine owns all semantic checks; this
// package only tokenizes and enforces per-verb argument counts.
package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/glorpus-work/authsim/pkg/errors"
	"github.com/glorpus-work/authsim/pkg/model"
)

// Source yields commands from an ordered instruction script, one per
// call to Next.
type Source struct {
	scanner *bufio.Scanner
	line    int
}

// NewSource creates a source reading from r.
func NewSource(r io.Reader) *Source {
	return &Source{scanner: bufio.NewScanner(r)}
}

// Open opens the script file at path and returns a source over it
// together with a close function for the underlying file.
func Open(path string) (*Source, func() error, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open script %s: %w", path, err)
	}
	return NewSource(file), file.Close, nil
}

// Next returns the next command in the script. It skips blank lines,
// returns io.EOF once the script is exhausted, and reports unknown
// verbs with errors.ErrUnknownVerb so the caller can skip them. Any
// other decode error (bad quoting, wrong argument count) is a
// malformed invocation and is fatal to the run.
func (s *Source) Next() (model.Command, error) {
	for s.scanner.Scan() {
		s.line++
		raw := strings.TrimSpace(s.scanner.Text())
		if raw == "" {
			continue
		}

		cmd, err := decode(raw)
		if err != nil {
			return model.Command{}, errors.Wrapf(err, "line %d", s.line)
		}
		return cmd, nil
	}

	if err := s.scanner.Err(); err != nil {
		return model.Command{}, fmt.Errorf("failed to read script: %w", err)
	}
	return model.Command{}, io.EOF
}

// Line returns the number of the most recently read script line.
func (s *Source) Line() int {
	return s.line
}

// Argument counts per verb, excluding the verb token itself.
var argCounts = map[model.Verb]int{
	model.VerbUserAdd:  2,
	model.VerbLogin:    2,
	model.VerbLogout:   0,
	model.VerbGroupAdd: 1,
	model.VerbUserGrp:  2,
	model.VerbMkFile:   1,
	model.VerbChmod:    4,
	model.VerbChown:    2,
	model.VerbChgrp:    2,
	model.VerbRead:     1,
	model.VerbWrite:    2,
	model.VerbExecute:  1,
	model.VerbLs:       1,
	model.VerbEnd:      0,
}

func decode(raw string) (model.Command, error) {
	tokens, err := shellquote.Split(raw)
	if err != nil {
		return model.Command{}, errors.Wrapf(errors.ErrInvalidInput, "cannot tokenize %q: %v", raw, err)
	}
	if len(tokens) == 0 {
		return model.Command{}, errors.Wrapf(errors.ErrInvalidInput, "empty command %q", raw)
	}

	verb := model.Verb(tokens[0])
	want, ok := argCounts[verb]
	if !ok {
		return model.Command{}, errors.ErrUnknownVerbWithName(tokens[0])
	}

	args := tokens[1:]
	if len(args) != want {
		return model.Command{}, errors.Wrapf(errors.ErrInvalidInput,
			"%s takes %d argument(s), got %d", verb, want, len(args))
	}

	cmd := model.Command{Verb: verb, Raw: raw}
	switch verb {
	case model.VerbUserAdd, model.VerbLogin:
		cmd.User = args[0]
		cmd.Password = args[1]
	case model.VerbLogout, model.VerbEnd:
		// No arguments.
	case model.VerbGroupAdd:
		cmd.Group = args[0]
	case model.VerbUserGrp:
		cmd.User = args[0]
		cmd.Group = args[1]
	case model.VerbMkFile, model.VerbRead, model.VerbExecute, model.VerbLs:
		cmd.File = args[0]
	case model.VerbChmod:
		cmd.File = args[0]
		cmd.OwnerTriad = args[1]
		cmd.GroupTriad = args[2]
		cmd.OtherTriad = args[3]
	case model.VerbChown:
		cmd.File = args[0]
		cmd.User = args[1]
	case model.VerbChgrp:
		cmd.File = args[0]
		cmd.Group = args[1]
	case model.VerbWrite:
		cmd.File = args[0]
		cmd.Line = args[1]
	}

	return cmd, nil
}
