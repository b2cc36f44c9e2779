// Package snapshot implements the persistence sink: the group and
// file tables rewritten wholesale on a terminating command, and the
// optional archive bundle of the final state directory.
package snapshot

import (
	"strings"

	"github.com/glorpus-work/authsim/pkg/errors"
	"github.com/glorpus-work/authsim/pkg/fsutil"
	"github.com/glorpus-work/authsim/pkg/model"
)

// Writer rewrites the durable group and file tables.
type Writer struct {
	groupPath string
	filePath  string
}

// NewWriter creates a writer for the two table paths.
func NewWriter(groupPath, filePath string) *Writer {
	return &Writer{groupPath: groupPath, filePath: filePath}
}

// WriteGroups rewrites the group table: one line per group,
// "name: member1 member2 ...", members sorted lexicographically. The
// write is atomic (temp file and rename).
func (w *Writer) WriteGroups(groups []model.Group) error {
	var sb strings.Builder
	for _, grp := range groups {
		sb.WriteString(grp.Name)
		sb.WriteString(":")
		for _, member := range grp.SortedMembers() {
			sb.WriteString(" ")
			sb.WriteString(member)
		}
		sb.WriteString("\n")
	}

	if err := fsutil.WriteFileAtomic(w.groupPath, []byte(sb.String())); err != nil {
		return errors.Wrap(errors.ErrStorage, err.Error())
	}
	return nil
}

// WriteFiles rewrites the file table: one line per file,
// "name: owner group ownerTriad groupTriad otherTriad". The write is
// atomic.
func (w *Writer) WriteFiles(records []model.FileRecord) error {
	var sb strings.Builder
	for _, rec := range records {
		sb.WriteString(rec.Name)
		sb.WriteString(": ")
		sb.WriteString(rec.Owner)
		sb.WriteString(" ")
		sb.WriteString(rec.Group)
		sb.WriteString(" ")
		sb.WriteString(rec.Perms.SlotString(model.OwnerSlot))
		sb.WriteString(" ")
		sb.WriteString(rec.Perms.SlotString(model.GroupSlot))
		sb.WriteString(" ")
		sb.WriteString(rec.Perms.SlotString(model.OtherSlot))
		sb.WriteString("\n")
	}

	if err := fsutil.WriteFileAtomic(w.filePath, []byte(sb.String())); err != nil {
		return errors.Wrap(errors.ErrStorage, err.Error())
	}
	return nil
}
