// Package registry implements the file registry: per-file
// access-control records, the protected-name rule, and the append-only
// backing files behind read, write and execute.
package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/glorpus-work/authsim/pkg/errors"
	"github.com/glorpus-work/authsim/pkg/fsutil"
	"github.com/glorpus-work/authsim/pkg/model"
)

// AccountChecker is the account-store view the registry needs.
type AccountChecker interface {
	Exists(name string) bool
}

// GroupChecker is the group-store view the registry needs.
type GroupChecker interface {
	Exists(name string) bool
	IsMember(user, groupName string) bool
}

// Evaluator decides content access. It is satisfied by
// permission.Evaluator.
type Evaluator interface {
	IsGranted(rec *model.FileRecord, acting string, class model.AccessClass) bool
}

// Manager defines the interface for the file registry.
type Manager interface {
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

// ManagerImpl holds the access-control records and writes backing
// files under dir.
type ManagerImpl struct {
	dir       string
	protected map[string]bool
	accounts  AccountChecker
	groups    GroupChecker
	eval      Evaluator
	records   map[string]*model.FileRecord
}

// NewManager creates an empty registry. Backing files are created
// under dir; protected lists the reserved system file names no command
// may target.
func NewManager(dir string, protected []string, accounts AccountChecker, groups GroupChecker, eval Evaluator) *ManagerImpl {
	reserved := make(map[string]bool, len(protected))
	for _, name := range protected {
		reserved[name] = true
	}
	return &ManagerImpl{
		dir:       dir,
		protected: reserved,
		accounts:  accounts,
		groups:    groups,
		eval:      eval,
		records:   make(map[string]*model.FileRecord),
	}
}

// Create registers a new file owned by the acting identity with no
// group and default permissions, and materializes an empty backing
// file.
func (m *ManagerImpl) Create(name, acting string) error {
	if acting == "" {
		return errors.ErrUnauthenticated
	}
	if name == "" || len(name) > model.MaxNameLen {
		return fmt.Errorf("file name must be 1-%d characters: %w", model.MaxNameLen, errors.ErrInvalidInput)
	}
	if strings.ContainsAny(name, "/:") {
		return fmt.Errorf("file name may not contain '/' or ':': %w", errors.ErrInvalidInput)
	}
	if m.protected[name] {
		return errors.ErrProtectedWithName(name)
	}
	if _, ok := m.records[name]; ok {
		return errors.ErrFileExistsWithName(name)
	}

	if err := os.WriteFile(m.backingPath(name), nil, fsutil.FilePerm); err != nil {
		return errors.Wrap(errors.ErrStorage, err.Error())
	}

	m.records[name] = &model.FileRecord{
		Name:  name,
		Owner: acting,
		Group: model.NilGroup,
		Perms: model.DefaultTriad,
	}
	return nil
}

// ChangeOwner reassigns a file's owner. Only root may do this.
func (m *ManagerImpl) ChangeOwner(name, newOwner, acting string) error {
	if acting != model.RootName {
		return fmt.Errorf("only root can change owners: %w", errors.ErrForbidden)
	}
	rec, err := m.lookup(name)
	if err != nil {
		return err
	}
	if !m.accounts.Exists(newOwner) {
		return errors.ErrAccountNotFoundWithName(newOwner)
	}

	rec.Owner = newOwner
	return nil
}

// ChangeGroup reassigns a file's group to "nil" or an existing group.
// Only the owner or root may do this, and a non-root owner must be a
// member of the target group.
func (m *ManagerImpl) ChangeGroup(name, groupName, acting string) error {
	if acting == "" {
		return errors.ErrUnauthenticated
	}
	rec, err := m.lookup(name)
	if err != nil {
		return err
	}
	if acting != rec.Owner && acting != model.RootName {
		return fmt.Errorf("need owner access: %w", errors.ErrForbidden)
	}
	if groupName != model.NilGroup {
		if !m.groups.Exists(groupName) {
			return errors.ErrGroupNotFoundWithName(groupName)
		}
		if acting != model.RootName && !m.groups.IsMember(acting, groupName) {
			return fmt.Errorf("'%s' is not a member of '%s': %w", acting, groupName, errors.ErrForbidden)
		}
	}

	rec.Group = groupName
	return nil
}

// ChangePermissions replaces all nine permission characters at once.
// Only the owner or root may do this. The three slot strings are
// accepted verbatim; only their length is checked.
func (m *ManagerImpl) ChangePermissions(name, ownerTriad, groupTriad, otherTriad, acting string) error {
	if acting == "" {
		return errors.ErrUnauthenticated
	}
	rec, err := m.lookup(name)
	if err != nil {
		return err
	}
	if acting != rec.Owner && acting != model.RootName {
		return fmt.Errorf("need owner access: %w", errors.ErrForbidden)
	}

	perms, err := model.CombineTriad(ownerTriad, groupTriad, otherTriad)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidInput, err.Error())
	}

	rec.Perms = perms
	return nil
}

// Stat returns a copy of the file's access-control record.
func (m *ManagerImpl) Stat(name, acting string) (model.FileRecord, error) {
	if acting == "" {
		return model.FileRecord{}, errors.ErrUnauthenticated
	}
	rec, err := m.lookup(name)
	if err != nil {
		return model.FileRecord{}, err
	}
	return *rec, nil
}

// Append adds one line to the file's backing content. Requires write
// access.
func (m *ManagerImpl) Append(name, line, acting string) error {
	rec, err := m.contentTarget(name, acting, model.Write)
	if err != nil {
		return err
	}
	if err := fsutil.AppendLine(m.backingPath(rec.Name), line); err != nil {
		return errors.Wrap(errors.ErrStorage, err.Error())
	}
	return nil
}

// ReadAll returns the file's backing content as lines. Requires read
// access.
func (m *ManagerImpl) ReadAll(name, acting string) ([]string, error) {
	rec, err := m.contentTarget(name, acting, model.Read)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(m.backingPath(rec.Name))
	if err != nil {
		return nil, errors.Wrap(errors.ErrStorage, err.Error())
	}
	content := strings.TrimSuffix(string(data), "\n")
	if content == "" {
		return nil, nil
	}
	return strings.Split(content, "\n"), nil
}

// Exec checks execute access on the file. No content is touched.
func (m *ManagerImpl) Exec(name, acting string) error {
	_, err := m.contentTarget(name, acting, model.Execute)
	return err
}

// Snapshot returns all access-control records sorted by file name for
// the persistence sink.
func (m *ManagerImpl) Snapshot() []model.FileRecord {
	records := make([]model.FileRecord, 0, len(m.records))
	for _, rec := range m.records {
		records = append(records, *rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	return records
}

// contentTarget runs the shared preconditions for read, write and
// execute: session, protected name, existence, then the permission
// evaluation for the requested class.
func (m *ManagerImpl) contentTarget(name, acting string, class model.AccessClass) (*model.FileRecord, error) {
	if acting == "" {
		return nil, errors.ErrUnauthenticated
	}
	rec, err := m.lookup(name)
	if err != nil {
		return nil, err
	}
	if !m.eval.IsGranted(rec, acting, class) {
		return nil, fmt.Errorf("no %s access to '%s': %w", class, name, errors.ErrForbidden)
	}
	return rec, nil
}

func (m *ManagerImpl) lookup(name string) (*model.FileRecord, error) {
	if m.protected[name] {
		return nil, errors.ErrProtectedWithName(name)
	}
	rec, ok := m.records[name]
	if !ok {
		return nil, errors.ErrFileNotFoundWithName(name)
	}
	return rec, nil
}

func (m *ManagerImpl) backingPath(name string) string {
	return filepath.Join(m.dir, name)
}
