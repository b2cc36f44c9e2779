// Package account implements the account store: registered
// username/password pairs, the root bootstrap rule, and the durable
// accounts table.
package account

import (
	"fmt"
	"strings"

	"github.com/glorpus-work/authsim/pkg/errors"
	"github.com/glorpus-work/authsim/pkg/fsutil"
	"github.com/glorpus-work/authsim/pkg/model"
)

// Manager defines the interface for the account store.
type Manager interface {
	Create(name, password, acting string) error
	Exists(name string) bool
	Authenticate(name, password string) bool
	RootExists() bool
}

// ManagerImpl holds the registered accounts and appends each created
// account to the durable accounts table.
type ManagerImpl struct {
	tablePath  string
	accounts   map[string]*model.Account
	rootExists bool
}

// NewManager creates an empty account store whose durable table lives
// at tablePath.
func NewManager(tablePath string) *ManagerImpl {
	return &ManagerImpl{
		tablePath: tablePath,
		accounts:  make(map[string]*model.Account),
	}
}

// Create registers a new account. Until the root account exists only
// "root" may be created; afterwards only root itself may create
// accounts, and only while logged in. acting is the current session
// identity, empty when nobody is logged in.
//
// On success the pair is appended to the accounts table; a failed
// append is a storage failure and fatal to the run.
func (m *ManagerImpl) Create(name, password, acting string) error {
	if !m.rootExists {
		if name != model.RootName {
			return fmt.Errorf("cannot create '%s' before root: %w", name, errors.ErrBootstrap)
		}
	} else {
		if acting == "" {
			return errors.ErrUnauthenticated
		}
		if acting != model.RootName {
			return fmt.Errorf("only root can add accounts: %w", errors.ErrForbidden)
		}
	}

	if err := validateName(name); err != nil {
		return err
	}
	if len(password) > model.MaxNameLen {
		return fmt.Errorf("password exceeds %d characters: %w", model.MaxNameLen, errors.ErrInvalidInput)
	}

	if _, ok := m.accounts[name]; ok {
		return errors.ErrAccountExistsWithName(name)
	}

	if err := fsutil.AppendLine(m.tablePath, name+" "+password); err != nil {
		return errors.Wrap(errors.ErrStorage, err.Error())
	}

	m.accounts[name] = &model.Account{Name: name, Password: password}
	if name == model.RootName {
		m.rootExists = true
	}
	return nil
}

// Exists reports whether an account with the given name is registered.
func (m *ManagerImpl) Exists(name string) bool {
	_, ok := m.accounts[name]
	return ok
}

// Authenticate reports whether the exact username/password pair is
// registered.
func (m *ManagerImpl) Authenticate(name, password string) bool {
	acct, ok := m.accounts[name]
	return ok && acct.Password == password
}

// RootExists reports whether the root account has been created.
func (m *ManagerImpl) RootExists() bool {
	return m.rootExists
}

func validateName(name string) error {
	if name == "" || len(name) > model.MaxNameLen {
		return fmt.Errorf("username must be 1-%d characters: %w", model.MaxNameLen, errors.ErrInvalidInput)
	}
	if strings.ContainsAny(name, "/:") {
		return fmt.Errorf("username may not contain '/' or ':': %w", errors.ErrInvalidInput)
	}
	return nil
}
