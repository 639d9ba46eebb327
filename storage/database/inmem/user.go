package inmemdb

import (
	"strings"
	"time"

	"github.com/bahati/malezi/core/user"
)

type userRepository struct {
	tbl *table[user.User]
}

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{tbl: db.user}
}

func (repo *userRepository) CheckUsernameUniqueness(username, email string, excludedUsers ...user.User) error {
	repo.tbl.simulate()
	excluded := make(map[string]bool, len(excludedUsers))
	for _, usr := range excludedUsers {
		excluded[usr.ID] = true
	}
	for _, usr := range repo.tbl.list() {
		if excluded[usr.ID] {
			continue
		}
		if username != "" && usr.Username == username {
			return user.ErrUsernameExists
		}
		if email != "" && usr.Email == email {
			return user.ErrEmailExists
		}
	}
	return nil
}

func (repo *userRepository) CreateUser(usr user.User) (user.User, error) {
	repo.tbl.simulate()
	usr.ID = newID()
	return repo.tbl.insert(usr.ID, usr), nil
}

func (repo *userRepository) QueryAllUsers() ([]user.User, error) {
	repo.tbl.simulate()
	return repo.tbl.list(), nil
}

func (repo *userRepository) GetUserByID(id string) (user.User, error) {
	repo.tbl.simulate()
	if usr, ok := repo.tbl.get(id); ok {
		return usr, nil
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) GetUserByUsernameOrEmail(username string) (user.User, error) {
	repo.tbl.simulate()
	for _, usr := range repo.tbl.list() {
		if (usr.Username == username) || (usr.Email == username) {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) FilterUsers(filter user.QueryFilter) ([]user.User, error) {
	repo.tbl.simulate()
	out := make([]user.User, 0)
	for _, usr := range repo.tbl.list() {
		if matchUser(usr, filter) {
			out = append(out, usr)
		}
	}
	return out, nil
}

func matchUser(usr user.User, filter user.QueryFilter) bool {
	if filter.IsActive != nil && usr.IsActive != *filter.IsActive {
		return false
	}
	if filter.Roles != nil {
		var found bool
		for _, role := range filter.Roles {
			if usr.RoleStartsWith(role) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filter.Search != "" {
		s := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(usr.Name), s) &&
			!strings.Contains(usr.Username, s) &&
			!strings.Contains(usr.Email, s) {
			return false
		}
	}
	return true
}

func (repo *userRepository) UpdateUser(id string, uu user.UpdateUser, passwordHash []byte) (user.User, error) {
	repo.tbl.simulate()
	usr, ok := repo.tbl.mutate(id, func(usr *user.User) {
		// only save set fields
		usr.Name = mergeString(usr.Name, uu.Name)
		usr.Username = mergeString(usr.Username, uu.Username)
		usr.Email = mergeString(usr.Email, uu.Email)
		if uu.Roles != nil {
			usr.Roles = uu.Roles
		}
		if uu.IsActive != nil {
			usr.IsActive = *uu.IsActive
		}
		if passwordHash != nil {
			usr.PasswordHash = passwordHash
		}
		touch(&usr.UpdatedAt)
	})
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return usr, nil
}

func (repo *userRepository) SetUserLastLogin(id string, t time.Time) (user.User, error) {
	repo.tbl.simulate()
	usr, ok := repo.tbl.mutate(id, func(usr *user.User) {
		usr.LastLogin = t
	})
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return usr, nil
}

func (repo *userRepository) DeleteUsersByID(ids ...string) error {
	repo.tbl.simulate()
	for _, id := range ids {
		repo.tbl.remove(id)
	}
	return nil
}
