package repositories

import (
	"strings"
	"time"

	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
)

// storedUser mirrors models.User for persistence. The password hash is
// excluded from the model's JSON form so it never leaks into API
// responses; here it must be kept.
type storedUser struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

func toStored(user *models.User) *storedUser {
	return &storedUser{
		ID:           user.ID,
		Username:     user.Username,
		DisplayName:  user.DisplayName,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}
}

func (s *storedUser) toModel() *models.User {
	return &models.User{
		ID:           s.ID,
		Username:     s.Username,
		DisplayName:  s.DisplayName,
		PasswordHash: s.PasswordHash,
		CreatedAt:    s.CreatedAt,
	}
}

// BadgerUserRepository implements UserRepository using BadgerDB.
// Usernames are unique through an index key written in the same
// transaction as the user record.
type BadgerUserRepository struct {
	db *badger.DB
}

// NewBadgerUserRepository creates a new BadgerUserRepository.
func NewBadgerUserRepository(db *badger.DB) *BadgerUserRepository {
	return &BadgerUserRepository{db: db}
}

// Create creates a new user.
func (r *BadgerUserRepository) Create(user *models.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		nameKey := indexKey(UsernameIndexPrefix, user.Username)
		if _, err := txn.Get(nameKey); err == nil {
			return ErrDuplicate
		} else if err != badger.ErrKeyNotFound {
			return err
		}

		id, err := getNextID(txn, UserSeqKey)
		if err != nil {
			return err
		}
		user.ID = id
		if user.CreatedAt.IsZero() {
			user.CreatedAt = time.Now()
		}

		data, err := marshalEntity(toStored(user))
		if err != nil {
			return err
		}

		if err := txn.Set(entityKey(UserKeyPrefix, user.ID), data); err != nil {
			return err
		}
		return txn.Set(nameKey, idToBytes(user.ID))
	})
}

// GetByID retrieves a user by ID.
func (r *BadgerUserRepository) GetByID(id int) (*models.User, error) {
	var stored storedUser

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(entityKey(UserKeyPrefix, id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &stored)
		})
	})

	if err != nil {
		return nil, err
	}
	return stored.toModel(), nil
}

// GetByUsername retrieves a user by username (case-insensitive).
func (r *BadgerUserRepository) GetByUsername(username string) (*models.User, error) {
	var id int

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(indexKey(UsernameIndexPrefix, strings.TrimSpace(username)))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			id = idFromBytes(val)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}
