package repositories

import (
	"sort"
	"strings"
	"time"

	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerTagRepository implements TagRepository using BadgerDB. Tag
// names and slugs are kept unique through index keys written in the
// same transaction as the tag itself.
type BadgerTagRepository struct {
	db *badger.DB
}

// NewBadgerTagRepository creates a new BadgerTagRepository.
func NewBadgerTagRepository(db *badger.DB) *BadgerTagRepository {
	return &BadgerTagRepository{db: db}
}

// Create creates a new tag. The name is normalized and the slug derived
// before the uniqueness check.
func (r *BadgerTagRepository) Create(tag *models.Tag) error {
	if err := tag.Validate(); err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		nameKey := indexKey(TagNameIndexPrefix, tag.Name)
		if _, err := txn.Get(nameKey); err == nil {
			return ErrDuplicate
		} else if err != badger.ErrKeyNotFound {
			return err
		}

		slugKey := indexKey(TagSlugIndexPrefix, tag.Slug)
		if _, err := txn.Get(slugKey); err == nil {
			return ErrDuplicate
		} else if err != badger.ErrKeyNotFound {
			return err
		}

		id, err := getNextID(txn, TagSeqKey)
		if err != nil {
			return err
		}
		tag.ID = id
		if tag.CreatedAt.IsZero() {
			tag.CreatedAt = time.Now()
		}

		data, err := marshalEntity(tag)
		if err != nil {
			return err
		}

		if err := txn.Set(entityKey(TagKeyPrefix, tag.ID), data); err != nil {
			return err
		}
		if err := txn.Set(nameKey, idToBytes(tag.ID)); err != nil {
			return err
		}
		return txn.Set(slugKey, idToBytes(tag.ID))
	})
}

// GetByID retrieves a tag by ID.
func (r *BadgerTagRepository) GetByID(id int) (*models.Tag, error) {
	var tag models.Tag

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(entityKey(TagKeyPrefix, id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &tag)
		})
	})

	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetByName retrieves a tag by name. The lookup is case-insensitive
// because the index terms are lowercased.
func (r *BadgerTagRepository) GetByName(name string) (*models.Tag, error) {
	var id int

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(indexKey(TagNameIndexPrefix, strings.TrimSpace(name)))
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

// GetOrCreate resolves a name to its existing tag, creating one when no
// tag with that (normalized) name exists yet.
func (r *BadgerTagRepository) GetOrCreate(name string) (*models.Tag, error) {
	tag, err := r.GetByName(name)
	if err == nil {
		return tag, nil
	}
	if err != ErrNotFound {
		return nil, err
	}

	created := &models.Tag{Name: name}
	if err := r.Create(created); err != nil {
		return nil, err
	}
	return created, nil
}

// List retrieves all tags sorted by name.
func (r *BadgerTagRepository) List() ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(TagKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var tag models.Tag
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &tag)
			})
			if err != nil {
				return err
			}
			tags = append(tags, &tag)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(tags, func(i, j int) bool { return tags[i].Name < tags[j].Name })
	return tags, nil
}

// Delete deletes a tag and its index entries.
func (r *BadgerTagRepository) Delete(id int) error {
	tag, err := r.GetByID(id)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(entityKey(TagKeyPrefix, id)); err != nil {
			return err
		}
		if err := txn.Delete(indexKey(TagNameIndexPrefix, tag.Name)); err != nil {
			return err
		}
		return txn.Delete(indexKey(TagSlugIndexPrefix, tag.Slug))
	})
}
