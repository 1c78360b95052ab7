package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint would be violated.
	ErrDuplicate = errors.New("record already exists")
)

const (
	// Key prefixes for different entity types
	PostKeyPrefix    = "post:"
	TagKeyPrefix     = "tag:"
	CommentKeyPrefix = "comment:"
	UserKeyPrefix    = "user:"

	// Unique index prefixes (value is the entity ID)
	TagNameIndexPrefix  = "idx:tagname:"
	TagSlugIndexPrefix  = "idx:tagslug:"
	UsernameIndexPrefix = "idx:username:"

	// Sequence keys for auto-incrementing IDs
	PostSeqKey    = "seq:post"
	TagSeqKey     = "seq:tag"
	CommentSeqKey = "seq:comment"
	UserSeqKey    = "seq:user"
)

// getNextID gets the next available ID for a given sequence key.
func getNextID(txn *badger.Txn, seqKey string) (int, error) {
	var id int
	item, err := txn.Get([]byte(seqKey))
	if err == badger.ErrKeyNotFound {
		id = 1
	} else if err != nil {
		return 0, err
	} else {
		err = item.Value(func(val []byte) error {
			id = int(val[0])<<24 | int(val[1])<<16 | int(val[2])<<8 | int(val[3])
			return nil
		})
		if err != nil {
			return 0, err
		}
		id++
	}

	// Store new ID
	idBytes := []byte{byte(id >> 24), byte(id >> 16), byte(id >> 8), byte(id)}
	if err := txn.Set([]byte(seqKey), idBytes); err != nil {
		return 0, err
	}

	return id, nil
}

// entityKey builds the primary key for an entity.
func entityKey(prefix string, id int) []byte {
	return []byte(fmt.Sprintf("%s%d", prefix, id))
}

// indexKey builds a unique-index key. Index terms are lowercased so
// lookups are case-insensitive.
func indexKey(prefix, term string) []byte {
	return []byte(prefix + strings.ToLower(term))
}

// idToBytes encodes an entity ID for storage as an index value.
func idToBytes(id int) []byte {
	return []byte{byte(id >> 24), byte(id >> 16), byte(id >> 8), byte(id)}
}

// idFromBytes decodes an entity ID stored by idToBytes.
func idFromBytes(val []byte) int {
	return int(val[0])<<24 | int(val[1])<<16 | int(val[2])<<8 | int(val[3])
}

// marshalEntity marshals an entity to JSON.
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %v", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity.
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %v", err)
	}
	return nil
}
