package memory

import (
	"context"
	"slices"
	"sync"

	"rentql/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// dataset is every table of the store. A transaction snapshots and restores it as a unit.
type dataset struct {
	users        *table[entity.User]
	emails       map[string]uuid.UUID
	apartments   *table[entity.Apartment]
	posts        *table[entity.Post]
	technologies *table[entity.Technology]
	people       *table[entity.Person]
}

func newDataset() *dataset {
	return &dataset{
		users:        newTable[entity.User](),
		emails:       make(map[string]uuid.UUID),
		apartments:   newTable[entity.Apartment](),
		posts:        newTable[entity.Post](),
		technologies: newTable[entity.Technology](),
		people:       newTable[entity.Person](),
	}
}

func (d *dataset) clone() *dataset {
	emails := make(map[string]uuid.UUID, len(d.emails))
	for email, id := range d.emails {
		emails[email] = id
	}

	return &dataset{
		users:        d.users.clone(),
		emails:       emails,
		apartments:   d.apartments.clone(),
		posts:        d.posts.clone(),
		technologies: d.technologies.clone(),
		people:       d.people.clone(),
	}
}

// Store is the in-process backing for every memory repository.
// Reads share an RWMutex; a transaction holds the write lock until it commits or rolls back.
type Store struct {
	mu   sync.RWMutex
	data *dataset
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{data: newDataset()}
}

// read runs fn under the shared lock unless the caller already holds the transaction lock.
func (s *Store) read(ctx context.Context, inTx bool, fn func(d *dataset) error) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "memory store read")
	}
	if !inTx {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}

	return fn(s.data)
}

// write runs fn under the exclusive lock unless the caller already holds the transaction lock.
func (s *Store) write(ctx context.Context, inTx bool, fn func(d *dataset) error) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "memory store write")
	}
	if !inTx {
		s.mu.Lock()
		defer s.mu.Unlock()
	}

	return fn(s.data)
}

// newID returns a UUIDv7 unless the entity already carries an ID.
func newID(current uuid.UUID) (uuid.UUID, error) {
	if current != uuid.Nil {
		return current, nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "uuid.NewV7")
	}

	return id, nil
}

// Stored values never share slices with callers.

func cloneUser(u entity.User) *entity.User {
	u.Roles = slices.Clone(u.Roles)

	return &u
}

func cloneApartment(a entity.Apartment) *entity.Apartment {
	a.Photos = slices.Clone(a.Photos)

	return &a
}

func clonePost(p entity.Post) *entity.Post {
	return &p
}

func cloneTechnology(t entity.Technology) *entity.Technology {
	return &t
}

func clonePerson(p entity.Person) *entity.Person {
	p.TechIDs = slices.Clone(p.TechIDs)

	return &p
}
