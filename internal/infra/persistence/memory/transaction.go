package memory

import (
	"context"

	"rentql/internal/domain/repository"

	"github.com/pkg/errors"
)

// transactionManager gives the memory store all-or-nothing semantics by snapshotting the dataset.
type transactionManager struct {
	store *Store
}

// repositoryFactory hands out repositories that run under the lock already held by Execute.
type repositoryFactory struct {
	store *Store
}

// NewUserRepository returns a UserRepository bound to the running transaction.
func (f *repositoryFactory) NewUserRepository() repository.UserRepository {
	return &userRepository{store: f.store, inTx: true}
}

// NewApartmentRepository returns an ApartmentRepository bound to the running transaction.
func (f *repositoryFactory) NewApartmentRepository() repository.ApartmentRepository {
	return &apartmentRepository{store: f.store, inTx: true}
}

// NewPostRepository returns a PostRepository bound to the running transaction.
func (f *repositoryFactory) NewPostRepository() repository.PostRepository {
	return &postRepository{store: f.store, inTx: true}
}

// NewTransactionManager is the constructor for the memory transaction manager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn with exclusive access. Any error or panic restores the dataset as it was before fn ran.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}

	s := tm.store
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()

	defer func() {
		if r := recover(); r != nil {
			s.data = snapshot
			panic(r)
		}
	}()

	if err := fn(&repositoryFactory{store: s}); err != nil {
		s.data = snapshot

		return err
	}

	return nil
}
