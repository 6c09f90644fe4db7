package memory

import (
	"context"
	"time"

	"rentql/internal/domain/entity"
	domainerrors "rentql/internal/domain/errors"
	"rentql/internal/domain/repository"

	"github.com/google/uuid"
)

// userRepository implements repository.UserRepository on the memory store.
// Email uniqueness is enforced through the dataset's email index.
type userRepository struct {
	store *Store
	inTx  bool
}

// NewUserRepository is the constructor for the memory userRepository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var found *entity.User
	err := repo.store.read(ctx, repo.inTx, func(d *dataset) error {
		user, ok := d.users.get(id)
		if !ok {
			return repository.ErrUserNotFound
		}
		found = cloneUser(user)

		return nil
	})

	return found, err
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var found *entity.User
	err := repo.store.read(ctx, repo.inTx, func(d *dataset) error {
		id, ok := d.emails[email]
		if !ok {
			return repository.ErrUserNotFound
		}
		user, ok := d.users.get(id)
		if !ok {
			return repository.ErrUserNotFound
		}
		found = cloneUser(user)

		return nil
	})

	return found, err
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	id, err := newID(user.ID)
	if err != nil {
		return err
	}

	return repo.store.write(ctx, repo.inTx, func(d *dataset) error {
		if _, taken := d.emails[user.Email]; taken {
			return domainerrors.ErrDuplicateEmail.WrapMessage("email already exists")
		}
		if d.users.has(id) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("user id already exists")
		}

		now := time.Now()
		user.ID = id
		user.CreatedAt = now
		user.UpdatedAt = now
		d.users.insert(id, *cloneUser(*user))
		d.emails[user.Email] = id

		return nil
	})
}

func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	return repo.store.write(ctx, repo.inTx, func(d *dataset) error {
		current, ok := d.users.get(user.ID)
		if !ok {
			return repository.ErrUserNotFound
		}
		if current.Email != user.Email {
			if _, taken := d.emails[user.Email]; taken {
				return domainerrors.ErrDuplicateEmail.WrapMessage("email already exists")
			}
			delete(d.emails, current.Email)
			d.emails[user.Email] = user.ID
		}

		user.CreatedAt = current.CreatedAt
		user.UpdatedAt = time.Now()
		d.users.put(user.ID, *cloneUser(*user))

		return nil
	})
}

func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.store.write(ctx, repo.inTx, func(d *dataset) error {
		user, ok := d.users.get(id)
		if !ok {
			return repository.ErrUserNotFound
		}
		delete(d.emails, user.Email)
		d.users.remove(id)

		return nil
	})
}
