package memory

import (
	"context"
	"time"

	"rentql/internal/domain/entity"
	"rentql/internal/domain/repository"

	"github.com/google/uuid"
)

// postRepository implements repository.PostRepository on the memory store.
type postRepository struct {
	store *Store
	inTx  bool
}

// NewPostRepository is the constructor for the memory postRepository.
func NewPostRepository(store *Store) repository.PostRepository {
	return &postRepository{store: store}
}

func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	id, err := newID(post.ID)
	if err != nil {
		return err
	}

	return repo.store.write(ctx, repo.inTx, func(d *dataset) error {
		now := time.Now()
		post.ID = id
		post.CreatedAt = now
		post.UpdatedAt = now
		d.posts.insert(id, *clonePost(*post))

		return nil
	})
}

func (repo *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var found *entity.Post
	err := repo.store.read(ctx, repo.inTx, func(d *dataset) error {
		post, ok := d.posts.get(id)
		if !ok {
			return repository.ErrPostNotFound
		}
		found = clonePost(post)

		return nil
	})

	return found, err
}

func (repo *postRepository) Find(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, error) {
	found := []*entity.Post{}
	err := repo.store.read(ctx, repo.inTx, func(d *dataset) error {
		for _, post := range d.posts.values() {
			if filter.Matches(&post) {
				found = append(found, clonePost(post))
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// Update replaces the mutable fields. The stored owner is kept regardless of the input.
func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	return repo.store.write(ctx, repo.inTx, func(d *dataset) error {
		current, ok := d.posts.get(post.ID)
		if !ok {
			return repository.ErrPostNotFound
		}

		post.OwnerID = current.OwnerID
		post.CreatedAt = current.CreatedAt
		post.UpdatedAt = time.Now()
		d.posts.put(post.ID, *clonePost(*post))

		return nil
	})
}

func (repo *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.store.write(ctx, repo.inTx, func(d *dataset) error {
		if !d.posts.remove(id) {
			return repository.ErrPostNotFound
		}

		return nil
	})
}

func (repo *postRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var removed int64
	err := repo.store.write(ctx, repo.inTx, func(d *dataset) error {
		for _, post := range d.posts.values() {
			if entity.SameIdentity(post.OwnerID, ownerID) && d.posts.remove(post.ID) {
				removed++
			}
		}

		return nil
	})

	return removed, err
}
