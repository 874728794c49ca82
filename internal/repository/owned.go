package repository

import "context"

// Owned is a repository over entities that belong to exactly one owning
// user. Every read and mutation is implicitly filtered to the owner's rows,
// so a foreign id and a nonexistent id are indistinguishable to callers.
type Owned[T any] interface {
	Create(ctx context.Context, entity *T) error
	Find(ctx context.Context, ownerID, id uint) (*T, error)
	List(ctx context.Context, ownerID uint, page, perPage int) (items []T, total int64, err error)
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, ownerID, id uint) error
}
