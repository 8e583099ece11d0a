package store

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"anuncia/internal/cache"
	"anuncia/internal/models/db_models"
	"anuncia/internal/repositories"
	"anuncia/pkg/utils"
)

type UserStore struct {
	repo repositories.UserRepository
	snap cache.SnapshotStore
}

func NewUserStore(repo repositories.UserRepository, snap cache.SnapshotStore) *UserStore {
	return &UserStore{repo: repo, snap: snap}
}

func (s *UserStore) Fetch(ctx context.Context) ([]db_models.User, error) {
	users, err := s.repo.ListAll(ctx)
	if err != nil {
		log.Printf("user fetch falling back to snapshot: %v", err)
		var cached []db_models.User
		if ok, cacheErr := s.snap.Get(ctx, cache.KeyUsers, &cached); cacheErr == nil && ok {
			return cached, nil
		}
		return nil, utils.ErrDatabaseError
	}
	if err := s.snap.Set(ctx, cache.KeyUsers, users); err != nil {
		log.Printf("user snapshot refresh failed: %v", err)
	}
	return users, nil
}

func (s *UserStore) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if cached := s.findCached(ctx, func(u *db_models.User) bool { return u.ID == id }); cached != nil {
			return cached, nil
		}
		return nil, utils.ErrDatabaseError
	}
	return user, nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if cached := s.findCached(ctx, func(u *db_models.User) bool {
			return strings.EqualFold(u.Email, email)
		}); cached != nil {
			return cached, nil
		}
		return nil, utils.ErrDatabaseError
	}
	return user, nil
}

// Upsert writes the snapshot first so the caller's next read reflects the
// change even if the backend write fails.
func (s *UserStore) Upsert(ctx context.Context, user *db_models.User) WriteReceipt {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	receipt := WriteReceipt{Local: true}

	var cached []db_models.User
	_, _ = s.snap.Get(ctx, cache.KeyUsers, &cached)
	cached = replaceUser(cached, user)
	if err := s.snap.Set(ctx, cache.KeyUsers, cached); err != nil {
		receipt.Local = false
		log.Printf("user snapshot write failed: %v", err)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		receipt.Remote = err
		log.Printf("user remote write failed, local snapshot kept: %v", err)
	}
	return receipt
}

func (s *UserStore) Delete(ctx context.Context, id uuid.UUID) WriteReceipt {
	receipt := WriteReceipt{Local: true}

	var cached []db_models.User
	if ok, _ := s.snap.Get(ctx, cache.KeyUsers, &cached); ok {
		kept := cached[:0]
		for i := range cached {
			if cached[i].ID != id {
				kept = append(kept, cached[i])
			}
		}
		if err := s.snap.Set(ctx, cache.KeyUsers, kept); err != nil {
			receipt.Local = false
			log.Printf("user snapshot delete failed: %v", err)
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		receipt.Remote = err
		log.Printf("user remote delete failed, local snapshot kept: %v", err)
	}
	return receipt
}

func (s *UserStore) findCached(ctx context.Context, match func(*db_models.User) bool) *db_models.User {
	var cached []db_models.User
	if ok, err := s.snap.Get(ctx, cache.KeyUsers, &cached); err != nil || !ok {
		return nil
	}
	for i := range cached {
		if match(&cached[i]) {
			return &cached[i]
		}
	}
	return nil
}

func replaceUser(users []db_models.User, user *db_models.User) []db_models.User {
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = *user
			return users
		}
	}
	return append(users, *user)
}
