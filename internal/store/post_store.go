package store

import (
	"context"
	"log"

	"github.com/google/uuid"

	"anuncia/internal/cache"
	"anuncia/internal/models/db_models"
	"anuncia/internal/repositories"
	"anuncia/pkg/utils"
)

type PostStore struct {
	repo repositories.PostRepository
	snap cache.SnapshotStore
}

func NewPostStore(repo repositories.PostRepository, snap cache.SnapshotStore) *PostStore {
	return &PostStore{repo: repo, snap: snap}
}

func (s *PostStore) Fetch(ctx context.Context) ([]db_models.Post, error) {
	posts, err := s.repo.ListAll(ctx)
	if err != nil {
		log.Printf("post fetch falling back to snapshot: %v", err)
		var cached []db_models.Post
		if ok, cacheErr := s.snap.Get(ctx, cache.KeyPosts, &cached); cacheErr == nil && ok {
			return cached, nil
		}
		return nil, utils.ErrDatabaseError
	}
	if err := s.snap.Set(ctx, cache.KeyPosts, posts); err != nil {
		log.Printf("post snapshot refresh failed: %v", err)
	}
	return posts, nil
}

func (s *PostStore) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		var cached []db_models.Post
		if ok, cacheErr := s.snap.Get(ctx, cache.KeyPosts, &cached); cacheErr == nil && ok {
			for i := range cached {
				if cached[i].ID == id {
					return &cached[i], nil
				}
			}
		}
		return nil, utils.ErrDatabaseError
	}
	return post, nil
}

// ListByAuthor feeds the rate limiter. The backend is authoritative; when it
// is unreachable the cached feed filtered by author is the best available
// answer, which keeps posting usable offline at the cost of a possibly
// stale limit decision.
func (s *PostStore) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]db_models.Post, error) {
	posts, err := s.repo.ListByAuthor(ctx, authorID)
	if err != nil {
		var cached []db_models.Post
		if ok, cacheErr := s.snap.Get(ctx, cache.KeyPosts, &cached); cacheErr == nil && ok {
			var mine []db_models.Post
			for i := range cached {
				if cached[i].AuthorID == authorID {
					mine = append(mine, cached[i])
				}
			}
			return mine, nil
		}
		return nil, utils.ErrDatabaseError
	}
	return posts, nil
}

func (s *PostStore) Upsert(ctx context.Context, post *db_models.Post) WriteReceipt {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	if post.CreatedAt == 0 {
		post.CreatedAt = utils.NowUnixSeconds()
	}

	receipt := WriteReceipt{Local: true}

	var cached []db_models.Post
	_, _ = s.snap.Get(ctx, cache.KeyPosts, &cached)
	cached = replacePost(cached, post)
	if err := s.snap.Set(ctx, cache.KeyPosts, cached); err != nil {
		receipt.Local = false
		log.Printf("post snapshot write failed: %v", err)
	}

	if err := s.repo.Update(ctx, post); err != nil {
		receipt.Remote = err
		log.Printf("post remote write failed, local snapshot kept: %v", err)
	}
	return receipt
}

func (s *PostStore) Delete(ctx context.Context, id uuid.UUID) WriteReceipt {
	receipt := WriteReceipt{Local: true}

	var cached []db_models.Post
	if ok, _ := s.snap.Get(ctx, cache.KeyPosts, &cached); ok {
		kept := cached[:0]
		for i := range cached {
			if cached[i].ID != id {
				kept = append(kept, cached[i])
			}
		}
		if err := s.snap.Set(ctx, cache.KeyPosts, kept); err != nil {
			receipt.Local = false
			log.Printf("post snapshot delete failed: %v", err)
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		receipt.Remote = err
		log.Printf("post remote delete failed, local snapshot kept: %v", err)
	}
	return receipt
}

func replacePost(posts []db_models.Post, post *db_models.Post) []db_models.Post {
	for i := range posts {
		if posts[i].ID == post.ID {
			posts[i] = *post
			return posts
		}
	}
	// Feed ordering is newest-first; a fresh post goes to the front.
	return append([]db_models.Post{*post}, posts...)
}
