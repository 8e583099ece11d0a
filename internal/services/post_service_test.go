package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"anuncia/internal/cache"
	"anuncia/internal/models/db_models"
	"anuncia/internal/models/request_models"
	"anuncia/internal/rules"
	"anuncia/internal/store"
	"anuncia/pkg/utils"
)

func newPostService(postRepo *MockPostRepository, userRepo *MockUserRepository) PostServiceInterface {
	snap := cache.NewMemorySnapshots()
	posts := store.NewPostStore(postRepo, snap)
	users := store.NewUserStore(userRepo, snap)
	return NewPostService(posts, users, nil)
}

func postAt(authorID uuid.UUID, createdAt time.Time) db_models.Post {
	return db_models.Post{
		BaseModel: db_models.BaseModel{ID: uuid.New(), CreatedAt: createdAt.Unix()},
		AuthorID:  authorID,
		Category:  "services",
		Title:     "anúncio",
		Body:      "corpo",
	}
}

func TestCreatePostRequiresConfirmedPayment(t *testing.T) {
	ctx := context.Background()
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	svc := newPostService(postRepo, userRepo)

	author := confirmedUser("maria@example.com", "pw")
	author.PaymentStatus = db_models.PaymentAwaiting
	userRepo.On("FindByID", ctx, author.ID).Return(author, nil)

	_, err := svc.CreatePost(ctx, author.ID, request_models.CreatePostRequest{
		Category: "services", Title: "t", Body: "b",
	})
	assert.ErrorIs(t, err, utils.ErrPaymentRequired)
}

func TestCreatePostFifthWithinWindowHitsQuota(t *testing.T) {
	ctx := context.Background()
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	svc := newPostService(postRepo, userRepo)

	author := confirmedUser("maria@example.com", "pw")
	userRepo.On("FindByID", ctx, author.ID).Return(author, nil)

	now := time.Now()
	existing := []db_models.Post{
		postAt(author.ID, now.Add(-28*24*time.Hour)),
		postAt(author.ID, now.Add(-21*24*time.Hour)),
		postAt(author.ID, now.Add(-14*24*time.Hour)),
		postAt(author.ID, now.Add(-8*24*time.Hour)),
	}
	postRepo.On("ListByAuthor", ctx, author.ID).Return(existing, nil)

	_, err := svc.CreatePost(ctx, author.ID, request_models.CreatePostRequest{
		Category: "services", Title: "t", Body: "b",
	})
	assert.ErrorIs(t, err, utils.ErrPostQuota)

	var quota *utils.QuotaError
	require.ErrorAs(t, err, &quota)
	assert.Equal(t, rules.MaxPostsPerWindow, quota.MaxPosts)
}

func TestCreatePostWithinSpacingHitsCooldown(t *testing.T) {
	ctx := context.Background()
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	svc := newPostService(postRepo, userRepo)

	author := confirmedUser("maria@example.com", "pw")
	userRepo.On("FindByID", ctx, author.ID).Return(author, nil)

	now := time.Now()
	existing := []db_models.Post{postAt(author.ID, now.Add(-3*24*time.Hour))}
	postRepo.On("ListByAuthor", ctx, author.ID).Return(existing, nil)

	_, err := svc.CreatePost(ctx, author.ID, request_models.CreatePostRequest{
		Category: "services", Title: "t", Body: "b",
	})
	assert.ErrorIs(t, err, utils.ErrPostCooldown)

	var cooldown *utils.CooldownError
	require.ErrorAs(t, err, &cooldown)
	assert.Equal(t, 4, cooldown.DaysRemaining)
}

func TestCreatePostAdminBypassesAllLimits(t *testing.T) {
	ctx := context.Background()
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	svc := newPostService(postRepo, userRepo)

	admin := confirmedUser("admin@example.com", "pw")
	admin.Role = db_models.RoleAdmin
	admin.PaymentStatus = db_models.PaymentNotApplicable
	userRepo.On("FindByID", ctx, admin.ID).Return(admin, nil)
	postRepo.On("Update", ctx, mock.AnythingOfType("*db_models.Post")).Return(nil)

	resp, err := svc.CreatePost(ctx, admin.ID, request_models.CreatePostRequest{
		Category: "announcements", Title: "aviso", Body: "b",
	})
	require.NoError(t, err)
	assert.Equal(t, admin.DisplayName, resp.AuthorName)
	postRepo.AssertNotCalled(t, "ListByAuthor", ctx, admin.ID)
}

func TestCreatePostDenormalizesAuthorFields(t *testing.T) {
	ctx := context.Background()
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	svc := newPostService(postRepo, userRepo)

	author := confirmedUser("maria@example.com", "pw")
	userRepo.On("FindByID", ctx, author.ID).Return(author, nil)
	postRepo.On("ListByAuthor", ctx, author.ID).Return([]db_models.Post{}, nil)
	postRepo.On("Update", ctx, mock.AnythingOfType("*db_models.Post")).Return(nil)

	resp, err := svc.CreatePost(ctx, author.ID, request_models.CreatePostRequest{
		Category: "services", Title: "instalações elétricas", Body: "b", Whatsapp: "+5511999999999",
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria", resp.AuthorName)
	assert.Equal(t, "Eletricista", resp.AuthorProfession)
}

func TestPublicFeedHidesLapsedAuthors(t *testing.T) {
	ctx := context.Background()
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	svc := newPostService(postRepo, userRepo)

	active := confirmedUser("active@example.com", "pw")
	lapsed := confirmedUser("lapsed@example.com", "pw")
	lapsed.PaymentStatus = db_models.PaymentAwaiting

	now := time.Now()
	posts := []db_models.Post{
		postAt(active.ID, now.Add(-24*time.Hour)),
		postAt(lapsed.ID, now.Add(-48*time.Hour)),
	}
	postRepo.On("ListAll", ctx).Return(posts, nil)
	userRepo.On("ListAll", ctx).Return([]db_models.User{*active, *lapsed}, nil)

	feed, err := svc.PublicFeed(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, posts[0].ID.String(), feed[0].ID)
}

func TestDeletePostUnknownIDFails(t *testing.T) {
	ctx := context.Background()
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	svc := newPostService(postRepo, userRepo)

	id := uuid.New()
	postRepo.On("FindByID", ctx, id).Return(nil, nil)

	err := svc.DeletePost(ctx, id)
	assert.ErrorIs(t, err, utils.ErrPostNotFound)
}

func TestDeletePostKeepsLocalRemovalWhenRemoteFails(t *testing.T) {
	ctx := context.Background()
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	svc := newPostService(postRepo, userRepo)

	post := postAt(uuid.New(), time.Now())
	postRepo.On("FindByID", ctx, post.ID).Return(&post, nil)
	postRepo.On("Delete", ctx, post.ID).Return(assert.AnError)

	assert.NoError(t, svc.DeletePost(ctx, post.ID))
}
