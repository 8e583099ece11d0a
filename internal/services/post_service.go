package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"anuncia/internal/models/db_models"
	"anuncia/internal/models/request_models"
	"anuncia/internal/models/response_models"
	"anuncia/internal/rules"
	"anuncia/internal/store"
	"anuncia/pkg/utils"
)

type PostServiceInterface interface {
	PublicFeed(ctx context.Context) ([]response_models.PostResponse, error)
	CreatePost(ctx context.Context, authorID uuid.UUID, request request_models.CreatePostRequest) (*response_models.PostResponse, error)
	UpdatePost(ctx context.Context, postID uuid.UUID, request request_models.UpdatePostRequest) (*response_models.PostResponse, error)
	DeletePost(ctx context.Context, postID uuid.UUID) error
}

type PostService struct {
	posts     *store.PostStore
	users     *store.UserStore
	assistant AssistantServiceInterface
}

func NewPostService(posts *store.PostStore, users *store.UserStore, assistant AssistantServiceInterface) PostServiceInterface {
	return &PostService{posts: posts, users: users, assistant: assistant}
}

// PublicFeed returns posts whose author currently may publish: confirmed
// advertisers and admins. Posts from lapsed authors stay stored but drop out
// of the feed until the author renews.
func (p *PostService) PublicFeed(ctx context.Context) ([]response_models.PostResponse, error) {
	posts, err := p.posts.Fetch(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	users, err := p.users.Fetch(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	visible := make(map[uuid.UUID]bool, len(users))
	for i := range users {
		visible[users[i].ID] = users[i].CanPublish() && !users[i].Blocked
	}

	var out []db_models.Post
	for i := range posts {
		if visible[posts[i].AuthorID] {
			out = append(out, posts[i])
		}
	}
	return response_models.PostsFromModels(out), nil
}

func (p *PostService) CreatePost(ctx context.Context, authorID uuid.UUID, request request_models.CreatePostRequest) (*response_models.PostResponse, error) {
	author, err := p.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if author == nil {
		return nil, utils.ErrAccountNotFound
	}
	if author.Blocked {
		return nil, utils.ErrAccountBlocked
	}

	// Admins skip both the payment gate and the frequency limits.
	if !author.IsAdmin() {
		if !author.CanPublish() {
			return nil, utils.ErrPaymentRequired
		}

		existing, err := p.posts.ListByAuthor(ctx, authorID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		createdTimes := make([]time.Time, 0, len(existing))
		for i := range existing {
			createdTimes = append(createdTimes, utils.FromUnixSeconds(existing[i].CreatedAt))
		}
		if err := rules.CheckPostingLimit(createdTimes, time.Now()); err != nil {
			return nil, err
		}
	}

	post := &db_models.Post{
		AuthorID:         author.ID,
		AuthorName:       author.DisplayName,
		AuthorProfession: author.Profession,
		Category:         request.Category,
		Title:            request.Title,
		Body:             request.Body,
		Whatsapp:         request.Whatsapp,
		Phone:            request.Phone,
		ImageURL:         request.ImageURL,
	}

	receipt := p.posts.Upsert(ctx, post)
	if !receipt.Local {
		return nil, utils.ErrDatabaseError
	}
	if !receipt.RemoteOK() {
		log.Printf("post %s created locally only: %v", post.ID, receipt.Remote)
	}

	p.indexForRetrieval(ctx, post)

	resp := response_models.PostFromModel(post)
	return &resp, nil
}

func (p *PostService) UpdatePost(ctx context.Context, postID uuid.UUID, request request_models.UpdatePostRequest) (*response_models.PostResponse, error) {
	post, err := p.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}

	if request.Category != nil {
		post.Category = *request.Category
	}
	if request.Title != nil {
		post.Title = *request.Title
	}
	if request.Body != nil {
		post.Body = *request.Body
	}
	if request.Whatsapp != nil {
		post.Whatsapp = *request.Whatsapp
	}
	if request.Phone != nil {
		post.Phone = *request.Phone
	}
	if request.ImageURL != nil {
		post.ImageURL = *request.ImageURL
	}

	receipt := p.posts.Upsert(ctx, post)
	if !receipt.Local {
		return nil, utils.ErrDatabaseError
	}

	p.indexForRetrieval(ctx, post)

	resp := response_models.PostFromModel(post)
	return &resp, nil
}

func (p *PostService) DeletePost(ctx context.Context, postID uuid.UUID) error {
	post, err := p.posts.FindByID(ctx, postID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if post == nil {
		return utils.ErrPostNotFound
	}

	receipt := p.posts.Delete(ctx, postID)
	if !receipt.Local {
		return utils.ErrDatabaseError
	}
	if !receipt.RemoteOK() {
		log.Printf("post %s deleted locally only: %v", postID, receipt.Remote)
	}
	if p.assistant != nil {
		p.assistant.RemovePostIndex(ctx, postID.String())
	}
	return nil
}

// indexForRetrieval is best-effort: the feed never waits on the assistant.
func (p *PostService) indexForRetrieval(ctx context.Context, post *db_models.Post) {
	if p.assistant == nil {
		return
	}
	if err := p.assistant.IndexPost(ctx, post); err != nil {
		log.Printf("post %s not indexed for assistant retrieval: %v", post.ID, err)
	}
}
