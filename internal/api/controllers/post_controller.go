package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anuncia/internal/models/request_models"
	"anuncia/internal/services"
	"anuncia/pkg/utils"
)

type PostController struct {
	postService services.PostServiceInterface
}

func NewPostController(postService services.PostServiceInterface) *PostController {
	return &PostController{
		postService: postService,
	}
}

// Feed godoc
// @Summary Public ad feed
// @Description List ads from subscribers whose payment is currently confirmed
// @Tags Posts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /posts [get]
func (p *PostController) Feed(c *gin.Context) {
	posts, err := p.postService.PublicFeed(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, posts, "Posts fetched successfully")
}

// Create godoc
// @Summary Publish a new ad
// @Description Create an ad for the calling user, enforcing the posting limits
// @Tags Posts
// @Accept json
// @Produce json
// @Param request body request_models.CreatePostRequest true "Ad payload"
// @Success 200 {object} utils.APIResponse
// @Failure 402 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /posts [post]
func (p *PostController) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	post, err := p.postService.CreatePost(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Post published successfully")
}

// Update godoc
// @Summary Update an ad
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Post id"
// @Param request body request_models.UpdatePostRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/posts/{id} [put]
func (p *PostController) Update(c *gin.Context) {
	postID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	post, err := p.postService.UpdatePost(c.Request.Context(), postID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Post updated successfully")
}

// Delete godoc
// @Summary Delete an ad
// @Tags Admin
// @Produce json
// @Param id path string true "Post id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/posts/{id} [delete]
func (p *PostController) Delete(c *gin.Context) {
	postID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := p.postService.DeletePost(c.Request.Context(), postID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Post deleted successfully")
}
