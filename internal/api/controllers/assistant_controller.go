package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anuncia/internal/models/request_models"
	"anuncia/internal/services"
	"anuncia/pkg/utils"
)

type AssistantController struct {
	assistantService services.AssistantServiceInterface
}

func NewAssistantController(assistantService services.AssistantServiceInterface) *AssistantController {
	return &AssistantController{
		assistantService: assistantService,
	}
}

// GenerateAdCopy godoc
// @Summary Generate ad copy
// @Description Draft a title and body from the advertiser's profession and keywords
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body request_models.AdCopyRequest true "Ad copy payload"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /assistant/ad-copy [post]
func (a *AssistantController) GenerateAdCopy(c *gin.Context) {
	var req request_models.AdCopyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	copyResp, err := a.assistantService.GenerateAdCopy(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, copyResp, "Ad copy generated successfully")
}

// Chat godoc
// @Summary Chat with the site assistant
// @Description Answer a visitor question, grounded on the published ads
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body request_models.ChatRequest true "Chat payload"
// @Success 200 {object} utils.APIResponse
// @Router /assistant/chat [post]
func (a *AssistantController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	reply, err := a.assistantService.ChatReply(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reply, "Reply generated successfully")
}
