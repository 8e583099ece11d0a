package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"anuncia/internal/models/db_models"
	"anuncia/internal/services"
	"anuncia/pkg/utils"
)

type RefreshController struct {
	refreshService services.RefreshServiceInterface
	accountService services.AccountServiceInterface
}

func NewRefreshController(refreshService services.RefreshServiceInterface, accountService services.AccountServiceInterface) *RefreshController {
	return &RefreshController{
		refreshService: refreshService,
		accountService: accountService,
	}
}

// Refresh godoc
// @Summary Batched portal snapshot
// @Description Config, plans, categories and the public feed in one call. Admin sessions also receive the user list. Lapsed subscriptions are swept as a side effect.
// @Tags Site
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /refresh [get]
func (r *RefreshController) Refresh(c *gin.Context) {
	includeUsers := false
	if userID, err := uuid.Parse(c.GetString("user_id")); err == nil {
		// The session is re-validated against the freshest user record on
		// every refresh. A token for a deleted or since-blocked user gets
		// a 401 so the client logs out instead of serving stale state.
		account, err := r.accountService.GetAccount(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, utils.ErrAccountNotFound) || errors.Is(err, utils.ErrAccountBlocked) {
				utils.RespondError(c, http.StatusUnauthorized, "Session is no longer valid")
				return
			}
			utils.HandleServiceError(c, err)
			return
		}
		includeUsers = account.Role == string(db_models.RoleAdmin)
	}

	snapshot, err := r.refreshService.Refresh(c.Request.Context(), includeUsers)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, snapshot, "Snapshot fetched successfully")
}
