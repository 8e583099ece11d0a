package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anuncia/internal/models/request_models"
	"anuncia/internal/services"
	"anuncia/pkg/utils"
)

type SiteController struct {
	siteService services.SiteServiceInterface
}

func NewSiteController(siteService services.SiteServiceInterface) *SiteController {
	return &SiteController{
		siteService: siteService,
	}
}

// GetConfig godoc
// @Summary Get the site configuration
// @Description Branding, hero content and contact links for the landing page
// @Tags Site
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /site/config [get]
func (s *SiteController) GetConfig(c *gin.Context) {
	cfg, err := s.siteService.GetConfig(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cfg, "Site config fetched successfully")
}

// SaveConfig godoc
// @Summary Save the site configuration
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.SaveSiteConfigRequest true "Site config payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/site/config [put]
func (s *SiteController) SaveConfig(c *gin.Context) {
	var req request_models.SaveSiteConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	cfg, err := s.siteService.SaveConfig(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cfg, "Site config saved successfully")
}

// ListCategories godoc
// @Summary List ad categories
// @Tags Site
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /categories [get]
func (s *SiteController) ListCategories(c *gin.Context) {
	categories, err := s.siteService.GetCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, categories, "Categories fetched successfully")
}

// AddCategory godoc
// @Summary Add an ad category
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.SaveCategoryRequest true "Category payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/categories [post]
func (s *SiteController) AddCategory(c *gin.Context) {
	var req request_models.SaveCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	category, err := s.siteService.AddCategory(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, category, "Category added successfully")
}

// DeleteCategory godoc
// @Summary Delete an ad category
// @Tags Admin
// @Produce json
// @Param id path string true "Category id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/categories/{id} [delete]
func (s *SiteController) DeleteCategory(c *gin.Context) {
	categoryID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := s.siteService.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Category deleted successfully")
}
