package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type DestinationController struct {
	destinationService services.DestinationServiceInterface
	discoveryService   services.DiscoveryServiceInterface
	reviewService      services.ReviewServiceInterface
}

func NewDestinationController(
	destinationService services.DestinationServiceInterface,
	discoveryService services.DiscoveryServiceInterface,
	reviewService services.ReviewServiceInterface,
) *DestinationController {
	return &DestinationController{
		destinationService: destinationService,
		discoveryService:   discoveryService,
		reviewService:      reviewService,
	}
}

func (ctrl *DestinationController) List(c *gin.Context) {
	destinations, err := ctrl.destinationService.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, destinations, "Destinations retrieved")
}

func (ctrl *DestinationController) Trending(c *gin.Context) {
	destinations, err := ctrl.destinationService.ListTrending(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, destinations, "Trending destinations retrieved")
}

func (ctrl *DestinationController) Get(c *gin.Context) {
	destination, err := ctrl.destinationService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, destination, "Destination retrieved")
}

func (ctrl *DestinationController) Create(c *gin.Context) {
	var req request_models.DestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	destination, err := ctrl.destinationService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, destination, "Destination created")
}

func (ctrl *DestinationController) Update(c *gin.Context) {
	var req request_models.DestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	destination, err := ctrl.destinationService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, destination, "Destination updated")
}

func (ctrl *DestinationController) Delete(c *gin.Context) {
	if err := ctrl.destinationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Destination deleted")
}

// SearchSimilar godoc
// @Summary Find destinations similar to a free-text description
// @Tags Destinations
// @Accept json
// @Produce json
// @Param request body request_models.SemanticSearchRequest true "Search payload"
// @Success 200 {object} utils.APIResponse
// @Router /destinations/search [post]
func (ctrl *DestinationController) SearchSimilar(c *gin.Context) {
	var req request_models.SemanticSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	destinations, err := ctrl.discoveryService.SearchSimilar(c.Request.Context(), req.Query, req.Limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, destinations, "Similar destinations retrieved")
}

func (ctrl *DestinationController) ListReviews(c *gin.Context) {
	reviews, err := ctrl.reviewService.ListByDestination(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, reviews, "Reviews retrieved")
}
