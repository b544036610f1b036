package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type TripController struct {
	planner services.PlannerServiceInterface
	weather services.WeatherProviderInterface
}

func NewTripController(
	planner services.PlannerServiceInterface,
	weather services.WeatherProviderInterface,
) *TripController {
	return &TripController{
		planner: planner,
		weather: weather,
	}
}

// RecommendTrip godoc
// @Summary Generate a full trip plan
// @Description Synthesizes a structured day-wise trip plan from trip preferences
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.TripRequest true "Trip preferences"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /recommend-trip [post]
func (ctrl *TripController) RecommendTrip(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.Destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "destination is required")
		return
	}

	plan := ctrl.planner.Synthesize(c.Request.Context(), req)
	utils.RespondSuccess(c, response_models.RecommendationResponse{
		Recommendation: ctrl.planner.RenderPlanText(plan),
	}, "Trip plan generated")
}

func (ctrl *TripController) GetWeather(c *gin.Context) {
	city := c.DefaultQuery("city", "Delhi")

	weather, err := ctrl.weather.Current(c.Request.Context(), city)
	if err != nil {
		utils.RespondError(c, http.StatusBadGateway, "Weather information is unavailable")
		return
	}

	utils.RespondSuccess(c, weather, "Weather retrieved")
}

func (ctrl *TripController) GenerateItinerary(c *gin.Context) {
	var req request_models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.Destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "destination is required")
		return
	}
	if req.Days <= 0 {
		utils.RespondError(c, http.StatusBadRequest, "days must be a positive number, got "+strconv.Itoa(req.Days))
		return
	}

	itinerary := ctrl.planner.BuildSimpleItinerary(c.Request.Context(), req.Destination, req.Days)
	utils.RespondSuccess(c, itinerary, "Itinerary generated")
}
