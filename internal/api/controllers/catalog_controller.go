package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type HotelController struct {
	hotelService services.HotelServiceInterface
}

func NewHotelController(hotelService services.HotelServiceInterface) *HotelController {
	return &HotelController{hotelService: hotelService}
}

func (ctrl *HotelController) List(c *gin.Context) {
	hotels, err := ctrl.hotelService.List(c.Request.Context(), c.Query("destination"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, hotels, "Hotels retrieved")
}

func (ctrl *HotelController) Get(c *gin.Context) {
	hotel, err := ctrl.hotelService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, hotel, "Hotel retrieved")
}

func (ctrl *HotelController) Create(c *gin.Context) {
	var req request_models.HotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	hotel, err := ctrl.hotelService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, hotel, "Hotel created")
}

func (ctrl *HotelController) Update(c *gin.Context) {
	var req request_models.HotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	hotel, err := ctrl.hotelService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, hotel, "Hotel updated")
}

func (ctrl *HotelController) Delete(c *gin.Context) {
	if err := ctrl.hotelService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Hotel deleted")
}

type FlightController struct {
	flightService services.FlightServiceInterface
}

func NewFlightController(flightService services.FlightServiceInterface) *FlightController {
	return &FlightController{flightService: flightService}
}

func (ctrl *FlightController) Search(c *gin.Context) {
	flights, err := ctrl.flightService.Search(
		c.Request.Context(),
		c.Query("source"),
		c.Query("destination"),
		c.Query("date"),
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, flights, "Flights retrieved")
}

func (ctrl *FlightController) Get(c *gin.Context) {
	flight, err := ctrl.flightService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, flight, "Flight retrieved")
}

func (ctrl *FlightController) Create(c *gin.Context) {
	var req request_models.FlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	flight, err := ctrl.flightService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, flight, "Flight created")
}

func (ctrl *FlightController) Delete(c *gin.Context) {
	if err := ctrl.flightService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Flight deleted")
}

type ActivityController struct {
	activityService services.ActivityServiceInterface
}

func NewActivityController(activityService services.ActivityServiceInterface) *ActivityController {
	return &ActivityController{activityService: activityService}
}

func (ctrl *ActivityController) List(c *gin.Context) {
	activities, err := ctrl.activityService.List(c.Request.Context(), c.Query("destination"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, activities, "Activities retrieved")
}

func (ctrl *ActivityController) Get(c *gin.Context) {
	activity, err := ctrl.activityService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, activity, "Activity retrieved")
}

func (ctrl *ActivityController) Create(c *gin.Context) {
	var req request_models.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	activity, err := ctrl.activityService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, activity, "Activity created")
}

func (ctrl *ActivityController) Delete(c *gin.Context) {
	if err := ctrl.activityService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Activity deleted")
}
