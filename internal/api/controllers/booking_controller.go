package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
	reviewService  services.ReviewServiceInterface
}

func NewBookingController(
	bookingService services.BookingServiceInterface,
	reviewService services.ReviewServiceInterface,
) *BookingController {
	return &BookingController{
		bookingService: bookingService,
		reviewService:  reviewService,
	}
}

func (ctrl *BookingController) Create(c *gin.Context) {
	var req request_models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	booking, err := ctrl.bookingService.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, booking, "Booking created")
}

func (ctrl *BookingController) List(c *gin.Context) {
	bookings, err := ctrl.bookingService.ListForAccount(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, bookings, "Bookings retrieved")
}

func (ctrl *BookingController) Cancel(c *gin.Context) {
	booking, err := ctrl.bookingService.Cancel(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, booking, "Booking cancelled")
}

func (ctrl *BookingController) CreateReview(c *gin.Context) {
	var req request_models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	review, err := ctrl.reviewService.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, review, "Review created")
}
