package controllers

import (
	"github.com/gin-gonic/gin"

	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type HomepageController struct {
	homepageService services.HomepageServiceInterface
}

func NewHomepageController(homepageService services.HomepageServiceInterface) *HomepageController {
	return &HomepageController{homepageService: homepageService}
}

func (ctrl *HomepageController) Get(c *gin.Context) {
	resp := ctrl.homepageService.Build(c.Request.Context(), c.Query("city"))
	utils.RespondSuccess(c, resp, "Homepage data retrieved")
}
