package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// Chat godoc
// @Summary Talk to the trip-planning assistant
// @Description Advances a planning conversation by one turn and returns the bot reply
// @Tags Chatbot
// @Accept json
// @Produce json
// @Param request body request_models.ChatRequest true "Chat turn payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /chatbot [post]
func (ctrl *ChatController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Anonymous chats are allowed; user_id is set only behind the JWT middleware.
	accountID := c.GetString("user_id")

	resp, err := ctrl.chatService.HandleMessage(c.Request.Context(), req.SessionID, accountID, req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Chat turn processed")
}

func (ctrl *ChatController) History(c *gin.Context) {
	accountID := c.GetString("user_id")
	if accountID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	messages, err := ctrl.chatService.History(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, messages, "Chat history retrieved")
}
