package chatbot_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripmate/internal/api/controllers"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
	mem "tripmate/pkg/memcache"
	"tripmate/pkg/utils"
)

var Module = fx.Provide(
	provideChatMessageRepo,
	providePlannerService,
	provideChatbotService,
	provideChatService,
	provideChatController,
	provideTripController)

func provideChatMessageRepo(db *gorm.DB) repositories.ChatMessageRepository {
	return repositories.NewChatMessageRepository(db)
}

func providePlannerService(
	places services.PlacesProviderInterface,
	weather services.WeatherProviderInterface,
	hotels services.HotelRecommenderInterface,
	restaurants services.RestaurantRecommenderInterface,
	ai utils.AIClientInterface,
) services.PlannerServiceInterface {
	return services.NewPlannerService(places, weather, hotels, restaurants, ai)
}

func provideChatbotService(planner services.PlannerServiceInterface) services.ChatbotServiceInterface {
	return services.NewChatbotService(planner)
}

func provideChatService(
	bot services.ChatbotServiceInterface,
	sessions mem.ChatSessionStore,
	messages repositories.ChatMessageRepository,
) services.ChatServiceInterface {
	return services.NewChatService(bot, sessions, messages)
}

func provideChatController(chatService services.ChatServiceInterface) *controllers.ChatController {
	return controllers.NewChatController(chatService)
}

func provideTripController(
	planner services.PlannerServiceInterface,
	weather services.WeatherProviderInterface,
) *controllers.TripController {
	return controllers.NewTripController(planner, weather)
}
