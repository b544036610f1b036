package homepage_fx

import (
	"go.uber.org/fx"
	"tripmate/internal/api/controllers"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	provideHomepageService,
	provideHomepageController)

func provideHomepageService(
	destinations repositories.DestinationRepository,
	hotels repositories.HotelRepository,
	activities repositories.ActivityRepository,
	weather services.WeatherProviderInterface,
	restaurants services.RestaurantRecommenderInterface,
) services.HomepageServiceInterface {
	return services.NewHomepageService(destinations, hotels, activities, weather, restaurants)
}

func provideHomepageController(homepageService services.HomepageServiceInterface) *controllers.HomepageController {
	return controllers.NewHomepageController(homepageService)
}
