package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripmate/internal/api/controllers"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	provideDestinationRepo,
	provideHotelRepo,
	provideFlightRepo,
	provideActivityRepo,
	provideDestinationService,
	provideHotelService,
	provideFlightService,
	provideActivityService,
	provideDestinationController,
	provideHotelController,
	provideFlightController,
	provideActivityController)

func provideDestinationRepo(db *gorm.DB) repositories.DestinationRepository {
	return repositories.NewDestinationRepository(db)
}

func provideHotelRepo(db *gorm.DB) repositories.HotelRepository {
	return repositories.NewHotelRepository(db)
}

func provideFlightRepo(db *gorm.DB) repositories.FlightRepository {
	return repositories.NewFlightRepository(db)
}

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

func provideDestinationService(
	destinations repositories.DestinationRepository,
	discovery services.DiscoveryServiceInterface,
) services.DestinationServiceInterface {
	return services.NewDestinationService(destinations, discovery)
}

func provideHotelService(hotels repositories.HotelRepository) services.HotelServiceInterface {
	return services.NewHotelService(hotels)
}

func provideFlightService(flights repositories.FlightRepository) services.FlightServiceInterface {
	return services.NewFlightService(flights)
}

func provideActivityService(activities repositories.ActivityRepository) services.ActivityServiceInterface {
	return services.NewActivityService(activities)
}

func provideDestinationController(
	destinationService services.DestinationServiceInterface,
	discoveryService services.DiscoveryServiceInterface,
	reviewService services.ReviewServiceInterface,
) *controllers.DestinationController {
	return controllers.NewDestinationController(destinationService, discoveryService, reviewService)
}

func provideHotelController(hotelService services.HotelServiceInterface) *controllers.HotelController {
	return controllers.NewHotelController(hotelService)
}

func provideFlightController(flightService services.FlightServiceInterface) *controllers.FlightController {
	return controllers.NewFlightController(flightService)
}

func provideActivityController(activityService services.ActivityServiceInterface) *controllers.ActivityController {
	return controllers.NewActivityController(activityService)
}
