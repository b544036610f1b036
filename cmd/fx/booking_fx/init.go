package booking_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripmate/internal/api/controllers"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	provideBookingRepo,
	provideReviewRepo,
	provideBookingService,
	provideReviewService,
	provideBookingController)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepository {
	return repositories.NewReviewRepository(db)
}

func provideBookingService(
	bookings repositories.BookingRepository,
	hotels repositories.HotelRepository,
	flights repositories.FlightRepository,
	activities repositories.ActivityRepository,
) services.BookingServiceInterface {
	return services.NewBookingService(bookings, hotels, flights, activities)
}

func provideReviewService(
	reviews repositories.ReviewRepository,
	destinations repositories.DestinationRepository,
) services.ReviewServiceInterface {
	return services.NewReviewService(reviews, destinations)
}

func provideBookingController(
	bookingService services.BookingServiceInterface,
	reviewService services.ReviewServiceInterface,
) *controllers.BookingController {
	return controllers.NewBookingController(bookingService, reviewService)
}
