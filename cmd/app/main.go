package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripmate/cmd/fx/account_fx"
	"tripmate/cmd/fx/booking_fx"
	"tripmate/cmd/fx/catalog_fx"
	"tripmate/cmd/fx/chatbot_fx"
	"tripmate/cmd/fx/db_fx"
	"tripmate/cmd/fx/discovery_fx"
	"tripmate/cmd/fx/homepage_fx"
	"tripmate/cmd/fx/memcache_fx"
	"tripmate/cmd/fx/providers_fx"
	"tripmate/internal/api/controllers"
	"tripmate/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on the environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		providers_fx.Module,
		account_fx.Module,
		discovery_fx.Module,
		catalog_fx.Module,
		booking_fx.Module,
		chatbot_fx.Module,
		homepage_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	chatController *controllers.ChatController,
	tripController *controllers.TripController,
	destinationController *controllers.DestinationController,
	hotelController *controllers.HotelController,
	flightController *controllers.FlightController,
	activityController *controllers.ActivityController,
	bookingController *controllers.BookingController,
	homepageController *controllers.HomepageController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		chatController,
		tripController,
		destinationController,
		hotelController,
		flightController,
		activityController,
		bookingController,
		homepageController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	chatController *controllers.ChatController,
	tripController *controllers.TripController,
	destinationController *controllers.DestinationController,
	hotelController *controllers.HotelController,
	flightController *controllers.FlightController,
	activityController *controllers.ActivityController,
	bookingController *controllers.BookingController,
	homepageController *controllers.HomepageController) {

	r.GET("/", homepageController.Get)
	r.GET("/get_weather", tripController.GetWeather)

	authGroup := r.Group("/auth")
	authGroup.POST("/register", accountController.Register)
	authGroup.POST("/login", accountController.Login)

	// The chatbot and direct planner are open; history needs a login.
	r.POST("/chatbot", chatController.Chat)
	r.POST("/recommend-trip", tripController.RecommendTrip)
	r.POST("/generate-itinerary", tripController.GenerateItinerary)

	destinationGroup := r.Group("/destinations")
	destinationGroup.GET("", destinationController.List)
	destinationGroup.GET("/trending", destinationController.Trending)
	destinationGroup.POST("/search", destinationController.SearchSimilar)
	destinationGroup.GET("/:id", destinationController.Get)
	destinationGroup.GET("/:id/reviews", destinationController.ListReviews)

	hotelGroup := r.Group("/hotels")
	hotelGroup.GET("", hotelController.List)
	hotelGroup.GET("/:id", hotelController.Get)

	flightGroup := r.Group("/flights")
	flightGroup.GET("", flightController.Search)
	flightGroup.GET("/:id", flightController.Get)

	activityGroup := r.Group("/activities")
	activityGroup.GET("", activityController.List)
	activityGroup.GET("/:id", activityController.Get)

	authed := r.Group("/")
	authed.Use(middleware.JWTAuthMiddleware())
	authed.GET("/profile", accountController.Profile)
	authed.GET("/chatbot/history", chatController.History)
	authed.POST("/bookings", bookingController.Create)
	authed.GET("/bookings", bookingController.List)
	authed.POST("/bookings/:id/cancel", bookingController.Cancel)
	authed.POST("/reviews", bookingController.CreateReview)

	admin := r.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	admin.POST("/destinations", destinationController.Create)
	admin.PUT("/destinations/:id", destinationController.Update)
	admin.DELETE("/destinations/:id", destinationController.Delete)
	admin.POST("/hotels", hotelController.Create)
	admin.PUT("/hotels/:id", hotelController.Update)
	admin.DELETE("/hotels/:id", hotelController.Delete)
	admin.POST("/flights", flightController.Create)
	admin.DELETE("/flights/:id", flightController.Delete)
	admin.POST("/activities", activityController.Create)
	admin.DELETE("/activities/:id", activityController.Delete)
}
