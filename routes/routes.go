package routes

import (
	"os"

	"naviora/admin"
	"naviora/agents"
	"naviora/assistant"
	"naviora/auth"
	"naviora/db"
	"naviora/events"
	"naviora/feedback"
	"naviora/middleware"
	"naviora/photos"
	"naviora/ratelim"
	"naviora/trips"
	"naviora/trips/providers"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/send-code", rl.Limit(auth.SendCode))
	router.POST("/verify-code", rl.Limit(auth.VerifyCode))
	router.POST("/signup", rl.Limit(auth.Signup))
	router.POST("/login", rl.Limit(auth.Login))
	router.POST("/google-login", rl.Limit(auth.GoogleLogin))
	router.POST("/forgot-password", rl.Limit(auth.ForgotPassword))
	router.POST("/reset-password", rl.Limit(auth.ResetPassword))
}

func AddTripRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	assembler := trips.NewAssembler(
		providers.NewWeatherClient(os.Getenv("OPENWEATHER_API_KEY")),
		providers.NewEventsClient(os.Getenv("TICKETMASTER_API_KEY")),
		providers.NewAttractionsClient(os.Getenv("GEOAPIFY_API_KEY")),
	)
	handler := trips.NewHandler(assembler, trips.NewMongoStore(db.ItineraryCollection))

	router.POST("/api/itinerary", rl.Limit(handler.Create))
	router.GET("/api/itinerary", handler.List)
}

func AddFeedbackRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/feedback", rl.Limit(feedback.SubmitFeedback))
	router.GET("/api/feedbacks", middleware.Authenticate(feedback.GetFeedbacks))
	router.DELETE("/api/feedbacks/:id", middleware.Authenticate(feedback.DeleteFeedback))
}

func AddAdminRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/admin/login", rl.Limit(admin.Login))
}

func AddAgentRoutes(router *httprouter.Router) {
	router.GET("/api/agents", agents.GetAgents)
	router.GET("/api/populateAgents", agents.PopulateAgents)
}

func AddProxyRoutes(router *httprouter.Router) {
	router.GET("/api/photos", photos.GetPhotos)
	router.GET("/api/events", events.GetEvents)
}

func AddAssistantRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/spots/:city", rl.Limit(assistant.GetSpots))
	router.POST("/api/chat", rl.Limit(assistant.Chat))
}
