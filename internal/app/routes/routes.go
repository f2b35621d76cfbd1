package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/anantsaxena14/campus-sphere/internal/app/controllers"
	"github.com/anantsaxena14/campus-sphere/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	busController *controllers.BusController,
	driverController *controllers.DriverController,
	resourceController *controllers.ResourceController,
	campusController *controllers.CampusController,
	communityController *controllers.CommunityController,
	adminController *controllers.AdminController,
	tutorController *controllers.TutorController,
	guard *middleware.SessionGuard,
) {
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", authController.Signup)
		auth.GET("/verify", authController.VerifyEmail)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", guard.UserAuth(), authController.Logout)
	}

	// --- Student routes ---
	users := v1.Group("/users", guard.UserAuth())
	{
		users.GET("/me", userController.Me)
		users.PUT("/me/profile", userController.UpdateProfile)
		users.PUT("/me/bus", userController.SelectBus)
		users.GET("/me/dashboard", userController.Dashboard)
	}

	buses := v1.Group("/buses", guard.UserAuth())
	{
		buses.GET("", busController.List)
		buses.GET("/:id/data", busController.Data)
		buses.GET("/:id/location", busController.Location)
	}

	resources := v1.Group("/resources", guard.UserAuth())
	{
		resources.GET("", resourceController.List)
		resources.POST("", resourceController.Upload)
		resources.GET("/:id/download", resourceController.Download)
	}

	campus := v1.Group("", guard.UserAuth())
	{
		campus.GET("/events", campusController.Events)
		campus.GET("/alumni", campusController.Alumni)
		campus.GET("/faculty", campusController.FacultyList)
		campus.GET("/faculty/:id", campusController.FacultyDetail)
	}

	community := v1.Group("/community", guard.UserAuth())
	{
		community.GET("/posts", communityController.Posts)
		community.POST("/posts", communityController.CreatePost)
		community.POST("/posts/:id/like", communityController.LikePost)
	}

	clubs := v1.Group("/clubs", guard.UserAuth())
	{
		clubs.GET("", communityController.Clubs)
		clubs.POST("/:id/join", communityController.JoinClub)
	}

	ai := v1.Group("/ai", guard.UserAuth())
	{
		ai.POST("/chat", tutorController.Chat)
		ai.POST("/questions", tutorController.GenerateQuestions)
		ai.POST("/check-answer", tutorController.CheckAnswer)
		ai.GET("/history", tutorController.History)
	}

	// --- Driver routes ---
	driver := v1.Group("/driver")
	{
		driver.POST("/login", driverController.Login)
		driver.GET("/me", guard.DriverAuth(), driverController.Me)
		driver.POST("/toggle-location", guard.DriverAuth(), driverController.ToggleLocation)
		driver.POST("/update-location", guard.DriverAuth(), driverController.UpdateLocation)
		driver.POST("/logout", guard.DriverAuth(), driverController.Logout)
	}

	// --- Admin routes ---
	admin := v1.Group("/admin")
	{
		admin.POST("/login", adminController.Login)
		admin.GET("/dashboard", guard.AdminAuth(), adminController.Dashboard)
		admin.POST("/events", guard.AdminAuth(), adminController.CreateEvent)
		admin.POST("/clubs", guard.AdminAuth(), adminController.CreateClub)
		admin.POST("/logout", guard.AdminAuth(), adminController.Logout)
	}
}
