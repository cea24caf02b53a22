package routes

import (
	"log"

	"github.com/shivas758/yamkar4.1-sub001/config"
	"github.com/shivas758/yamkar4.1-sub001/controllers"
	"github.com/shivas758/yamkar4.1-sub001/middlewares"
	"github.com/shivas758/yamkar4.1-sub001/models"
	"github.com/shivas758/yamkar4.1-sub001/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push service unavailable: %v", err)
	}
	services.InitNotifier(config.DB, hub, push)

	attendanceSvc := services.NewAttendanceService(config.DB)
	reportSvc := services.NewReportService(services.NewGormAttendanceStore(config.DB))
	photoSvc, err := services.NewPhotoService(config.DB)
	if err != nil {
		log.Fatalf("photo service init failed: %v", err)
	}

	attendanceCtl := controllers.NewAttendanceController(attendanceSvc, reportSvc)
	locationCtl := controllers.NewLocationController(attendanceSvc)
	meterCtl := controllers.NewMeterReadingController(photoSvc)
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	attendance := r.Group("/attendance")
	attendance.Use(middlewares.AuthMiddleware())
	{
		attendance.POST("/check-in", attendanceCtl.CheckIn)
		attendance.POST("/check-out", attendanceCtl.CheckOut)
		attendance.GET("/report", middlewares.CanViewAttendance(), attendanceCtl.GetReport)
	}

	location := r.Group("/location")
	location.Use(middlewares.AuthMiddleware())
	{
		location.POST("/ping", locationCtl.Ping)
		location.GET("/latest/:userId",
			middlewares.RequireRole(models.RoleAdmin, models.RoleManager), locationCtl.Latest)
	}

	farmers := r.Group("/farmers")
	farmers.Use(middlewares.AuthMiddleware())
	{
		farmers.POST("", controllers.CreateFarmer)
		farmers.GET("", controllers.ListFarmers)
		farmers.GET("/:id", controllers.GetFarmer)
		farmers.PUT("/:id", controllers.UpdateFarmer)
	}

	geo := r.Group("/geo")
	geo.Use(middlewares.AuthMiddleware())
	{
		geo.GET("/states", controllers.ListStates)
		geo.GET("/districts", controllers.ListDistricts)
		geo.GET("/mandals", controllers.ListMandals)
		geo.GET("/villages", controllers.ListVillages)
	}

	readings := r.Group("/meter-readings")
	readings.Use(middlewares.AuthMiddleware())
	{
		readings.POST("", meterCtl.Create)
		readings.GET("/farmer/:farmerId", meterCtl.ListByFarmer)
	}

	if push != nil {
		devices := r.Group("/devices")
		devices.Use(middlewares.AuthMiddleware())
		{
			devices.POST("", controllers.NewDeviceController(push).Register)
		}
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/locations",
			middlewares.RequireRole(models.RoleAdmin, models.RoleManager), realtimeCtl.LocationsWS)
	}

	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleAdmin))
	{
		admin.POST("/register", controllers.Register)
		admin.POST("/storage/init", controllers.InitStorage)
		admin.DELETE("/users/:id", controllers.DisableUser)
	}

	users := r.Group("/users")
	users.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleAdmin, models.RoleManager))
	{
		users.GET("", controllers.ListEmployees)
	}

	return r
}
