package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"classroom-fund-registry/internal/config"
	"classroom-fund-registry/internal/database"
	"classroom-fund-registry/internal/handler"
	"classroom-fund-registry/internal/logger"
	"classroom-fund-registry/internal/middleware"
	"classroom-fund-registry/internal/repository"
	"classroom-fund-registry/internal/service"
	"classroom-fund-registry/pkg/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()

	// 2. Initialize logger
	zlog, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()
	zlog.Info("Configuration loaded")

	// 3. Initialize session signing with config
	utils.InitSessionAuth(cfg.Session.Secret, cfg.Session.TTL)

	// 4. Initialize database connection and schema
	db := database.Connect(cfg)
	if err := database.Migrate(db); err != nil {
		zlog.Fatal("Failed to migrate database schema", zap.Error(err))
	}

	// 5. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	buildingRepo := repository.NewBuildingRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	departmentRepo := repository.NewDepartmentRepo(db)

	// 6. Initialize services
	authService := service.NewAuthService(userRepo)
	buildingService := service.NewBuildingService(buildingRepo)
	roomService := service.NewRoomService(roomRepo, buildingRepo, departmentRepo)
	departmentService := service.NewDepartmentService(departmentRepo)
	reportService := service.NewReportService(buildingRepo, departmentRepo)

	// 7. Setup Gin
	gin.SetMode(cfg.Server.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(zlog))

	// Cookie session store backs the one-shot flash notices
	store := cookie.NewStore([]byte(cfg.Session.Secret))
	r.Use(sessions.Sessions("cf_notices", store))
	r.Use(middleware.LoadSession())

	r.LoadHTMLGlob("web/templates/*.html")

	// 8. Register handlers
	dashboardHandler := handler.NewDashboardHandler(buildingService)
	buildingHandler := handler.NewBuildingHandler(buildingService, reportService)
	roomHandler := handler.NewRoomHandler(roomService, buildingService, departmentService)
	departmentHandler := handler.NewDepartmentHandler(departmentService)
	authHandler := handler.NewAuthHandler(authService)

	// 9. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "classroom-fund-registry",
		})
	})

	// Public browsing routes
	r.GET("/", dashboardHandler.Index)
	r.GET("/rooms", roomHandler.ListRooms)
	r.GET("/building/:id", buildingHandler.ShowStructure)
	r.GET("/buildings", buildingHandler.ListBuildings)
	r.GET("/departments", departmentHandler.ListDepartments)

	// Auth routes
	r.GET("/login", authHandler.LoginForm)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Mutating routes (session required)
	manage := r.Group("/")
	manage.Use(middleware.RequireSession())
	{
		manage.GET("/building/add", buildingHandler.AddBuildingForm)
		manage.POST("/building/add", buildingHandler.AddBuilding)
		manage.GET("/building/edit/:id", buildingHandler.EditBuildingForm)
		manage.POST("/building/edit/:id", buildingHandler.EditBuilding)
		manage.POST("/building/delete/:id", buildingHandler.DeleteBuilding)

		manage.GET("/rooms/manage", roomHandler.ManageRooms)
		manage.GET("/room/add", roomHandler.AddRoomForm)
		manage.POST("/room/add", roomHandler.AddRoom)
		manage.GET("/room/edit/:id", roomHandler.EditRoomForm)
		manage.POST("/room/edit/:id", roomHandler.EditRoom)
		manage.POST("/room/delete/:id", roomHandler.DeleteRoom)

		manage.GET("/department/add", departmentHandler.AddDepartmentForm)
		manage.POST("/department/add", departmentHandler.AddDepartment)
		manage.GET("/department/edit/:id", departmentHandler.EditDepartmentForm)
		manage.POST("/department/edit/:id", departmentHandler.EditDepartment)
		manage.POST("/department/delete/:id", departmentHandler.DeleteDepartment)
	}

	// 10. Start server with graceful shutdown
	go func() {
		zlog.Info("Server starting", zap.String("port", cfg.Server.Port))
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			zlog.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("Shutting down server")
}
