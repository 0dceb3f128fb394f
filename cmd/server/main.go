package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"academic-attendance-backend/internal/config"
	"academic-attendance-backend/internal/database"
	"academic-attendance-backend/internal/handler"
	"academic-attendance-backend/internal/middleware"
	"academic-attendance-backend/internal/models"
	"academic-attendance-backend/internal/repository"
	"academic-attendance-backend/internal/service"
	"academic-attendance-backend/pkg/token"
	"academic-attendance-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Build the token service from the JWT config
	tokenSvc := token.NewService(token.Config{
		Secret:             cfg.JWT.Secret,
		Issuer:             cfg.JWT.Issuer,
		Audience:           cfg.JWT.Audience,
		AccessTokenExpiry:  cfg.JWT.AccessTokenExpiry,
		RefreshTokenExpiry: cfg.JWT.RefreshTokenExpiry,
	})

	// 3. Initialize database connection and schema
	db := database.Connect(cfg)
	database.Migrate(db)

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	courseRepo := repository.NewCourseRepo(db)
	enrollmentRepo := repository.NewEnrollmentRepo(db)
	attendanceRepo := repository.NewAttendanceRepo(db)
	refreshTokenRepo := repository.NewRefreshTokenRepo(db)

	// 5. Initialize services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, tokenSvc)
	userService := service.NewUserService(userRepo, courseRepo, attendanceRepo, refreshTokenRepo)
	courseService := service.NewCourseService(courseRepo, userRepo, enrollmentRepo)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, courseRepo, userRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo, courseRepo, enrollmentRepo, userRepo)
	reportService := service.NewReportService(attendanceRepo, enrollmentRepo, courseRepo, userRepo)
	pdfService := service.NewPDFService()

	// 6. Setup Gin
	gin.SetMode(cfg.Server.GinMode)
	r := gin.Default()

	r.Use(middleware.CORS(cfg))
	r.Use(middleware.RequestID())

	// 7. Register handlers
	authHandler := handler.NewAuthHandler(authService, tokenSvc, cfg.JWT)
	userHandler := handler.NewUserHandler(userService)
	courseHandler := handler.NewCourseHandler(courseService)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService)
	reportHandler := handler.NewReportHandler(reportService, pdfService)

	// 8. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "academic-attendance-backend",
		})
	})

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	// API routes (authenticated)
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(tokenSvc))
	{
		api.POST("/auth/revoke", middleware.RequireAdmin(), authHandler.Revoke)

		courses := api.Group("/courses")
		{
			courses.GET("", courseHandler.List)
			courses.GET("/my", middleware.RequireRoles(models.RoleTeacher), courseHandler.MyCourses)
			courses.GET("/:id", courseHandler.Get)
			courses.POST("", middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher), courseHandler.Create)
			courses.PUT("/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher), courseHandler.Update)
			courses.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher), courseHandler.Delete)
			courses.GET("/:id/enrollments", middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher), enrollmentHandler.CourseRoster)
			courses.GET("/:id/attendance", middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher), attendanceHandler.CourseAttendance)
		}

		enrollments := api.Group("/enrollments")
		{
			enrollments.POST("", middleware.RequireRoles(models.RoleAdmin, models.RoleStudent), enrollmentHandler.Enroll)
			enrollments.DELETE("", middleware.RequireRoles(models.RoleAdmin, models.RoleStudent), enrollmentHandler.Unenroll)
			enrollments.GET("/my", middleware.RequireRoles(models.RoleStudent), enrollmentHandler.MyEnrollments)
		}

		attendance := api.Group("/attendance")
		{
			attendance.POST("", middleware.RequireRoles(models.RoleTeacher), attendanceHandler.Mark)
			attendance.PUT("/:id", middleware.RequireRoles(models.RoleTeacher), attendanceHandler.Update)
			attendance.GET("/my", middleware.RequireRoles(models.RoleStudent), attendanceHandler.MyAttendance)
		}

		api.GET("/students/:id/attendance", middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher), attendanceHandler.StudentAttendance)

		reports := api.Group("/reports")
		{
			reports.GET("/my", middleware.RequireRoles(models.RoleStudent), reportHandler.MyReport)
			reports.GET("/students/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher), reportHandler.StudentReport)
			reports.GET("/students/:id/pdf", middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher), reportHandler.StudentReportPDF)
			reports.GET("/courses/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher), reportHandler.CourseReport)
			reports.GET("/courses/:id/pdf", middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher), reportHandler.CourseReportPDF)
		}

		users := api.Group("/users")
		users.Use(middleware.RequireAdmin())
		{
			users.GET("", userHandler.List)
			users.GET("/teachers", userHandler.Teachers)
			users.PATCH("/:id/deactivate", userHandler.Deactivate)
			users.PATCH("/:id/reactivate", userHandler.Reactivate)
		}

		api.GET("/dashboard", middleware.RequireAdmin(), userHandler.Dashboard)
	}

	// 9. Start server with graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}
