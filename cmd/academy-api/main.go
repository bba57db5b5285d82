package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/zaalasociety/academy-api/api/swagger"
	"github.com/zaalasociety/academy-api/internal/handler"
	"github.com/zaalasociety/academy-api/internal/middleware"
	"github.com/zaalasociety/academy-api/internal/models"
	"github.com/zaalasociety/academy-api/internal/repository"
	"github.com/zaalasociety/academy-api/internal/service"
	"github.com/zaalasociety/academy-api/internal/session"
	"github.com/zaalasociety/academy-api/pkg/cache"
	"github.com/zaalasociety/academy-api/pkg/config"
	"github.com/zaalasociety/academy-api/pkg/database"
	"github.com/zaalasociety/academy-api/pkg/logger"
	corsmiddleware "github.com/zaalasociety/academy-api/pkg/middleware/cors"
	reqidmiddleware "github.com/zaalasociety/academy-api/pkg/middleware/requestid"
	"github.com/zaalasociety/academy-api/pkg/storage"
)

// @title Academy API
// @version 1.0.0
// @description Course platform API with session auth for students and instructors
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect redis", "error", err)
	}
	defer redisClient.Close()

	uploads, err := storage.NewUploads(cfg.Uploads.BaseDir, cfg.Uploads.MaxSizeBytes)
	if err != nil {
		logr.Sugar().Fatalw("failed to init uploads dir", "error", err)
	}

	// Repositories.
	userRepo := repository.NewUserRepository(db)
	instructorRepo := repository.NewInstructorRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	pricingRepo := repository.NewPricingRepository(db)
	contentRepo := repository.NewContentRepository(db)
	contactRepo := repository.NewContactRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	// Sessions.
	sessionStore := session.NewStore(redisClient, cfg.Session.TTL, logr)
	cookies := session.NewCookieCodec(cfg.Session.CookieName, cfg.Session.CookieSecret, cfg.Session.TTL, cfg.Session.Secure)

	// Services.
	metricsSvc := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, cfg.Cache.Enabled)
	authSvc := service.NewAuthService(userRepo, instructorRepo, sessionStore, nil, logr)
	courseSvc := service.NewCourseService(courseRepo, instructorRepo, cacheSvc, logr)
	enrollmentSvc := service.NewEnrollmentService(enrollmentRepo, courseRepo, logr)
	pricingSvc := service.NewPricingService(pricingRepo, cacheSvc)
	contentSvc := service.NewContentService(contentRepo, instructorRepo, cacheSvc)
	contactSvc := service.NewContactService(contactRepo, nil, logr)
	userSvc := service.NewUserService(userRepo, uploads, nil, logr)
	instructorSvc := service.NewInstructorService(instructorRepo, courseRepo, enrollmentRepo, uploads, courseSvc, nil, logr)

	// Handlers.
	authHandler := handler.NewAuthHandler(authSvc, metricsSvc, cookies)
	courseHandler := handler.NewCourseHandler(courseSvc)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentSvc, metricsSvc)
	pricingHandler := handler.NewPricingHandler(pricingSvc)
	contentHandler := handler.NewContentHandler(contentSvc)
	contactHandler := handler.NewContactHandler(contactSvc)
	userHandler := handler.NewUserHandler(userSvc)
	instructorHandler := handler.NewInstructorHandler(instructorSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "postgres": err.Error()})
			return
		}
		if err := redisClient.Ping(c.Request.Context()).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "redis": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", metricsHandler.Prometheus)
	r.GET("/metrics/summary", metricsHandler.Summary)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Public surface.
	r.POST("/login", authHandler.Login)
	r.POST("/signup", authHandler.Signup)
	r.POST("/contact", contactHandler.Submit)
	r.GET("/courses", courseHandler.List)
	r.GET("/courses-details/:course_id", courseHandler.Detail)
	r.GET("/pricing-plans", pricingHandler.List)
	r.GET("/pricing-plans/:plan_id", pricingHandler.Get)
	r.GET("/services", contentHandler.Services)
	r.GET("/testimonials", contentHandler.Testimonials)
	r.GET("/gallery", contentHandler.Gallery)
	r.GET("/videos", contentHandler.Videos)
	r.GET("/teachers", contentHandler.Instructors)
	r.Static("/uploads", cfg.Uploads.BaseDir)

	// Any live session.
	authed := r.Group("/", middleware.SessionGuard(sessionStore, cookies))
	authed.POST("/logout", authHandler.Logout)

	// Student surface.
	student := authed.Group("/", middleware.RequireRole(models.RoleStudent))
	student.POST("/enroll-course/:course_id", enrollmentHandler.Enroll)
	student.GET("/my-courses", enrollmentHandler.MyCourses)
	student.GET("/profile", userHandler.Profile)
	student.PUT("/profile", userHandler.UpdateProfile)
	student.POST("/profile/image", userHandler.UpdateImage)
	student.POST("/profile/password", authHandler.ChangePassword)

	// Instructor portal.
	instructor := authed.Group("/instructor", middleware.RequireRole(models.RoleInstructor))
	instructor.GET("/dashboard", instructorHandler.Dashboard)
	instructor.GET("/courses", instructorHandler.Courses)
	instructor.POST("/courses", instructorHandler.CreateCourse)
	instructor.GET("/courses/:course_id", instructorHandler.CourseDetail)
	instructor.GET("/students", instructorHandler.Students)
	instructor.GET("/messages", contactHandler.Messages)
	instructor.GET("/reports/enrollments", instructorHandler.EnrollmentReport)
	instructor.GET("/profile", instructorHandler.Profile)
	instructor.PUT("/profile", instructorHandler.UpdateProfile)
	instructor.POST("/profile/image", instructorHandler.UpdateImage)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
