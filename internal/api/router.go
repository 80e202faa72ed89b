package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/learnhub/course-catalog/docs"
	"github.com/learnhub/course-catalog/internal/api/handler"
	"github.com/learnhub/course-catalog/internal/api/middleware"
	"github.com/learnhub/course-catalog/internal/core/auth"
	"github.com/learnhub/course-catalog/internal/core/domain"
	"github.com/learnhub/course-catalog/internal/core/service"
	mongodb "github.com/learnhub/course-catalog/internal/infrastructure/db/mongo"
	redisdb "github.com/learnhub/course-catalog/internal/infrastructure/db/redis"
	"github.com/learnhub/course-catalog/internal/infrastructure/notify"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, codec *auth.TokenCodec, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	resetStore := redisdb.NewResetTokenStore(rdb)
	mailer := notify.NewLogMailer(log)

	authService := service.NewAuthService(userRepo, codec, resetStore, mailer, log)
	userService := service.NewUserService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService, userService)

	authenticate := middleware.Authenticate(codec)

	// --- v1 API ---
	v1 := e.Group("/api/v1")

	// Public auth surface.
	v1.POST("/auth/signup", authHandler.Signup)
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/forgot-password", authHandler.ForgotPassword)
	v1.POST("/auth/reset-password", authHandler.ResetPassword)

	// Any authenticated identity (student or above).
	session := v1.Group("/auth", authenticate, middleware.RequireRole(domain.RoleStudent))
	session.GET("/me", authHandler.Me)
	session.POST("/change-password", authHandler.ChangePassword)
	session.PATCH("/profile", authHandler.UpdateProfile)

	// Admin-only user management.
	users := v1.Group("/users", authenticate, middleware.RequireRole(domain.RoleAdmin))
	users.GET("", userHandler.List)
	users.GET("/tutors", userHandler.ListTutors)
	users.POST("/tutors", userHandler.CreatePrivileged)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id/role", userHandler.SetRole)
	users.PUT("/:id/status", userHandler.SetStatus)
	users.DELETE("/:id", userHandler.Delete)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
