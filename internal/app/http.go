package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"shareride/internal/auth/credentials"
	"shareride/internal/auth/handler"
	"shareride/internal/config"
	"shareride/internal/middleware"
	"shareride/internal/session"
	"shareride/internal/user"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	userStore := user.NewPostgresStore(infra.DB)
	sessionStore := session.NewRedisStore(infra.Redis.Client)
	credentialService := credentials.NewService(userStore, cfg.PasswordMinLength)

	cookieOpts := session.CookieOptions{
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}

	authHandler := handler.NewHandler(
		credentialService,
		sessionStore,
		cfg.SessionTTL,
		cookieOpts,
	)

	authMiddleware := middleware.NewAuthMiddleware(sessionStore)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.LoadHTMLGlob("web/templates/*.html")

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.Static("/static", "./web/static")

	// ----------------------------
	// Protected Web Routes
	// ----------------------------

	web := router.Group("/")
	web.Use(middleware.GinRequireLogin(authMiddleware, "/login"))

	web.GET("/dashboard", authHandler.DashboardPage)

	// ----------------------------
	// Protected API Routes
	// ----------------------------

	api := router.Group("/api")
	api.Use(middleware.GinRequireAuth(authMiddleware))

	api.GET("/me", authHandler.Me)

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.DB.Close()
	}, nil
}
