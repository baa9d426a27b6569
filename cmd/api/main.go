package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"rampung/internal/config"
	"rampung/internal/database"
	"rampung/internal/middleware"
	"rampung/internal/modules/activity"
	"rampung/internal/modules/admin"
	"rampung/internal/modules/auth"
	"rampung/internal/modules/diagnostic"
	"rampung/internal/modules/portfolio"
	"rampung/internal/modules/testimonial"
	jwtsvc "rampung/internal/pkg/jwt"
	"rampung/internal/pkg/logger"
	"rampung/internal/pkg/monitoring"
	"rampung/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger.Init(cfg.LogFile, cfg.IsProd())
	defer logger.Sync()
	monitoring.Init()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Log.Fatal("connect database", zap.Error(err))
	}
	if err := repository.AutoMigrate(db); err != nil {
		logger.Log.Fatal("migrate database", zap.Error(err))
	}

	// repositories
	submissions := repository.NewSubmissionRepository(db)
	portfolios := repository.NewPortfolioRepository(db)
	testimonials := repository.NewTestimonialRepository(db)
	users := repository.NewUserRepository(db)

	// services
	jwt := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	hub := activity.NewHub()
	diagnosticSvc := diagnostic.NewService(submissions, hub)
	adminSvc := admin.NewService(submissions, portfolios, testimonials)
	portfolioSvc := portfolio.NewService(portfolios)
	testimonialSvc := testimonial.NewService(testimonials)
	authSvc := auth.NewService(users, jwt)

	// handlers
	diagnosticH := diagnostic.NewHandler(diagnosticSvc)
	adminH := admin.NewHandler(adminSvc)
	portfolioH := portfolio.NewHandler(portfolioSvc)
	testimonialH := testimonial.NewHandler(testimonialSvc)
	authH := auth.NewHandler(authSvc)
	activityH := activity.NewHandler(hub, jwt)

	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(monitoring.MetricsMiddleware())

	r.GET("/metrics", monitoring.PrometheusHandler())
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		public := api.Group("")
		public.Use(middleware.RateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow))
		diagnosticH.RegisterRoutes(public)

		portfolioH.RegisterPublicRoutes(api)
		testimonialH.RegisterPublicRoutes(api)
		authH.RegisterPublicRoutes(api)

		adminGroup := api.Group("/admin")
		adminGroup.Use(middleware.Auth(jwt))
		authH.RegisterProtectedRoutes(adminGroup)

		// websocket auth happens in the handler (query token), so the
		// activity feed sits outside the Bearer-header wall
		adminH.RegisterRoutes(adminGroup)
		portfolioH.RegisterAdminRoutes(adminGroup)
		testimonialH.RegisterAdminRoutes(adminGroup)
	}
	activityH.RegisterRoutes(api.Group("/admin"))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Log.Info("server listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("shutdown", zap.Error(err))
	}
}
