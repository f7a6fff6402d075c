package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/carousell/ct-go/pkg/logger"
	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"

	"github.com/namanpunn/logikxmind-uat/internal/config"
	pkgmdw "github.com/namanpunn/logikxmind-uat/internal/server/middleware"
	"github.com/namanpunn/logikxmind-uat/internal/usecase"
)

func StartServer(
	lc fx.Lifecycle,
	sd fx.Shutdowner,
	conf *config.Config,
	handler Controller,
	complaints ComplaintController,
	roadmaps RoadmapController,
	auth AuthController,
	authUsecase *usecase.AuthUsecase,
) {
	e := echo.New()
	e.Validator = pkgmdw.NewValidator()
	e.HTTPErrorHandler = errorHandler()

	logConfig := pkgmdw.LogRequestConfig{
		Logger: logger.MustNamed("http"),
		Enabled: func(c echo.Context) bool {
			uri := c.Request().RequestURI
			return uri != "/health" && uri != "/metrics"
		},
		RequestBody: func(c echo.Context) bool {
			// never log credentials
			return c.Request().RequestURI != "/admin/login"
		},
	}

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(pkgmdw.Metrics())
	e.Use(pkgmdw.RequestID())
	e.Use(pkgmdw.LogRequest(logConfig))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.Errorw(c.Request().Context(), "PANIC RECOVER", "error", err, "stack", string(stack))
			return nil
		},
	}))

	e.GET("/health", handler.Health)

	e.POST("/chat", handler.Chat)
	// legacy alias kept for older clients
	e.POST("/start-chat", handler.Chat)

	e.POST("/raise-complaint", complaints.Raise)
	e.GET("/complaints", complaints.List)
	e.GET("/complaint/:id", complaints.Get)

	adminOnly := pkgmdw.AdminAuth(authUsecase)
	e.PATCH("/complaint/:id", complaints.UpdateStatus, adminOnly)
	e.DELETE("/complaint/:id", complaints.Delete, adminOnly)

	e.POST("/admin/login", auth.Login)

	e.POST("/career-roadmap", roadmaps.Generate)
	e.GET("/career-roadmap/:user_id", roadmaps.GetLatest)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infow(ctx, "starting HTTP server", "addr", conf.Server.Addr())
				if err := e.Start(conf.Server.Addr()); !errors.Is(err, http.ErrServerClosed) {
					sd.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}
