package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wildme/dockerctl/pkg/api/middlewares"
	"github.com/wildme/dockerctl/pkg/configuration"
	"github.com/wildme/dockerctl/pkg/logger"
	"github.com/wildme/dockerctl/pkg/metrics"
	"github.com/wildme/dockerctl/pkg/orchestrator"
	"go.uber.org/zap"
)

func NewApi(o *orchestrator.Orchestrator, config *configuration.Configuration, log *zap.Logger) *Api {
	return &Api{
		Orchestrator: o,
		Config:       config,
		logger:       logger.OrNop(log),
	}
}

func (api *Api) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middlewares.Logger(api.logger))

	router.GET("/healthz", api.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/api/v1")
	{
		services := v1.Group("/services")
		{
			services.GET("", api.ListServices)
			services.GET(":name/status", api.Status)
			services.GET(":name/urls", api.URLs)
			services.POST(":name/ensure", api.Ensure)
		}

		v1.GET("images", api.Images)
		v1.GET("containers", api.Containers)
		v1.GET("version", api.Version)
	}

	return router
}

// ListenAndServe serves the API until ctx is cancelled, then shuts down gracefully.
func (api *Api) ListenAndServe(ctx context.Context, listen string) error {
	server := &http.Server{
		Addr:    listen,
		Handler: api.Router(),
	}

	errs := make(chan error, 1)

	go func() {
		api.logger.Info("api listening", zap.String("listen", listen))
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}

		if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	}
}
