package bootstrap

import (
	"time"

	httpapi "github.com/GoSim-25-26J-441/project-board/internal/api/http"
	"github.com/GoSim-25-26J-441/project-board/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/project-board/internal/projects/events"
	projecthttp "github.com/GoSim-25-26J-441/project-board/internal/projects/http"
	"github.com/GoSim-25-26J-441/project-board/internal/projects/service"
	"github.com/GoSim-25-26J-441/project-board/internal/projects/store"
	todohttp "github.com/GoSim-25-26J-441/project-board/internal/todos/http"
	todostore "github.com/GoSim-25-26J-441/project-board/internal/todos/store"
	"github.com/GoSim-25-26J-441/project-board/internal/validation"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type RouterDeps struct {
	ServiceName     string
	Version         string
	AllowedOrigins  []string
	APIKey          string
	RateLimitRPS    float64
	RateLimitBurst  int
	StreamKeepAlive time.Duration
	Bounds          validation.Bounds

	Projects *store.ProjectStore
	Broker   *events.Broker
	Todos    *todostore.Store
	Redis    *redis.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis, dep.Projects)
	healthHandler.RegisterRoutes(r)

	guards := []gin.HandlerFunc{
		middleware.APIKeyMiddleware(dep.APIKey),
		middleware.RateLimitMiddleware(dep.RateLimitRPS, dep.RateLimitBurst),
	}

	api := r.Group("/api/v1")

	projectService := service.NewProjectService(dep.Projects, dep.Bounds)
	projectHandler := projecthttp.New(projectService, dep.Broker, dep.StreamKeepAlive)
	projectHandler.Register(api.Group("/projects"), guards...)

	todoHandler := todohttp.New(dep.Todos)
	todoHandler.Register(api.Group("/todos"), guards...)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	cfg.AddAllowHeaders(middleware.HeaderAPIKey, middleware.HeaderRequestID)
	cfg.ExposeHeaders = []string{middleware.HeaderRequestID}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
