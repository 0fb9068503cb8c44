package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GoSim-25-26J-441/project-board/config"
	"github.com/GoSim-25-26J-441/project-board/internal/bootstrap"
	"github.com/GoSim-25-26J-441/project-board/internal/projects/digest"
	"github.com/GoSim-25-26J-441/project-board/internal/projects/events"
	"github.com/GoSim-25-26J-441/project-board/internal/projects/publisher"
	"github.com/GoSim-25-26J-441/project-board/internal/projects/store"
	todostore "github.com/GoSim-25-26J-441/project-board/internal/todos/store"
	"github.com/GoSim-25-26J-441/project-board/internal/validation"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	projects := store.New()
	broker := events.NewBroker()
	projects.Subscribe(broker.Publish)

	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		rdb, err = bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer rdb.Close()

		pub := publisher.NewRedisPublisher(rdb, cfg.Redis.ChannelPrefix)
		defer pub.Stop()
		projects.Subscribe(pub.Observe)
		log.Printf("[redis] publishing board events on %s", pub.Channel())
	}

	if cfg.Board.DigestCron != "" {
		sched, err := digest.NewScheduler(cfg.Board.DigestCron, projects.Snapshot)
		if err != nil {
			log.Fatalf("digest: %v", err)
		}
		sched.Start()
		defer sched.Stop()
	}

	todos := todostore.New()
	todos.Subscribe(todostore.LogChanges(log.Printf))

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:     cfg.App.ServiceName,
		Version:         cfg.App.Version,
		AllowedOrigins:  cfg.Server.CORSAllowedOrigins,
		APIKey:          cfg.Server.APIKey,
		RateLimitRPS:    cfg.Server.RateLimitRPS,
		RateLimitBurst:  cfg.Server.RateLimitBurst,
		StreamKeepAlive: cfg.Board.StreamKeepAlive,
		Bounds: validation.Bounds{
			TitleMinLength: cfg.Validation.TitleMinLength,
			PeopleMin:      cfg.Validation.PeopleMin,
			PeopleMax:      cfg.Validation.PeopleMax,
		},
		Projects: projects,
		Broker:   broker,
		Todos:    todos,
		Redis:    rdb,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	// Streams only end once their clients are gone, so close them first.
	broker.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
