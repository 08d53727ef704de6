package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	httpin "github.com/minhanhng/salon-availability/internal/adapters/in/http"
	"github.com/minhanhng/salon-availability/internal/adapters/in/rabbitmq"
	"github.com/minhanhng/salon-availability/internal/adapters/out/cache"
	"github.com/minhanhng/salon-availability/internal/adapters/out/logger"
	"github.com/minhanhng/salon-availability/internal/adapters/out/store"
	"github.com/minhanhng/salon-availability/internal/config"
	"github.com/minhanhng/salon-availability/internal/core/ports/out"
	"github.com/minhanhng/salon-availability/internal/core/services/scheduling_service"
)

func main() {
	// .env is optional, real deployments set the environment directly
	godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	mainLogger, err := logger.NewConsoleLogger(cfg.App.Timezone)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := mainLogger.WithModule("Main")

	log.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"rabbitmqEnabled": cfg.RabbitMQ.Enabled,
		"cacheEnabled":    cfg.Cache.Enabled,
	})

	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	storeAdapter, err := store.NewSupabaseAdapter(cfg, mainLogger.WithModule("SupabaseAdapter"))
	if err != nil {
		log.Error("app.store.init_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	var cacheAdapter out.CachePort
	if cfg.Cache.Enabled {
		adapter, err := cache.NewCacheAdapter(cfg, mainLogger.WithModule("CacheAdapter"))
		if err != nil {
			log.Error("app.cache.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		cacheAdapter = adapter
	}

	schedulingService := scheduling_service.NewSchedulingService(
		storeAdapter,
		cacheAdapter,
		cfg,
		mainLogger,
	)

	router := gin.Default()
	controller := httpin.NewAvailabilityController(schedulingService, cfg)
	controller.RegisterRoutes(router)

	if cfg.RabbitMQ.Enabled {
		listener, err := rabbitmq.NewChangeListener(
			schedulingService,
			cfg,
			mainLogger.WithModule("RabbitMQListener"),
		)
		if err != nil {
			log.Error("app.rabbitmq.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if err := listener.Start(ctx); err != nil {
			log.Error("app.rabbitmq.start_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		defer func() {
			if err := listener.Stop(); err != nil {
				log.Error("app.rabbitmq.stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			log.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	log.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})
}
