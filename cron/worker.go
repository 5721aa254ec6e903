package cron

import (
	"context"
	"log"
	"time"

	"freshpress/config"
	"freshpress/services/catalog"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeCatalogRefresh = "catalog:refresh"

// InitCatalogWorker runs the async worker and its periodic scheduler in
// the background. The branch catalog changes rarely, so a cache warmed
// on a fixed cadence keeps the wizard's first step off the upstream API.
func InitCatalogWorker(catalogSvc *catalog.Service) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCatalogRefresh, handleCatalogRefresh(catalogSvc))

	go monitorRedisConnection()
	go runScheduler(redisOpts)

	// Start async worker with retry logic
	go func() {
		log.Println("[CatalogWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[CatalogWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[CatalogWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func runScheduler(redisOpts asynq.RedisClientOpt) {
	interval := config.AppConfig.CatalogRefreshMin
	if interval <= 0 {
		interval = 30
	}

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{})
	spec := "@every " + (time.Duration(interval) * time.Minute).String()
	if _, err := scheduler.Register(spec, asynq.NewTask(TypeCatalogRefresh, nil)); err != nil {
		log.Printf("[CatalogWorker] failed to register refresh schedule: %v", err)
		return
	}
	if err := scheduler.Run(); err != nil {
		log.Printf("[CatalogWorker] scheduler stopped: %v", err)
	}
}

func handleCatalogRefresh(catalogSvc *catalog.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		branches, err := catalogSvc.RefreshBranches(ctx)
		if err != nil {
			log.Printf("[CatalogRefresh] refresh failed: %v", err)
			return err
		}
		log.Printf("[CatalogRefresh] cached %d branches", len(branches))
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[CatalogWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
