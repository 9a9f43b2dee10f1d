package cron

import (
	"context"
	"log"
	"time"

	"furaha/config"
	ai "furaha/services/intelligence"
	"furaha/services/notification"
	"furaha/services/scheduling"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const (
	TypeItineraryDaily = "itinerary:daily"
	TypeReminderScan   = "reminder:scan"
)

// InitJobWorker schedules the recurring portfolio jobs and runs the async
// worker in background.
func InitJobWorker(schedSvc scheduling.SchedulingService, aiSvc ai.AIService, notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisJobsDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeItineraryDaily, handleItineraryTask(schedSvc, aiSvc, notifSvc))
	mux.HandleFunc(TypeReminderScan, handleReminderScanTask(schedSvc))

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{
		Location: time.Local,
	})
	if _, err := scheduler.Register("0 8 * * *", asynq.NewTask(TypeItineraryDaily, nil)); err != nil {
		log.Printf("[JobWorker] ❌ Failed to register daily itinerary job: %v", err)
	}
	if _, err := scheduler.Register("0 * * * *", asynq.NewTask(TypeReminderScan, nil)); err != nil {
		log.Printf("[JobWorker] ❌ Failed to register reminder scan job: %v", err)
	}

	// Start Redis health monitor
	go monitorRedisConnection()

	go func() {
		log.Println("[JobWorker] 🚀 Starting scheduler...")
		if err := scheduler.Run(); err != nil {
			log.Printf("[JobWorker] ❌ Scheduler stopped: %v", err)
		}
	}()

	// Start async worker with retry logic
	go func() {
		log.Println("[JobWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[JobWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[JobWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleItineraryTask emails the admin today's confirmed appointments with
// an AI-written summary line. No appointments means no email.
func handleItineraryTask(schedSvc scheduling.SchedulingService, aiSvc ai.AIService, notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		appts, err := schedSvc.TodaysConfirmed(ctx)
		if err != nil {
			log.Printf("[ItineraryHandler] ❌ Failed to load today's appointments: %v", err)
			return err
		}
		if len(appts) == 0 {
			log.Println("[ItineraryHandler] No confirmed appointments today, skipping email")
			return nil
		}

		summary, err := aiSvc.ItinerarySummary(ctx, appts)
		if err != nil {
			log.Printf("[ItineraryHandler] ⚠️ Summary generation failed: %v", err)
			summary = ""
		}

		if err := notifSvc.SendDailyItinerary(ctx, appts, summary); err != nil {
			log.Printf("[ItineraryHandler] ❌ Failed to send itinerary email: %v", err)
			return err
		}

		log.Printf("[ItineraryHandler] ⏰ Sent itinerary with %d appointment(s)", len(appts))
		return nil
	}
}

// handleReminderScanTask counts confirmed appointments roughly 24 hours out.
func handleReminderScanTask(schedSvc scheduling.SchedulingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		tomorrow := time.Now().Add(24 * time.Hour)
		appts, err := schedSvc.ConfirmedOnDay(ctx, tomorrow)
		if err != nil {
			log.Printf("[ReminderScan] ❌ Failed to scan upcoming appointments: %v", err)
			return err
		}
		if len(appts) > 0 {
			log.Printf("[ReminderScan] ⏰ %d confirmed appointment(s) in the next ~24h", len(appts))
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisJobsDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[JobWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
