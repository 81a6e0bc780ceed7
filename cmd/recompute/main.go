package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/seawatts/nugget/internal/config"
	"github.com/seawatts/nugget/internal/insights"
	persistence "github.com/seawatts/nugget/internal/persistence/postgres"
	"github.com/seawatts/nugget/internal/scheduler"
)

func main() {
	once := flag.Bool("once", false, "run a single full recompute and exit")
	flag.Parse()

	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	repo := persistence.NewRepository(pool)
	service := insights.NewService(repo, clockwork.NewRealClock())

	sched, err := scheduler.New(service, scheduler.Config{
		Location:        cfg.Location(),
		NightlyHour:     cfg.RecomputeHour,
		NightlyMinute:   cfg.RecomputeMinute,
		RefreshInterval: cfg.DailyRefreshInterval,
	})
	if err != nil {
		log.Fatalf("failed to build scheduler: %v", err)
	}

	if *once {
		if err := sched.RunNow(ctx); err != nil {
			log.Fatalf("recompute failed: %v", err)
		}
		log.Println("recompute completed")
		return
	}

	metricsSrv := &http.Server{Addr: cfg.MetricsAddress, Handler: promhttp.Handler()}
	go func() {
		log.Printf("recompute metrics listening on %s", cfg.MetricsAddress)
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("metrics server error: %v", err)
		}
	}()

	sched.Start()
	log.Printf("recompute scheduled daily at %02d:%02d (%s), refresh every %s",
		cfg.RecomputeHour, cfg.RecomputeMinute, cfg.Timezone, cfg.DailyRefreshInterval)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("recompute shutdown requested")
	cancel()

	if err := sched.Stop(); err != nil {
		log.Printf("scheduler shutdown error: %v", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("metrics server shutdown error: %v", err)
	}
}
