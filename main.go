package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/Oignontom8283/timeclass/docs"
	"github.com/Oignontom8283/timeclass/internal/catalog"
	"github.com/Oignontom8283/timeclass/internal/clock"
	"github.com/Oignontom8283/timeclass/internal/config"
	"github.com/Oignontom8283/timeclass/internal/handlers"
	"github.com/Oignontom8283/timeclass/internal/loader"
	"github.com/Oignontom8283/timeclass/internal/storage"
	"github.com/Oignontom8283/timeclass/internal/tasks"
	"github.com/Oignontom8283/timeclass/internal/ws"
)

// @Title						Расписания школ и обратный отсчёт
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal("Ошибка получения .env: ", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Ошибка конфигурации: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var runs storage.LoadRunRepository
	if cfg.DB.Enabled() {
		db, err := storage.ConnectDatabase(cfg.DB)
		if err != nil {
			log.Fatal("Ошибка подключения к базе данных: ", err)
		}
		if err := storage.AutoMigrate(db); err != nil {
			log.Fatal("Ошибка при миграции... ", err.Error())
		}
		runs = storage.NewGormLoadRunRepository(db)
	} else {
		log.Println("DB_HOST не задан, история загрузок не сохраняется")
	}

	var cache storage.RecordCache
	if cfg.Redis.Enabled() {
		rdb, err := storage.InitRedis(ctx, cfg.Redis)
		if err != nil {
			// Без кэша сервис работает, просто ходит в источник каждый раз.
			log.Println("Redis недоступен, кэш записей отключён:", err)
		} else {
			defer rdb.Close()
			cache = storage.NewRedisCache(rdb, cfg.CacheTTL)
		}
	}

	clk := clock.System{}
	ld := loader.New(cfg.SchoolsOrigin,
		loader.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		loader.WithCache(cache),
		loader.WithClock(clk),
		loader.WithConcurrency(cfg.LoaderConcurrency),
	)
	cat := catalog.New()
	refresher := catalog.NewRefresher(ld, cat, runs, clk)

	// Первая загрузка в фоне: пока она идёт, API отвечает 503.
	go func() {
		if _, err := refresher.Refresh(ctx, catalog.TriggerStartup); err != nil {
			log.Println("Первая загрузка каталога не удалась:", err)
		}
	}()

	scheduler, err := tasks.InitScheduler(cfg.ReloadCron, refresher, 5*time.Minute)
	if err != nil {
		log.Fatal("Ошибка запуска планировщика: ", err)
	}

	hub := ws.NewHub(cat, clk, time.Second)
	go hub.Run(ctx)

	h := handlers.New(cat, refresher, runs, clk)
	r := handlers.SetupRouter(h, hub.CountdownWebSocketHandler, []byte(cfg.JWTAccessSecret))

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	go func() {
		log.Println("Сервер запущен на", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Ошибка запуска сервера...", err.Error())
		}
	}()

	<-ctx.Done()
	log.Println("Остановка сервера...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("Ошибка остановки сервера:", err)
	}
	<-scheduler.Stop().Done()
	<-hub.Done()
	log.Println("Сервер остановлен")
}
