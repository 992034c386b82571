// Утилита командной строки: разовая загрузка каталога, отсчёт до отметок
// и выпуск токена администратора.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Oignontom8283/timeclass/internal/auth"
	"github.com/Oignontom8283/timeclass/internal/catalog"
	"github.com/Oignontom8283/timeclass/internal/clock"
	"github.com/Oignontom8283/timeclass/internal/config"
	"github.com/Oignontom8283/timeclass/internal/countdown"
	"github.com/Oignontom8283/timeclass/internal/loader"
	"github.com/Oignontom8283/timeclass/internal/models"
)

func main() {
	var (
		schoolID = flag.String("school", "", "ID школы для вывода отсчёта")
		slot     = flag.Int("slot", -1, "индекс отметки в scheduleAll (-1: все)")
		watch    = flag.Bool("watch", false, "обновлять отсчёт каждую секунду до Ctrl+C")
		token    = flag.String("token", "", "выпустить токен администратора для указанного subject и выйти")
		tokenTTL = flag.Duration("token-ttl", 24*time.Hour, "срок жизни токена администратора")
	)
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		log.Println("Продолжаем без .env:", err)
	}

	if *token != "" {
		secret := []byte(os.Getenv("JWT_ACCESS_SECRET"))
		tok, err := auth.GenerateToken(*token, *tokenTTL, secret, time.Now())
		if err != nil {
			log.Fatal("Ошибка генерации токена: ", err)
		}
		fmt.Println(tok)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Ошибка конфигурации: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clk := clock.System{}
	ld := loader.New(cfg.SchoolsOrigin,
		loader.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		loader.WithClock(clk),
		loader.WithConcurrency(cfg.LoaderConcurrency),
	)
	cat := catalog.New()
	report, err := catalog.NewRefresher(ld, cat, nil, clk).Refresh(ctx, catalog.TriggerAdmin)
	if err != nil {
		log.Fatal("Не удалось загрузить каталог: ", err)
	}

	fmt.Printf("Школ в списке: %d, загружено: %d, пропущено: %d\n", report.Listed, report.Loaded, len(report.Skipped))
	for _, s := range report.Skipped {
		fmt.Printf("  - %s (%s): %s\n", s.ID, s.Kind, s.Reason)
	}

	if *schoolID == "" {
		for _, s := range cat.Snapshot().Schools {
			fmt.Printf("%s\t%s\t%s\n", s.ID, s.Name.Display(), s.Address.Format())
		}
		return
	}

	school, err := cat.School(*schoolID)
	if err != nil {
		log.Fatal(err)
	}

	slots := school.ScheduleAll
	first := 0
	if *slot >= 0 {
		_, ts, err := cat.Slot(*schoolID, strconv.Itoa(*slot))
		if err != nil {
			log.Fatal(err)
		}
		slots, first = []models.TimeSlot{ts}, *slot
	}

	if !*watch {
		now := clk.Now()
		for i, ts := range slots {
			printSlot(first+i, ts, countdown.Decompose(ts.Time, now))
		}
		return
	}

	if len(slots) != 1 {
		log.Fatal("-watch требует -slot")
	}
	countdown.Tick(ctx, clk, slots[0].Time, time.Second, func(b countdown.Breakdown) {
		printSlot(first, slots[0], b)
	})
}

func printSlot(index int, ts models.TimeSlot, b countdown.Breakdown) {
	sign := "через"
	if b.Overdue {
		sign = "прошло"
	}
	fmt.Printf("[%d] %s %s: %s %s\n", index, ts.Time.Format("15:04"), ts.Label, sign, b.String())
}
