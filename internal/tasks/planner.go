package tasks

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Oignontom8283/timeclass/internal/catalog"
	"github.com/Oignontom8283/timeclass/internal/loader"
)

// Refresher перезагружает каталог (*catalog.Refresher).
type Refresher interface {
	Refresh(ctx context.Context, trigger string) (loader.Report, error)
}

// ReloadCatalog перезагружает каталог школ по расписанию.
func ReloadCatalog(r Refresher, timeout time.Duration) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if _, err := r.Refresh(ctx, catalog.TriggerCron); err != nil {
			log.Println("Ошибка плановой перезагрузки каталога:", err)
		}
	}
}

// InitScheduler инициализирует планировщик cron-задач.
// spec задаётся с секундами: "0 */15 * * * *".
func InitScheduler(spec string, r Refresher, timeout time.Duration) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	if _, err := c.AddFunc(spec, ReloadCatalog(r, timeout)); err != nil {
		log.Println("Ошибка запуска cron-задачи ReloadCatalog:", err)
		return nil, err
	}

	c.Start()
	log.Println("Cron-планировщик запущен.")
	return c, nil
}
