package catalog

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"gorm.io/datatypes"

	"github.com/Oignontom8283/timeclass/internal/clock"
	"github.com/Oignontom8283/timeclass/internal/loader"
	"github.com/Oignontom8283/timeclass/internal/models"
	"github.com/Oignontom8283/timeclass/internal/storage"
)

const (
	TriggerStartup = "startup"
	TriggerCron    = "cron"
	TriggerAdmin   = "admin"
)

// Source отдаёт коллекцию для каталога (*loader.Loader).
type Source interface {
	Load(ctx context.Context) (loader.Result, error)
}

// Refresher выполняет загрузку, обновляет каталог и пишет историю загрузок.
// Параллельные вызовы Refresh выполняются по очереди.
type Refresher struct {
	src   Source
	cat   *Catalog
	runs  storage.LoadRunRepository // nil: история не пишется
	clock clock.Clock

	mu sync.Mutex
}

func NewRefresher(src Source, cat *Catalog, runs storage.LoadRunRepository, clk clock.Clock) *Refresher {
	if clk == nil {
		clk = clock.System{}
	}
	return &Refresher{src: src, cat: cat, runs: runs, clock: clk}
}

func (r *Refresher) Catalog() *Catalog { return r.cat }

// Refresh загружает коллекцию заново. Ошибка возвращается, если не удалось получить список
// или загрузку прервала отмена ctx; во втором случае каталог не меняется.
func (r *Refresher) Refresh(ctx context.Context, trigger string) (loader.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cat.BeginLoad()
	started := r.clock.Now()
	res, err := r.src.Load(ctx)
	finished := r.clock.Now()

	switch {
	case loader.IsAborted(err):
		// Неполный результат отбрасываем, остаётся прежняя коллекция.
		log.Printf("Загрузка каталога (%s) прервана: %v", trigger, err)
		r.cat.EndLoad()
	case err != nil:
		log.Printf("Загрузка каталога (%s) провалилась: %v", trigger, err)
		r.cat.Fail(err, finished)
	default:
		log.Printf("Каталог загружен (%s): %d из %d школ", trigger, res.Report.Loaded, res.Report.Listed)
		r.cat.Replace(res.Schools, finished)
	}

	r.record(ctx, trigger, started, finished, res.Report, err)
	return res.Report, err
}

func (r *Refresher) record(ctx context.Context, trigger string, started, finished time.Time, report loader.Report, loadErr error) {
	if r.runs == nil {
		return
	}

	run := &models.LoadRun{
		StartedAt:  started,
		FinishedAt: finished,
		Trigger:    trigger,
		Listed:     report.Listed,
		Loaded:     report.Loaded,
		Failed:     loadErr != nil,
	}
	if loadErr != nil {
		run.Error = loadErr.Error()
	}
	if len(report.Skipped) > 0 {
		skipped, err := json.Marshal(report.Skipped)
		if err != nil {
			log.Println("Ошибка сериализации пропущенных школ:", err)
		} else {
			run.Skipped = datatypes.JSON(skipped)
		}
	}

	// История пишется даже если ctx загрузки уже отменён.
	if err := r.runs.Create(context.WithoutCancel(ctx), run); err != nil {
		log.Println("Ошибка сохранения истории загрузки:", err)
	}
}
