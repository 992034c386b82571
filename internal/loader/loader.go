package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Oignontom8283/timeclass/internal/clock"
	"github.com/Oignontom8283/timeclass/internal/models"
	"github.com/Oignontom8283/timeclass/internal/schedule"
	"github.com/Oignontom8283/timeclass/internal/storage"
)

type SkipKind string

const (
	SkipFetch      SkipKind = "fetch"
	SkipValidation SkipKind = "validation"
	SkipDuplicate  SkipKind = "duplicate"
)

// Skip: школа из списка, которая не попала в каталог.
type Skip struct {
	ID     string   `json:"id"`
	Kind   SkipKind `json:"kind"`
	Reason string   `json:"reason"`
}

type Report struct {
	Listed  int    `json:"listed"`
	Loaded  int    `json:"loaded"`
	Skipped []Skip `json:"skipped"`
}

type Result struct {
	Schools []models.School
	Report  Report
}

type Loader struct {
	client      *http.Client
	origin      string
	cache       storage.RecordCache
	clock       clock.Clock
	concurrency int
}

type Option func(*Loader)

func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) { l.client = c }
}

// WithCache включает кэш сырых записей. nil: без кэша.
func WithCache(c storage.RecordCache) Option {
	return func(l *Loader) { l.cache = c }
}

func WithClock(c clock.Clock) Option {
	return func(l *Loader) { l.clock = c }
}

// WithConcurrency ограничивает число одновременных запросов записей.
func WithConcurrency(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.concurrency = n
		}
	}
}

// New создаёт загрузчик для origin, где лежат /schools.json и /schools/{id}.json.
func New(origin string, opts ...Option) *Loader {
	l := &Loader{
		client:      &http.Client{Timeout: 10 * time.Second},
		origin:      strings.TrimRight(origin, "/"),
		clock:       clock.System{},
		concurrency: 8,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loader) listURL() string {
	return l.origin + "/schools.json"
}

func (l *Loader) schoolURL(id string) string {
	return l.origin + "/schools/" + url.PathEscape(id) + ".json"
}

// Load получает список школ, затем параллельно загружает и проверяет каждую запись.
// Ошибка списка возвращается как *ListFetchError, отмена ctx как *AbortedError; ошибки отдельных школ
// только логируются и попадают в Report.Skipped. Школы идут в порядке завершения загрузки.
func (l *Loader) Load(ctx context.Context) (Result, error) {
	ids, err := l.fetchList(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{}, &AbortedError{Err: ctxErr}
		}
		return Result{}, &ListFetchError{URL: l.listURL(), Err: err}
	}

	report := Report{Listed: len(ids)}
	var (
		mu      sync.Mutex
		schools []models.School
	)

	seen := make(map[string]bool, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			log.Printf("Школа %q повторяется в списке, пропускаем", id)
			report.Skipped = append(report.Skipped, Skip{ID: id, Kind: SkipDuplicate, Reason: "duplicate id in list"})
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	g := new(errgroup.Group)
	g.SetLimit(l.concurrency)
	for _, id := range unique {
		id := id
		g.Go(func() error {
			school, skip := l.loadSchool(ctx, id)

			mu.Lock()
			defer mu.Unlock()
			if skip != nil {
				report.Skipped = append(report.Skipped, *skip)
				return nil
			}
			schools = append(schools, school)
			return nil
		})
	}
	// Задачи никогда не возвращают ошибку, чтобы сбой одной школы не отменял остальные.
	_ = g.Wait()

	report.Loaded = len(schools)
	// После отмены ошибки записей говорят об отмене, а не о самих школах.
	if err := ctx.Err(); err != nil {
		return Result{Report: report}, &AbortedError{Err: err}
	}
	return Result{Schools: schools, Report: report}, nil
}

func (l *Loader) fetchList(ctx context.Context) ([]string, error) {
	body, err := l.get(ctx, l.listURL())
	if err != nil {
		return nil, err
	}
	var ids []string
	if err := json.Unmarshal(body, &ids); err != nil {
		return nil, fmt.Errorf("decode school list: %w", err)
	}
	return ids, nil
}

func (l *Loader) loadSchool(ctx context.Context, id string) (models.School, *Skip) {
	body, cached := l.cached(ctx, id)
	if !cached {
		var err error
		body, err = l.get(ctx, l.schoolURL(id))
		if err != nil {
			ferr := &EntityFetchError{ID: id, URL: l.schoolURL(id), Err: err}
			log.Printf("Ошибка загрузки школы: %v", ferr)
			return models.School{}, &Skip{ID: id, Kind: SkipFetch, Reason: ferr.Error()}
		}
	}

	school, err := schedule.Validate(body, l.clock.Now())
	if err != nil {
		log.Printf("Школа %q не прошла валидацию: %v", id, err)
		return models.School{}, &Skip{ID: id, Kind: SkipValidation, Reason: err.Error()}
	}

	if !cached && l.cache != nil {
		if err := l.cache.Set(ctx, id, body); err != nil {
			log.Printf("Не удалось закэшировать школу %q: %v", id, err)
		}
	}

	return school.WithID(id), nil
}

func (l *Loader) cached(ctx context.Context, id string) ([]byte, bool) {
	if l.cache == nil {
		return nil, false
	}
	body, ok, err := l.cache.Get(ctx, id)
	if err != nil {
		log.Printf("Ошибка чтения кэша для школы %q: %v", id, err)
		return nil, false
	}
	return body, ok
}

func (l *Loader) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[GET] %s | Status: %d | Time: %v", rawURL, resp.StatusCode, time.Since(start))
		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

// IsListFetch сообщает, что загрузка провалилась на получении списка.
func IsListFetch(err error) bool {
	var lerr *ListFetchError
	return errors.As(err, &lerr)
}
