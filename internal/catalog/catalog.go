package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/Oignontom8283/timeclass/internal/models"
)

var (
	ErrSchoolNotFound = errors.New("school not found")
	ErrSlotNotFound   = errors.New("slot not found")
)

// LookupError: школа или отметка расписания не найдена в каталоге.
type LookupError struct {
	ID    string
	Index string // пусто при поиске школы
	Err   error
}

func (e *LookupError) Error() string {
	if e.Index == "" {
		return fmt.Sprintf("%v: %q", e.Err, e.ID)
	}
	return fmt.Sprintf("%v: %q[%s]", e.Err, e.ID, e.Index)
}

func (e *LookupError) Unwrap() error { return e.Err }

type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// Snapshot возвращается Catalog.Snapshot как согласованный срез состояния.
type Snapshot struct {
	State    State
	Schools  []models.School
	Loading  bool // идёт загрузка (первая или перезагрузка)
	Error    error
	LoadedAt time.Time
}

// Catalog держит в памяти коллекцию школ последней загрузки.
// Коллекция заменяется целиком, частичных обновлений нет.
type Catalog struct {
	mu       sync.RWMutex
	state    State
	loading  bool
	schools  []models.School
	byID     map[string]int
	err      error
	loadedAt time.Time
}

// New возвращает пустой каталог в состоянии loading.
func New() *Catalog {
	return &Catalog{state: StateLoading, byID: map[string]int{}}
}

// BeginLoad отмечает начало загрузки. Текущая коллекция продолжает отдаваться.
func (c *Catalog) BeginLoad() {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()
}

// EndLoad снимает отметку загрузки, не трогая коллекцию и состояние.
func (c *Catalog) EndLoad() {
	c.mu.Lock()
	c.loading = false
	c.mu.Unlock()
}

// Replace ставит новую коллекцию и переводит каталог в ready.
func (c *Catalog) Replace(schools []models.School, at time.Time) {
	byID := make(map[string]int, len(schools))
	for i, s := range schools {
		byID[s.ID] = i
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateReady
	c.loading = false
	c.schools = schools
	c.byID = byID
	c.err = nil
	c.loadedAt = at
}

// Fail переводит каталог в failed. Коллекция становится пустой.
func (c *Catalog) Fail(err error, at time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateFailed
	c.loading = false
	c.schools = nil
	c.byID = map[string]int{}
	c.err = err
	c.loadedAt = at
}

func (c *Catalog) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{
		State:    c.state,
		Schools:  c.schools,
		Loading:  c.loading || c.state == StateLoading,
		Error:    c.err,
		LoadedAt: c.loadedAt,
	}
}

func (c *Catalog) School(id string) (models.School, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.byID[id]
	if !ok {
		return models.School{}, &LookupError{ID: id, Err: ErrSchoolNotFound}
	}
	return c.schools[i], nil
}

// Slot ищет отметку scheduleAll по строковому индексу из URL.
func (c *Catalog) Slot(id, index string) (models.School, models.TimeSlot, error) {
	school, err := c.School(id)
	if err != nil {
		return models.School{}, models.TimeSlot{}, err
	}
	i, err := strconv.Atoi(index)
	if err != nil {
		return models.School{}, models.TimeSlot{}, &LookupError{ID: id, Index: index, Err: ErrSlotNotFound}
	}
	slot, ok := school.Slot(i)
	if !ok {
		return models.School{}, models.TimeSlot{}, &LookupError{ID: id, Index: index, Err: ErrSlotNotFound}
	}
	return school, slot, nil
}
