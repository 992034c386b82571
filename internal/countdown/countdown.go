package countdown

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/Oignontom8283/timeclass/internal/clock"
)

// Длительности единиц в миллисекундах. Год и месяц приблизительные
// (365 и 30 дней), календарь не учитывается.
const (
	msSecond = int64(1000)
	msMinute = 60 * msSecond
	msHour   = 60 * msMinute
	msDay    = 24 * msHour
	msWeek   = 7 * msDay
	msMonth  = 30 * msDay
	msYear   = 365 * msDay
)

// Unit описывает одну единицу разложения.
type Unit struct {
	Name  string `json:"name"`  // years, months, ...
	Short string `json:"short"` // подпись на экране отсчёта
	Value int64  `json:"value"`
}

// Breakdown хранит разницу между целью и текущим моментом, разложенная по единицам.
// Значения всегда неотрицательные, знак хранится в Overdue.
type Breakdown struct {
	Overdue bool   `json:"overdue"`
	Units   []Unit `json:"units"`
}

type unitDef struct {
	name, short string
	size        int64 // длительность единицы
}

var ladder = []unitDef{
	{"years", "ans", msYear},
	{"months", "mois", msMonth},
	{"weeks", "sem", msWeek},
	{"days", "jours", msDay},
	{"hours", "h", msHour},
	{"minutes", "min", msMinute},
	{"seconds", "sec", msSecond},
}

// Decompose раскладывает target-now на годы, месяцы, недели, дни, часы, минуты и секунды.
// В результат попадают единицы от первой ненулевой до секунд; если всё нулевое, только секунды.
func Decompose(target, now time.Time) Breakdown {
	overdue := target.Before(now)
	delta := target.Sub(now).Milliseconds()
	if delta < 0 {
		delta = -delta
	}

	// Каждая единица берётся из остатка после всех более крупных.
	units := make([]Unit, len(ladder))
	rest := delta
	for i, u := range ladder {
		v := rest / u.size
		rest -= v * u.size
		units[i] = Unit{Name: u.name, Short: u.short, Value: v}
	}

	first := len(units) - 1
	for i, u := range units {
		if u.Value > 0 {
			first = i
			break
		}
	}

	return Breakdown{Overdue: overdue, Units: units[first:]}
}

// Get возвращает значение единицы по имени.
func (b Breakdown) Get(name string) (int64, bool) {
	for _, u := range b.Units {
		if u.Name == name {
			return u.Value, true
		}
	}
	return 0, false
}

// String возвращает текстовую подпись отсчёта, например "2 hours, 5 minutes, 0 seconds".
func (b Breakdown) String() string {
	parts := make([]string, 0, len(b.Units))
	for _, u := range b.Units {
		parts = append(parts, strconv.FormatInt(u.Value, 10)+" "+u.Name)
	}
	return strings.Join(parts, ", ")
}

// Tick вызывает fn с новым разложением сразу и затем каждые interval, пока жив ctx.
// Таймер освобождается при выходе.
func Tick(ctx context.Context, clk clock.Clock, target time.Time, interval time.Duration, fn func(Breakdown)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	fn(Decompose(target, clk.Now()))
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(Decompose(target, clk.Now()))
		}
	}
}
