package clock

import "time"

// Clock отдаёт текущее время. Все компоненты получают его явно,
// чтобы расчёты можно было проверять на фиксированных моментах.
type Clock interface {
	Now() time.Time
}

// System отдаёт time.Now.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed всегда возвращает один и тот же момент.
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time { return f.At }

// Func адаптирует обычную функцию к Clock.
type Func func() time.Time

func (f Func) Now() time.Time { return f() }
