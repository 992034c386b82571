// Package transform разбирает и правит строки CSS transform вида
// "translate(394px, 884px) rotate(16135.3deg) scale(10.8593, 8.4758)",
// которые редактор оверлея получает при перетаскивании, вращении и масштабировании.
package transform

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Invalid подставляется вместо аргумента, который не удалось разобрать как число.
const Invalid = -1

var ErrNotFound = errors.New("transform function not found")

// NotFoundError возвращается Set, если функции нет в строке.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("element '%s' not found in transform string", e.Name)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

var (
	functionRegex = regexp.MustCompile(`(\w+)\(([^)]+)\)`)
	unitsRegex    = regexp.MustCompile(`[a-zA-Z%]+`)
	unitRegex     = regexp.MustCompile(`[a-zA-Z%]+$`)
	numberRegex   = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)`)
)

// Parse возвращает аргументы всех функций строки без единиц измерения.
// Нечисловой аргумент становится Invalid (-1). Если функция встречается
// несколько раз, остаются аргументы последнего вхождения.
func Parse(transform string) map[string][]float64 {
	result := make(map[string][]float64)
	for _, m := range functionRegex.FindAllStringSubmatch(transform, -1) {
		parts := strings.Split(m[2], ",")
		args := make([]float64, 0, len(parts))
		for _, p := range parts {
			args = append(args, parseArg(p))
		}
		result[m[1]] = args
	}
	return result
}

func parseArg(arg string) float64 {
	clean := unitsRegex.ReplaceAllString(strings.TrimSpace(arg), "")
	num := numberRegex.FindString(strings.TrimSpace(clean))
	if num == "" {
		return Invalid
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Invalid
	}
	return v
}

// Get возвращает аргументы функции name.
func Get(transform, name string) ([]float64, bool) {
	args, ok := Parse(transform)[name]
	return args, ok
}

// Set заменяет аргументы первого вхождения функции name, сохраняя единицы измерения.
// nil в values оставляет прежнее значение, лишние значения игнорируются,
// недостающие не меняют оставшиеся аргументы.
func Set(transform, name string, values []*float64) (string, error) {
	re := regexp.MustCompile(`\b(` + regexp.QuoteMeta(name) + `)\(([^)]+)\)`)
	loc := re.FindStringSubmatchIndex(transform)
	if loc == nil {
		return "", &NotFoundError{Name: name}
	}

	function := transform[loc[2]:loc[3]]
	existing := strings.Split(transform[loc[4]:loc[5]], ",")

	args := make([]string, len(existing))
	for i, arg := range existing {
		arg = strings.TrimSpace(arg)
		if i >= len(values) || values[i] == nil {
			args[i] = arg
			continue
		}
		args[i] = formatNumber(*values[i]) + unitRegex.FindString(arg)
	}

	replaced := function + "(" + strings.Join(args, ", ") + ")"
	return transform[:loc[0]] + replaced + transform[loc[1]:], nil
}

// Value возвращает указатель на v для Set.
func Value(v float64) *float64 { return &v }

// Values превращает срез чисел в аргументы Set без пропусков.
func Values(vs ...float64) []*float64 {
	out := make([]*float64, len(vs))
	for i := range vs {
		out[i] = Value(vs[i])
	}
	return out
}

// UniformScale приводит scale к одинаковому коэффициенту по обеим осям: max(sx, sy).
func UniformScale(transform string) (string, error) {
	scaleX, scaleY := 1.0, 1.0
	if args, ok := Get(transform, "scale"); ok && len(args) > 0 {
		scaleX, scaleY = args[0], args[0]
		if len(args) > 1 {
			scaleY = args[1]
		}
	}
	uniform := math.Max(scaleX, scaleY)
	return Set(transform, "scale", Values(uniform, uniform))
}

func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	abs := math.Abs(v)
	if abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		// Экспонента без ведущих нулей, как в JS: 1e-7, 1.5e+21.
		mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
		digits := strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + exp[:1] + digits
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
