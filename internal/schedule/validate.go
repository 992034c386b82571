package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Oignontom8283/timeclass/internal/models"
)

// Сырые структуры записи /schools/{id}.json до валидации.
// Указатели нужны, чтобы отличать отсутствующее поле от пустой строки.
type RawTimeSlot struct {
	Time  *string `json:"time" validate:"required,slottime"`
	Label *string `json:"label" validate:"required"`
}

type RawName struct {
	Original *string `json:"original" validate:"required"`
	En       *string `json:"en"`
}

type RawAddress struct {
	Street     *string `json:"street" validate:"required"`
	City       *string `json:"city" validate:"required"`
	PostalCode *string `json:"postalCode" validate:"required"`
	Country    *string `json:"country" validate:"required"`
}

type RawSchedule struct {
	Comment *string     `json:"comment"`
	Name    *RawName    `json:"name" validate:"required"`
	Address *RawAddress `json:"address" validate:"required"`

	CreatedAt *string `json:"createdAt" validate:"omitnil,anydate"`
	UpdatedAt *string `json:"updatedAt" validate:"required,anydate"`
	Website   *string `json:"website" validate:"omitnil,url"`

	ScheduleStart *RawTimeSlot  `json:"scheduleStart" validate:"required"`
	Schedule      []RawTimeSlot `json:"schedule" validate:"required,dive"`
}

// FieldError описывает одно невалидное поле записи.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError возвращается, когда запись школы не прошла проверку.
// Содержит все поля, на которых проверка упала.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return "invalid school record: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// В путях ошибок используем имена из JSON, а не имена полей Go.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("slottime", func(fl validator.FieldLevel) bool {
		_, _, err := parseClock(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("anydate", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})

	return v
}

// Validate разбирает и проверяет сырую запись школы и приводит её к models.School.
// Время отметок строится на дату now. ID и ScheduleAll выставляет вызывающий код.
func Validate(data []byte, now time.Time) (models.School, error) {
	var raw RawSchedule
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.School{}, decodeError(err)
	}
	return Normalize(raw, now)
}

// Normalize проверяет уже декодированную запись.
func Normalize(raw RawSchedule, now time.Time) (models.School, error) {
	if err := validate.Struct(raw); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return models.School{}, fromValidator(verrs)
		}
		return models.School{}, fmt.Errorf("validate school record: %w", err)
	}

	school := models.School{
		Comment: deref(raw.Comment),
		Name: models.Name{
			Original: *raw.Name.Original,
			En:       deref(raw.Name.En),
		},
		Address: models.Address{
			Street:     *raw.Address.Street,
			City:       *raw.Address.City,
			PostalCode: *raw.Address.PostalCode,
			Country:    *raw.Address.Country,
		},
		Website: deref(raw.Website),
	}

	var fields []FieldError

	if raw.CreatedAt != nil {
		t, err := ParseDate(*raw.CreatedAt)
		if err != nil {
			fields = append(fields, FieldError{Field: "createdAt", Reason: err.Error()})
		} else {
			school.CreatedAt = &t
		}
	}
	updatedAt, err := ParseDate(*raw.UpdatedAt)
	if err != nil {
		fields = append(fields, FieldError{Field: "updatedAt", Reason: err.Error()})
	}
	school.UpdatedAt = updatedAt

	start, err := normalizeSlot(*raw.ScheduleStart, now)
	if err != nil {
		fields = append(fields, FieldError{Field: "scheduleStart.time", Reason: err.Error()})
	}
	school.ScheduleStart = start

	school.Schedule = make([]models.TimeSlot, 0, len(raw.Schedule))
	for i, rs := range raw.Schedule {
		slot, err := normalizeSlot(rs, now)
		if err != nil {
			fields = append(fields, FieldError{Field: fmt.Sprintf("schedule[%d].time", i), Reason: err.Error()})
			continue
		}
		school.Schedule = append(school.Schedule, slot)
	}

	if len(fields) > 0 {
		return models.School{}, &ValidationError{Fields: fields}
	}
	return school, nil
}

func normalizeSlot(raw RawTimeSlot, now time.Time) (models.TimeSlot, error) {
	t, err := ParseSlotTime(*raw.Time, now)
	if err != nil {
		return models.TimeSlot{}, err
	}
	return models.TimeSlot{Time: t, Label: *raw.Label}, nil
}

func fromValidator(verrs validator.ValidationErrors) *ValidationError {
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:  fieldPath(fe.Namespace()),
			Reason: reason(fe),
		})
	}
	return &ValidationError{Fields: fields}
}

// fieldPath отрезает имя корневой структуры: "RawSchedule.name.original" -> "name.original".
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "url":
		return "must be an absolute URL"
	case "slottime":
		return "must be HH:MM"
	case "anydate":
		return ErrInvalidDate.Error()
	default:
		return "failed on " + fe.Tag()
	}
}

func decodeError(err error) *ValidationError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "$"
		}
		return &ValidationError{Fields: []FieldError{{
			Field:  field,
			Reason: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
		}}}
	}
	return &ValidationError{Fields: []FieldError{{Field: "$", Reason: err.Error()}}}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
