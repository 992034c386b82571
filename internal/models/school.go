package models

import (
	"strings"
	"time"
)

// Name: название школы: оригинальное и (опционально) английское.
type Name struct {
	Original string `json:"original"`
	En       string `json:"en,omitempty"`
}

// Display возвращает английское название, если оно задано, иначе оригинальное.
func (n Name) Display() string {
	if n.En != "" {
		return n.En
	}
	return n.Original
}

type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Format собирает адрес в одну строку в верхнем регистре:
// "<street>, <city>, <postalCode>, <country>".
func (a Address) Format() string {
	return strings.ToUpper(a.Street + ", " + a.City + ", " + a.PostalCode + ", " + a.Country)
}

// TimeSlot: одна отметка дневного расписания.
type TimeSlot struct {
	Time  time.Time `json:"time"`
	Label string    `json:"label"`
}

// School: проверенная запись расписания одной школы.
type School struct {
	ID      string  `json:"id"`      // Идентификатор из списка /schools.json, не из тела записи
	Comment string  `json:"comment,omitempty"`
	Name    Name    `json:"name"`
	Address Address `json:"address"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Website   string     `json:"website,omitempty"`

	ScheduleStart TimeSlot   `json:"scheduleStart"`
	Schedule      []TimeSlot `json:"schedule"`
	ScheduleAll   []TimeSlot `json:"scheduleAll"` // [ScheduleStart, Schedule...], считается один раз после валидации
}

// WithID возвращает копию школы с идентификатором из списка и собранным ScheduleAll.
func (s School) WithID(id string) School {
	s.ID = id
	all := make([]TimeSlot, 0, len(s.Schedule)+1)
	all = append(all, s.ScheduleStart)
	all = append(all, s.Schedule...)
	s.ScheduleAll = all
	return s
}

// Slot возвращает отметку ScheduleAll по индексу.
func (s School) Slot(index int) (TimeSlot, bool) {
	if index < 0 || index >= len(s.ScheduleAll) {
		return TimeSlot{}, false
	}
	return s.ScheduleAll[index], true
}
