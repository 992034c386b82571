package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lorguesRecord = `{
	"comment": "School data for testing purposes",
	"name": {
		"original": "Lycée Thomas Edison de Lorgues",
		"en": "Thomas Edison High School of Lorgues"
	},
	"address": {
		"street": "1 Rue Emile Héraud",
		"city": "Lorgues",
		"postalCode": "83510",
		"country": "France"
	},
	"createdAt": "2023-01-01T00:00:00Z",
	"updatedAt": "2024-06-15T12:00:00Z",
	"website": "https://www.lycee-lorgues.fr/",
	"scheduleStart": {"time": "08:00", "label": "8h"},
	"schedule": [
		{"time": "09:00", "label": "9h"},
		{"time": "10:00", "label": "10h"},
		{"time": "17:00", "label": "17h"}
	]
}`

var testNow = time.Date(2025, time.March, 14, 15, 9, 26, 535, time.UTC)

func TestValidate_ValidRecord(t *testing.T) {
	school, err := Validate([]byte(lorguesRecord), testNow)
	require.NoError(t, err)

	assert.Equal(t, "Lycée Thomas Edison de Lorgues", school.Name.Original)
	assert.Equal(t, "Thomas Edison High School of Lorgues", school.Name.Display())
	assert.Equal(t, "83510", school.Address.PostalCode)
	assert.Equal(t, "https://www.lycee-lorgues.fr/", school.Website)
	require.NotNil(t, school.CreatedAt)
	assert.True(t, school.CreatedAt.Equal(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, school.UpdatedAt.Equal(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)))

	assert.Equal(t, time.Date(2025, time.March, 14, 8, 0, 0, 0, time.UTC), school.ScheduleStart.Time)
	assert.Equal(t, "8h", school.ScheduleStart.Label)
	require.Len(t, school.Schedule, 3)
	assert.Equal(t, time.Date(2025, time.March, 14, 17, 0, 0, 0, time.UTC), school.Schedule[2].Time)

	// ID и ScheduleAll выставляет загрузчик.
	assert.Empty(t, school.ID)
	assert.Empty(t, school.ScheduleAll)
}

func TestValidate_OptionalFieldsMissing(t *testing.T) {
	record := `{
		"name": {"original": "École"},
		"address": {"street": "s", "city": "c", "postalCode": "p", "country": "FR"},
		"updatedAt": "2024-06-15",
		"scheduleStart": {"time": "8:05", "label": "start"},
		"schedule": []
	}`

	school, err := Validate([]byte(record), testNow)
	require.NoError(t, err)

	assert.Nil(t, school.CreatedAt)
	assert.Empty(t, school.Website)
	assert.Equal(t, "École", school.Name.Display())
	assert.Equal(t, 8, school.ScheduleStart.Time.Hour())
	assert.Equal(t, 5, school.ScheduleStart.Time.Minute())
	assert.Empty(t, school.Schedule)
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	record := `{
		"name": {},
		"address": {"street": "s", "city": "c", "country": "FR"},
		"updatedAt": "2024-06-15",
		"scheduleStart": {"time": "08:00", "label": "8h"},
		"schedule": [{"time": "09:00"}]
	}`

	_, err := Validate([]byte(record), testNow)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)

	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"name.original", "address.postalCode", "schedule[0].label"}, fields)
}

func TestValidate_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		patch string
		field string
	}{
		{"bad updatedAt", `"updatedAt": "not a date"`, "updatedAt"},
		{"bad createdAt", `"createdAt": "2024-13-45"`, "createdAt"},
		{"relative website", `"website": "/lycee"`, "website"},
		{"empty website", `"website": ""`, "website"},
		{"slot hour out of range", `"scheduleStart": {"time": "24:00", "label": "x"}`, "scheduleStart.time"},
		{"slot minute out of range", `"scheduleStart": {"time": "08:60", "label": "x"}`, "scheduleStart.time"},
		{"slot not numeric", `"scheduleStart": {"time": "ab:cd", "label": "x"}`, "scheduleStart.time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := `{
				"name": {"original": "École"},
				"address": {"street": "s", "city": "c", "postalCode": "p", "country": "FR"},
				"updatedAt": "2024-06-15",
				"scheduleStart": {"time": "08:00", "label": "8h"},
				"schedule": [],
				` + tt.patch + `
			}`
			// Повторный ключ в JSON перезаписывает предыдущее значение.
			_, err := Validate([]byte(record), testNow)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
		})
	}
}

func TestValidate_OneBadSlotFailsWholeRecord(t *testing.T) {
	record := `{
		"name": {"original": "École"},
		"address": {"street": "s", "city": "c", "postalCode": "p", "country": "FR"},
		"updatedAt": "2024-06-15",
		"scheduleStart": {"time": "08:00", "label": "8h"},
		"schedule": [{"time": "09:00", "label": "9h"}, {"time": "9h30", "label": "bad"}]
	}`

	_, err := Validate([]byte(record), testNow)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "schedule[1].time", verr.Fields[0].Field)
}

func TestValidate_WrongJSONType(t *testing.T) {
	_, err := Validate([]byte(`{"name": "École"}`), testNow)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "name", verr.Fields[0].Field)

	_, err = Validate([]byte(`{not json`), testNow)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "$", verr.Fields[0].Field)
}
