package loader

import (
	"errors"
	"fmt"
)

// ListFetchError: не удалось получить список школ. Загрузка целиком проваливается.
type ListFetchError struct {
	URL string
	Err error
}

func (e *ListFetchError) Error() string {
	return fmt.Sprintf("fetch school list %s: %v", e.URL, e.Err)
}

func (e *ListFetchError) Unwrap() error { return e.Err }

// EntityFetchError: не удалось получить запись одной школы. Школа пропускается.
type EntityFetchError struct {
	ID  string
	URL string
	Err error
}

func (e *EntityFetchError) Error() string {
	return fmt.Sprintf("fetch school %q from %s: %v", e.ID, e.URL, e.Err)
}

func (e *EntityFetchError) Unwrap() error { return e.Err }

// StatusError: ответ с кодом вне 2xx.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("bad status code: %d", e.Code)
}

// AbortedError: загрузку прервала отмена ctx. Результат неполный и не должен
// заменять текущую коллекцию.
type AbortedError struct {
	Err error
}

func (e *AbortedError) Error() string {
	return fmt.Sprintf("school load aborted: %v", e.Err)
}

func (e *AbortedError) Unwrap() error { return e.Err }

// IsAborted сообщает, что загрузка была прервана отменой контекста.
func IsAborted(err error) bool {
	var aerr *AbortedError
	return errors.As(err, &aerr)
}
