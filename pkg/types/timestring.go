package types

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// TimeString время суток без даты и таймзоны в формате "HH:MM" или "HH:MM:SS".
// Значения всегда дополнены нулями, поэтому лексикографическое сравнение строк
// эквивалентно сравнению времени.
type TimeString string

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("types: invalid time string format")

var timeStringPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)

// NewTimeString создает TimeString из time.Time (формат "HH:MM")
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString валидирует строку и создает TimeString
// Допустимые форматы: "HH:MM" и "HH:MM:SS" с ведущими нулями
func NewTimeStringFromString(s string) (TimeString, error) {
	if !timeStringPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(s), nil
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// IsBefore возвращает true, если t строго раньше other
// Сравнение лексикографическое: значения с секундами ("08:00:00") и без ("08:00")
// сравниваются как строки, что соответствует поведению хранилища
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes возвращает новое время, сдвинутое на minutes минут вперед
// Переход через полночь не поддерживается - возвращается ошибка
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := t.parse()
	if err != nil {
		return "", err
	}

	total := parsed.Hour()*60 + parsed.Minute() + minutes
	if total >= 24*60 || total < 0 {
		return "", fmt.Errorf("%w: %q + %d minutes is out of day range", ErrInvalidTimeString, t, minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

func (t TimeString) parse() (time.Time, error) {
	layouts := []string{"15:04:05", "15:04"}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, string(t)); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, t)
}
