package services

import (
	"errors"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrOrderNotPending = errors.New("order is not pending")
	ErrImageWrite      = errors.New("could not store image")
)

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// Notifier receives domain events for the live screens.
type Notifier interface {
	Publish(event string, data interface{})
}

type NopNotifier struct{}

func (NopNotifier) Publish(string, interface{}) {}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// validPrice accepts finite, non-negative amounts with at most two decimals.
func validPrice(p float64) bool {
	if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
		return false
	}
	d := decimal.NewFromFloat(p)
	return d.Equal(d.Round(2))
}
