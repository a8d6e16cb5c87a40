package water

import (
	"errors"
	"time"
)

const (
	MaxAmount        = 10.0
	DefaultDailyGoal = 3.0

	// TimeLayout is the clock time a record carries when the client does not send one.
	TimeLayout = "15:04"
)

var ErrInvalidAmount = errors.New("amount must be greater than 0 and at most 10 litres")

// Record is one logged intake, amount in litres.
type Record struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	Time      string    `json:"time"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NewRecord struct {
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
	Time   string  `json:"time"`
	Notes  string  `json:"notes"`
}

type Update struct {
	Amount *float64 `json:"amount"`
	Date   *string  `json:"date"`
	Time   *string  `json:"time"`
	Notes  *string  `json:"notes"`
}

// Summary aggregates the records in a date range.
type Summary struct {
	Total float64
	Count int
}

func ValidAmount(amount float64) bool {
	return amount > 0 && amount <= MaxAmount
}
