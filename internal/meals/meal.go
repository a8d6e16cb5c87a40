package meals

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fittrack/pkg"
)

var MealTypes = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

type Food struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

func SumFoods(foods []Food) Totals {
	var t Totals
	for _, f := range foods {
		t.Calories += f.Calories
		t.Protein += f.Protein
		t.Carbs += f.Carbs
		t.Fats += f.Fats
	}
	return t
}

func (t Totals) Add(other Totals) Totals {
	return Totals{
		Calories: t.Calories + other.Calories,
		Protein:  t.Protein + other.Protein,
		Carbs:    t.Carbs + other.Carbs,
		Fats:     t.Fats + other.Fats,
	}
}

func (t Totals) Round(places int) Totals {
	return Totals{
		Calories: pkg.Round(t.Calories, places),
		Protein:  pkg.Round(t.Protein, places),
		Carbs:    pkg.Round(t.Carbs, places),
		Fats:     pkg.Round(t.Fats, places),
	}
}

type Meal struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Type          string    `json:"type"`
	Foods         []Food    `json:"foods"`
	Notes         *string   `json:"notes"`
	Date          time.Time `json:"date"`
	CreatedAt     time.Time `json:"created_at"`
	TotalCalories float64   `json:"total_calories"`
	TotalProtein  float64   `json:"total_protein"`
	TotalCarbs    float64   `json:"total_carbs"`
	TotalFats     float64   `json:"total_fats"`
}

// RecomputeTotals overwrites the stored totals with the sum of the meal's foods.
func (m *Meal) RecomputeTotals() {
	t := SumFoods(m.Foods)
	m.TotalCalories = t.Calories
	m.TotalProtein = t.Protein
	m.TotalCarbs = t.Carbs
	m.TotalFats = t.Fats
}

type NewMeal struct {
	Type  string  `json:"type"`
	Foods []Food  `json:"foods"`
	Notes *string `json:"notes"`
	// Date is ISO-8601 or YYYY-MM-DD, now when empty.
	Date string `json:"date"`
}

func (nm NewMeal) Validate() error {
	if !MealTypes[nm.Type] {
		return fmt.Errorf("invalid meal type: %q", nm.Type)
	}
	if nm.Foods == nil {
		return errors.New("foods are required")
	}
	return validateFoods(nm.Foods)
}

// Update carries only the fields a client sent. Totals are never taken from
// the client, they follow the foods.
type Update struct {
	Type  *string `json:"type"`
	Foods *[]Food `json:"foods"`
	Notes *string `json:"notes"`
}

func (u Update) IsEmpty() bool {
	return u.Type == nil && u.Foods == nil && u.Notes == nil
}

func (u Update) Validate() error {
	if u.Type != nil && !MealTypes[*u.Type] {
		return fmt.Errorf("invalid meal type: %q", *u.Type)
	}
	if u.Foods != nil {
		return validateFoods(*u.Foods)
	}
	return nil
}

func validateFoods(foods []Food) error {
	for i, f := range foods {
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("food %d: name is required", i)
		}
		if f.Quantity < 0 || f.Calories < 0 || f.Protein < 0 || f.Carbs < 0 || f.Fats < 0 {
			return fmt.Errorf("food %d: quantity and nutrients cannot be negative", i)
		}
	}
	return nil
}
