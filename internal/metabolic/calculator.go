package metabolic

import "strings"

const (
	GoalLoseWeight       = "lose_weight"
	GoalMaintain         = "maintain"
	GoalGainMuscle       = "gain_muscle"
	GoalImproveEndurance = "improve_endurance"
)

// DefaultActivityMultiplier is used for activity levels outside the known table.
const DefaultActivityMultiplier = 1.55

var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// Profile holds the body parameters every calculation starts from.
// Height is in centimetres, weight in kilograms.
type Profile struct {
	Age           int
	Gender        string
	Height        float64
	Weight        float64
	ActivityLevel string
}

type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

type MealBreakdown struct {
	Breakfast int `json:"breakfast"`
	Lunch     int `json:"lunch"`
	Dinner    int `json:"dinner"`
	Snacks    int `json:"snacks"`
}

type Targets struct {
	BMR           float64
	TDEE          float64
	DailyCalories int
	Macros        Macros
	Meals         MealBreakdown
}

// BMR uses the Mifflin-St Jeor equation. Only "male" (any case) gets the male constant.
func BMR(age int, gender string, height, weight float64) float64 {
	bmr := 10*weight + 6.25*height - 5*float64(age)
	if strings.EqualFold(gender, "male") {
		return bmr + 5
	}
	return bmr - 161
}

// ActivityMultiplier returns the TDEE multiplier for the level and whether the level is known.
func ActivityMultiplier(level string) (float64, bool) {
	m, ok := activityMultipliers[level]
	if !ok {
		return DefaultActivityMultiplier, false
	}
	return m, true
}

func TDEE(bmr float64, activityLevel string) float64 {
	m, _ := ActivityMultiplier(activityLevel)
	return bmr * m
}

func CalorieTarget(tdee float64, goal string) int {
	switch goal {
	case GoalLoseWeight:
		return int(tdee - 500)
	case GoalGainMuscle:
		return int(tdee + 300)
	default:
		return int(tdee)
	}
}

func MacroTargets(calories int, goal string) Macros {
	protein, carbs, fats := 0.30, 0.40, 0.30
	switch goal {
	case GoalLoseWeight:
		protein, carbs, fats = 0.35, 0.35, 0.30
	case GoalGainMuscle:
		protein, carbs, fats = 0.30, 0.45, 0.25
	}

	cal := float64(calories)
	return Macros{
		Protein: int(cal * protein / 4),
		Carbs:   int(cal * carbs / 4),
		Fats:    int(cal * fats / 9),
	}
}

func SplitMeals(calories int) MealBreakdown {
	cal := float64(calories)
	return MealBreakdown{
		Breakfast: int(cal * 0.25),
		Lunch:     int(cal * 0.35),
		Dinner:    int(cal * 0.30),
		Snacks:    int(cal * 0.10),
	}
}

// Calculate runs the full chain from body parameters to meal breakdown.
func Calculate(p Profile, goal string) Targets {
	bmr := BMR(p.Age, p.Gender, p.Height, p.Weight)
	tdee := TDEE(bmr, p.ActivityLevel)
	target := CalorieTarget(tdee, goal)
	return Targets{
		BMR:           bmr,
		TDEE:          tdee,
		DailyCalories: target,
		Macros:        MacroTargets(target, goal),
		Meals:         SplitMeals(target),
	}
}
