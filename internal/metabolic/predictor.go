package metabolic

import (
	"fmt"

	"github.com/2beens/fittrack/pkg"
)

// Burn rates in kcal per minute for a 70 kg person.
var exerciseBurnRates = map[string]float64{
	"Running (Outdoor)":  11.4,
	"Treadmill Running":  11.0,
	"Cycling (Outdoor)":  7.5,
	"Stationary Bike":    6.8,
	"Swimming":           9.0,
	"Jump Rope":          12.3,
	"Rowing Machine":     8.5,
	"Elliptical Trainer": 7.0,
	"Stair Climber":      9.0,
	"HIIT":               12.0,
	"Weight Training":    6.0,
	"Strength Training":  6.0,
	"Yoga":               3.0,
	"Pilates":            4.0,
	"Walking":            4.0,
	"Burpees":            10.0,
	"Box Jumps":          9.5,
	"Battle Ropes":       10.5,
	"Kettlebell Swings":  9.8,
}

const (
	defaultBurnRate = 6.0
	walkingBurnRate = 4.0
	runningBurnRate = 11.4
	referenceWeight = 70.0
)

type WorkoutEquivalent struct {
	WalkingMinutes int `json:"walking_minutes"`
	RunningMinutes int `json:"running_minutes"`
}

type WorkoutBurn struct {
	Exercise          string            `json:"exercise"`
	DurationMinutes   int               `json:"duration_minutes"`
	CaloriesBurned    int               `json:"calories_burned"`
	CaloriesPerMinute float64           `json:"calories_per_minute"`
	Intensity         string            `json:"intensity"`
	Equivalent        WorkoutEquivalent `json:"equivalent"`
}

// WorkoutCalories estimates the burn of an exercise, scaling the reference rate by body weight.
// Unknown exercises use a generic moderate rate. Weight must be positive.
func WorkoutCalories(exercise string, durationMin int, weight float64) WorkoutBurn {
	baseRate, ok := exerciseBurnRates[exercise]
	if !ok {
		baseRate = defaultBurnRate
	}
	rate := baseRate * weight / referenceWeight
	calories := rate * float64(durationMin)

	return WorkoutBurn{
		Exercise:          exercise,
		DurationMinutes:   durationMin,
		CaloriesBurned:    int(calories),
		CaloriesPerMinute: pkg.Round(rate, 2),
		Intensity:         intensityLevel(baseRate),
		Equivalent: WorkoutEquivalent{
			WalkingMinutes: int(calories / (walkingBurnRate * weight / referenceWeight)),
			RunningMinutes: int(calories / (runningBurnRate * weight / referenceWeight)),
		},
	}
}

func intensityLevel(ratePerMin float64) string {
	switch {
	case ratePerMin >= 10:
		return "High Intensity"
	case ratePerMin >= 7:
		return "Moderate-High Intensity"
	case ratePerMin >= 5:
		return "Moderate Intensity"
	default:
		return "Low-Moderate Intensity"
	}
}

var calorieAdjustments = map[string]float64{
	"maintenance":          0,
	"weight_loss":          -500,
	"moderate_weight_loss": -300,
	"muscle_gain":          300,
	"lean_bulk":            200,
	GoalMaintain:           0,
	GoalLoseWeight:         -500,
	GoalGainMuscle:         300,
}

var mealDistributions = map[int][]float64{
	3: {0.30, 0.35, 0.35},
	4: {0.25, 0.30, 0.25, 0.20},
	5: {0.20, 0.15, 0.30, 0.15, 0.20},
}

var mealNames = map[int][]string{
	3: {"Breakfast", "Lunch", "Dinner"},
	4: {"Breakfast", "Lunch", "Dinner", "Snack"},
	5: {"Breakfast", "Morning Snack", "Lunch", "Afternoon Snack", "Dinner"},
}

var genericMealNames = []string{"Breakfast", "Morning Snack", "Lunch", "Afternoon Snack", "Dinner", "Evening Snack"}

const MaxMealsPerDay = 10

type MealShare struct {
	Meal       string `json:"meal"`
	Calories   int    `json:"calories"`
	Percentage string `json:"percentage"`
}

type MealPlanCalories struct {
	DailyTarget     int         `json:"daily_target"`
	MealsPerDay     int         `json:"meals_per_day"`
	MealBreakdown   []MealShare `json:"meal_breakdown"`
	PreWorkoutSnack int         `json:"pre_workout_snack"`
	PostWorkoutMeal int         `json:"post_workout_meal"`
}

// MealCalories spreads the goal-adjusted daily target over the given number of meals.
func MealCalories(tdee float64, goal string, mealsPerDay int) (*MealPlanCalories, error) {
	if mealsPerDay < 1 || mealsPerDay > MaxMealsPerDay {
		return nil, fmt.Errorf("meals per day must be between 1 and %d", MaxMealsPerDay)
	}

	dailyTarget := tdee + calorieAdjustments[goal]

	distribution, ok := mealDistributions[mealsPerDay]
	if !ok {
		distribution = make([]float64, mealsPerDay)
		for i := range distribution {
			distribution[i] = 1.0 / float64(mealsPerDay)
		}
	}
	names, ok := mealNames[mealsPerDay]
	if !ok {
		names = genericMealNames
	}

	meals := make([]MealShare, 0, len(distribution))
	for i, share := range distribution {
		name := fmt.Sprintf("Meal %d", i+1)
		if i < len(names) {
			name = names[i]
		}
		meals = append(meals, MealShare{
			Meal:       name,
			Calories:   int(dailyTarget * share),
			Percentage: fmt.Sprintf("%d%%", int(share*100)),
		})
	}

	return &MealPlanCalories{
		DailyTarget:     int(dailyTarget),
		MealsPerDay:     mealsPerDay,
		MealBreakdown:   meals,
		PreWorkoutSnack: int(dailyTarget * 0.10),
		PostWorkoutMeal: int(dailyTarget * 0.25),
	}, nil
}

type FoodRecommendations struct {
	Proteins    []string `json:"proteins"`
	Carbs       []string `json:"carbs"`
	Fats        []string `json:"fats"`
	Avoid       []string `json:"avoid,omitempty"`
	Supplements []string `json:"supplements,omitempty"`
	Tips        []string `json:"tips"`
}

var weightLossFoods = FoodRecommendations{
	Proteins: []string{"Chicken breast", "Turkey", "Fish (salmon, tuna)", "Egg whites", "Greek yogurt", "Tofu"},
	Carbs:    []string{"Oatmeal", "Brown rice", "Sweet potato", "Quinoa", "Whole grain bread", "Vegetables"},
	Fats:     []string{"Avocado", "Nuts (almonds, walnuts)", "Olive oil", "Fatty fish", "Seeds"},
	Avoid:    []string{"Sugary drinks", "Processed foods", "Fried foods", "Excessive alcohol", "White bread"},
	Tips: []string{
		"Eat protein with every meal",
		"Fill half your plate with vegetables",
		"Drink water before meals",
		"Avoid late-night snacking",
	},
}

var muscleGainFoods = FoodRecommendations{
	Proteins:    []string{"Chicken", "Beef", "Fish", "Eggs", "Milk", "Protein powder", "Greek yogurt"},
	Carbs:       []string{"Rice", "Pasta", "Oats", "Potatoes", "Bread", "Fruits", "Quinoa"},
	Fats:        []string{"Nuts", "Nut butter", "Avocado", "Olive oil", "Whole eggs", "Fatty fish"},
	Supplements: []string{"Whey protein", "Creatine", "BCAAs (optional)", "Multivitamin"},
	Tips: []string{
		"Eat every 3-4 hours",
		"Consume protein within 30 min after workout",
		"Don't skip post-workout meal",
		"Get 1g protein per lb body weight",
	},
}

var maintenanceFoods = FoodRecommendations{
	Proteins: []string{"Chicken", "Fish", "Eggs", "Legumes", "Greek yogurt", "Lean beef"},
	Carbs:    []string{"Whole grains", "Fruits", "Vegetables", "Oats", "Rice", "Pasta"},
	Fats:     []string{"Nuts", "Olive oil", "Avocado", "Fish", "Seeds"},
	Tips: []string{
		"Balance your macronutrients",
		"Eat a variety of foods",
		"Stay hydrated",
		"Practice portion control",
	},
}

// FoodsForGoal returns the food lists for a goal; unknown goals get the maintenance lists.
func FoodsForGoal(goal string) FoodRecommendations {
	switch goal {
	case "weight_loss", GoalLoseWeight:
		return weightLossFoods
	case "muscle_gain", GoalGainMuscle:
		return muscleGainFoods
	default:
		return maintenanceFoods
	}
}
