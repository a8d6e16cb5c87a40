package plans

import (
	"github.com/2beens/fittrack/internal/meals"
	"github.com/2beens/fittrack/internal/metabolic"
)

type DietMeal struct {
	Type           string       `json:"type"`
	Name           string       `json:"name"`
	TargetCalories int          `json:"target_calories"`
	Foods          []meals.Food `json:"foods"`
	Preparation    string       `json:"preparation"`
}

// DietMeals returns the four fixed meals for a goal, each aimed at its share of the breakdown.
func DietMeals(goal string, breakdown metabolic.MealBreakdown) []DietMeal {
	switch goal {
	case metabolic.GoalLoseWeight:
		return weightLossMeals(breakdown)
	case metabolic.GoalGainMuscle:
		return muscleGainMeals(breakdown)
	default:
		return maintenanceMeals(breakdown)
	}
}

func food(name string, quantity float64, unit string, calories, protein, carbs, fats float64) meals.Food {
	return meals.Food{
		Name:     name,
		Quantity: quantity,
		Unit:     unit,
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fats:     fats,
	}
}

func weightLossMeals(b metabolic.MealBreakdown) []DietMeal {
	return []DietMeal{
		{
			Type:           "breakfast",
			Name:           "Lean Protein Breakfast",
			TargetCalories: b.Breakfast,
			Foods: []meals.Food{
				food("Egg Whites", 150, "g", 78, 16.5, 1.2, 0.3),
				food("Oatmeal", 50, "g", 195, 8.5, 33, 3.5),
				food("Blueberries", 80, "g", 46, 0.6, 11, 0.2),
			},
			Preparation: "Scramble egg whites with herbs. Cook oatmeal with water. Top with fresh blueberries.",
		},
		{
			Type:           "lunch",
			Name:           "Grilled Chicken Salad",
			TargetCalories: b.Lunch,
			Foods: []meals.Food{
				food("Chicken Breast", 120, "g", 198, 37, 0, 4.3),
				food("Mixed Greens", 100, "g", 25, 2, 5, 0.3),
				food("Cherry Tomatoes", 100, "g", 18, 0.9, 4, 0.2),
				food("Olive Oil", 10, "ml", 88, 0, 0, 10),
			},
			Preparation: "Grill chicken with herbs. Toss greens and tomatoes with olive oil and lemon.",
		},
		{
			Type:           "dinner",
			Name:           "Baked Fish with Vegetables",
			TargetCalories: b.Dinner,
			Foods: []meals.Food{
				food("Tilapia", 150, "g", 129, 26, 0, 2.7),
				food("Broccoli", 150, "g", 51, 4.2, 10.5, 0.6),
				food("Cauliflower", 100, "g", 25, 1.9, 5, 0.3),
			},
			Preparation: "Bake fish with lemon. Steam broccoli and cauliflower with garlic.",
		},
		{
			Type:           "snacks",
			Name:           "Light Snacks",
			TargetCalories: b.Snacks,
			Foods: []meals.Food{
				food("Greek Yogurt", 100, "g", 59, 10, 3.6, 0.4),
				food("Cucumber", 100, "g", 16, 0.7, 3.6, 0.1),
			},
			Preparation: "Enjoy plain Greek yogurt with cucumber slices.",
		},
	}
}

func muscleGainMeals(b metabolic.MealBreakdown) []DietMeal {
	return []DietMeal{
		{
			Type:           "breakfast",
			Name:           "Power Breakfast",
			TargetCalories: b.Breakfast,
			Foods: []meals.Food{
				food("Whole Eggs", 150, "g", 233, 19.5, 1.7, 16.5),
				food("Oatmeal", 80, "g", 312, 13.5, 53, 5.5),
				food("Banana", 120, "g", 107, 1.3, 27, 0.4),
			},
			Preparation: "Scramble eggs with vegetables. Cook oatmeal with milk. Slice banana on top.",
		},
		{
			Type:           "lunch",
			Name:           "Muscle Builder Plate",
			TargetCalories: b.Lunch,
			Foods: []meals.Food{
				food("Beef Steak", 150, "g", 271, 38, 0, 12),
				food("Brown Rice", 200, "g", 246, 5.2, 51, 2),
				food("Sweet Potato", 150, "g", 129, 2.4, 30, 0.2),
			},
			Preparation: "Grill steak to desired doneness. Cook brown rice. Roast sweet potato wedges.",
		},
		{
			Type:           "dinner",
			Name:           "High-Protein Dinner",
			TargetCalories: b.Dinner,
			Foods: []meals.Food{
				food("Salmon", 180, "g", 374, 36, 0, 23.4),
				food("Quinoa", 150, "g", 180, 6.6, 32, 2.9),
				food("Asparagus", 100, "g", 20, 2.2, 3.9, 0.1),
			},
			Preparation: "Bake salmon with herbs. Cook quinoa. Roast asparagus with olive oil.",
		},
		{
			Type:           "snacks",
			Name:           "Protein Snacks",
			TargetCalories: b.Snacks,
			Foods: []meals.Food{
				food("Almonds", 40, "g", 232, 8.4, 8.8, 20),
				food("Protein Shake", 30, "g", 120, 24, 3, 1.5),
			},
			Preparation: "Mix protein powder with water or milk. Enjoy with raw almonds.",
		},
	}
}

func maintenanceMeals(b metabolic.MealBreakdown) []DietMeal {
	return []DietMeal{
		{
			Type:           "breakfast",
			Name:           "Balanced Breakfast",
			TargetCalories: b.Breakfast,
			Foods: []meals.Food{
				food("Oatmeal", 80, "g", 312, 13.5, 53, 5.5),
				food("Greek Yogurt", 150, "g", 88, 15, 5.4, 0.6),
				food("Berries", 100, "g", 57, 0.7, 14, 0.3),
			},
			Preparation: "Cook oatmeal. Top with Greek yogurt and fresh berries.",
		},
		{
			Type:           "lunch",
			Name:           "Mediterranean Lunch",
			TargetCalories: b.Lunch,
			Foods: []meals.Food{
				food("Chicken Breast", 150, "g", 248, 46.5, 0, 5.4),
				food("Brown Rice", 150, "g", 185, 3.9, 38.4, 1.5),
				food("Mixed Vegetables", 150, "g", 45, 2.5, 9, 0.5),
			},
			Preparation: "Grill chicken. Serve over brown rice with steamed mixed vegetables.",
		},
		{
			Type:           "dinner",
			Name:           "Balanced Dinner",
			TargetCalories: b.Dinner,
			Foods: []meals.Food{
				food("Salmon", 120, "g", 250, 24, 0, 15.6),
				food("Quinoa", 100, "g", 120, 4.4, 21.3, 1.9),
				food("Spinach", 100, "g", 23, 2.9, 3.6, 0.4),
			},
			Preparation: "Bake salmon with lemon. Cook quinoa. Sauté spinach with garlic.",
		},
		{
			Type:           "snacks",
			Name:           "Healthy Snacks",
			TargetCalories: b.Snacks,
			Foods: []meals.Food{
				food("Apple", 150, "g", 78, 0.5, 21, 0.3),
				food("Peanut Butter", 20, "g", 118, 5, 4, 10),
			},
			Preparation: "Slice apple and enjoy with peanut butter.",
		},
	}
}

var baseRecommendations = []string{
	"Drink at least 8 glasses of water daily",
	"Include vegetables in every meal",
	"Choose whole grains over refined grains",
}

// Recommendations returns the general diet tips followed by the goal specific ones.
func Recommendations(goal string) []string {
	var extra []string
	switch goal {
	case metabolic.GoalLoseWeight:
		extra = []string{
			"Focus on high-protein, low-calorie foods",
			"Increase fiber intake to stay full longer",
			"Limit processed foods and added sugars",
		}
	case metabolic.GoalGainMuscle:
		extra = []string{
			"Consume protein within 30 minutes after workout",
			"Eat frequent smaller meals throughout the day",
			"Include healthy fats like nuts and avocados",
		}
	default:
		extra = []string{
			"Maintain balanced portions",
			"Include variety in your diet",
			"Listen to your hunger cues",
		}
	}

	recs := make([]string, 0, len(baseRecommendations)+len(extra))
	recs = append(recs, baseRecommendations...)
	return append(recs, extra...)
}

// SumMeals adds up the foods of every meal in the plan.
func SumMeals(dietMeals []DietMeal) meals.Totals {
	var total meals.Totals
	for _, m := range dietMeals {
		total = total.Add(meals.SumFoods(m.Foods))
	}
	return total
}
