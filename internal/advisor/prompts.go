package advisor

import (
	"fmt"

	"github.com/2beens/fittrack/internal/metabolic"
)

const (
	dietSystemPrompt    = "You are a professional nutritionist. Create detailed meal plans with realistic food portions. Return ONLY valid JSON, no markdown formatting."
	workoutSystemPrompt = "You are a fitness trainer. Create detailed workout plans. Return ONLY valid JSON."
	insightSystemPrompt = "You are a nutrition expert. Return only JSON array."
	trainerSystemPrompt = "You are a professional fitness trainer and nutritionist. Give concise, helpful advice in 2-3 sentences."

	dietMaxTokens     = 2000
	workoutMaxTokens  = 2000
	insightsMaxTokens = 200
	trainerMaxTokens  = 300

	fallbackWorkoutDays = 4
)

func dietPrompt(data HealthData, targets metabolic.Targets) string {
	return fmt.Sprintf(`Create a complete daily meal plan for a client with these details:

Profile: Age %d, Gender %s, Height %gcm, Weight %gkg
Activity Level: %s, Goal: %s

Targets:
- Daily Calories: %d
- Protein: %dg, Carbs: %dg, Fats: %dg

Meal Distribution:
- Breakfast: %d cal
- Lunch: %d cal
- Dinner: %d cal
- Snacks: %d cal

For each meal, provide:
1. Creative meal name
2. 3-5 specific foods with exact gram quantities
3. For each food: name, quantity, calories, protein, carbs, fats
4. Brief preparation note

Also provide 5 personalized nutrition tips.

Return ONLY valid JSON (no markdown, no extra text):
{
  "meals": [
    {
      "type": "breakfast",
      "name": "Meal name",
      "target_calories": %d,
      "foods": [
        {"name": "Oatmeal", "quantity": 80, "unit": "g", "calories": 312, "protein": 13.5, "carbs": 53, "fats": 5.5}
      ],
      "preparation": "How to prepare"
    }
  ],
  "tips": ["Tip 1", "Tip 2", "Tip 3", "Tip 4", "Tip 5"]
}`,
		data.Age, data.Gender, data.Height, data.Weight,
		data.ActivityLevel, data.Goal,
		targets.DailyCalories,
		targets.Macros.Protein, targets.Macros.Carbs, targets.Macros.Fats,
		targets.Meals.Breakfast, targets.Meals.Lunch, targets.Meals.Dinner, targets.Meals.Snacks,
		targets.Meals.Breakfast,
	)
}

func workoutPrompt(data HealthData) string {
	return fmt.Sprintf(`Create a 4-day workout plan for someone:
- Age: %d, Gender: %s
- Goal: %s
- Activity Level: %s

Return ONLY valid JSON (no markdown):
{
  "plan_name": "Descriptive plan name",
  "goal": "Goal description",
  "duration_weeks": 10,
  "weekly_schedule": [
    {
      "day": 1,
      "focus": "Upper Body Push",
      "type": "strength",
      "duration": 60,
      "exercises": [
        {"name": "Bench Press", "sets": 4, "reps": "8-10", "rest": 120},
        {"name": "Overhead Press", "sets": 3, "reps": "10-12", "rest": 90}
      ]
    }
  ],
  "tips": ["Tip 1", "Tip 2", "Tip 3", "Tip 4", "Tip 5"],
  "nutrition_guidelines": {
    "protein": "2.0g per kg",
    "carbs": "4-5g per kg",
    "fats": "1.0g per kg",
    "water": "3-4 liters"
  }
}`, data.Age, data.Gender, data.Goal, data.ActivityLevel)
}

func insightsPrompt(bmr, tdee int, data HealthData) string {
	return fmt.Sprintf(`Provide 3 brief nutrition insights for someone with:
- BMR: %d calories
- TDEE: %d calories
- Goal: %s
- Activity: %s

Return ONLY JSON array: ["Insight 1", "Insight 2", "Insight 3"]`, bmr, tdee, data.Goal, data.ActivityLevel)
}

func fallbackInsights(bmr, tdee int, goal string) []string {
	return []string{
		fmt.Sprintf("Your body burns %d calories at rest daily", bmr),
		fmt.Sprintf("With your activity level, you need %d calories to maintain weight", tdee),
		fmt.Sprintf("Adjust your intake based on your goal of %s", goal),
	}
}

func trainerPrompt(question string) string {
	return "As a fitness and nutrition expert, answer this question briefly (2-3 sentences): " + question
}

const trainerUnavailableAnswer = "I'm currently unavailable. Please try again later or check your AI service configuration."
