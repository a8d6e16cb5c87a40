package plans

import "github.com/2beens/fittrack/internal/metabolic"

type Exercise struct {
	Name      string `json:"name"`
	Sets      int    `json:"sets,omitempty"`
	Reps      string `json:"reps,omitempty"`
	Rest      int    `json:"rest,omitempty"`
	Duration  int    `json:"duration,omitempty"`
	Intensity string `json:"intensity,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type Day struct {
	Day       int        `json:"day"`
	Focus     string     `json:"focus"`
	Type      string     `json:"type"`
	Duration  int        `json:"duration"`
	Exercises []Exercise `json:"exercises"`
}

type NutritionGuidelines struct {
	Protein string `json:"protein"`
	Carbs   string `json:"carbs"`
	Fats    string `json:"fats"`
	Water   string `json:"water"`
}

type WorkoutPlan struct {
	PlanName            string               `json:"plan_name"`
	Goal                string               `json:"goal"`
	DurationWeeks       int                  `json:"duration_weeks"`
	WeeklySchedule      []Day                `json:"weekly_schedule"`
	Tips                []string             `json:"tips"`
	NutritionGuidelines *NutritionGuidelines `json:"nutrition_guidelines,omitempty"`
}

// Workout builds the fixed plan for a goal, keeping at most the first days of its schedule.
func Workout(goal string, days int) WorkoutPlan {
	var plan WorkoutPlan
	switch goal {
	case metabolic.GoalLoseWeight:
		plan = weightLossPlan()
	case metabolic.GoalGainMuscle:
		plan = muscleGainPlan()
	case metabolic.GoalImproveEndurance:
		plan = endurancePlan()
	default:
		plan = maintenancePlan()
	}

	switch {
	case days <= 0:
		plan.WeeklySchedule = []Day{}
	case days < len(plan.WeeklySchedule):
		plan.WeeklySchedule = plan.WeeklySchedule[:days]
	}
	return plan
}

func weightLossPlan() WorkoutPlan {
	return WorkoutPlan{
		PlanName:      "Weight Loss Accelerator",
		Goal:          "Burn fat and improve cardiovascular fitness",
		DurationWeeks: 8,
		WeeklySchedule: []Day{
			{Day: 1, Focus: "Full Body HIIT", Type: "hiit", Duration: 30, Exercises: hiitWorkout()},
			{Day: 2, Focus: "Upper Body Strength + Cardio", Type: "strength", Duration: 45, Exercises: upperBodyWorkout()},
			{Day: 3, Focus: "Cardio Intervals", Type: "cardio", Duration: 35, Exercises: cardioWorkout(3)},
			{Day: 4, Focus: "Lower Body + Core", Type: "strength", Duration: 45, Exercises: lowerBodyWorkout()},
			{Day: 5, Focus: "Full Body Circuit", Type: "strength", Duration: 40, Exercises: fullBodyWorkout()},
			{Day: 6, Focus: "Active Recovery & Flexibility", Type: "flexibility", Duration: 30, Exercises: flexibilityWorkout()},
		},
		Tips: []string{
			"Focus on compound movements for maximum calorie burn",
			"Keep rest periods short (30-60 seconds) between sets",
			"Combine strength training with cardio for optimal results",
			"Stay in a moderate caloric deficit (300-500 calories)",
			"Aim for 10,000+ steps daily outside of workouts",
		},
		NutritionGuidelines: &NutritionGuidelines{
			Protein: "1.6-2.0g per kg body weight",
			Carbs:   "Moderate - focus on complex carbs",
			Fats:    "0.8-1.0g per kg body weight",
			Water:   "3+ liters per day",
		},
	}
}

func muscleGainPlan() WorkoutPlan {
	return WorkoutPlan{
		PlanName:      "Muscle Building Program",
		Goal:          "Build muscle mass and increase strength",
		DurationWeeks: 12,
		WeeklySchedule: []Day{
			{Day: 1, Focus: "Chest & Triceps", Type: "strength", Duration: 60, Exercises: chestTricepsWorkout()},
			{Day: 2, Focus: "Back & Biceps", Type: "strength", Duration: 60, Exercises: backBicepsWorkout()},
			{Day: 3, Focus: "Rest or Light Cardio", Type: "rest", Duration: 20, Exercises: []Exercise{}},
			{Day: 4, Focus: "Legs & Glutes", Type: "strength", Duration: 70, Exercises: legsWorkout()},
			{Day: 5, Focus: "Shoulders & Core", Type: "strength", Duration: 55, Exercises: shouldersCoreWorkout()},
			{Day: 6, Focus: "Full Body Power", Type: "strength", Duration: 60, Exercises: fullBodyWorkout()},
		},
		Tips: []string{
			"Focus on progressive overload - increase weight gradually",
			"Aim for 8-12 reps per set for hypertrophy",
			"Rest 2-3 minutes between heavy compound sets",
			"Get 7-9 hours of quality sleep for recovery",
			"Eat in a caloric surplus (300-500 calories above maintenance)",
		},
		NutritionGuidelines: &NutritionGuidelines{
			Protein: "2.0-2.2g per kg body weight",
			Carbs:   "High - 4-6g per kg body weight",
			Fats:    "1.0-1.2g per kg body weight",
			Water:   "3-4 liters per day",
		},
	}
}

func endurancePlan() WorkoutPlan {
	return WorkoutPlan{
		PlanName:      "Endurance Builder",
		Goal:          "Improve cardiovascular endurance and stamina",
		DurationWeeks: 10,
		WeeklySchedule: []Day{
			{Day: 1, Focus: "Long Steady Cardio", Type: "cardio", Duration: 45, Exercises: []Exercise{
				{Name: "Running (Outdoor)", Duration: 45, Intensity: "moderate"},
			}},
			{Day: 2, Focus: "Strength Endurance Circuit", Type: "strength", Duration: 40, Exercises: enduranceCircuit()},
			{Day: 3, Focus: "Interval Training", Type: "hiit", Duration: 30, Exercises: hiitWorkout()},
			{Day: 4, Focus: "Cross Training", Type: "cardio", Duration: 40, Exercises: []Exercise{
				{Name: "Cycling (Outdoor)", Duration: 40, Intensity: "moderate"},
			}},
			{Day: 5, Focus: "Tempo Run", Type: "cardio", Duration: 35, Exercises: []Exercise{
				{Name: "Treadmill Running", Duration: 35, Intensity: "high"},
			}},
		},
		Tips: []string{
			"Gradually increase distance/duration each week",
			"Mix different types of cardio to prevent overuse injuries",
			"Include recovery days for adaptation",
			"Focus on proper breathing techniques",
		},
	}
}

func maintenancePlan() WorkoutPlan {
	return WorkoutPlan{
		PlanName:      "Balanced Fitness Plan",
		Goal:          "Maintain overall fitness and health",
		DurationWeeks: 8,
		WeeklySchedule: []Day{
			{Day: 1, Focus: "Upper Body Strength", Type: "strength", Duration: 45, Exercises: upperBodyWorkout()},
			{Day: 2, Focus: "Cardio Session", Type: "cardio", Duration: 30, Exercises: cardioWorkout(2)},
			{Day: 3, Focus: "Lower Body Strength", Type: "strength", Duration: 45, Exercises: lowerBodyWorkout()},
			{Day: 4, Focus: "Flexibility & Mobility", Type: "flexibility", Duration: 30, Exercises: flexibilityWorkout()},
			{Day: 5, Focus: "Full Body Workout", Type: "strength", Duration: 45, Exercises: fullBodyWorkout()},
		},
		Tips: []string{
			"Mix strength and cardio throughout the week",
			"Focus on maintaining current fitness levels",
			"Listen to your body and adjust intensity as needed",
			"Enjoy varied activities to stay motivated",
		},
	}
}

func chestTricepsWorkout() []Exercise {
	return []Exercise{
		{Name: "Barbell Bench Press", Sets: 4, Reps: "8-10", Rest: 120},
		{Name: "Incline Dumbbell Press", Sets: 3, Reps: "10-12", Rest: 90},
		{Name: "Cable Crossovers", Sets: 3, Reps: "12-15", Rest: 60},
		{Name: "Dips", Sets: 3, Reps: "10-12", Rest: 90},
		{Name: "Tricep Dips", Sets: 3, Reps: "10-12", Rest: 60},
		{Name: "Skull Crushers", Sets: 3, Reps: "10-12", Rest: 60},
		{Name: "Cable Tricep Pushdowns", Sets: 3, Reps: "12-15", Rest: 60},
	}
}

func backBicepsWorkout() []Exercise {
	return []Exercise{
		{Name: "Deadlifts", Sets: 4, Reps: "6-8", Rest: 180},
		{Name: "Pull-ups", Sets: 4, Reps: "8-10", Rest: 120},
		{Name: "Bent Over Barbell Rows", Sets: 4, Reps: "8-10", Rest: 90},
		{Name: "Lat Pulldowns", Sets: 3, Reps: "10-12", Rest: 60},
		{Name: "Barbell Curls", Sets: 3, Reps: "10-12", Rest: 60},
		{Name: "Hammer Curls", Sets: 3, Reps: "10-12", Rest: 60},
		{Name: "Preacher Curls", Sets: 3, Reps: "12-15", Rest: 60},
	}
}

func legsWorkout() []Exercise {
	return []Exercise{
		{Name: "Barbell Squats", Sets: 4, Reps: "8-10", Rest: 180},
		{Name: "Romanian Deadlifts", Sets: 4, Reps: "8-10", Rest: 120},
		{Name: "Leg Press", Sets: 3, Reps: "12-15", Rest: 90},
		{Name: "Bulgarian Split Squats", Sets: 3, Reps: "10-12 each", Rest: 90},
		{Name: "Leg Curls", Sets: 3, Reps: "12-15", Rest: 60},
		{Name: "Leg Extensions", Sets: 3, Reps: "12-15", Rest: 60},
		{Name: "Calf Raises", Sets: 4, Reps: "15-20", Rest: 60},
	}
}

func shouldersCoreWorkout() []Exercise {
	return []Exercise{
		{Name: "Overhead Press", Sets: 4, Reps: "8-10", Rest: 120},
		{Name: "Lateral Raises", Sets: 4, Reps: "12-15", Rest: 60},
		{Name: "Front Raises", Sets: 3, Reps: "12-15", Rest: 60},
		{Name: "Rear Delt Flyes", Sets: 3, Reps: "12-15", Rest: 60},
		{Name: "Shrugs", Sets: 3, Reps: "12-15", Rest: 60},
		{Name: "Planks", Sets: 3, Reps: "60 sec", Rest: 60},
		{Name: "Russian Twists", Sets: 3, Reps: "20 each side", Rest: 60},
		{Name: "Hanging Knee Raises", Sets: 3, Reps: "12-15", Rest: 60},
	}
}

func upperBodyWorkout() []Exercise {
	return []Exercise{
		{Name: "Barbell Bench Press", Sets: 3, Reps: "10-12", Rest: 90},
		{Name: "Pull-ups", Sets: 3, Reps: "8-10", Rest: 90},
		{Name: "Overhead Press", Sets: 3, Reps: "10-12", Rest: 90},
		{Name: "Bent Over Barbell Rows", Sets: 3, Reps: "10-12", Rest: 90},
		{Name: "Barbell Curls", Sets: 3, Reps: "10-12", Rest: 60},
		{Name: "Tricep Dips", Sets: 3, Reps: "10-12", Rest: 60},
	}
}

func lowerBodyWorkout() []Exercise {
	return []Exercise{
		{Name: "Barbell Squats", Sets: 4, Reps: "10-12", Rest: 120},
		{Name: "Romanian Deadlifts", Sets: 3, Reps: "10-12", Rest: 90},
		{Name: "Walking Lunges", Sets: 3, Reps: "12 each leg", Rest: 90},
		{Name: "Leg Press", Sets: 3, Reps: "12-15", Rest: 90},
		{Name: "Leg Curls", Sets: 3, Reps: "12-15", Rest: 60},
		{Name: "Calf Raises", Sets: 4, Reps: "15-20", Rest: 60},
		{Name: "Planks", Sets: 3, Reps: "60 sec", Rest: 60},
	}
}

func fullBodyWorkout() []Exercise {
	return []Exercise{
		{Name: "Deadlifts", Sets: 3, Reps: "8-10", Rest: 120},
		{Name: "Barbell Bench Press", Sets: 3, Reps: "10-12", Rest: 90},
		{Name: "Barbell Squats", Sets: 3, Reps: "10-12", Rest: 90},
		{Name: "Pull-ups", Sets: 3, Reps: "8-10", Rest: 90},
		{Name: "Overhead Press", Sets: 3, Reps: "10-12", Rest: 90},
		{Name: "Romanian Deadlifts", Sets: 3, Reps: "10-12", Rest: 90},
		{Name: "Planks", Sets: 3, Reps: "60 sec", Rest: 60},
	}
}

const hiitInterval = "30 sec work, 30 sec rest"

func hiitWorkout() []Exercise {
	return []Exercise{
		{Name: "Burpees", Sets: 4, Reps: hiitInterval},
		{Name: "Jump Squats", Sets: 4, Reps: hiitInterval},
		{Name: "Mountain Climbers", Sets: 4, Reps: hiitInterval},
		{Name: "High Knees", Sets: 4, Reps: hiitInterval},
		{Name: "Box Jumps", Sets: 4, Reps: hiitInterval},
		{Name: "Battle Ropes", Sets: 4, Reps: hiitInterval},
	}
}

var cardioOptions = []Exercise{
	{Name: "Treadmill Running", Duration: 30, Intensity: "moderate", Notes: "Maintain 70-75% max heart rate"},
	{Name: "Cycling (Outdoor)", Duration: 35, Intensity: "moderate", Notes: "Steady pace"},
	{Name: "Rowing Machine", Duration: 25, Intensity: "moderate", Notes: "Focus on form"},
	{Name: "Swimming", Duration: 30, Intensity: "moderate", Notes: "Mix different strokes"},
}

// cardioWorkout picks the session by day number so the same plan is always returned.
func cardioWorkout(day int) []Exercise {
	return []Exercise{cardioOptions[(day-1)%len(cardioOptions)]}
}

func flexibilityWorkout() []Exercise {
	return []Exercise{
		{Name: "Dynamic Stretching", Duration: 10, Notes: "Leg swings, arm circles, hip rotations"},
		{Name: "Yoga Flow", Duration: 15, Notes: "Focus on breath and form"},
		{Name: "Static Stretching", Duration: 5, Notes: "Hold each stretch 30 seconds"},
	}
}

func enduranceCircuit() []Exercise {
	return []Exercise{
		{Name: "Push-ups", Sets: 3, Reps: "15-20", Rest: 30},
		{Name: "Squats", Sets: 3, Reps: "20-25", Rest: 30},
		{Name: "Planks", Sets: 3, Reps: "45 sec", Rest: 30},
		{Name: "Lunges", Sets: 3, Reps: "15 each leg", Rest: 30},
		{Name: "Mountain Climbers", Sets: 3, Reps: "30 sec", Rest: 30},
	}
}
