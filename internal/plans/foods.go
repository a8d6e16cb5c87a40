package plans

// FoodInfo holds nutrients per 100 g.
type FoodInfo struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

var foodDatabase = []FoodInfo{
	{Name: "Chicken Breast", Calories: 165, Protein: 31, Carbs: 0, Fats: 3.6},
	{Name: "Brown Rice", Calories: 123, Protein: 2.6, Carbs: 25.6, Fats: 1.0},
	{Name: "Broccoli", Calories: 34, Protein: 2.8, Carbs: 7, Fats: 0.4},
	{Name: "Salmon", Calories: 208, Protein: 20, Carbs: 0, Fats: 13},
	{Name: "Sweet Potato", Calories: 86, Protein: 1.6, Carbs: 20, Fats: 0.1},
	{Name: "Eggs", Calories: 155, Protein: 13, Carbs: 1.1, Fats: 11},
	{Name: "Oatmeal", Calories: 389, Protein: 16.9, Carbs: 66.3, Fats: 6.9},
	{Name: "Banana", Calories: 89, Protein: 1.1, Carbs: 23, Fats: 0.3},
	{Name: "Almonds", Calories: 579, Protein: 21, Carbs: 22, Fats: 50},
	{Name: "Greek Yogurt", Calories: 59, Protein: 10, Carbs: 3.6, Fats: 0.4},
	{Name: "Spinach", Calories: 23, Protein: 2.9, Carbs: 3.6, Fats: 0.4},
	{Name: "Avocado", Calories: 160, Protein: 2, Carbs: 8.5, Fats: 14.7},
	{Name: "Quinoa", Calories: 120, Protein: 4.4, Carbs: 21.3, Fats: 1.9},
	{Name: "Tuna", Calories: 132, Protein: 28, Carbs: 0, Fats: 1.3},
	{Name: "Whole Wheat Bread", Calories: 247, Protein: 13, Carbs: 41, Fats: 3.4},
	{Name: "Apple", Calories: 52, Protein: 0.3, Carbs: 14, Fats: 0.2},
	{Name: "Peanut Butter", Calories: 588, Protein: 25, Carbs: 20, Fats: 50},
	{Name: "Cottage Cheese", Calories: 98, Protein: 11, Carbs: 3.4, Fats: 4.3},
	{Name: "Turkey Breast", Calories: 135, Protein: 30, Carbs: 0, Fats: 0.7},
	{Name: "Lentils", Calories: 116, Protein: 9, Carbs: 20, Fats: 0.4},
}

// FoodDatabase returns a copy of the built-in food table.
func FoodDatabase() []FoodInfo {
	foods := make([]FoodInfo, len(foodDatabase))
	copy(foods, foodDatabase)
	return foods
}
