package advisor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/ai"
	"github.com/2beens/fittrack/internal/meals"
	"github.com/2beens/fittrack/internal/metabolic"
	"github.com/2beens/fittrack/internal/plans"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=advisor_mocks_test.go -package=advisor_test

type completer interface {
	Complete(ctx context.Context, system, prompt string, maxTokens int) ai.Completion
	CompleteJSON(ctx context.Context, system, prompt string, maxTokens int, v any) ai.Completion
}

const (
	FeatureDiet     = "diet"
	FeatureWorkout  = "workout"
	FeatureInsights = "insights"
	FeatureTrainer  = "trainer"

	cacheSizeBytes = 16 * 1024 * 1024
)

var errEmptyPlan = errors.New("ai answer has no meals")

// HealthData is the body every AI endpoint that needs a profile accepts.
type HealthData struct {
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	Height        float64 `json:"height"`
	Weight        float64 `json:"weight"`
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"`
}

func (d HealthData) Validate() error {
	if d.Age <= 0 {
		return errors.New("age must be positive")
	}
	if d.Height <= 0 {
		return errors.New("height must be positive")
	}
	if d.Weight <= 0 {
		return errors.New("weight must be positive")
	}
	if strings.TrimSpace(d.Gender) == "" {
		return errors.New("gender is required")
	}
	return nil
}

func (d HealthData) profile() metabolic.Profile {
	return metabolic.Profile{
		Age:           d.Age,
		Gender:        d.Gender,
		Height:        d.Height,
		Weight:        d.Weight,
		ActivityLevel: d.ActivityLevel,
	}
}

type DietPlan struct {
	BMR             float64          `json:"bmr"`
	TDEE            float64          `json:"tdee"`
	DailyCalories   int              `json:"daily_calories"`
	TargetProtein   int              `json:"target_protein"`
	TargetCarbs     int              `json:"target_carbs"`
	TargetFats      int              `json:"target_fats"`
	ActualTotals    meals.Totals     `json:"actual_totals"`
	Meals           []plans.DietMeal `json:"meals"`
	Recommendations []string         `json:"recommendations"`
}

type RecommendedCalories struct {
	LoseWeight int `json:"lose_weight"`
	Maintain   int `json:"maintain"`
	GainMuscle int `json:"gain_muscle"`
}

type CaloriePrediction struct {
	BMR                 float64             `json:"bmr"`
	TDEE                float64             `json:"tdee"`
	RecommendedCalories RecommendedCalories `json:"recommended_calories"`
	Insights            []string            `json:"insights"`
}

type TrainerAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type aiDietAnswer struct {
	Meals []plans.DietMeal `json:"meals"`
	Tips  []string         `json:"tips"`
}

// Service builds every AI backed answer. Answers are always returned; when no provider
// delivers a usable answer, the static tables fill in.
type Service struct {
	ai             completer
	cache          *freecache.Cache
	cacheTTL       time.Duration
	metricsManager *metrics.Manager
}

func NewService(completer completer, cacheTTL time.Duration, metricsManager *metrics.Manager) *Service {
	return &Service{
		ai:             completer,
		cache:          freecache.NewCache(cacheSizeBytes),
		cacheTTL:       cacheTTL,
		metricsManager: metricsManager,
	}
}

func (s *Service) DietRecommendations(ctx context.Context, data HealthData) (plan DietPlan) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "advisor.diet")
	defer span.End()

	targets := metabolic.Calculate(data.profile(), data.Goal)
	plan = DietPlan{
		BMR:           pkg.Round(targets.BMR, 1),
		TDEE:          pkg.Round(targets.TDEE, 1),
		DailyCalories: targets.DailyCalories,
		TargetProtein: targets.Macros.Protein,
		TargetCarbs:   targets.Macros.Carbs,
		TargetFats:    targets.Macros.Fats,
	}

	var answer aiDietAnswer
	ok := s.completeJSON(ctx, FeatureDiet, dietSystemPrompt, dietPrompt(data, targets), dietMaxTokens, &answer, func() error {
		if len(answer.Meals) == 0 {
			return errEmptyPlan
		}
		return nil
	})
	if ok {
		plan.Meals = answer.Meals
		plan.Recommendations = answer.Tips
		if plan.Recommendations == nil {
			plan.Recommendations = []string{}
		}
	} else {
		plan.Meals = plans.DietMeals(data.Goal, targets.Meals)
		plan.Recommendations = plans.Recommendations(data.Goal)
	}

	plan.ActualTotals = plans.SumMeals(plan.Meals).Round(1)
	return plan
}

// WorkoutPlan returns the AI plan as the provider shaped it, or the static plan.
func (s *Service) WorkoutPlan(ctx context.Context, data HealthData) any {
	ctx, span := tracing.GlobalTracer.Start(ctx, "advisor.workout")
	defer span.End()

	var answer map[string]any
	if s.completeJSON(ctx, FeatureWorkout, workoutSystemPrompt, workoutPrompt(data), workoutMaxTokens, &answer, nil) {
		return answer
	}
	return plans.Workout(data.Goal, fallbackWorkoutDays)
}

func (s *Service) PredictCalories(ctx context.Context, data HealthData) CaloriePrediction {
	ctx, span := tracing.GlobalTracer.Start(ctx, "advisor.predict")
	defer span.End()

	bmr := metabolic.BMR(data.Age, data.Gender, data.Height, data.Weight)
	tdee := metabolic.TDEE(bmr, data.ActivityLevel)
	bmrRounded, tdeeRounded := int(math.Round(bmr)), int(math.Round(tdee))

	var insights []string
	ok := s.completeJSON(ctx, FeatureInsights, insightSystemPrompt, insightsPrompt(bmrRounded, tdeeRounded, data), insightsMaxTokens, &insights, func() error {
		if len(insights) == 0 {
			return errors.New("no insights")
		}
		return nil
	})
	if !ok {
		insights = fallbackInsights(bmrRounded, tdeeRounded, data.Goal)
	}

	return CaloriePrediction{
		BMR:  pkg.Round(bmr, 1),
		TDEE: pkg.Round(tdee, 1),
		RecommendedCalories: RecommendedCalories{
			LoseWeight: metabolic.CalorieTarget(tdee, metabolic.GoalLoseWeight),
			Maintain:   metabolic.CalorieTarget(tdee, metabolic.GoalMaintain),
			GainMuscle: metabolic.CalorieTarget(tdee, metabolic.GoalGainMuscle),
		},
		Insights: insights,
	}
}

func (s *Service) AskTrainer(ctx context.Context, question string) TrainerAnswer {
	ctx, span := tracing.GlobalTracer.Start(ctx, "advisor.trainer")
	defer span.End()

	prompt := trainerPrompt(question)
	key := cacheKey(FeatureTrainer, trainerSystemPrompt, prompt)
	if cached, err := s.cache.Get(key); err == nil {
		return TrainerAnswer{Question: question, Answer: string(cached)}
	}

	completion := s.ai.Complete(ctx, trainerSystemPrompt, prompt, trainerMaxTokens)
	if !completion.OK() {
		s.fallback(FeatureTrainer, completion.Unavailable)
		return TrainerAnswer{Question: question, Answer: trainerUnavailableAnswer}
	}

	answer := strings.TrimSpace(completion.Text)
	s.setCache(key, []byte(answer))
	return TrainerAnswer{Question: question, Answer: answer}
}

// completeJSON fills v from the cache or the provider chain. validate runs on the decoded value;
// a failed validation is handled like an unavailable provider.
func (s *Service) completeJSON(
	ctx context.Context,
	feature, system, prompt string,
	maxTokens int,
	v any,
	validate func() error,
) bool {
	key := cacheKey(feature, system, prompt)
	if cached, err := s.cache.Get(key); err == nil {
		if err := json.Unmarshal(cached, v); err == nil {
			log.Tracef("ai answer for %s served from cache", feature)
			return true
		}
	}

	completion := s.ai.CompleteJSON(ctx, system, prompt, maxTokens, v)
	if !completion.OK() {
		s.fallback(feature, completion.Unavailable)
		return false
	}
	if validate != nil {
		if err := validate(); err != nil {
			s.fallback(feature, fmt.Errorf("%s: %w", completion.Provider, err))
			return false
		}
	}

	if answerBytes, err := json.Marshal(v); err == nil {
		s.setCache(key, answerBytes)
	}
	return true
}

func (s *Service) fallback(feature string, reason error) {
	log.Warnf("ai %s unavailable, using static answer: %s", feature, reason)
	if s.metricsManager != nil {
		s.metricsManager.CounterAIFallbacks.WithLabelValues(feature).Inc()
	}
}

func (s *Service) setCache(key, value []byte) {
	if s.cacheTTL <= 0 {
		return
	}
	if err := s.cache.Set(key, value, int(s.cacheTTL.Seconds())); err != nil {
		log.Errorf("failed to cache ai answer: %s", err)
	}
}

func cacheKey(feature, system, prompt string) []byte {
	sum := sha256.Sum256([]byte(feature + "\x00" + system + "\x00" + prompt))
	return []byte(hex.EncodeToString(sum[:]))
}
