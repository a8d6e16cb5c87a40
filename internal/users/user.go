package users

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
)

const (
	DefaultActivityLevel = "moderate"
	DefaultGoal          = "maintain"
)

var (
	Genders        = []string{"male", "female", "other"}
	ActivityLevels = []string{"sedentary", "light", "moderate", "active", "very_active"}
	Goals          = []string{"lose_weight", "maintain", "gain_muscle"}
)

type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Age           int       `json:"age"`
	Gender        string    `json:"gender"`
	Height        float64   `json:"height"`
	Weight        float64   `json:"weight"`
	ActivityLevel string    `json:"activity_level"`
	Goal          string    `json:"goal"`
	Bio           *string   `json:"bio"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Summary is the short user form returned next to access tokens.
type Summary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Summary() Summary {
	return Summary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

type Registration struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Password      string  `json:"password"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	Height        float64 `json:"height"`
	Weight        float64 `json:"weight"`
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"`
	Bio           *string `json:"bio"`
}

// Normalize trims the input, lower-cases the email and fills in the default
// activity level and goal.
func (reg *Registration) Normalize() {
	reg.Name = strings.TrimSpace(reg.Name)
	reg.Email = NormalizeEmail(reg.Email)
	if reg.ActivityLevel == "" {
		reg.ActivityLevel = DefaultActivityLevel
	}
	if reg.Goal == "" {
		reg.Goal = DefaultGoal
	}
}

func (reg *Registration) Validate() error {
	if reg.Name == "" {
		return errors.New("name is required")
	}
	if _, err := mail.ParseAddress(reg.Email); err != nil {
		return errors.New("invalid email")
	}
	if reg.Password == "" {
		return errors.New("password is required")
	}
	if reg.Age < 0 || reg.Height < 0 || reg.Weight < 0 {
		return errors.New("age, height and weight cannot be negative")
	}
	if err := checkOneOf("gender", reg.Gender, Genders); err != nil {
		return err
	}
	if err := checkOneOf("activity_level", reg.ActivityLevel, ActivityLevels); err != nil {
		return err
	}
	return checkOneOf("goal", reg.Goal, Goals)
}

// ProfileUpdate carries only the fields a client sent; nil means untouched.
type ProfileUpdate struct {
	Name          *string  `json:"name"`
	Age           *int     `json:"age"`
	Gender        *string  `json:"gender"`
	Height        *float64 `json:"height"`
	Weight        *float64 `json:"weight"`
	ActivityLevel *string  `json:"activity_level"`
	Goal          *string  `json:"goal"`
	Bio           *string  `json:"bio"`
}

func (pu ProfileUpdate) IsEmpty() bool {
	return pu.Name == nil &&
		pu.Age == nil &&
		pu.Gender == nil &&
		pu.Height == nil &&
		pu.Weight == nil &&
		pu.ActivityLevel == nil &&
		pu.Goal == nil &&
		pu.Bio == nil
}

func (pu ProfileUpdate) Validate() error {
	if pu.Name != nil && strings.TrimSpace(*pu.Name) == "" {
		return errors.New("name cannot be empty")
	}
	if pu.Age != nil && *pu.Age < 0 {
		return errors.New("age cannot be negative")
	}
	if pu.Height != nil && *pu.Height < 0 {
		return errors.New("height cannot be negative")
	}
	if pu.Weight != nil && *pu.Weight < 0 {
		return errors.New("weight cannot be negative")
	}
	if pu.Gender != nil {
		if err := checkOneOf("gender", *pu.Gender, Genders); err != nil {
			return err
		}
	}
	if pu.ActivityLevel != nil {
		if err := checkOneOf("activity_level", *pu.ActivityLevel, ActivityLevels); err != nil {
			return err
		}
	}
	if pu.Goal != nil {
		return checkOneOf("goal", *pu.Goal, Goals)
	}
	return nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func checkOneOf(field, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of: %s", field, strings.Join(allowed, ", "))
}
