package model

import "time"

// Weekday codes used in habit frequency sets.  The convention is
// Monday=2 through Sunday=8 (ISO weekday + 1).  Codes outside this
// range are tolerated in stored data but never match any calendar
// day, so a habit carrying one is simply never due on it.
const (
	WeekdayMonday    = 2
	WeekdayTuesday   = 3
	WeekdayWednesday = 4
	WeekdayThursday  = 5
	WeekdayFriday    = 6
	WeekdaySaturday  = 7
	WeekdaySunday    = 8
)

// Habit represents a tracked habit owned by a user.  Habits belong
// to a category and define a weekly schedule via Frequency.  An
// empty Frequency means the habit is due every day.  This struct
// corresponds to a row in the `habits` table.
//
// Fields:
//  ID          – primary key identifier.
//  UserID      – owner of the habit.
//  CategoryID  – category the habit belongs to.
//  Name        – habit name (e.g. "Morning run").
//  Description – optional free-form description.
//  Frequency   – weekday codes (2=Mon .. 8=Sun) on which the habit is due;
//                empty means every day.
//  Unit        – optional measurement unit (km, pages, glasses).
//  TargetValue – optional numeric goal per day.
//  Color       – optional display color (e.g. "#FF5733").
//  CreatedAt   – creation timestamp; the habit is never due before this date.
type Habit struct {
	ID          uint64    // habits.id
	UserID      uint64    // habits.user_id
	CategoryID  uint64    // habits.category_id
	Name        string    // habits.name
	Description *string   // habits.description (nullable)
	Frequency   []int     // habits.frequency (CSV in DB, coerced at scan time)
	Unit        *string   // habits.unit (nullable)
	TargetValue *float64  // habits.target_value (nullable)
	Color       *string   // habits.color (nullable)
	CreatedAt   time.Time // habits.created_at
}

// Category groups habits for display and filtering.  Categories are
// managed by admins and referenced by habits.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – unique category name.
//  Description – optional description.
type Category struct {
	ID          uint64  // habit_categories.id
	Name        string  // habit_categories.name
	Description *string // habit_categories.description (nullable)
}

// Quote is a motivational quote shown to users on their dashboard.
//
// Fields:
//  ID     – primary key identifier.
//  Quote  – the quote text.
//  Author – optional author attribution.
type Quote struct {
	ID     uint64  // motivational_quotes.id
	Quote  string  // motivational_quotes.quote
	Author *string // motivational_quotes.author (nullable)
}
