// ABOUTME: Keyword heuristics separating plan edits from progress evidence.
// ABOUTME: Ordered rule tables, first match wins; lists are frozen literals.
package ledger

import (
	"strings"

	"github.com/mtendies/ledger/internal/models"
)

// Phrases that signal the entry edits the user's plan or profile rather
// than recording behavior. The lists are evaluated in order and must not
// be reordered or "improved": downstream narratives depend on these exact
// matches, lossy as they are.
var modificationPhrases = []string{
	"change focus",
	"update focus",
	"change principle",
	"update principle",
	"change my goal",
	"update my goal",
	"change my weight target",
	"change my target",
	"update my target",
	"swap",
	"replace",
	"switching to",
	"switch to",
	"adjust my",
	"set my",
	"remove the",
	"instead do",
}

// Phrases that signal a dietary preference or restriction statement.
var dietaryPhrases = []string{
	"lactose intolerant",
	"gluten free",
	"gluten-free",
	"allergic to",
	"allergy",
	"intolerance",
	"instead of whey",
	"i prefer",
	"i don't eat",
	"i can't eat",
	"i avoid",
	"dietary restriction",
	"vegetarian",
	"vegan",
}

type modificationRule struct {
	name  string
	match func(a *models.Activity, text string) bool
}

// Rules are evaluated in fixed order; the first match classifies the
// entry as a modification.
var modificationRules = []modificationRule{
	{
		name: "edit-intent phrase",
		match: func(_ *models.Activity, text string) bool {
			return containsAny(text, modificationPhrases)
		},
	},
	{
		name: "dietary preference phrase",
		match: func(_ *models.Activity, text string) bool {
			return containsAny(text, dietaryPhrases)
		},
	},
	{
		name: "general entry without quantifiable payload",
		match: func(a *models.Activity, _ string) bool {
			if a.Type != models.TypeGeneral {
				return false
			}
			d := a.Data
			return d.Distance == nil && d.Duration == nil && d.Weight == nil &&
				d.Hours == nil && d.Feeling == nil && d.PR == nil &&
				d.HitProteinGoal == nil && d.Quality == nil
		},
	},
	{
		name: "nutrition preference statement",
		match: func(a *models.Activity, text string) bool {
			if a.Type != models.TypeNutrition {
				return false
			}
			d := a.Data
			if d.HitProteinGoal != nil || d.Calories != nil || d.Protein != nil {
				return false
			}
			return strings.Contains(text, "protein powder") || strings.Contains(text, "supplement")
		},
	},
}

// IsModificationEntry reports whether the activity is a plan/profile edit
// or preference statement rather than activity evidence. Such entries are
// excluded from weekly narrative generation.
func IsModificationEntry(a *models.Activity) bool {
	text := strings.ToLower(a.Summary)
	if text == "" {
		text = strings.ToLower(a.RawText)
	}
	for _, rule := range modificationRules {
		if rule.match(a, text) {
			return true
		}
	}
	return false
}

// ProgressActivities filters out modification entries, keeping only
// activities judged to represent actual behavior.
func ProgressActivities(activities []*models.Activity) []*models.Activity {
	var out []*models.Activity
	for _, a := range activities {
		if !IsModificationEntry(a) {
			out = append(out, a)
		}
	}
	return out
}

// FocusCategory is the semantic category inferred from a focus item's
// free text.
type FocusCategory struct {
	Type    models.ActivityType
	SubType models.SubType
}

type focusBucket struct {
	category FocusCategory
	keywords []string
}

// Ordered keyword buckets: workout sub-types first, then nutrition,
// sleep, hydration, weight. Order matters ("lift weights" must land on
// strength before the weight bucket can claim it).
var focusBuckets = []focusBucket{
	{FocusCategory{models.TypeWorkout, models.SubRun}, []string{"run", "jog", "mile", "5k", "10k", "marathon", "sprint"}},
	{FocusCategory{models.TypeWorkout, models.SubStrength}, []string{"strength", "lift", "weights", "gym", "squat", "deadlift", "bench", "press"}},
	{FocusCategory{models.TypeWorkout, models.SubCardio}, []string{"cardio", "bike", "cycling", "swim", "hiit", "row"}},
	{FocusCategory{models.TypeWorkout, models.SubWalk}, []string{"walk", "steps", "hike"}},
	{FocusCategory{models.TypeWorkout, models.SubYoga}, []string{"yoga", "stretch", "mobility"}},
	{FocusCategory{models.TypeWorkout, ""}, []string{"workout", "exercise", "train"}},
	{FocusCategory{models.TypeNutrition, ""}, []string{"protein", "meal", "eat", "calorie", "diet", "nutrition", "food", "snack", "creatine", "supplement"}},
	{FocusCategory{models.TypeSleep, ""}, []string{"sleep", "bed", "rest", "wake"}},
	{FocusCategory{models.TypeHydration, ""}, []string{"water", "hydrat", "drink"}},
	{FocusCategory{models.TypeWeight, ""}, []string{"weigh", "lbs", "pounds", "scale"}},
}

// InferFocusCategory maps a focus item's free text to an activity
// category by ordered keyword matching. Returns false when nothing
// matches.
func InferFocusCategory(focusText string) (FocusCategory, bool) {
	text := strings.ToLower(focusText)
	for _, bucket := range focusBuckets {
		if containsAny(text, bucket.keywords) {
			return bucket.category, true
		}
	}
	return FocusCategory{}, false
}

// Content terms worth matching individually: a focus item naming one of
// these (a specific supplement, say) narrows matching beyond its
// category.
var contentTerms = []string{
	"creatine",
	"whey",
	"casein",
	"pea protein",
	"protein shake",
	"vitamin",
	"magnesium",
	"omega",
	"collagen",
	"electrolyte",
}

// FocusContentKeywords extracts the content terms present in a focus
// item's text.
func FocusContentKeywords(focusText string) []string {
	text := strings.ToLower(focusText)
	var out []string
	for _, term := range contentTerms {
		if strings.Contains(text, term) {
			out = append(out, term)
		}
	}
	return out
}

// MatchesFocus reports whether the activity belongs to the inferred
// category, sub-type, and content keywords of a focus item.
func MatchesFocus(a *models.Activity, cat FocusCategory, contentKeywords []string) bool {
	if a.Type != cat.Type {
		return false
	}
	if cat.SubType != "" && a.SubType != cat.SubType {
		return false
	}
	if len(contentKeywords) == 0 {
		return true
	}
	text := strings.ToLower(a.SearchText())
	return containsAny(text, contentKeywords)
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
