// Package router maps free-text marketing requests to a category and to the
// set of specialist agents that category activates.
package router

import "strings"

type Category string

const (
	CategoryBrief       Category = "brief"
	CategoryCreative    Category = "creative"
	CategoryJourney     Category = "journey"
	CategoryPerformance Category = "performance"
	CategoryAudience    Category = "audience"
	CategoryPaidMedia   Category = "paid-media"
	CategoryGeneral     Category = "general"
)

// Categories lists every category in classification priority order, with
// the fallback last.
var Categories = []Category{
	CategoryBrief,
	CategoryCreative,
	CategoryJourney,
	CategoryPerformance,
	CategoryAudience,
	CategoryPaidMedia,
	CategoryGeneral,
}

type rule struct {
	category Category
	triggers []string
}

// The order of rules is an arbitrary tie-break kept for compatibility, not
// a business rule: "budget creative" is creative only because creative is
// tested first. Short triggers such as "ad" also match inside other words.
var rules = []rule{
	{CategoryBrief, []string{"brief", "campaign plan"}},
	{CategoryCreative, []string{"creative", "ad", "visual"}},
	{CategoryJourney, []string{"journey", "flow", "email"}},
	{CategoryPerformance, []string{"performance", "analytics", "optimize"}},
	{CategoryAudience, []string{"audience", "segment", "target"}},
	{CategoryPaidMedia, []string{"budget", "spend", "media"}},
}

// Classify returns the first category whose triggers appear in message,
// ignoring case. Messages matching nothing are CategoryGeneral.
func Classify(message string) Category {
	lower := strings.ToLower(message)
	for _, r := range rules {
		for _, t := range r.triggers {
			if strings.Contains(lower, t) {
				return r.category
			}
		}
	}
	return CategoryGeneral
}

// Valid reports whether c is one of the seven known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Triggers returns a copy of the trigger substrings for c. The general
// category has none.
func Triggers(c Category) []string {
	for _, r := range rules {
		if r.category == c {
			return append([]string(nil), r.triggers...)
		}
	}
	return nil
}
