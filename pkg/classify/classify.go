// Package classify routes free-form text to a crisis category and/or a
// scenario tag using plain case-insensitive substring containment against
// the static keyword tables. No tokenization, no stemming, no word
// boundaries: "passed my test" matches the exam scenario via "test". That
// over-matching is inherited behavior and part of the contract, not a bug.
package classify

import (
	"strings"

	"github.com/verdantlab/calmspace/pkg/content"
)

// Classification is the routing decision for one message. When Crisis is set
// the Scenario field is always empty: crisis detection short-circuits
// scenario routing entirely.
type Classification struct {
	Crisis   content.CrisisCategory
	Scenario content.ScenarioTag
}

// Matcher is what the dialogue controller depends on; tests substitute spies.
type Matcher interface {
	Crisis(text string) content.CrisisCategory
	Scenario(text string) content.ScenarioTag
}

// KeywordMatcher is the production Matcher. Stateless and safe for
// concurrent use: it only reads the static tables.
type KeywordMatcher struct{}

func New() *KeywordMatcher {
	return &KeywordMatcher{}
}

// Classify runs the full decision: crisis first, scenario only if no crisis.
func (m *KeywordMatcher) Classify(text string) Classification {
	if cat := m.Crisis(text); cat != content.CrisisNone {
		return Classification{Crisis: cat}
	}
	return Classification{Scenario: m.Scenario(text)}
}

// Crisis returns the highest-precedence crisis category matching the text:
// self-harm over panic over general.
func (m *KeywordMatcher) Crisis(text string) content.CrisisCategory {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, content.SelfHarmKeywords):
		return content.CrisisSelfHarm
	case containsAny(lower, content.PanicKeywords):
		return content.CrisisPanic
	case containsAny(lower, content.GeneralCrisisKeywords):
		return content.CrisisGeneral
	default:
		return content.CrisisNone
	}
}

// Scenario returns the first scenario, in table order, with any keyword
// contained in the text, or "" when nothing matches.
func (m *KeywordMatcher) Scenario(text string) content.ScenarioTag {
	lower := strings.ToLower(text)
	for _, s := range content.Scenarios() {
		if containsAny(lower, s.Keywords) {
			return s.Tag
		}
	}
	return ""
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
