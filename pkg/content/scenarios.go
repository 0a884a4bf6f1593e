// Package content holds the static tables the bot serves from: scenario
// definitions, the resource library, the wellness challenge, crisis keyword
// sets, guided exercises, and prompt text. Everything here is immutable after
// package init; lookup order always follows declaration order.
package content

// ScenarioTag names a life-situation category used to steer the model reply.
type ScenarioTag string

const (
	ScenarioExamAnxiety        ScenarioTag = "exam_anxiety"
	ScenarioLoneliness         ScenarioTag = "loneliness"
	ScenarioHomesickness       ScenarioTag = "homesickness"
	ScenarioBurnout            ScenarioTag = "burnout"
	ScenarioImposterSyndrome   ScenarioTag = "imposter_syndrome"
	ScenarioRelationshipIssues ScenarioTag = "relationship_issues"
	ScenarioDepressionFeelings ScenarioTag = "depression_feelings"
	ScenarioSleepIssues        ScenarioTag = "sleep_issues"
	ScenarioFinancialStress    ScenarioTag = "financial_stress"
	ScenarioFutureAnxiety      ScenarioTag = "future_anxiety"
)

// Scenario couples trigger keywords with guidance handed to the model.
// Keywords match as case-insensitive substrings, nothing smarter; that keeps
// behavior predictable but means "sleep" in any word position triggers the
// sleep scenario. Known limitation, kept on purpose.
type Scenario struct {
	Tag      ScenarioTag
	Title    string
	Keywords []string
	Guidance string
}

// scenarios is ordered; the first entry with any matching keyword wins.
var scenarios = []Scenario{
	{
		Tag:      ScenarioExamAnxiety,
		Title:    "Exam & Academic Anxiety",
		Keywords: []string{"exam", "test", "finals", "midterm", "grade", "gpa", "study", "fail class"},
		Guidance: `The student is experiencing exam/academic anxiety. Focus on:
- Normalizing pre-exam stress
- Study-break balance
- Grounding techniques before exams
- Perspective on grades vs self-worth
- Practical study strategies`,
	},
	{
		Tag:      ScenarioLoneliness,
		Title:    "Loneliness & Isolation",
		Keywords: []string{"lonely", "alone", "no friends", "isolated", "left out", "nobody"},
		Guidance: `The student is feeling lonely or isolated. Focus on:
- Validating that loneliness in college is extremely common
- Small steps to connection (not overwhelming suggestions)
- Quality vs quantity of friendships
- Campus resources for meeting people
- Self-compassion during lonely times`,
	},
	{
		Tag:      ScenarioHomesickness,
		Title:    "Homesickness",
		Keywords: []string{"miss home", "homesick", "miss my family", "miss my mom", "miss my dad", "far from home"},
		Guidance: `The student is homesick. Focus on:
- Acknowledging this as a natural transition
- Creating comfort rituals
- Staying connected with home while building new connections
- Making their space feel like home
- Timeline perspective (it gets easier)`,
	},
	{
		Tag:      ScenarioBurnout,
		Title:    "Burnout",
		Keywords: []string{"burnout", "burned out", "exhausted", "tired of everything", "can't keep up", "overwhelmed"},
		Guidance: `The student is experiencing burnout. Focus on:
- Recognizing burnout signs
- Permission to rest (not lazy)
- Setting boundaries
- Breaking the cycle
- Sustainable habits`,
	},
	{
		Tag:      ScenarioImposterSyndrome,
		Title:    "Imposter Syndrome",
		Keywords: []string{"imposter", "don't belong", "fraud", "not smart enough", "everyone else", "mistake"},
		Guidance: `The student feels like they don't belong or aren't good enough. Focus on:
- How common this is (especially for high achievers)
- Evidence vs feelings
- Reframing "fraud" thoughts
- Celebrating small wins
- Everyone struggles (they just don't show it)`,
	},
	{
		Tag:      ScenarioRelationshipIssues,
		Title:    "Relationship Issues",
		Keywords: []string{"relationship", "boyfriend", "girlfriend", "partner", "breakup", "broke up", "fight with"},
		Guidance: `The student is having relationship problems (romantic, friendship, family). Focus on:
- Listening without taking sides
- Healthy communication strategies
- Boundaries in relationships
- Self-care during conflict
- When to seek help`,
	},
	{
		Tag:      ScenarioDepressionFeelings,
		Title:    "Depressive Feelings",
		Keywords: []string{"depressed", "depression", "hopeless", "empty", "numb", "don't care anymore", "what's the point"},
		Guidance: `The student seems to be experiencing depressive feelings. Focus on:
- Taking their feelings seriously
- Small, manageable steps
- The importance of professional support
- Daily functioning strategies
- Hope and recovery perspective`,
	},
	{
		Tag:      ScenarioSleepIssues,
		Title:    "Sleep Issues",
		Keywords: []string{"can't sleep", "insomnia", "sleep", "tired", "exhausted", "nightmares"},
		Guidance: `The student has sleep problems. Focus on:
- Sleep hygiene basics
- College-specific challenges (roommates, late nights)
- Anxiety-sleep connection
- Practical tips
- When sleep issues need professional attention`,
	},
	{
		Tag:      ScenarioFinancialStress,
		Title:    "Financial Stress",
		Keywords: []string{"money", "afford", "broke", "debt", "loan", "financial", "pay for"},
		Guidance: `The student is stressed about money. Focus on:
- Validating financial stress as real stress
- Campus resources (financial aid, food pantries)
- Budgeting without judgment
- Part-time work balance
- Asking for help is okay`,
	},
	{
		Tag:      ScenarioFutureAnxiety,
		Title:    "Future & Career Anxiety",
		Keywords: []string{"future", "career", "job", "after graduation", "what am i doing", "life after college"},
		Guidance: `The student is anxious about their future/career. Focus on:
- Uncertainty is normal
- Present moment focus
- Career exploration as a process
- Comparison trap
- Small steps forward`,
	},
}

// Scenarios returns the scenario table in match-priority order.
func Scenarios() []Scenario {
	return scenarios
}

// ScenarioByTag returns the scenario for tag, if defined.
func ScenarioByTag(tag ScenarioTag) (Scenario, bool) {
	for _, s := range scenarios {
		if s.Tag == tag {
			return s, true
		}
	}
	return Scenario{}, false
}
