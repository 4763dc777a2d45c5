package responder

import (
	"regexp"
	"strings"
)

// KeywordSet is a named, read-only list of lowercase phrases.
type KeywordSet struct {
	Name    string
	Phrases []string
}

// ContainedIn reports whether any phrase occurs as a substring of lower.
// lower must already be normalized.
func (k KeywordSet) ContainedIn(lower string) bool {
	for _, p := range k.Phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// wordMatcher matches a fixed word list on word boundaries.
type wordMatcher struct {
	patterns []*regexp.Regexp
}

func newWordMatcher(set KeywordSet) wordMatcher {
	patterns := make([]*regexp.Regexp, 0, len(set.Phrases))
	for _, w := range set.Phrases {
		patterns = append(patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(w)+`\b`))
	}
	return wordMatcher{patterns: patterns}
}

func (m wordMatcher) MatchIn(lower string) bool {
	for _, re := range m.patterns {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

// Crisis phrases are matched as substrings, so "die" also fires inside longer
// words. That is accepted: a false positive only shows the resources template.
var crisisKeywords = KeywordSet{Name: "crisis", Phrases: []string{
	"suicide",
	"kill myself",
	"end my life",
	"can't go on",
	"cant go on",
	"hurt myself",
	"self harm",
	"self-harm",
	"die",
	"dying",
	"ending it",
	"ending everything",
}}

var anxietyKeywords = KeywordSet{Name: "anxiety", Phrases: []string{
	"anxious",
	"anxiety",
	"panic",
	"overwhelmed",
	"stressed",
	"stress",
	"worried",
	"worry",
}}

var lowMoodKeywords = KeywordSet{Name: "low-mood", Phrases: []string{
	"sad",
	"down",
	"depressed",
	"empty",
	"hopeless",
	"tired of everything",
}}

var schoolKeywords = KeywordSet{Name: "school", Phrases: []string{
	"school",
	"class",
	"assignment",
	"homework",
	"grades",
	"deadline",
	"project",
	"exam",
	"test",
}}

var relationshipKeywords = KeywordSet{Name: "relationship", Phrases: []string{
	"friend",
	"friends",
	"relationship",
	"partner",
	"boyfriend",
	"girlfriend",
	"family",
	"mom",
	"dad",
	"parents",
}}

var bodyKeywords = KeywordSet{Name: "body", Phrases: []string{
	"body",
	"weight",
	"appearance",
	"look",
	"ugly",
	"fat",
	"skinny",
}}

var goalsKeywords = KeywordSet{Name: "goals", Phrases: []string{
	"goal",
	"goals",
	"habit",
	"habits",
	"plan",
	"plans",
	"routine",
	"project",
	"projects",
	"focus on",
}}

var gratitudeKeywords = KeywordSet{Name: "gratitude", Phrases: []string{
	"grateful",
	"gratitude",
	"thankful",
	"appreciate",
	"appreciation",
	"blessed",
	"thank you",
}}

var creativeKeywords = KeywordSet{Name: "creative", Phrases: []string{
	"creative",
	"creativity",
	"idea",
	"ideas",
	"brainstorm",
	"art",
	"draw",
	"write",
	"story",
	"design",
	"make something",
	"project idea",
}}

// positiveWords is only ever matched on word boundaries: "ok" must not fire
// inside "broken".
var positiveWords = KeywordSet{Name: "positive", Phrases: []string{
	"good",
	"great",
	"awesome",
	"okay",
	"ok",
	"fine",
	"pretty good",
	"not bad",
	"happy",
	"excited",
	"better",
	"everything",
	"all good",
	"doing well",
}}

var positivePhrases = KeywordSet{Name: "positive-phrases", Phrases: []string{
	"doing well",
	"feeling well",
	"feeling good",
	"feeling great",
	"pretty good",
	"all good",
	"everything is good",
	"everything's good",
	"things are good",
	"things are going well",
	"i'm doing well",
	"im doing well",
}}

// negationOverrides wins over every positive signal.
var negationOverrides = KeywordSet{Name: "negation-override", Phrases: []string{
	"not good",
	"not great",
	"not okay",
	"not ok",
	"not fine",
	"not happy",
	"not excited",
	"not better",
	"not doing well",
	"not feeling well",
	"not feeling good",
	"not feeling great",
	"not feeling okay",
	"not feeling ok",
	"not feeling fine",
	"not feeling happy",
	"tired of everything",
	"everything sucks",
	"everything is terrible",
	"everything is awful",
	"everything is falling apart",
}}

var positiveIntensifiers = KeywordSet{Name: "positive-intensifier", Phrases: []string{
	"everything",
	"all",
	"really good",
	"great",
	"amazing",
}}

var positiveWordMatcher = newWordMatcher(positiveWords)
