package responder

import "strings"

// Tag labels a category matched in a message.
type Tag string

const (
	TagAnxiety      Tag = "anxiety"
	TagLowMood      Tag = "low-mood"
	TagSchool       Tag = "school"
	TagRelationship Tag = "relationship"
	TagBody         Tag = "body"
	TagGoals        Tag = "goals"
	TagGratitude    Tag = "gratitude"
	TagCreative     Tag = "creative"
	TagPositive     Tag = "positive"
)

// Tags is a set of tags kept in canonical order.
type Tags []Tag

// Has reports whether t is in the set.
func (ts Tags) Has(t Tag) bool {
	for _, x := range ts {
		if x == t {
			return true
		}
	}
	return false
}

// Strings returns the tags as plain strings, for transport.
func (ts Tags) Strings() []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = string(t)
	}
	return out
}

// topicSets is evaluated in this order; the order is also the canonical tag order.
var topicSets = []struct {
	tag Tag
	set KeywordSet
}{
	{TagAnxiety, anxietyKeywords},
	{TagLowMood, lowMoodKeywords},
	{TagSchool, schoolKeywords},
	{TagRelationship, relationshipKeywords},
	{TagBody, bodyKeywords},
	{TagGoals, goalsKeywords},
	{TagGratitude, gratitudeKeywords},
	{TagCreative, creativeKeywords},
}

// ClassificationResult is the outcome of classifying one message.
type ClassificationResult struct {
	Crisis bool
	Tags   Tags
}

// Normalize lowercases text and folds typographic apostrophes so phrases
// like "i'm doing well" match text typed on phones.
func Normalize(text string) string {
	return apostrophes.Replace(strings.ToLower(text))
}

var apostrophes = strings.NewReplacer("’", "'", "‘", "'")

// IsCrisis reports whether text contains any crisis phrase.
func IsCrisis(text string) bool {
	return crisisKeywords.ContainedIn(Normalize(text))
}

// IsPositiveMood reports whether text reads as the user doing okay.
//
// Negation phrases are checked first and always win. Strong positive phrases
// are then matched as substrings, and only the generic word list falls back
// to word-boundary matching.
func IsPositiveMood(text string) bool {
	lower := Normalize(text)
	if negationOverrides.ContainedIn(lower) {
		return false
	}
	if positivePhrases.ContainedIn(lower) {
		return true
	}
	return positiveWordMatcher.MatchIn(lower)
}

// ClassifyTopics returns every topic and mode tag whose keywords occur in text.
func ClassifyTopics(text string) Tags {
	lower := Normalize(text)
	var tags Tags
	for _, ts := range topicSets {
		if ts.set.ContainedIn(lower) {
			tags = append(tags, ts.tag)
		}
	}
	return tags
}

// Classify runs crisis detection and, when it does not fire, mood and topic
// detection. A crisis result carries no tags.
func Classify(text string) ClassificationResult {
	if IsCrisis(text) {
		return ClassificationResult{Crisis: true}
	}
	tags := ClassifyTopics(text)
	if IsPositiveMood(text) {
		tags = append(tags, TagPositive)
	}
	return ClassificationResult{Tags: tags}
}
