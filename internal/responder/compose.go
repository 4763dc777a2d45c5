package responder

import "strings"

// Reply is a composed response together with the classification behind it.
// Rules names the composition rules that fired, in order.
type Reply struct {
	Text           string
	Classification ClassificationResult
	Rules          []string
}

// Responder composes replies. The zero value is not usable; use New.
type Responder struct {
	src Source
}

// New creates a Responder. A nil src uses the process-wide random generator.
func New(src Source) *Responder {
	if src == nil {
		src = globalSource{}
	}
	return &Responder{src: src}
}

// Compose returns the reply text for a message.
func (r *Responder) Compose(text string) string {
	return r.Respond(text).Text
}

// Respond classifies text and composes the matching reply.
func (r *Responder) Respond(text string) Reply {
	result := Classify(text)
	if result.Crisis {
		return Reply{Text: CrisisTemplate, Classification: result, Rules: []string{crisisRule}}
	}

	m := message{lower: Normalize(text), tags: result.Tags}
	var rules []rule
	if result.Tags.Has(TagPositive) {
		rules = positiveRules
	} else {
		rules = supportiveRules
	}

	var parts, fired []string
	for _, rl := range rules {
		if rl.when(m) {
			parts = append(parts, rl.emit(m, r.src)...)
			fired = append(fired, rl.name)
		}
	}
	return Reply{Text: strings.Join(parts, ParagraphBreak), Classification: result, Rules: fired}
}

// crisisRule is reported when the crisis template replaces every other rule.
const crisisRule = "crisis"

// message is what a rule can see about the input.
type message struct {
	lower string
	tags  Tags
}

// rule appends fragments when its predicate holds. Rules run in slice order.
type rule struct {
	name string
	when func(m message) bool
	emit func(m message, src Source) []string
}

func always(message) bool { return true }

func tagged(t Tag) func(message) bool {
	return func(m message) bool { return m.tags.Has(t) }
}

func fixed(fragments ...string) func(message, Source) []string {
	return func(message, Source) []string { return fragments }
}

func pick(banks ...ResponseBank) func(message, Source) []string {
	return func(_ message, src Source) []string {
		out := make([]string, len(banks))
		for i, b := range banks {
			out[i] = b.Pick(src)
		}
		return out
	}
}

// firstMode returns the prompt bank of the highest priority mode tag present.
func firstMode(tags Tags) (ResponseBank, bool) {
	for _, mp := range modePrompts {
		if tags.Has(mp.tag) {
			return mp.bank, true
		}
	}
	return ResponseBank{}, false
}

func hasMode(m message) bool {
	_, ok := firstMode(m.tags)
	return ok
}

func intensified(m message) bool {
	return !hasMode(m) && positiveIntensifiers.ContainedIn(m.lower)
}

var topicTags = []Tag{TagAnxiety, TagLowMood, TagSchool, TagRelationship, TagBody}

func noTopic(m message) bool {
	for _, t := range topicTags {
		if m.tags.Has(t) {
			return false
		}
	}
	return true
}

// positiveRules: one glad line, then exactly one follow-up branch.
var positiveRules = []rule{
	{name: "glad", when: always, emit: pick(positiveResponses)},
	{name: "mode", when: hasMode, emit: func(m message, src Source) []string {
		bank, _ := firstMode(m.tags)
		return []string{bank.Pick(src)}
	}},
	{name: "momentum", when: intensified, emit: pick(followUpPositiveResponses, forwardLookingPrompts)},
	{name: "invite", when: func(m message) bool { return !hasMode(m) && !intensified(m) }, emit: fixed(goingWellInvitation, modesHint)},
}

// supportiveRules is the non-positive, non-crisis path.
var supportiveRules = []rule{
	{name: "acknowledge", when: always, emit: fixed(acknowledgement)},
	{name: "anxiety", when: tagged(TagAnxiety), emit: fixed(anxietyCommentary)},
	{name: "grounding", when: tagged(TagAnxiety), emit: pick(groundingExercises)},
	{name: "low-mood", when: tagged(TagLowMood), emit: fixed(lowMoodCommentary)},
	{name: "school", when: tagged(TagSchool), emit: fixed(schoolCommentary)},
	{name: "relationship", when: tagged(TagRelationship), emit: fixed(relationshipCommentary)},
	{name: "body", when: tagged(TagBody), emit: fixed(bodyCommentary)},
	{name: "validate", when: noTopic, emit: fixed(genericValidation)},
	{name: "goals", when: tagged(TagGoals), emit: pick(goalsModePrompts)},
	{name: "gratitude", when: tagged(TagGratitude), emit: pick(gratitudeModePrompts)},
	{name: "creative", when: tagged(TagCreative), emit: pick(creativePlanningPrompts)},
	{name: "reflect", when: always, emit: pick(generalReflections, copingIdeas)},
	{name: "close", when: always, emit: fixed(closingEncouragement)},
}
