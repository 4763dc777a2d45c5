package responder

// ResponseBank is a named, read-only list of interchangeable fragments.
type ResponseBank struct {
	Name      string
	Fragments []string
}

// Pick returns one fragment chosen uniformly by src.
func (b ResponseBank) Pick(src Source) string {
	return b.Fragments[src.IntN(len(b.Fragments))]
}

// ParagraphBreak joins fragments into one reply.
const ParagraphBreak = "<br /><br />"

// CrisisTemplate is returned verbatim whenever a crisis phrase is detected.
const CrisisTemplate = `
    I’m really glad you shared that with me. ❤️<br /><br />
    I’m just a prototype and I’m <strong>not able to keep you safe</strong> or respond like a real person in an emergency,
    but your safety matters a lot.<br /><br />
    If you are thinking about harming yourself or feel like you might act on these thoughts, please:
    <ul>
      <li>Call or text <strong>988</strong> in the U.S. for the Suicide &amp; Crisis Lifeline.</li>
      <li>Call your local emergency number (such as <strong>911</strong>).</li>
      <li>Reach out to someone you trust and let them know how you’re feeling.</li>
    </ul>
    You don’t have to go through this alone. This assistant is here only for gentle reflection and cannot replace real-world help.
  `

// Fixed fragments.
const (
	acknowledgement = "Thanks for sharing that with me. I’m here with you."

	anxietyCommentary = "Feeling anxious or overwhelmed can be really draining. Anxiety often tries to convince us that everything is urgent and dangerous, even when that isn’t fully true."

	lowMoodCommentary = "Low moods can make everything feel heavier and more permanent than it really is. You’re allowed to feel what you feel without having to fix it instantly."

	schoolCommentary = "School and deadlines can stack up and feel relentless. It might help to pick one tiny next step and give yourself permission to just do that, not everything at once."

	relationshipCommentary = "Relationships can bring up really strong emotions. It can help to notice what you need right now: to be heard, to set a boundary, to ask for support, or to take space."

	bodyCommentary = "Thoughts about our bodies can get really loud and harsh. Your worth isn’t defined by how you look, and you deserve kindness from yourself as much as anyone else."

	genericValidation = "Even if it’s hard to put everything into words, it’s okay to be exactly where you are right now."

	closingEncouragement = "If you ever feel like this is more than you want to hold by yourself, it can really help to reach out to someone you trust or a professional who can support you more directly."

	goingWellInvitation = "If you feel like sharing, what’s something that’s been going well for you lately, or something you’re looking forward to?"

	modesHint = "If you ever want to switch gears, you can also say something like 'goals', 'gratitude', or 'creative ideas' and we can lean into that."
)

var generalReflections = ResponseBank{Name: "reflection", Fragments: []string{
	"If you were talking to a close friend feeling the way you do, what would you say to them?",
	"What is one small thing that went okay today, even if the day felt rough overall?",
	"If you could gently name your emotion right now, what would you call it?",
	"What do you think your mind is trying to protect you from or prepare you for?",
	"Is there a small boundary or tiny act of kindness you could offer yourself today?",
}}

var groundingExercises = ResponseBank{Name: "grounding", Fragments: []string{
	"Try the 5-4-3-2-1 grounding exercise: name 5 things you can see, 4 you can touch, 3 you can hear, 2 you can smell, and 1 you can taste or imagine tasting.",
	"Take a slow breath in for a count of 4, hold for 4, and breathe out for 6. Repeat a few times and notice any tiny shift.",
	"Look around and pick one object you can see. Describe it to yourself in detail: color, shape, texture, shadows.",
	"Gently stretch your neck and shoulders, roll your shoulders a few times, and notice how your body feels.",
	"If you can, place your feet flat on the ground and notice the feeling of support under you. Let your muscles rest for a few breaths.",
}}

var copingIdeas = ResponseBank{Name: "coping", Fragments: []string{
	"Sometimes it helps to break things into the tiniest steps possible. What might be a 'first 5-minute step' you could take?",
	"You might try a short walk, a shower, or even changing your environment for a couple of minutes.",
	"Writing out your thoughts in a quick brain dump can sometimes make them feel less crowded.",
	"It can help to text or message someone you trust, even just to say 'hey, today is kind of a lot.'",
	"Is there a comforting routine (music, tea, a favorite show, a game) you can lean on for a little while?",
}}

var positiveResponses = ResponseBank{Name: "positive", Fragments: []string{
	"I’m really glad to hear that. 😊",
	"That’s nice to hear. It sounds like you’re in a pretty solid place right now.",
	"Love that—sometimes “great” or “everything’s good” is exactly enough.",
	"It sounds like a lot of things are going well overall. That’s really good to notice.",
}}

var followUpPositiveResponses = ResponseBank{Name: "follow-up-positive", Fragments: []string{
	"That’s really good to hear. It sounds like things are lining up nicely for you right now.",
	"Love that. It’s nice when everything starts clicking into place.",
	"That kind of momentum feels good. Definitely worth noticing.",
	"That’s awesome. It sounds like you’re in a pretty steady place.",
}}

var forwardLookingPrompts = ResponseBank{Name: "forward-looking", Fragments: []string{
	"Is there anything coming up that you’re especially excited about?",
	"What’s one thing you’re looking forward to next?",
	"Do you want to use this good energy to move something small forward?",
	"Is there a goal you’re quietly excited about right now?",
	"Anything fun or meaningful planned in the near future?",
}}

var goalsModePrompts = ResponseBank{Name: "goals-mode", Fragments: []string{
	"If you want, we can shrink a goal down into something tiny and doable. What is one small thing you would like to make progress on?",
	"Think of one area of your life you would like to nudge forward a little. What comes to mind first?",
	"If you picked a goal just for this week, what would it be?",
	"Sometimes it helps to pick a 'very small next step' instead of a big goal. What could that look like for you?",
}}

var gratitudeModePrompts = ResponseBank{Name: "gratitude-mode", Fragments: []string{
	"Let’s do a quick gratitude check in. What is one thing you feel grateful for right now, no matter how small?",
	"You can try naming three tiny things you appreciate in this moment. They can be as simple as a warm drink or a song you like.",
	"Sometimes it helps to notice one person, one place, and one small comfort you appreciate today.",
	"If it feels okay, what is something about yourself that you are glad exists?",
}}

var creativePlanningPrompts = ResponseBank{Name: "creative-mode", Fragments: []string{
	"Want to use this good energy for something creative? What kind of project or idea have you been thinking about lately?",
	"If you had an hour just to create something, what would you want to work on?",
	"Think about a simple creative experiment you could try this week. What is the first idea that pops up?",
	"Is there a small creative project you have been postponing that you would like to bring back to life?",
}}

// modePrompts maps each mode tag to its prompt bank, in priority order.
var modePrompts = []struct {
	tag  Tag
	bank ResponseBank
}{
	{TagGoals, goalsModePrompts},
	{TagGratitude, gratitudeModePrompts},
	{TagCreative, creativePlanningPrompts},
}
