package responder

import (
	"reflect"
	"strings"
	"testing"
)

func TestIsCrisis(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"kill myself", "I want to kill myself", true},
		{"uppercase", "I WANT TO END MY LIFE", true},
		{"no apostrophe", "i cant go on like this", true},
		{"typographic apostrophe", "I can’t go on", true},
		{"hyphenated", "thinking about self-harm again", true},
		{"substring inside word", "I feel like I'm dying inside", true},
		{"crisis beats positive", "everything is good but I want to die", true},
		{"anxious exam", "I feel anxious about my exam", false},
		{"positive", "everything is good, feeling grateful", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCrisis(tt.text); got != tt.want {
				t.Errorf("IsCrisis(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsPositiveMood(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		// Negation overrides win even when a positive word is present
		{"not good", "not good at all", false},
		{"not feeling great", "not feeling great today", false},
		{"not ok with ok elsewhere", "I'm not ok, though work is fine", false},
		{"everything sucks", "everything sucks and nothing is great", false},
		{"tired of everything", "honestly tired of everything", false},

		// Strong phrases
		{"doing well", "I'm doing well", true},
		{"typographic apostrophe", "I’m doing well thanks", true},
		{"everything is good", "everything is good, feeling grateful", true},
		{"things are going well", "things are going well at work", true},

		// Whole-word fallback
		{"ok word", "I'm ok", true},
		{"great word", "today was GREAT", true},
		{"fine with punctuation", "fine.", true},
		{"ok inside broken", "my phone is broken", false},
		{"fine inside refined", "a refined taste", false},
		{"good inside goodbye", "goodbye", false},

		{"no keywords", "I have a lot on my mind", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPositiveMood(tt.text); got != tt.want {
				t.Errorf("IsPositiveMood(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyTopics(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Tags
	}{
		{"anxiety and school", "I feel anxious about my exam", Tags{TagAnxiety, TagSchool}},
		{"low mood", "I've been feeling sad", Tags{TagLowMood}},
		{"relationship", "my mom and I argued", Tags{TagRelationship}},
		{"body", "I hate my appearance", Tags{TagBody}},
		{"gratitude", "feeling grateful", Tags{TagGratitude}},
		{"creative", "I want to brainstorm", Tags{TagCreative}},
		{"project is school and goals", "my project is stressing me", Tags{TagAnxiety, TagSchool, TagGoals}},
		{"none", "hello there", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyTopics(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ClassifyTopics(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	t.Run("crisis carries no tags", func(t *testing.T) {
		got := Classify("my exam is making me want to die")
		if !got.Crisis {
			t.Fatal("expected crisis")
		}
		if len(got.Tags) != 0 {
			t.Errorf("expected no tags, got %v", got.Tags)
		}
	})

	t.Run("positive adds tag", func(t *testing.T) {
		got := Classify("everything is good, feeling grateful")
		want := Tags{TagGratitude, TagPositive}
		if got.Crisis || !reflect.DeepEqual(got.Tags, want) {
			t.Errorf("Classify = %+v, want tags %v", got, want)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		text := "stressed about my friends and my weight"
		first := Classify(text)
		for i := 0; i < 20; i++ {
			if got := Classify(text); !reflect.DeepEqual(got, first) {
				t.Fatalf("call %d: %+v, want %+v", i, got, first)
			}
		}
	})
}

func TestTagsStrings(t *testing.T) {
	got := Tags{TagAnxiety, TagLowMood}.Strings()
	want := []string{"anxiety", "low-mood"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Strings() = %v, want %v", got, want)
	}
}

func TestKeywordSets_Normalized(t *testing.T) {
	sets := []KeywordSet{
		crisisKeywords, positiveWords, positivePhrases,
		negationOverrides, positiveIntensifiers,
	}
	for _, ts := range topicSets {
		sets = append(sets, ts.set)
		if ts.set.Name != string(ts.tag) {
			t.Errorf("topic set %q is registered under tag %q", ts.set.Name, ts.tag)
		}
	}

	for _, set := range sets {
		if len(set.Phrases) == 0 {
			t.Errorf("keyword set %q is empty", set.Name)
		}
		for _, p := range set.Phrases {
			// Input is normalized before matching, so a phrase that changes
			// under Normalize can never fire.
			if p == "" || Normalize(p) != p {
				t.Errorf("keyword set %q: phrase %q is not normalized", set.Name, p)
			}
			if strings.TrimSpace(p) != p {
				t.Errorf("keyword set %q: phrase %q has surrounding space", set.Name, p)
			}
		}
	}
}
