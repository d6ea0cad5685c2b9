package service

import "testing"

func TestParseRecommendationSetPlainJSON(t *testing.T) {
	raw := `{"bottles": [{"name": "Jameson", "reason": "smooth"}, {"name": "Knob Creek", "reason": "bold"}]}`

	set, err := parseRecommendationSet(raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(set.Bottles) != 2 {
		t.Fatalf("expected 2 bottles, got %d", len(set.Bottles))
	}
	if set.Bottles[0].Name != "Jameson" || set.Bottles[0].Reason != "smooth" {
		t.Fatalf("unexpected first bottle: %+v", set.Bottles[0])
	}
}

func TestParseRecommendationSetMarkdownFenced(t *testing.T) {
	raw := "```json\n{\"bottles\": [{\"name\": \"Jameson\", \"reason\": \"smooth\"}]}\n```"

	set, err := parseRecommendationSet(raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(set.Bottles) != 1 {
		t.Fatalf("expected 1 bottle, got %d", len(set.Bottles))
	}
}

func TestParseRecommendationSetSurroundingProse(t *testing.T) {
	raw := "Here are your picks:\n{\"bottles\": [{\"name\": \"Jameson\", \"reason\": \"smooth\"}]}\nCheers!"

	set, err := parseRecommendationSet(raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if set.Bottles[0].Name != "Jameson" {
		t.Fatalf("unexpected bottle: %+v", set.Bottles[0])
	}
}

func TestParseRecommendationSetRejectsGarbage(t *testing.T) {
	for _, raw := range []string{
		"I'm sorry, I can't help with that.",
		`{"bottles": []}`,
		`{"bottles": [{"reason": "nameless"}]}`,
		"",
	} {
		if _, err := parseRecommendationSet(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestFirstJSONObjectIgnoresBracesInStrings(t *testing.T) {
	raw := `{"bottles": [{"name": "Weird {Bottle}", "reason": "has } braces"}]}`
	if got := firstJSONObject(raw); got != raw {
		t.Fatalf("expected full object, got %q", got)
	}
}
