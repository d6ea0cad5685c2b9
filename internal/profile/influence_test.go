package profile

import (
	"testing"

	"liquor-bartender/internal/domain"
)

func TestAttributeInfluencePrefersSpiritMatch(t *testing.T) {
	bottle := domain.CatalogBottle{Name: "Jameson", ABV: "40", SpiritType: "whiskey", ShelfPrice: "30"}

	// alice queda en banda de ABV (+2); bob coincide en espirituoso (+3).
	profiles := []domain.TasteProfile{
		{AvgProof: 80, FavoriteSpirits: []string{"vodka"}},
		{AvgProof: 100, FavoriteSpirits: []string{"whiskey"}},
	}

	got := AttributeInfluence(bottle, profiles, []string{"alice", "bob"})
	if got != "bob" {
		t.Fatalf("expected bob (spirit match outweighs abv band), got %s", got)
	}
}

func TestAttributeInfluenceDeterministic(t *testing.T) {
	bottle := domain.CatalogBottle{Name: "Grey Goose", ABV: "40", SpiritType: "vodka", ShelfPrice: "45"}
	profiles := []domain.TasteProfile{
		{AvgProof: 80, FavoriteSpirits: []string{"whiskey"}},
		{AvgProof: 82, FavoriteSpirits: []string{"vodka"}},
	}
	userIDs := []string{"alice", "bob"}

	first := AttributeInfluence(bottle, profiles, userIDs)
	for i := 0; i < 10; i++ {
		if got := AttributeInfluence(bottle, profiles, userIDs); got != first {
			t.Fatalf("expected deterministic result %s, got %s", first, got)
		}
	}
	if first != "bob" {
		t.Fatalf("expected bob, got %s", first)
	}
}

func TestAttributeInfluenceTieFirstWins(t *testing.T) {
	bottle := domain.CatalogBottle{Name: "Jameson", ABV: "40", SpiritType: "whiskey", ShelfPrice: "30"}
	same := domain.TasteProfile{AvgProof: 80, FavoriteSpirits: []string{"whiskey"}}

	got := AttributeInfluence(bottle, []domain.TasteProfile{same, same}, []string{"alice", "bob"})
	if got != "alice" {
		t.Fatalf("expected first user to win ties, got %s", got)
	}
}

func TestAttributeInfluenceEmptyFavoritesScoresZeroSpiritTerm(t *testing.T) {
	bottle := domain.CatalogBottle{Name: "Jameson", ABV: "40", SpiritType: "whiskey", ShelfPrice: "30"}

	// Ambos fuera de banda; solo bob suma por espirituoso.
	profiles := []domain.TasteProfile{
		{AvgProof: 200, FavoriteSpirits: nil},
		{AvgProof: 200, FavoriteSpirits: []string{"whiskey"}},
	}

	got := AttributeInfluence(bottle, profiles, []string{"alice", "bob"})
	if got != "bob" {
		t.Fatalf("expected bob, got %s", got)
	}
}

func TestAttributeInfluenceEmptyUsers(t *testing.T) {
	bottle := domain.CatalogBottle{Name: "Jameson", ABV: "40", SpiritType: "whiskey"}
	if got := AttributeInfluence(bottle, nil, nil); got != "" {
		t.Fatalf("expected empty attribution, got %q", got)
	}
}
