package profile

import (
	"errors"
	"testing"

	"liquor-bartender/internal/domain"
)

func TestAggregateEmptyInputFails(t *testing.T) {
	agg := NewAggregator(testDefaults)

	if _, err := agg.Aggregate(nil); !errors.Is(err, ErrEmptyProfiles) {
		t.Fatalf("expected ErrEmptyProfiles, got %v", err)
	}
}

func TestAggregateProofRoundTrip(t *testing.T) {
	agg := NewAggregator(testDefaults)

	profiles := []domain.TasteProfile{
		{AvgProof: 90, PriceRange: [2]float64{30, 60}, FavoriteSpirits: []string{"whiskey"}},
		{AvgProof: 80, PriceRange: [2]float64{20, 45}, FavoriteSpirits: []string{"vodka"}},
	}

	group, err := agg.Aggregate(profiles)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Promedio de los ABV (45 y 40) reconvertido a proof.
	if group.AvgProof != 85.0 {
		t.Fatalf("expected avg proof 85.0, got %v", group.AvgProof)
	}
	if group.PriceRange != [2]float64{20, 60} {
		t.Fatalf("expected price range [20 60], got %v", group.PriceRange)
	}
}

func TestAggregatePriceRangeOrderInsensitive(t *testing.T) {
	agg := NewAggregator(testDefaults)

	profiles := []domain.TasteProfile{
		{AvgProof: 80, PriceRange: [2]float64{25, 50}, FavoriteSpirits: []string{"whiskey"}},
		{AvgProof: 84, PriceRange: [2]float64{10, 90}, FavoriteSpirits: []string{"rum"}},
		{AvgProof: 92, PriceRange: [2]float64{40, 45}, FavoriteSpirits: []string{"vodka"}},
	}
	permuted := []domain.TasteProfile{profiles[2], profiles[0], profiles[1]}

	a, err := agg.Aggregate(profiles)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	b, err := agg.Aggregate(permuted)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if a.PriceRange != b.PriceRange {
		t.Fatalf("price range must be order-insensitive: %v vs %v", a.PriceRange, b.PriceRange)
	}
}

func TestAggregateWinningSpiritByCount(t *testing.T) {
	agg := NewAggregator(testDefaults)

	profiles := []domain.TasteProfile{
		{AvgProof: 80, FavoriteSpirits: []string{"vodka"}},
		{AvgProof: 80, FavoriteSpirits: []string{"whiskey"}},
		{AvgProof: 80, FavoriteSpirits: []string{"whiskey"}},
	}

	group, err := agg.Aggregate(profiles)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(group.FavoriteSpirits) != 1 || group.FavoriteSpirits[0] != "whiskey" {
		t.Fatalf("expected winning spirit whiskey, got %v", group.FavoriteSpirits)
	}
}

func TestAggregateSpiritTieBrokenByInputOrder(t *testing.T) {
	agg := NewAggregator(testDefaults)

	profiles := []domain.TasteProfile{
		{AvgProof: 80, FavoriteSpirits: []string{"vodka"}},
		{AvgProof: 80, FavoriteSpirits: []string{"whiskey"}},
	}

	group, err := agg.Aggregate(profiles)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if group.FavoriteSpirits[0] != "vodka" {
		t.Fatalf("expected tie broken by first input order (vodka), got %v", group.FavoriteSpirits)
	}
}
