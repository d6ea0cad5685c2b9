package profile

import (
	"reflect"
	"testing"

	"go.uber.org/zap"

	"liquor-bartender/internal/domain"
)

var testDefaults = Defaults{Spirit: "whiskey", Brand: "Jameson", Proof: 80, Price: 30}

func TestBuilderWellFormedBar(t *testing.T) {
	builder := NewBuilder(testDefaults, zap.NewNop())

	bar := []domain.OwnedBottle{
		{Name: "Jameson", Proof: "80", AverageMSRP: "30", Brand: "Jameson", Spirit: "whiskey"},
		{Name: "Maker's Mark", Proof: "90", AverageMSRP: "35", Brand: "Maker's Mark", Spirit: "whiskey"},
		{Name: "Grey Goose", Proof: "80", AverageMSRP: "45", Brand: "Grey Goose", Spirit: "vodka"},
	}

	p := builder.Build(bar)

	if p.AvgProof != (80.0+90.0+80.0)/3 {
		t.Fatalf("expected avg proof %v, got %v", (80.0+90.0+80.0)/3, p.AvgProof)
	}
	if p.ProofRange != [2]float64{80, 90} {
		t.Fatalf("expected proof range [80 90], got %v", p.ProofRange)
	}
	if p.PriceRange != [2]float64{30, 45} {
		t.Fatalf("expected price range [30 45], got %v", p.PriceRange)
	}
	if !reflect.DeepEqual(p.FavoriteSpirits, []string{"whiskey", "vodka"}) {
		t.Fatalf("expected favorite spirits [whiskey vodka], got %v", p.FavoriteSpirits)
	}
	if !reflect.DeepEqual(p.Spirits, []string{"whiskey", "vodka"}) {
		t.Fatalf("expected spirits [whiskey vodka], got %v", p.Spirits)
	}
	if reflect.DeepEqual(p, testDefaults.Profile()) {
		t.Fatalf("well-formed bar must never yield the default profile")
	}
}

func TestBuilderEmptyBarUsesDefault(t *testing.T) {
	builder := NewBuilder(testDefaults, zap.NewNop())

	p := builder.Build(nil)

	if !reflect.DeepEqual(p, testDefaults.Profile()) {
		t.Fatalf("expected default profile, got %+v", p)
	}
}

func TestBuilderMalformedEntryUsesDefault(t *testing.T) {
	builder := NewBuilder(testDefaults, zap.NewNop())

	cases := map[string][]domain.OwnedBottle{
		"non-numeric proof": {
			{Name: "Jameson", Proof: "eighty", AverageMSRP: "30", Brand: "Jameson", Spirit: "whiskey"},
		},
		"missing price": {
			{Name: "Jameson", Proof: "80", Brand: "Jameson", Spirit: "whiskey"},
		},
		"missing brand": {
			{Name: "Jameson", Proof: "80", AverageMSRP: "30", Spirit: "whiskey"},
		},
		"missing spirit": {
			{Name: "Jameson", Proof: "80", AverageMSRP: "30", Brand: "Jameson"},
		},
		"one bad entry poisons the whole call": {
			{Name: "Jameson", Proof: "80", AverageMSRP: "30", Brand: "Jameson", Spirit: "whiskey"},
			{Name: "Mystery", Proof: "??", AverageMSRP: "30", Brand: "Mystery", Spirit: "rum"},
		},
	}

	for name, bar := range cases {
		if p := builder.Build(bar); !reflect.DeepEqual(p, testDefaults.Profile()) {
			t.Fatalf("%s: expected default profile, got %+v", name, p)
		}
	}
}

func TestBuilderFrequencyTieKeepsFirstSeenOrder(t *testing.T) {
	builder := NewBuilder(testDefaults, zap.NewNop())

	bar := []domain.OwnedBottle{
		{Name: "Grey Goose", Proof: "80", AverageMSRP: "45", Brand: "Grey Goose", Spirit: "vodka"},
		{Name: "Jameson", Proof: "80", AverageMSRP: "30", Brand: "Jameson", Spirit: "whiskey"},
		{Name: "Bacardi", Proof: "80", AverageMSRP: "20", Brand: "Bacardi", Spirit: "rum"},
	}

	p := builder.Build(bar)

	if !reflect.DeepEqual(p.FavoriteSpirits, []string{"vodka", "whiskey", "rum"}) {
		t.Fatalf("expected tie broken by first-seen order, got %v", p.FavoriteSpirits)
	}
	if !reflect.DeepEqual(p.FavoriteBrands, []string{"Grey Goose", "Jameson", "Bacardi"}) {
		t.Fatalf("expected brands in first-seen order, got %v", p.FavoriteBrands)
	}
}
