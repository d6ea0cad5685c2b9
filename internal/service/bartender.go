package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"liquor-bartender/internal/bar"
	"liquor-bartender/internal/catalog"
	"liquor-bartender/internal/domain"
	"liquor-bartender/internal/llm"
	"liquor-bartender/internal/profile"
)

// ModelSet asigna un modelo a cada etapa de la cadena generativa.
type ModelSet struct {
	Analyze   string
	Recommend string
	Format    string
}

// Bartender orquesta el pipeline de recomendación: colección -> perfil ->
// prefiltro -> etapa generativa -> (en salas) atribución de influencia.
// No guarda estado entre requests; cada llamada es función de sus entradas
// más la instantánea del catálogo.
type Bartender struct {
	bars       bar.Fetcher
	catalog    catalog.Source
	llm        llm.Client
	builder    *profile.Builder
	aggregator *profile.Aggregator
	defaults   profile.Defaults
	models     ModelSet

	minCandidates int
	maxCandidates int
	logger        *zap.Logger
}

func NewBartender(
	bars bar.Fetcher,
	catalogSource catalog.Source,
	llmClient llm.Client,
	defaults profile.Defaults,
	models ModelSet,
	minCandidates, maxCandidates int,
	logger *zap.Logger,
) *Bartender {
	if minCandidates <= 0 {
		minCandidates = 5
	}
	if maxCandidates <= 0 {
		maxCandidates = catalog.DefaultMaxCandidates
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bartender{
		bars:          bars,
		catalog:       catalogSource,
		llm:           llmClient,
		builder:       profile.NewBuilder(defaults, logger),
		aggregator:    profile.NewAggregator(defaults),
		defaults:      defaults,
		models:        models,
		minCandidates: minCandidates,
		maxCandidates: maxCandidates,
		logger:        logger,
	}
}

// RecommendForUser corre el flujo individual. Las fallas de fetch se absorben
// con los datos de respaldo; las fallas estructurales abortan el request.
func (b *Bartender) RecommendForUser(ctx context.Context, username string) (domain.RecommendationSet, error) {
	userProfile := b.buildProfile(ctx, username)

	favoriteSpirit, targetABV := deriveTarget(userProfile.FavoriteSpirits, userProfile.AvgProof, b.defaults)

	candidates, err := b.filterCatalog(ctx, favoriteSpirit, targetABV)
	if err != nil {
		return domain.RecommendationSet{}, err
	}

	profileJSON, err := json.Marshal(userProfile)
	if err != nil {
		return domain.RecommendationSet{}, fmt.Errorf("marshal profile: %w", err)
	}
	return b.runChain(ctx, string(profileJSON), candidates)
}

// RecommendForRoom corre el flujo grupal: perfiles por miembro en paralelo
// (preservando el orden de entrada), consenso, prefiltro, etapa generativa y
// atribución por botella.
func (b *Bartender) RecommendForRoom(ctx context.Context, usernames []string) (domain.RoomRecommendation, error) {
	if len(usernames) == 0 {
		return domain.RoomRecommendation{}, profile.ErrEmptyProfiles
	}

	// Los perfiles se indexan por posición: la atribución de influencia
	// depende de la correspondencia posicional con usernames.
	profiles := make([]domain.TasteProfile, len(usernames))
	g, gctx := errgroup.WithContext(ctx)
	for i, username := range usernames {
		i, username := i, username
		g.Go(func() error {
			profiles[i] = b.buildProfile(gctx, username)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return domain.RoomRecommendation{}, fmt.Errorf("build member profiles: %w", err)
	}

	group, err := b.aggregator.Aggregate(profiles)
	if err != nil {
		return domain.RoomRecommendation{}, err
	}

	favoriteSpirit, targetABV := deriveTarget(group.FavoriteSpirits, group.AvgProof, b.defaults)

	bottles := b.loadCatalog(ctx)
	candidates := catalog.FilterCandidates(bottles, favoriteSpirit, targetABV, b.maxCandidates)
	if len(candidates) < b.minCandidates {
		return domain.RoomRecommendation{}, &InsufficientCandidatesError{Count: len(candidates)}
	}

	groupJSON, err := json.Marshal(group)
	if err != nil {
		return domain.RoomRecommendation{}, fmt.Errorf("marshal group profile: %w", err)
	}
	set, err := b.runChain(ctx, string(groupJSON), candidates)
	if err != nil {
		return domain.RoomRecommendation{}, err
	}

	influenced := make([]domain.InfluenceRecord, 0, len(set.Bottles))
	for _, rec := range set.Bottles {
		record := domain.InfluenceRecord{Bottle: rec.Name}
		if found, ok := lookupBottle(bottles, rec.Name); ok {
			record.InfluencedBy = profile.AttributeInfluence(found, profiles, usernames)
		} else {
			b.logger.Warn("recommended bottle not in catalog", zap.String("bottle", rec.Name))
		}
		influenced = append(influenced, record)
	}

	return domain.RoomRecommendation{
		RoomID:       uuid.NewString(),
		Bottles:      set.Bottles,
		InfluencedBy: influenced,
	}, nil
}

// buildProfile obtiene la barra del usuario y deriva su perfil. Si la fuente
// no responde se usa la barra de respaldo de una botella, nunca se falla.
func (b *Bartender) buildProfile(ctx context.Context, username string) domain.TasteProfile {
	userBar, err := b.bars.FetchBar(ctx, username)
	if err != nil {
		b.logger.Warn("bar fetch failed, using fallback bar",
			zap.String("username", username), zap.Error(err))
		userBar = b.defaults.Bar()
	}
	return b.builder.Build(userBar)
}

func (b *Bartender) loadCatalog(ctx context.Context) []domain.CatalogBottle {
	bottles, err := b.catalog.Load(ctx)
	if err != nil {
		b.logger.Warn("catalog load failed, using fallback catalog", zap.Error(err))
		return catalog.Fallback()
	}
	return bottles
}

func (b *Bartender) filterCatalog(ctx context.Context, favoriteSpirit string, targetABV float64) ([]domain.CatalogBottle, error) {
	bottles := b.loadCatalog(ctx)
	candidates := catalog.FilterCandidates(bottles, favoriteSpirit, targetABV, b.maxCandidates)
	if len(candidates) < b.minCandidates {
		return nil, &InsufficientCandidatesError{Count: len(candidates)}
	}
	return candidates, nil
}

// runChain ejecuta las tres etapas generativas: análisis del perfil,
// recomendación sobre los candidatos y formateo a JSON estricto.
func (b *Bartender) runChain(ctx context.Context, profileJSON string, candidates []domain.CatalogBottle) (domain.RecommendationSet, error) {
	summary, err := b.llm.Generate(ctx, b.models.Analyze, analyzePrompt(profileJSON))
	if err != nil {
		return domain.RecommendationSet{}, fmt.Errorf("%w: analyze profile: %v", ErrGenerativeStage, err)
	}

	candidatesJSON, err := json.Marshal(candidates)
	if err != nil {
		return domain.RecommendationSet{}, fmt.Errorf("marshal candidates: %w", err)
	}

	recommendations, err := b.llm.Generate(ctx, b.models.Recommend, recommendPrompt(b.minCandidates, string(candidatesJSON), summary))
	if err != nil {
		return domain.RecommendationSet{}, fmt.Errorf("%w: recommend: %v", ErrGenerativeStage, err)
	}

	formatted, err := b.llm.Generate(ctx, b.models.Format, formatPrompt(b.minCandidates, recommendations))
	if err != nil {
		return domain.RecommendationSet{}, fmt.Errorf("%w: format: %v", ErrGenerativeStage, err)
	}

	set, err := parseRecommendationSet(formatted)
	if err != nil {
		return domain.RecommendationSet{}, fmt.Errorf("%w: %v", ErrGenerativeStage, err)
	}
	return set, nil
}

// deriveTarget baja el perfil a los dos parámetros del prefiltro: el primer
// espirituoso favorito (o el default) y el ABV objetivo (proof/2).
func deriveTarget(favoriteSpirits []string, avgProof float64, defaults profile.Defaults) (string, float64) {
	favorite := defaults.Spirit
	if len(favoriteSpirits) > 0 {
		favorite = favoriteSpirits[0]
	}
	return favorite, avgProof / 2
}

func lookupBottle(bottles []domain.CatalogBottle, name string) (domain.CatalogBottle, bool) {
	for _, b := range bottles {
		if b.Name == name {
			return b, true
		}
	}
	return domain.CatalogBottle{}, false
}
