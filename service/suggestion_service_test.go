package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism-server/logger"
	"tourism-server/models"
	"tourism-server/service/route"
)

func newSuggestionService(t *testing.T) *SuggestionService {
	t.Helper()
	catalogs, _ := seededCatalogService(t)
	routes := route.NewRepository(
		route.NewClassifier([]string{"Langkawi"}),
		[]models.RouteRecord{{From: "Kuala Lumpur", To: "Langkawi"}, {From: "Langkawi", To: "Satun"}},
		logger.Discard(),
	)
	return NewSuggestionService(catalogs, routes, logger.Discard())
}

func TestSuggestionService_DistrictBeforeTitles(t *testing.T) {
	svc := newSuggestionService(t)

	items, err := svc.Suggest(context.Background(), "lang", 10)

	require.NoError(t, err)
	require.NotEmpty(t, items)
	assert.Equal(t, models.SuggestionItem{Label: "Langkawi", Value: "Langkawi", Kind: models.KindDistrict}, items[0])
	for _, it := range items[1:] {
		assert.NotEqual(t, "Langkawi", it.Label, "labels are unique")
	}
}

func TestSuggestionService_TitlesCarryIDs(t *testing.T) {
	svc := newSuggestionService(t)

	items, err := svc.Suggest(context.Background(), "paddy", 10)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.SuggestionItem{Label: "Paddy Festival", Value: "e1", Kind: models.KindTitle}, items[0])
}

func TestSuggestionService_IncludesRoutePlaces(t *testing.T) {
	svc := newSuggestionService(t)

	items, err := svc.Suggest(context.Background(), "satun", 10)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.KindPlace, items[0].Kind)
}

func TestSuggestionService_EmptyQuery(t *testing.T) {
	svc := newSuggestionService(t)

	items, err := svc.Suggest(context.Background(), "  ", 10)

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestSuggestionService_LimitIsClamped(t *testing.T) {
	svc := newSuggestionService(t)

	// "a" matches more than five labels in the seeded data
	items, err := svc.Suggest(context.Background(), "a", 1)

	require.NoError(t, err)
	assert.Len(t, items, 5)
}

func TestSuggestionService_CancelledContext(t *testing.T) {
	svc := newSuggestionService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Suggest(ctx, "lang", 10)

	assert.ErrorIs(t, err, context.Canceled)
}
