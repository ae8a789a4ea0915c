package respond_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/internal/models"
	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/pkg/catalog"
	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/pkg/extractor"
	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/pkg/logger"
	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/pkg/respond"
)

type stubCompleter struct {
	response string
	err      error
	gotUser  string
}

func (s *stubCompleter) Complete(ctx context.Context, system, user string, temperature float64) (string, error) {
	s.gotUser = user
	return s.response, s.err
}

type fakeCatalog struct {
	items map[string]models.Equipment
	err   error
}

func (f *fakeCatalog) FindByName(ctx context.Context, name string) (*models.Equipment, error) {
	if f.err != nil {
		return nil, f.err
	}
	item, ok := f.items[name]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return &item, nil
}

func (f *fakeCatalog) Seed(ctx context.Context, items []models.Equipment) error { return nil }

type stubEmbedder struct {
	vector []float32
	err    error
}

func (s *stubEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return s.vector, s.err
}

func (s *stubEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	return [][]float32{s.vector}, s.err
}

type stubRetriever struct {
	chunks []models.ScoredChunk
	err    error
}

func (s *stubRetriever) Search(ctx context.Context, embedding []float32, k int) ([]models.ScoredChunk, error) {
	return s.chunks, s.err
}

func TestPriceAvailability_Match(t *testing.T) {
	cat := &fakeCatalog{items: map[string]models.Equipment{
		"Canon EF 24-70mm": {Name: "Canon EF 24-70mm", Category: "Lenses", Price: 50.00, Available: true},
	}}
	ext := extractor.New(&stubCompleter{response: "Canon EF 24-70mm"}, logger.NewNop())
	h := respond.NewPriceAvailability(ext, cat, logger.NewNop())

	response, err := h.Handle(context.Background(), "Is the Canon EF 24-70mm lens available for rent?")

	require.NoError(t, err)
	assert.Equal(t, "The Canon EF 24-70mm is available for rent at $50.0 per day.", response)
}

func TestPriceAvailability_NotAvailable(t *testing.T) {
	cat := &fakeCatalog{items: map[string]models.Equipment{
		"DJI Ronin-S": {Name: "DJI Ronin-S", Category: "Stabilizers", Price: 75.00, Available: false},
	}}
	ext := extractor.New(&stubCompleter{response: "DJI Ronin-S"}, logger.NewNop())
	h := respond.NewPriceAvailability(ext, cat, logger.NewNop())

	response, err := h.Handle(context.Background(), "Can I rent the DJI Ronin-S?")

	require.NoError(t, err)
	assert.Equal(t, "The DJI Ronin-S is not available for rent at $75.0 per day.", response)
}

func TestPriceAvailability_ExactMatchOnly(t *testing.T) {
	// The seed data spells it "RED DSMC 2"; emails say "RED DSMC2". Exact
	// lookup treats these as different names.
	cat := &fakeCatalog{items: map[string]models.Equipment{
		"RED DSMC 2": {Name: "RED DSMC 2", Category: "Cameras", Price: 850.00, Available: true},
	}}
	ext := extractor.New(&stubCompleter{response: "RED DSMC2"}, logger.NewNop())
	h := respond.NewPriceAvailability(ext, cat, logger.NewNop())

	response, err := h.Handle(context.Background(), "What does the RED DSMC2 cost?")

	require.NoError(t, err)
	assert.Contains(t, response, "we don't have information about RED DSMC2")
	assert.Contains(t, response, "customer service")
}

func TestPriceAvailability_UnknownEquipment(t *testing.T) {
	cat := &fakeCatalog{items: map[string]models.Equipment{}}
	ext := extractor.New(&stubCompleter{response: "Sony FX6"}, logger.NewNop())
	h := respond.NewPriceAvailability(ext, cat, logger.NewNop())

	response, err := h.Handle(context.Background(), "How much is the Sony FX6?")

	require.NoError(t, err)
	assert.Contains(t, response, "Sony FX6")
	assert.Contains(t, response, "customer service")
}

func TestPriceAvailability_ExtractionFailure(t *testing.T) {
	cat := &fakeCatalog{items: map[string]models.Equipment{}}
	ext := extractor.New(&stubCompleter{err: errors.New("timeout")}, logger.NewNop())
	h := respond.NewPriceAvailability(ext, cat, logger.NewNop())

	response, err := h.Handle(context.Background(), "How much is the thing?")

	require.NoError(t, err)
	assert.Contains(t, response, "couldn't find specific information")
}

func TestPriceAvailability_CatalogFailure(t *testing.T) {
	cat := &fakeCatalog{err: errors.New("database locked")}
	ext := extractor.New(&stubCompleter{response: "Canon EF 24-70mm"}, logger.NewNop())
	h := respond.NewPriceAvailability(ext, cat, logger.NewNop())

	_, err := h.Handle(context.Background(), "Is the lens available?")

	assert.Error(t, err)
}

func TestGeneralInquiry_StuffsRetrievedChunks(t *testing.T) {
	completer := &stubCompleter{response: "The ARRI SkyPanel S60-C has a maximum output of 1268 lux at 3 meters."}
	h := respond.NewGeneralInquiry(
		&stubEmbedder{vector: []float32{0.1, 0.2}},
		&stubRetriever{chunks: []models.ScoredChunk{
			{FaqChunk: models.FaqChunk{Text: "maximum output of 1268 lux", Position: 0}, Score: 0.1},
			{FaqChunk: models.FaqChunk{Text: "color temperature 2800K to 10000K", Position: 1}, Score: 0.3},
		}},
		completer, 4, 0.7, logger.NewNop())

	response, err := h.Handle(context.Background(), "What's the maximum output of the ARRI SkyPanel S60-C?")

	require.NoError(t, err)
	assert.Contains(t, response, "1268 lux")
	assert.Contains(t, completer.gotUser, "maximum output of 1268 lux")
	assert.Contains(t, completer.gotUser, "color temperature 2800K to 10000K")
	assert.Contains(t, completer.gotUser, "What's the maximum output")
}

func TestGeneralInquiry_ZeroChunks(t *testing.T) {
	// Degenerate retrieval still completes with an empty context block.
	completer := &stubCompleter{response: "I'm sorry, I don't have information about that."}
	h := respond.NewGeneralInquiry(
		&stubEmbedder{vector: []float32{0.1}},
		&stubRetriever{},
		completer, 4, 0.7, logger.NewNop())

	response, err := h.Handle(context.Background(), "Do you rent underwater housings?")

	require.NoError(t, err)
	assert.NotEmpty(t, response)
}

func TestGeneralInquiry_EmbeddingFailure(t *testing.T) {
	h := respond.NewGeneralInquiry(
		&stubEmbedder{err: errors.New("connection refused")},
		&stubRetriever{},
		&stubCompleter{}, 4, 0.7, logger.NewNop())

	_, err := h.Handle(context.Background(), "any question")

	assert.Error(t, err)
}

func TestGeneralInquiry_CompletionFailure(t *testing.T) {
	h := respond.NewGeneralInquiry(
		&stubEmbedder{vector: []float32{0.1}},
		&stubRetriever{},
		&stubCompleter{err: errors.New("timeout")}, 4, 0.7, logger.NewNop())

	_, err := h.Handle(context.Background(), "any question")

	assert.Error(t, err)
}

func TestPositiveReview(t *testing.T) {
	completer := &stubCompleter{response: "Thank you so much! Please share your experience on social media."}
	h := respond.NewPositiveReview(completer, 0.7, logger.NewNop())

	response, err := h.Handle(context.Background(), "The RED DSMC2 camera I rented was amazing!")

	require.NoError(t, err)
	assert.Contains(t, response, "Thank you")
	assert.Contains(t, completer.gotUser, "The RED DSMC2 camera I rented was amazing!")
}

func TestNegativeReview(t *testing.T) {
	completer := &stubCompleter{response: "We apologize for the inconvenience. A representative will call you, and here is a gift voucher."}
	h := respond.NewNegativeReview(completer, 0.7, logger.NewNop())

	response, err := h.Handle(context.Background(), "I'm extremely disappointed with the DJI Ronin-S.")

	require.NoError(t, err)
	assert.Contains(t, response, "apologize")
	assert.Contains(t, response, "voucher")
}

func TestReviews_CompletionFailure(t *testing.T) {
	failing := &stubCompleter{err: errors.New("timeout")}

	_, err := respond.NewPositiveReview(failing, 0.7, logger.NewNop()).Handle(context.Background(), "great!")
	assert.Error(t, err)

	_, err = respond.NewNegativeReview(failing, 0.7, logger.NewNop()).Handle(context.Background(), "awful!")
	assert.Error(t, err)
}
