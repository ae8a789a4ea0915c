package types

import (
	"context"

	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/internal/models"
)

// Core interfaces. The engine packages consume these so the LLM backend,
// vector index and catalog stay swappable (and stubbable in tests).

// Completer is the black-box text-completion capability: one role-structured
// prompt in, generated text out. No retry semantics.
type Completer interface {
	Complete(ctx context.Context, system, user string, temperature float64) (string, error)
}

// Embedder turns text into vectors for retrieval.
type Embedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Retriever is the nearest-neighbour search over the FAQ chunk index.
type Retriever interface {
	Search(ctx context.Context, embedding []float32, k int) ([]models.ScoredChunk, error)
}

// Catalog is the equipment record store.
type Catalog interface {
	FindByName(ctx context.Context, name string) (*models.Equipment, error)
	Seed(ctx context.Context, items []models.Equipment) error
}

// Handler produces the user-facing reply for one classified email.
type Handler interface {
	Handle(ctx context.Context, email string) (string, error)
}

// Classifier assigns a category to an email, or models.CategoryError when
// classification is indeterminate.
type Classifier interface {
	Classify(ctx context.Context, email string) models.Category
}
