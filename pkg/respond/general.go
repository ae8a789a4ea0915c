package respond

import (
	"context"
	"fmt"
	"strings"

	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/internal/types"
	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/pkg/logger"
)

const generalSystemPrompt = "You are a helpful assistant for a film equipment rental service. " +
	"Answer the customer's question using the FAQ excerpts below. If the excerpts don't cover the question, say so politely."

// GeneralInquiry answers general questions with retrieval-augmented
// generation: embed the email, fetch the nearest FAQ chunks, and place them
// verbatim in the prompt ("stuff" composition, no refinement passes).
type GeneralInquiry struct {
	embedder    types.Embedder
	retriever   types.Retriever
	completer   types.Completer
	topK        int
	temperature float64
	log         *logger.Logger
}

func NewGeneralInquiry(embedder types.Embedder, retriever types.Retriever, completer types.Completer, topK int, temperature float64, log *logger.Logger) *GeneralInquiry {
	if topK == 0 {
		topK = 4
	}
	return &GeneralInquiry{
		embedder:    embedder,
		retriever:   retriever,
		completer:   completer,
		topK:        topK,
		temperature: temperature,
		log:         log,
	}
}

func (h *GeneralInquiry) Handle(ctx context.Context, email string) (string, error) {
	embedding, err := h.embedder.EmbedQuery(ctx, email)
	if err != nil {
		return "", fmt.Errorf("embedding inquiry: %w", err)
	}

	chunks, err := h.retriever.Search(ctx, embedding, h.topK)
	if err != nil {
		return "", fmt.Errorf("retrieving FAQ chunks: %w", err)
	}

	// Zero retrieved chunks is not an error: the completion still runs with
	// an empty context block.
	var contextBuilder strings.Builder
	for _, chunk := range chunks {
		contextBuilder.WriteString(chunk.Text)
		contextBuilder.WriteString("\n\n")
	}
	h.log.Debug("retrieved FAQ context", "chunks", len(chunks))

	user := fmt.Sprintf("FAQ excerpts:\n%s\nQuestion: %s", contextBuilder.String(), email)

	answer, err := h.completer.Complete(ctx, generalSystemPrompt, user, h.temperature)
	if err != nil {
		return "", fmt.Errorf("generating answer: %w", err)
	}
	return answer, nil
}
