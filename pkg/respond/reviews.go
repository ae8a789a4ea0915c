package respond

import (
	"context"
	"fmt"

	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/internal/types"
	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/pkg/logger"
)

const positiveSystemPrompt = "You are responding to a positive review about a film equipment rental service. " +
	"Thank the customer and encourage them to share their experience on social media."

const negativeSystemPrompt = "You are responding to a negative review about a film equipment rental service. " +
	"Apologize for the inconvenience, offer a solution, and mention that a customer service representative will call them. " +
	"Also, offer a gift voucher for their next rental."

// PositiveReview thanks the customer and invites social sharing. Pure prompt
// template to completion; no catalog or retrieval interaction.
type PositiveReview struct {
	completer   types.Completer
	temperature float64
	log         *logger.Logger
}

func NewPositiveReview(completer types.Completer, temperature float64, log *logger.Logger) *PositiveReview {
	return &PositiveReview{completer: completer, temperature: temperature, log: log}
}

func (h *PositiveReview) Handle(ctx context.Context, email string) (string, error) {
	response, err := h.completer.Complete(ctx, positiveSystemPrompt,
		fmt.Sprintf("Positive review: %s\n\nResponse:", email), h.temperature)
	if err != nil {
		return "", fmt.Errorf("generating positive review response: %w", err)
	}
	return response, nil
}

// NegativeReview apologizes, promises a callback and offers a voucher. It is
// purely sentiment-driven and never consults availability.
type NegativeReview struct {
	completer   types.Completer
	temperature float64
	log         *logger.Logger
}

func NewNegativeReview(completer types.Completer, temperature float64, log *logger.Logger) *NegativeReview {
	return &NegativeReview{completer: completer, temperature: temperature, log: log}
}

func (h *NegativeReview) Handle(ctx context.Context, email string) (string, error) {
	response, err := h.completer.Complete(ctx, negativeSystemPrompt,
		fmt.Sprintf("Review: %s", email), h.temperature)
	if err != nil {
		return "", fmt.Errorf("generating negative review response: %w", err)
	}
	return response, nil
}
