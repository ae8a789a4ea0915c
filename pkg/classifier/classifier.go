package classifier

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/internal/models"
	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/internal/types"
	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/pkg/logger"
)

const systemPrompt = "You are an AI assistant that classifies emails into four categories: " +
	"'positive_review', 'negative_review', 'price_availability_inquiry', or 'general_inquiry'. " +
	"Respond with ONLY the category name, nothing else."

const userPromptTemplate = `Classify the following email into one of these categories: 'positive_review', 'negative_review', 'price_availability_inquiry', or 'general_inquiry':

%s

Classification:`

// categoryPattern extracts the first category token anywhere in the model
// output, tolerating surrounding explanatory text.
var categoryPattern = regexp.MustCompile(`(positive_review|negative_review|price_availability_inquiry|general_inquiry)`)

// Classifier assigns one of the closed-set categories to an email. The
// classification call runs at temperature zero; output that contains no
// category token resolves to CategoryError rather than a guess.
type Classifier struct {
	completer types.Completer
	log       *logger.Logger
}

func New(completer types.Completer, log *logger.Logger) *Classifier {
	return &Classifier{
		completer: completer,
		log:       log,
	}
}

// Classify returns the email's category, or models.CategoryError when the
// completion fails or its output contains no category token. It never
// returns an error: ambiguity is a data value here.
func (c *Classifier) Classify(ctx context.Context, email string) models.Category {
	raw, err := c.completer.Complete(ctx, systemPrompt, fmt.Sprintf(userPromptTemplate, email), 0)
	if err != nil {
		c.log.Error("error classifying email", "error", err)
		return models.CategoryError
	}

	normalized := strings.ToLower(strings.TrimSpace(raw))
	c.log.Info("raw classification response", "response", normalized)

	match := categoryPattern.FindString(normalized)
	if match == "" {
		c.log.Warn("unexpected classification", "response", normalized)
		return models.CategoryError
	}

	category := models.Category(match)
	c.log.Info("extracted classification", "category", category)
	return category
}
