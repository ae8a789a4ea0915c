package extractor

import (
	"context"
	"fmt"
	"strings"

	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/internal/types"
	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/pkg/logger"
)

const systemPrompt = "You are an AI assistant that extracts equipment names from emails."

const userPromptTemplate = "Extract the name of the film equipment mentioned in the following email:\n\n%s\n\nEquipment name:"

// Extractor pulls an equipment name out of free-text email content. The
// returned string is the model's trimmed output verbatim; whether it names a
// real catalog entry is the caller's problem.
type Extractor struct {
	completer types.Completer
	log       *logger.Logger
}

func New(completer types.Completer, log *logger.Logger) *Extractor {
	return &Extractor{
		completer: completer,
		log:       log,
	}
}

// ExtractEquipmentName returns the extracted name and true, or ("", false)
// when the completion fails. Failures are logged and never propagated.
func (e *Extractor) ExtractEquipmentName(ctx context.Context, email string) (string, bool) {
	raw, err := e.completer.Complete(ctx, systemPrompt, fmt.Sprintf(userPromptTemplate, email), 0)
	if err != nil {
		e.log.Error("error extracting equipment name", "error", err)
		return "", false
	}

	name := strings.TrimSpace(raw)
	if name == "" {
		return "", false
	}
	return name, true
}
