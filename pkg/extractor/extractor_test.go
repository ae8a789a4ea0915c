package extractor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/pkg/extractor"
	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/pkg/logger"
)

type stubCompleter struct {
	response string
	err      error
}

func (s *stubCompleter) Complete(ctx context.Context, system, user string, temperature float64) (string, error) {
	return s.response, s.err
}

func TestExtractEquipmentName(t *testing.T) {
	e := extractor.New(&stubCompleter{response: "  Canon EF 24-70mm \n"}, logger.NewNop())

	name, ok := e.ExtractEquipmentName(context.Background(), "Is the Canon EF 24-70mm lens available?")

	assert.True(t, ok)
	assert.Equal(t, "Canon EF 24-70mm", name)
}

func TestExtractEquipmentName_Verbatim(t *testing.T) {
	// No validation against the catalog: hallucinated names come back as-is.
	e := extractor.New(&stubCompleter{response: "Underwater Housing Mk3"}, logger.NewNop())

	name, ok := e.ExtractEquipmentName(context.Background(), "any email")

	assert.True(t, ok)
	assert.Equal(t, "Underwater Housing Mk3", name)
}

func TestExtractEquipmentName_CompletionFailure(t *testing.T) {
	e := extractor.New(&stubCompleter{err: errors.New("timeout")}, logger.NewNop())

	name, ok := e.ExtractEquipmentName(context.Background(), "any email")

	assert.False(t, ok)
	assert.Empty(t, name)
}

func TestExtractEquipmentName_EmptyOutput(t *testing.T) {
	e := extractor.New(&stubCompleter{response: "   "}, logger.NewNop())

	name, ok := e.ExtractEquipmentName(context.Background(), "any email")

	assert.False(t, ok)
	assert.Empty(t, name)
}
