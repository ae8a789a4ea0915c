package respond

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/internal/types"
	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/pkg/catalog"
	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/pkg/extractor"
	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/pkg/logger"
)

const extractionFallback = "Thank you for your inquiry. We couldn't find specific information about the equipment you mentioned. Please contact our customer service for further assistance."

// PriceAvailability answers price/availability inquiries by extracting an
// equipment name and reading the catalog. The model only identifies which
// record to read; the price and availability it reports always come from
// the stored record, never from generation.
type PriceAvailability struct {
	extractor *extractor.Extractor
	catalog   types.Catalog
	log       *logger.Logger
}

func NewPriceAvailability(ext *extractor.Extractor, cat types.Catalog, log *logger.Logger) *PriceAvailability {
	return &PriceAvailability{
		extractor: ext,
		catalog:   cat,
		log:       log,
	}
}

func (h *PriceAvailability) Handle(ctx context.Context, email string) (string, error) {
	name, ok := h.extractor.ExtractEquipmentName(ctx, email)
	if !ok {
		return extractionFallback, nil
	}

	equipment, err := h.catalog.FindByName(ctx, name)
	if errors.Is(err, catalog.ErrNotFound) {
		// The extracted name may be hallucinated; say so politely.
		return fmt.Sprintf("We're sorry, but we don't have information about %s in our database. Please contact our customer service for more details.", name), nil
	}
	if err != nil {
		return "", fmt.Errorf("catalog lookup for %q: %w", name, err)
	}

	availability := "available"
	if !equipment.Available {
		availability = "not available"
	}
	return fmt.Sprintf("The %s is %s for rent at $%s per day.", equipment.Name, availability, formatPrice(equipment.Price)), nil
}

// formatPrice renders the stored price with the shortest exact decimal,
// keeping at least one fractional digit: 50.00 -> "50.0", 49.99 -> "49.99".
func formatPrice(price float64) string {
	s := strconv.FormatFloat(price, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
