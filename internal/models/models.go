package models

// Category is the closed set of email classifications plus the sentinel
// values the router can produce.
type Category string

const (
	CategoryPositiveReview   Category = "positive_review"
	CategoryNegativeReview   Category = "negative_review"
	CategoryPriceInquiry     Category = "price_availability_inquiry"
	CategoryGeneralInquiry   Category = "general_inquiry"
	CategoryError            Category = "error"
	CategoryForwardToSupport Category = "forward_to_customer_service"
)

// Valid reports whether c is one of the four classifier categories.
// The sentinels are routing outcomes, not classifications.
func (c Category) Valid() bool {
	switch c {
	case CategoryPositiveReview, CategoryNegativeReview, CategoryPriceInquiry, CategoryGeneralInquiry:
		return true
	}
	return false
}

// Equipment is one rentable item in the catalog. Name is the lookup key and
// is matched byte-for-byte.
type Equipment struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"uniqueIndex;not null"`
	Category  string  `gorm:"not null"`
	Price     float64 `gorm:"not null"`
	Available bool    `gorm:"default:true"`
}

func (Equipment) TableName() string { return "equipment" }

// FaqChunk is one fixed-size segment of the FAQ corpus. Position is the
// segment's ordinal within the document, dense from zero.
type FaqChunk struct {
	Text     string
	Position int
}

// ScoredChunk is a retrieval hit: chunk text plus its distance to the query.
type ScoredChunk struct {
	FaqChunk
	Score float32
}

// RoutingResult is the single outcome of routing one email.
type RoutingResult struct {
	Category Category `json:"category"`
	Response string   `json:"response"`
}
