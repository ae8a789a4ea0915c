package router

import (
	"context"

	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/internal/models"
	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/internal/types"
	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/pkg/logger"
)

const (
	forwardMessage = "This email requires further evaluation and has been forwarded to our customer service team. They will contact you shortly."
	errorMessage   = "We encountered an error processing your email. A customer service representative will contact you shortly."
)

// Router is the classify-then-dispatch engine. Dependencies are injected at
// construction and shared across calls; routing mutates nothing.
type Router struct {
	classifier types.Classifier
	handlers   map[models.Category]types.Handler
	log        *logger.Logger
}

func New(classifier types.Classifier, positive, negative, price, general types.Handler, log *logger.Logger) *Router {
	return &Router{
		classifier: classifier,
		handlers: map[models.Category]types.Handler{
			models.CategoryPositiveReview: positive,
			models.CategoryNegativeReview: negative,
			models.CategoryPriceInquiry:   price,
			models.CategoryGeneralInquiry: general,
		},
		log: log,
	}
}

// Route classifies the email and dispatches to the matching handler. Every
// call returns exactly one result:
//   - a valid category with the handler's response,
//   - forward_to_customer_service when classification resolved to error or
//     an unrecognized token,
//   - error with a static apology when a handler fails or panics.
//
// It never raises past its own boundary.
func (r *Router) Route(ctx context.Context, email string) (result models.RoutingResult) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("panic while handling email", "panic", rec)
			result = models.RoutingResult{
				Category: models.CategoryError,
				Response: errorMessage,
			}
		}
	}()

	category := r.classifier.Classify(ctx, email)

	handler, ok := r.handlers[category]
	if !ok || !category.Valid() {
		return models.RoutingResult{
			Category: models.CategoryForwardToSupport,
			Response: forwardMessage,
		}
	}

	response, err := handler.Handle(ctx, email)
	if err != nil {
		r.log.Error("error handling email", "category", category, "error", err)
		return models.RoutingResult{
			Category: models.CategoryError,
			Response: errorMessage,
		}
	}

	return models.RoutingResult{
		Category: category,
		Response: response,
	}
}
