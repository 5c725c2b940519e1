package service

import (
	"context"
	"encoding/json"
)

// IngredientQuery is the raw comma-separated ingredient list supplied by the
// caller. Set is false when the query parameter was absent altogether, in
// which case the parameter is left off the upstream request.
type IngredientQuery struct {
	Value string
	Set   bool
}

// RecipeProvider defines the upstream recipe lookups the gateway relays.
// Payloads are returned as opaque JSON and never inspected.
type RecipeProvider interface {
	FindByIngredients(ctx context.Context, query IngredientQuery) (json.RawMessage, error)
	GetRecipeInformation(ctx context.Context, id string) (json.RawMessage, error)
}
