package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipe-gateway/internal/service"
)

// MockRecipeProvider is a mock implementation of service.RecipeProvider
type MockRecipeProvider struct {
	mock.Mock
}

// FindByIngredients mocks the FindByIngredients method
func (m *MockRecipeProvider) FindByIngredients(ctx context.Context, query service.IngredientQuery) (json.RawMessage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// GetRecipeInformation mocks the GetRecipeInformation method
func (m *MockRecipeProvider) GetRecipeInformation(ctx context.Context, id string) (json.RawMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}
