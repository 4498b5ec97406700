package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"legibrief/internal/domain"
)

// MockSearchService is a mock implementation of service.SearchService.
type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, query domain.SearchQuery) (domain.BillRecord, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(domain.BillRecord), args.Error(1)
}
