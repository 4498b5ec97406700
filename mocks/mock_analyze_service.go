package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"legibrief/internal/domain"
)

// MockAnalyzeService is a mock implementation of service.AnalyzeService.
type MockAnalyzeService struct {
	mock.Mock
}

func (m *MockAnalyzeService) Analyze(ctx context.Context, text string) (domain.BillRecord, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(domain.BillRecord), args.Error(1)
}
