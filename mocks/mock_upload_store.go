package mocks

import (
	"io"

	"github.com/stretchr/testify/mock"
)

// MockUploadStore is a mock implementation of port.UploadStore.
type MockUploadStore struct {
	mock.Mock
}

func (m *MockUploadStore) Save(r io.Reader, ext string) (string, error) {
	args := m.Called(r, ext)
	return args.String(0), args.Error(1)
}

func (m *MockUploadStore) Remove(path string) error {
	args := m.Called(path)
	return args.Error(0)
}
