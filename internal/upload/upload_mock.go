package upload

import (
	"context"

	"github.com/huangsam/moodtrack/internal/contract"
	"github.com/stretchr/testify/mock"
)

// MockUploader is a mock implementation of contract.Uploader.
type MockUploader struct {
	mock.Mock
}

var _ contract.Uploader = &MockUploader{}

// Name returns the mocked uploader name.
func (m *MockUploader) Name() string {
	args := m.Called()
	return args.String(0)
}

// Upload mocks an object upload.
func (m *MockUploader) Upload(ctx context.Context, filePath, objectName string) (string, error) {
	args := m.Called(ctx, filePath, objectName)
	return args.String(0), args.Error(1)
}
