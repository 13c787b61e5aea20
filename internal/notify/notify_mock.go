package notify

import (
	"context"

	"github.com/huangsam/moodtrack/internal/contract"
	"github.com/huangsam/moodtrack/schema"
	"github.com/stretchr/testify/mock"
)

// MockNotifier is a mock implementation of contract.Notifier.
type MockNotifier struct {
	mock.Mock
}

var _ contract.Notifier = &MockNotifier{}

// PublishReport mocks publishing a report event.
func (m *MockNotifier) PublishReport(ctx context.Context, out schema.ReportOutput) error {
	args := m.Called(ctx, out)
	return args.Error(0)
}

// Close mocks closing the notifier.
func (m *MockNotifier) Close() error {
	args := m.Called()
	return args.Error(0)
}
