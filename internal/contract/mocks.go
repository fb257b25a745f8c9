package contract

import (
	"context"
	"time"

	"github.com/covidboard/covidstore/schema"
	"github.com/stretchr/testify/mock"
)

// MockFeedClient is a mock implementation of FeedClient for testing.
type MockFeedClient struct {
	mock.Mock
}

var _ FeedClient = &MockFeedClient{} // Compile-time check

// FetchFeed implements the FeedClient interface.
func (m *MockFeedClient) FetchFeed(ctx context.Context, feed schema.Feed) (string, error) {
	args := m.Called(ctx, feed)
	return args.String(0), args.Error(1)
}

// FetchLastUpdated implements the FeedClient interface.
func (m *MockFeedClient) FetchLastUpdated(ctx context.Context) (time.Time, error) {
	args := m.Called(ctx)
	return args.Get(0).(time.Time), args.Error(1)
}
