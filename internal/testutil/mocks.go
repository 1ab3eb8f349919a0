package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"
	tele "gopkg.in/telebot.v3"
)

// MockSender is a mock for notifier.Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
	args := m.Called(to, what)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tele.Message), args.Error(1)
}

// MockAPIClient is a mock for poller.APIClient
type MockAPIClient struct {
	mock.Mock
}

func (m *MockAPIClient) GetAPIAnswer(ctx context.Context, timestamp int64) (any, error) {
	args := m.Called(ctx, timestamp)
	return args.Get(0), args.Error(1)
}

// MockNotifier is a mock for poller.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendMessage(text string) {
	m.Called(text)
}
