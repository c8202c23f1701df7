package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type Publisher struct {
	mock.Mock
}

func (m *Publisher) Publish(ctx context.Context, key string, event any) error {
	args := m.Called(ctx, key, event)
	return args.Error(0)
}

func (m *Publisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
