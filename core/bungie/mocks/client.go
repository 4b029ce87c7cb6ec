package mocks

import (
	"context"
	"encoding/json"

	"armory/core/bungie"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of bungie.Client
type Client struct {
	mock.Mock
}

func (m *Client) GetManifest(ctx context.Context) (*bungie.Manifest, error) {
	args := m.Called(ctx)
	if manifest, ok := args.Get(0).(*bungie.Manifest); ok {
		return manifest, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Get(ctx context.Context, path string, v any) error {
	args := m.Called(ctx, path, v)
	if err := args.Error(1); err != nil {
		return err
	}
	// Expectations stage a JSON payload to decode into v.
	if payload, ok := args.Get(0).([]byte); ok && payload != nil {
		return json.Unmarshal(payload, v)
	}
	return nil
}
