// mock_client.go - Mock model client and agent for testing
package testutil

import (
	"context"
	"sync"

	"github.com/paperlens/backend/internal/agent"
	"github.com/paperlens/backend/internal/models"
)

// MockClient implements agent.Client for testing
type MockClient struct {
	mu         sync.Mutex
	Reply      string
	Err        error
	ModelName  string
	LastPrompt string
	calls      int
}

func (m *MockClient) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	m.LastPrompt = prompt
	if m.Err != nil {
		return "", m.Err
	}
	return m.Reply, nil
}

func (m *MockClient) Model() string {
	if m.ModelName == "" {
		return "mock-model"
	}
	return m.ModelName
}

// Calls returns how many times Generate was invoked
func (m *MockClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Ensure MockClient implements agent.Client
var _ agent.Client = (*MockClient)(nil)

// MockAgent stands in for the analysis pipeline in handler tests
type MockAgent struct {
	mu        sync.Mutex
	Analysis  *models.Analysis
	Err       error
	LastInput agent.Input
	calls     int
}

func (m *MockAgent) Analyze(ctx context.Context, in agent.Input) (*models.Analysis, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	m.LastInput = in
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Analysis, nil
}

// Calls returns how many times Analyze was invoked
func (m *MockAgent) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
