package config

import (
	"github.com/stretchr/testify/mock"
)

// MockManager implements the Manager interface for testing
type MockManager struct {
	mock.Mock
}

func (m *MockManager) LoadConfig() (Config, error) {
	args := m.Called()
	return args.Get(0).(Config), args.Error(1)
}

func (m *MockManager) SaveConfig(cfg Config) error {
	args := m.Called(cfg)
	return args.Error(0)
}

func (m *MockManager) ConfigExists() bool {
	args := m.Called()
	return args.Bool(0)
}
