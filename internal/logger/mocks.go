package logger

import "github.com/stretchr/testify/mock"

// MockLogger implements the Logger interface for testing
type MockLogger struct {
	mock.Mock
}

var _ Logger = (*MockLogger)(nil)

func (m *MockLogger) Debug(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *MockLogger) Info(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *MockLogger) Warn(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *MockLogger) Error(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *MockLogger) Debugf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Infof(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Warnf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Errorf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) WithField(key string, value interface{}) Logger {
	args := m.Called(key, value)
	if l, ok := args.Get(0).(Logger); ok {
		return l
	}
	return m
}

func (m *MockLogger) WithFields(fields map[string]interface{}) Logger {
	args := m.Called(fields)
	if l, ok := args.Get(0).(Logger); ok {
		return l
	}
	return m
}

func (m *MockLogger) Sync() error {
	args := m.Called()
	return args.Error(0)
}
