package handler

import "doc-compare/internal/domain"

// Mock logger used by handler package tests.
type MockHandlerLogger struct {
	Errors []string
}

func NewMockHandlerLogger() *MockHandlerLogger {
	return &MockHandlerLogger{}
}

func (l *MockHandlerLogger) Info(msg string, fields ...interface{}) {}
func (l *MockHandlerLogger) Error(msg string, err error, fields ...interface{}) {
	l.Errors = append(l.Errors, msg)
}
func (l *MockHandlerLogger) Debug(msg string, fields ...interface{}) {}
func (l *MockHandlerLogger) Warn(msg string, fields ...interface{}) {}
func (l *MockHandlerLogger) With(fields ...interface{}) domain.Logger {
	return l
}
