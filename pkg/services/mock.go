package services

import (
	"context"
	"errors"
	"sync"
)

// MockCollaborator is an in-process stand-in for the AI engine, used by
// handler tests. It records calls and can be forced to fail.
type MockCollaborator struct {
	mu sync.Mutex

	Answer string
	Err    error

	AskCalls     []string
	ProcessCalls []ProcessCall
}

type ProcessCall struct {
	Filename string
	FilePath string
}

var ErrMockUnavailable = errors.New("mock collaborator unavailable")

func NewMockCollaborator(answer string) *MockCollaborator {
	return &MockCollaborator{Answer: answer}
}

func (m *MockCollaborator) ProcessPDF(ctx context.Context, filename, filePath string) (IngestResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ProcessCalls = append(m.ProcessCalls, ProcessCall{Filename: filename, FilePath: filePath})
	if m.Err != nil {
		return nil, m.Err
	}
	return IngestResult{"filename": filename, "status": "success"}, nil
}

func (m *MockCollaborator) Ask(ctx context.Context, question string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AskCalls = append(m.AskCalls, question)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Answer, nil
}

// AskCount returns how many times Ask was invoked.
func (m *MockCollaborator) AskCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.AskCalls)
}
