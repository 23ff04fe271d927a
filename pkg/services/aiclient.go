package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Collaborator is the external PDF-ingestion / question-answering engine.
// Each Ask is independent of prior turns; conversation continuity lives
// entirely in the session store.
type Collaborator interface {
	// ProcessPDF hands the engine a filename plus a path it can read the
	// file from, and returns the engine's acknowledgment verbatim.
	ProcessPDF(ctx context.Context, filename, filePath string) (IngestResult, error)
	// Ask sends one question and returns the answer text.
	Ask(ctx context.Context, question string) (string, error)
}

// IngestResult is the engine's ingestion response, passed through untouched
// so the frontend sees whatever fields the engine emits (filename, status...).
type IngestResult map[string]any

// AIService talks HTTP/JSON to the engine. No retries: a failed call is
// reported as-is and the caller decides what to tell the user.
type AIService struct {
	baseURL string
	client  *http.Client
}

func NewAIService(baseURL string, timeout time.Duration) *AIService {
	return &AIService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *AIService) ProcessPDF(ctx context.Context, filename, filePath string) (IngestResult, error) {
	payload := map[string]string{
		"filename": filename,
		"filePath": filePath,
	}
	var result IngestResult
	if err := s.postJSON(ctx, "/process-pdf", payload, &result); err != nil {
		return nil, fmt.Errorf("process-pdf: %w", err)
	}
	return result, nil
}

func (s *AIService) Ask(ctx context.Context, question string) (string, error) {
	payload := map[string]string{"question": question}
	var result struct {
		Answer string `json:"answer"`
	}
	if err := s.postJSON(ctx, "/ask", payload, &result); err != nil {
		return "", fmt.Errorf("ask: %w", err)
	}
	if strings.TrimSpace(result.Answer) == "" {
		return "", fmt.Errorf("ask: empty answer from AI service")
	}
	return result.Answer, nil
}

func (s *AIService) postJSON(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[ai] %s returned %d: %s", path, resp.StatusCode, truncateForLog(string(data), 200))
		return fmt.Errorf("AI service returned status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func truncateForLog(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
