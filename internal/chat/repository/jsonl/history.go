// Package jsonl persists the conversation log as one JSON record per
// line. The file is append-only; blank or malformed lines are skipped on
// read so a torn write never poisons the whole history.
package jsonl

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"daily-plan-assistant/internal/model"
	"daily-plan-assistant/pkg/log"
)

type history struct {
	l    log.Logger
	path string

	// now stamps appended records; swapped in tests.
	now func() time.Time
}

// New creates a JSONL-backed History at path, creating parent
// directories eagerly so the first append cannot fail on a missing dir.
func New(l log.Logger, path string) (*history, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	return &history{l: l, path: path, now: time.Now}, nil
}

func (h *history) Append(ctx context.Context, role, content string) error {
	record := model.ChatMessage{
		Timestamp: h.now().Format(model.TimestampFormat),
		Role:      role,
		Content:   content,
	}
	line, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal chat record: %w", err)
	}

	f, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", h.path, err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append %s: %w", h.path, err)
	}
	return nil
}

func (h *history) List(ctx context.Context) ([]model.ChatMessage, error) {
	f, err := os.Open(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", h.path, err)
	}
	defer f.Close()

	var records []model.ChatMessage
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var record model.ChatMessage
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			h.l.Warnf(ctx, "skipping malformed history line: %v", err)
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", h.path, err)
	}
	return records, nil
}
