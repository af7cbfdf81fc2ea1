package tools

import (
	"context"
	"fmt"
	"os"

	"daily-plan-assistant/internal/agent"
	pkgLog "daily-plan-assistant/pkg/log"
)

type ListDirectoryTool struct {
	l pkgLog.Logger
}

func NewListDirectoryTool(l pkgLog.Logger) *ListDirectoryTool {
	return &ListDirectoryTool{l: l}
}

func (t *ListDirectoryTool) Name() string {
	return "list_directory"
}

func (t *ListDirectoryTool) Description() string {
	return "List files and subdirectories of a directory."
}

func (t *ListDirectoryTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"dir_path": map[string]interface{}{
				"type":        "string",
				"description": "Directory path",
				"default":     ".",
			},
		},
		"required": []string{},
	}
}

type ListDirectoryOutput struct {
	Directory        string   `json:"directory"`
	Files            []string `json:"files"`
	Directories      []string `json:"directories"`
	TotalFiles       int      `json:"total_files"`
	TotalDirectories int      `json:"total_directories"`
}

func (t *ListDirectoryTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	dirPath, _ := args["dir_path"].(string)
	if dirPath == "" {
		dirPath = "."
	}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("list directory %q: %w", dirPath, err)
	}

	files := []string{}
	directories := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			directories = append(directories, entry.Name())
		} else {
			files = append(files, entry.Name())
		}
	}

	return ListDirectoryOutput{
		Directory:        dirPath,
		Files:            files,
		Directories:      directories,
		TotalFiles:       len(files),
		TotalDirectories: len(directories),
	}, nil
}

// Verify interface compliance
var _ agent.Tool = (*ListDirectoryTool)(nil)
