package tools

import (
	"context"
	"os"

	"daily-plan-assistant/internal/agent"
	pkgLog "daily-plan-assistant/pkg/log"
)

type FileInfoTool struct {
	l pkgLog.Logger
}

func NewFileInfoTool(l pkgLog.Logger) *FileInfoTool {
	return &FileInfoTool{l: l}
}

func (t *FileInfoTool) Name() string {
	return "file_info"
}

func (t *FileInfoTool) Description() string {
	return "Get size, modification time and type for a file path."
}

func (t *FileInfoTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"file_path": map[string]interface{}{
				"type":        "string",
				"description": "File path to inspect",
			},
		},
		"required": []string{"file_path"},
	}
}

type FileInfoOutput struct {
	FilePath    string `json:"file_path"`
	Exists      bool   `json:"exists"`
	Size        int64  `json:"size,omitempty"`
	Modified    string `json:"modified,omitempty"`
	IsFile      bool   `json:"is_file"`
	IsDirectory bool   `json:"is_directory"`
}

func (t *FileInfoTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	filePath, _ := args["file_path"].(string)

	info, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// A missing file is a valid answer, not a tool failure.
			return FileInfoOutput{FilePath: filePath, Exists: false}, nil
		}
		return nil, err
	}

	return FileInfoOutput{
		FilePath:    filePath,
		Exists:      true,
		Size:        info.Size(),
		Modified:    info.ModTime().Format("2006-01-02 15:04:05"),
		IsFile:      !info.IsDir(),
		IsDirectory: info.IsDir(),
	}, nil
}

// Verify interface compliance
var _ agent.Tool = (*FileInfoTool)(nil)
