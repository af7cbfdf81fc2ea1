package tools

import (
	"context"
	"fmt"

	"daily-plan-assistant/internal/agent"
	pkgLog "daily-plan-assistant/pkg/log"
)

// builtinTranslations is the tiny demo dictionary; anything else passes
// through marked as untranslated.
var builtinTranslations = map[string]string{
	"你好": "Hello",
	"谢谢": "Thank you",
	"再见": "Goodbye",
}

type TranslateTool struct {
	l pkgLog.Logger
}

func NewTranslateTool(l pkgLog.Logger) *TranslateTool {
	return &TranslateTool{l: l}
}

func (t *TranslateTool) Name() string {
	return "translate_text"
}

func (t *TranslateTool) Description() string {
	return "Translate text using a small built-in dictionary. Unknown text passes through marked as untranslated."
}

func (t *TranslateTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"text": map[string]interface{}{
				"type":        "string",
				"description": "Text to translate",
			},
			"target_lang": map[string]interface{}{
				"type":        "string",
				"description": "Target language code",
				"default":     "en",
			},
		},
		"required": []string{"text"},
	}
}

type TranslateOutput struct {
	Original       string `json:"original"`
	Translated     string `json:"translated"`
	TargetLanguage string `json:"target_language"`
}

func (t *TranslateTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	text, _ := args["text"].(string)
	targetLang, _ := args["target_lang"].(string)
	if targetLang == "" {
		targetLang = "en"
	}

	translated, ok := builtinTranslations[text]
	if !ok {
		translated = fmt.Sprintf("[%s] (模拟翻译)", text)
	}
	return TranslateOutput{
		Original:       text,
		Translated:     translated,
		TargetLanguage: targetLang,
	}, nil
}

// Verify interface compliance
var _ agent.Tool = (*TranslateTool)(nil)
