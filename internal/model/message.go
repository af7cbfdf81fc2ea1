package model

// Chat roles stored in the history log. Other roles are ignored when the
// log is read back as conversation context.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// TimestampFormat is the wall-clock format written into history records.
const TimestampFormat = "2006-01-02 15:04:05"

// ChatMessage is a single conversation record, one JSONL line in the
// history log.
type ChatMessage struct {
	Timestamp string `json:"timestamp"`
	Role      string `json:"role"`
	Content   string `json:"content"`
}
