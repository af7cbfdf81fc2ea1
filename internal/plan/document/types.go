package document

// Status is the semantic state carried by a task's bracket mark.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusDone       Status = "done"
	StatusPartial    Status = "partial"
	StatusCancelled  Status = "cancelled"
	StatusInProgress Status = "in_progress"
	StatusNeedHelp   Status = "need_help"
)

// Section is a level-2 heading and the line range it owns, up to the line
// before the next level-2 heading (or end of document). Derived on every
// parse, never stored.
type Section struct {
	Title string
	Start int
	End   int
}

// Task is one checklist line. LineIndex is positional identity only and is
// invalidated by any mutation of the document.
type Task struct {
	LineIndex  int
	Raw        string
	Mark       string
	Status     Status
	Text       string
	Section    string
	Subsection string
}

// markToStatus maps the six recognized bracket marks (lowercased) to their
// semantic status.
var markToStatus = map[string]Status{
	"[ ]": StatusTodo,
	"[x]": StatusDone,
	"[~]": StatusPartial,
	"[!]": StatusCancelled,
	"[>]": StatusInProgress,
	"[?]": StatusNeedHelp,
}

var statusToMark = map[Status]string{
	StatusTodo:       "[ ]",
	StatusDone:       "[x]",
	StatusPartial:    "[~]",
	StatusCancelled:  "[!]",
	StatusInProgress: "[>]",
	StatusNeedHelp:   "[?]",
}
