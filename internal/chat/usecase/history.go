package usecase

import (
	"context"

	"daily-plan-assistant/internal/chat"
)

// History pages backwards over the conversation log. The window ends at
// Before (clamped to the record count, nil meaning the end) and spans at
// most Limit records; the slice comes back in chronological order with
// NextBefore pointing at the next older page.
func (uc *implUseCase) History(ctx context.Context, input chat.HistoryInput) (chat.HistoryOutput, error) {
	records, err := uc.history.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.History history.List: %v", err)
		return chat.HistoryOutput{}, err
	}

	items := conversational(records)
	total := len(items)
	if total == 0 {
		return chat.HistoryOutput{History: nil, NextBefore: nil, Total: 0}, nil
	}

	end := total
	if input.Before != nil {
		end = *input.Before
		if end < 0 {
			end = 0
		}
		if end > total {
			end = total
		}
	}

	limit := input.Limit
	if limit < 1 {
		limit = 1
	}
	start := end - limit
	if start < 0 {
		start = 0
	}

	out := chat.HistoryOutput{History: items[start:end], Total: total}
	if start > 0 {
		next := start
		out.NextBefore = &next
	}
	return out, nil
}
