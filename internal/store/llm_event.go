package store

import (
	"context"
	"fmt"

	"github.com/khanhvo/mathgenius/ent"
	"github.com/khanhvo/mathgenius/ent/llmrequestevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) AppendQuizResult(ctx context.Context, data QuizResultEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizResultEvent.Create().
		SetSequence(seqNum).
		SetUnitID(data.UnitID).
		SetUnitTitle(data.UnitTitle).
		SetLevel(data.Level).
		SetScore(data.Score).
		SetTotal(data.Total).
		SetTimeSpentSeconds(data.TimeSpentSeconds).
		SetPassed(data.Passed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz result event: %w", err)
	}

	return nil
}

func (r *eventRepo) RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestRecord, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	out := make([]LLMRequestRecord, len(rows))
	for i, e := range rows {
		out[i] = recordFromRow(e)
	}
	return out, nil
}

func (r *eventRepo) GetLLMRequest(ctx context.Context, id int) (*LLMRequestRecord, error) {
	e, err := r.client.LLMRequestEvent.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM request event %d: %w", id, err)
	}
	rec := recordFromRow(e)
	return &rec, nil
}

func (r *eventRepo) UsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	var rows []struct {
		Purpose string  `json:"purpose"`
		Calls   int     `json:"calls"`
		In      int     `json:"in"`
		Out     int     `json:"out"`
		AvgMs   float64 `json:"avg_ms"`
	}
	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldPurpose).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "in"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "out"),
			ent.As(ent.Mean(llmrequestevent.FieldLatencyMs), "avg_ms"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate by purpose: %w", err)
	}

	out := make([]PurposeUsage, len(rows))
	for i, row := range rows {
		out[i] = PurposeUsage{
			Purpose:      row.Purpose,
			Calls:        row.Calls,
			InputTokens:  row.In,
			OutputTokens: row.Out,
			AvgLatencyMs: int64(row.AvgMs),
		}
	}
	return out, nil
}

func (r *eventRepo) UsageByModel(ctx context.Context) ([]ModelUsage, error) {
	var rows []struct {
		Model string `json:"model"`
		Calls int    `json:"calls"`
		In    int    `json:"in"`
		Out   int    `json:"out"`
	}
	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldModel).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "in"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "out"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate by model: %w", err)
	}

	out := make([]ModelUsage, len(rows))
	for i, row := range rows {
		out[i] = ModelUsage{
			Model:        row.Model,
			Calls:        row.Calls,
			InputTokens:  row.In,
			OutputTokens: row.Out,
		}
	}
	return out, nil
}

func recordFromRow(e *ent.LLMRequestEvent) LLMRequestRecord {
	return LLMRequestRecord{
		ID:           e.ID,
		Sequence:     e.Sequence,
		Timestamp:    e.Timestamp,
		Provider:     e.Provider,
		Model:        e.Model,
		Purpose:      e.Purpose,
		InputTokens:  e.InputTokens,
		OutputTokens: e.OutputTokens,
		LatencyMs:    e.LatencyMs,
		Success:      e.Success,
		ErrorMessage: e.ErrorMessage,
		RequestBody:  e.RequestBody,
		ResponseBody: e.ResponseBody,
	}
}
