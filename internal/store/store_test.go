package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestKVRoundTrip(t *testing.T) {
	s := openTestStore(t)
	kv := s.KVRepo()
	ctx := context.Background()

	// Absent key.
	_, ok, err := kv.Get(ctx, KeyUserProfile)
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if ok {
		t.Fatal("expected absent key")
	}

	// Create.
	if err := kv.Set(ctx, KeyUserProfile, `{"name":"Tí"}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := kv.Get(ctx, KeyUserProfile)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || got != `{"name":"Tí"}` {
		t.Fatalf("get = %q, %v", got, ok)
	}

	// Overwrite.
	if err := kv.Set(ctx, KeyUserProfile, `{"name":"Tèo"}`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _, _ = kv.Get(ctx, KeyUserProfile)
	if got != `{"name":"Tèo"}` {
		t.Fatalf("after overwrite = %q", got)
	}

	// Remove, then remove again (no error).
	if err := kv.Remove(ctx, KeyUserProfile); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := kv.Remove(ctx, KeyUserProfile); err != nil {
		t.Fatalf("remove absent: %v", err)
	}
	_, ok, _ = kv.Get(ctx, KeyUserProfile)
	if ok {
		t.Fatal("expected key gone after remove")
	}
}

func TestKVKeysAreIndependent(t *testing.T) {
	s := openTestStore(t)
	kv := s.KVRepo()
	ctx := context.Background()

	if err := kv.Set(ctx, KeyUserProfile, "profile"); err != nil {
		t.Fatalf("set profile: %v", err)
	}
	if err := kv.Set(ctx, KeyCredential, "secret"); err != nil {
		t.Fatalf("set credential: %v", err)
	}
	if err := kv.Remove(ctx, KeyUserProfile); err != nil {
		t.Fatalf("remove profile: %v", err)
	}

	got, ok, err := kv.Get(ctx, KeyCredential)
	if err != nil || !ok || got != "secret" {
		t.Fatalf("credential = %q, %v, %v", got, ok, err)
	}
}

func TestAppendAndQueryLLMRequests(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	models := []string{"gemini-3-flash-preview", "gemini-3-pro-preview", "gemini-2.5-flash"}
	for i, m := range models {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "gemini",
			Model:        m,
			Purpose:      "path-gen",
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    800,
			Success:      i == 2,
			ErrorMessage: "",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	recs, err := repo.RecentLLMRequests(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Model != "gemini-2.5-flash" {
		t.Errorf("newest first: got %q", recs[0].Model)
	}
	if !recs[0].Success {
		t.Error("expected newest record to be a success")
	}
	if recs[0].Sequence <= recs[1].Sequence {
		t.Errorf("sequences not descending: %d, %d", recs[0].Sequence, recs[1].Sequence)
	}
}

func TestAppendQuizResult(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendQuizResult(ctx, QuizResultEventData{
		UnitID:           "unit-1",
		UnitTitle:        "Phép cộng trong phạm vi 100",
		Level:            2,
		Score:            7,
		Total:            10,
		TimeSpentSeconds: 95,
		Passed:           true,
	})
	if err != nil {
		t.Fatalf("append quiz result: %v", err)
	}

	count, err := s.Client().QuizResultEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 quiz result event, got %d", count)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	if err := repo.Save(ctx, `{"name":"Tí","grade":3}`); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(ctx, `{"name":"Tí","grade":4}`); err != nil {
		t.Fatalf("save second: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Profile == "" {
		t.Fatal("expected profile JSON in snapshot")
	}
}

func TestSnapshotSaveRejectsBadJSON(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()

	if err := repo.Save(context.Background(), "not json"); err == nil {
		t.Fatal("expected error for invalid profile JSON")
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		if err := repo.Save(ctx, `{"name":"Tí"}`); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := repo.Save(ctx, `{"name":"Tí"}`); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq <= prev {
			t.Errorf("sequence not increasing: %d after %d", seq, prev)
		}
		prev = seq
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"profile_records", "llm_request_events", "quiz_result_events", "snapshots"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestGetLLMRequest(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "exam-gen",
		InputTokens:  2000,
		OutputTokens: 900,
		LatencyMs:    4200,
		Success:      true,
		RequestBody:  `{"prompt":"..."}`,
		ResponseBody: `{"questions":[]}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	recs, err := repo.RecentLLMRequests(ctx, 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}

	got, err := repo.GetLLMRequest(ctx, recs[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected a record")
	}
	if got.RequestBody != `{"prompt":"..."}` || got.ResponseBody != `{"questions":[]}` {
		t.Errorf("bodies not preserved: %q / %q", got.RequestBody, got.ResponseBody)
	}

	missing, err := repo.GetLLMRequest(ctx, recs[0].ID+1000)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for absent id, got %+v", missing)
	}
}

func TestUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-3-flash-preview", Purpose: "path-gen", InputTokens: 100, OutputTokens: 40, LatencyMs: 1000, Success: true},
		{Provider: "gemini", Model: "gemini-3-flash-preview", Purpose: "path-gen", InputTokens: 300, OutputTokens: 60, LatencyMs: 3000, Success: true},
		{Provider: "gemini", Model: "gemini-3-pro-preview", Purpose: "game-gen", InputTokens: 50, OutputTokens: 20, LatencyMs: 500, Success: true},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.UsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purpose rows, got %d", len(byPurpose))
	}
	rows := make(map[string]PurposeUsage, len(byPurpose))
	for _, r := range byPurpose {
		rows[r.Purpose] = r
	}
	pg, ok := rows["path-gen"]
	if !ok {
		t.Fatal("missing path-gen row")
	}
	if pg.Calls != 2 || pg.InputTokens != 400 || pg.OutputTokens != 100 {
		t.Errorf("path-gen aggregate wrong: %+v", pg)
	}
	if pg.AvgLatencyMs != 2000 {
		t.Errorf("path-gen avg latency = %d, want 2000", pg.AvgLatencyMs)
	}

	byModel, err := repo.UsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 model rows, got %d", len(byModel))
	}
	models := make(map[string]ModelUsage, len(byModel))
	for _, r := range byModel {
		models[r.Model] = r
	}
	flash := models["gemini-3-flash-preview"]
	if flash.Calls != 2 || flash.InputTokens != 400 || flash.OutputTokens != 100 {
		t.Errorf("flash aggregate wrong: %+v", flash)
	}
}
