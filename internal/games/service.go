// Package games generates the entertainment corner: 4-5 math games,
// riddles and real-world challenges, each ending in one gradable
// question. It runs the same variant fallback as lesson generation but
// is the only generator allowed to fall back to built-in content, so the
// corner never renders empty.
package games

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/khanhvo/mathgenius/internal/contentgen"
	"github.com/khanhvo/mathgenius/internal/learner"
	"github.com/khanhvo/mathgenius/internal/llm"
)

// FallbackActivity is served when every model variant fails.
var FallbackActivity = learner.GameActivity{
	ID:                 "fallback-1",
	Type:               "puzzle",
	Title:              "Bí mật con số 0",
	Description:        "Tại sao con số 0 lại quan trọng đến thế?",
	Difficulty:         "Dễ",
	Duration:           "2 phút",
	XPReward:           50,
	InteractiveContent: "Cái gì không có bắt đầu, không có kết thúc, và cũng chẳng có gì ở giữa? (Nhập tên hình học)",
	Answer:             "Hình tròn",
	Hint:               "Hình dáng của nó giống cái nhẫn.",
	FunFact:            "Số 0 được phát minh bởi người Ấn Độ cổ đại!",
}

// Service generates game activities through the variant fallback chain.
type Service struct {
	variants      []llm.Provider
	hasCredential bool
}

// NewService creates a Service over the ordered provider variants.
func NewService(variants []llm.Provider, hasCredential bool) *Service {
	return &Service{variants: variants, hasCredential: hasCredential}
}

// Generate returns 4-5 fresh activities for the learner. A missing
// credential fails fast; exhausted generation degrades to the static
// fallback activity instead of erroring.
func (s *Service) Generate(ctx context.Context, p *learner.UserProfile) ([]learner.GameActivity, error) {
	if !s.hasCredential {
		return nil, contentgen.ErrMissingCredential
	}

	req := buildRequest(p)

	var payload struct {
		Activities []learner.GameActivity `json:"activities"`
	}
	err := contentgen.Invoke(llm.WithPurpose(ctx, llm.PurposeGameGen), s.variants, req, func(raw json.RawMessage) error {
		payload.Activities = nil
		if err := json.Unmarshal(raw, &payload); err != nil {
			return err
		}
		if len(payload.Activities) == 0 {
			return errors.New("no activities in payload")
		}
		for _, a := range payload.Activities {
			if a.InteractiveContent == "" || a.Answer == "" {
				return fmt.Errorf("activity %q has no gradable question", a.ID)
			}
		}
		return nil
	})
	if err != nil {
		var exhausted *contentgen.ErrGenerationExhausted
		if errors.As(err, &exhausted) {
			return []learner.GameActivity{FallbackActivity}, nil
		}
		return nil, err
	}

	return payload.Activities, nil
}

func buildRequest(p *learner.UserProfile) contentgen.Request {
	topics := "Toán tư duy cơ bản"
	if len(p.LearningPath) > 0 {
		n := len(p.LearningPath)
		if n > 3 {
			n = 3
		}
		titles := make([]string, n)
		for i := 0; i < n; i++ {
			titles[i] = p.LearningPath[i].Title
		}
		topics = strings.Join(titles, ", ")
	}

	trait := "Sáng tạo"
	style := "Logic"
	if p.NumerologyProfile != nil {
		if p.NumerologyProfile.Title != "" {
			trait = p.NumerologyProfile.Title
		}
		if p.NumerologyProfile.MathApproach != "" {
			style = p.NumerologyProfile.MathApproach
		}
	}

	prompt := fmt.Sprintf(`
Bạn là một nhà thiết kế Game Giáo Dục AI (Gamification Expert).
Hãy tạo ra 4-5 hoạt động giải trí toán học (Trò chơi, Câu đố, Thử thách) cho học sinh này.

HỒ SƠ NGƯỜI CHƠI:
- Lớp: %d
- Tính cách (Thần số học): %s - Thích %s
- Chủ đề đang học: %s

YÊU CẦU NỘI DUNG:
1. Vui vẻ, hài hước, mang tính tích cực.
2. Phù hợp với kiến thức Lớp %d.
3. QUAN TRỌNG: Tất cả hoạt động đều phải có một CÂU HỎI hoặc NHIỆM VỤ cụ thể mà học sinh có thể nhập đáp án vào ô trống.
4. Đối với 'challenge' (thử thách thực tế), hãy đặt câu hỏi về kết quả của thử thách (Ví dụ: "Bạn đếm được bao nhiêu hình tròn?", "Kết quả phép tính cuối cùng là gì?").
5. Cung cấp đáp án (answer) ngắn gọn, chính xác (số hoặc từ đơn) để hệ thống tự động chấm điểm.
6. Ngôn ngữ: Tiếng Việt.

CHI TIẾT LOẠI HÌNH:
- 'puzzle': Câu đố vui, đố mẹo toán học.
- 'game': Trò chơi tư duy nhỏ (dạng text).
- 'challenge': Thử thách thực tế (đo đạc, tìm kiếm) nhưng kết thúc bằng một câu hỏi kiểm tra.

OUTPUT JSON FORMAT ONLY.
`, p.Grade, trait, style, topics, p.Grade)

	return contentgen.Request{
		System:      "You are a fun and creative Gamification Master for kids. Follow math formatting rules strictly.",
		Prompt:      prompt,
		Schema:      activitiesSchema(),
		Temperature: 0.85,
		MaxTokens:   4096,
	}
}

func activitiesSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "game-activities",
		Description: "Math entertainment activities, each with one gradable question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"activities": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"id":          map[string]any{"type": "string"},
							"type":        map[string]any{"type": "string", "enum": []any{"game", "puzzle", "challenge"}},
							"title":       map[string]any{"type": "string"},
							"description": map[string]any{"type": "string"},
							"difficulty":  map[string]any{"type": "string", "enum": []any{"Dễ", "Vừa", "Khó"}},
							"duration":    map[string]any{"type": "string"},
							"xpReward":    map[string]any{"type": "number"},
							"interactiveContent": map[string]any{
								"type":        "string",
								"description": "Nội dung chính: Câu hỏi đố, luật chơi, hoặc hướng dẫn thử thách. PHẢI CÓ CÂU HỎI CUỐI CÙNG.",
							},
							"answer": map[string]any{
								"type":        "string",
								"description": "Đáp án CHÍNH XÁC cho câu hỏi (số hoặc từ ngắn) để chấm điểm.",
							},
							"hint":    map[string]any{"type": "string"},
							"funFact": map[string]any{"type": "string", "description": "Sự thật thú vị liên quan đến chủ đề"},
						},
						"required": []any{"id", "type", "title", "description", "difficulty", "duration", "xpReward", "interactiveContent", "answer", "funFact"},
					},
				},
			},
			"required": []any{"activities"},
		},
	}
}
