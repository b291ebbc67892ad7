// Package contentgen builds generation requests from the learner profile
// and analyzer output, and walks the ordered model-variant fallback chain
// until one produces schema-conforming content.
package contentgen

import (
	"fmt"
	"strings"

	"github.com/khanhvo/mathgenius/internal/analytics"
	"github.com/khanhvo/mathgenius/internal/learner"
	"github.com/khanhvo/mathgenius/internal/llm"
)

// mathFormattingRules is the fixed formatting contract embedded in every
// instruction: plain Unicode or simple HTML math notation, never LaTeX.
const mathFormattingRules = `
QUY TẮC HIỂN THỊ CÔNG THỨC TOÁN HỌC (QUAN TRỌNG):
1. LUÔN hiển thị công thức toán học dưới dạng ký hiệu Unicode đẹp mắt hoặc HTML đơn giản.
2. KHÔNG dùng LaTeX ($$, $).
3. CÁCH VIẾT:
   - Phân số: dùng a/b hoặc <sup>a</sup>/<sub>b</sub>
   - Mũ: x² (Unicode) hoặc x<sup>2</sup> (HTML)
   - Chỉ số dưới: aₙ (Unicode) hoặc a<sub>n</sub> (HTML)
   - Căn: √x
   - Các ký hiệu: ± × ÷ ≤ ≥ ≠ ≈ ∞ ∈ ∪ ∩ ∅ π Δ Σ ∫
4. ĐỊNH DẠNG:
   - Với các biểu thức phức tạp, hãy dùng thẻ HTML để trình bày rõ ràng.
`

// Request is a fully composed generation request: instruction, structured
// output contract, and sampling temperature. Building one is pure.
type Request struct {
	System      string
	Prompt      string
	Schema      *llm.Schema
	Temperature float64
	MaxTokens   int
}

const defaultMaxTokens = 8192

// performanceContext renders the analyzer output as prompt text. Empty
// history gets the standard-path instruction instead.
func performanceContext(a analytics.Analysis) string {
	if !a.HasData {
		return "Học sinh mới, chưa có dữ liệu lịch sử. Hãy tạo lộ trình tiêu chuẩn theo lớp học."
	}

	weak := "Không có, nền tảng tốt."
	if len(a.WeakTopics) > 0 {
		weak = strings.Join(a.WeakTopics, ", ")
	}
	strong := "Đang phát triển."
	if len(a.StrongTopics) > 0 {
		strong = strings.Join(a.StrongTopics, ", ")
	}

	return fmt.Sprintf(`
PHÂN TÍCH DỮ LIỆU HỌC TẬP THỰC TẾ CỦA HỌC SINH (QUAN TRỌNG):
- Điểm trung bình gần đây: %.1f/10.
- Chủ đề đang yếu (CẦN KHẮC PHỤC NGAY): %s
- Chủ đề thế mạnh (CẦN PHÁT HUY): %s

YÊU CẦU ĐIỀU CHỈNH LỘ TRÌNH:
1. Nếu có "Chủ đề đang yếu": BẮT BUỘC bài học đầu tiên của lộ trình phải là "Ôn tập lại [Chủ đề yếu]" với mức độ Dễ để lấy lại gốc.
2. Nếu "Điểm trung bình" cao (>8.0): Tăng tỷ lệ câu hỏi Vận dụng cao lên 50%% cho các bài học mới.
3. Nếu "Điểm trung bình" thấp (<5.0): Giảm độ khó, tập trung vào lý thuyết và ví dụ minh họa, giải thích chi tiết.
`, a.RecentAverage*10, weak, strong)
}

// mathApproach returns the numerology math approach for prompt framing,
// with a neutral default when no profile is present.
func mathApproach(p *learner.UserProfile) string {
	if p.NumerologyProfile != nil && p.NumerologyProfile.MathApproach != "" {
		return p.NumerologyProfile.MathApproach
	}
	return "Logic, trực quan"
}

// studyHabits renders the self-assessment tags and notes for prompt
// framing. Empty when the learner left the assessment blank.
func studyHabits(p *learner.UserProfile) string {
	var lines []string
	if len(p.AssessmentTags) > 0 {
		lines = append(lines, "- Thói quen học tập: "+strings.Join(p.AssessmentTags, ", "))
	}
	if p.AssessmentNotes != "" {
		lines = append(lines, "- Ghi chú thêm: "+p.AssessmentNotes)
	}
	if len(lines) == 0 {
		return ""
	}
	return "\n" + strings.Join(lines, "\n")
}

// BuildPathRequest composes the learning path request: ordered unit
// drafts, 5-10 questions each, all three question types, biased by the
// learner's weak/strong topics and numerology learning style.
func BuildPathRequest(p *learner.UserProfile, a analytics.Analysis, topics []string) Request {
	prompt := fmt.Sprintf(`
Đóng vai một chuyên gia giáo dục toán học AI & Phân tích dữ liệu. Hãy tạo một lộ trình học tập tối ưu hóa theo ngày cho học sinh này:

THÔNG TIN CƠ BẢN:
- Lớp: %d
- Phong cách học (Thần số học): %s
- Chủ đề mong muốn: %s%s

%s

%s

YÊU CẦU CẤU TRÚC JSON:
1. Tạo danh sách các "Learning Unit" (Bài học).
2. Mỗi bài học bao gồm danh sách câu hỏi (Questions).
3. SỐ LƯỢNG CÂU HỎI: 5-10 câu/bài.
4. ĐA DẠNG HÌNH THỨC: 'multiple-choice', 'true-false', 'fill-in-blank'.
5. Ngôn ngữ: Tiếng Việt.

OUTPUT JSON FORMAT ONLY.
`, p.Grade, mathApproach(p), strings.Join(topics, ", "), studyHabits(p), performanceContext(a), mathFormattingRules)

	return Request{
		System:      "You are an Adaptive AI Tutor. You analyze student history to create the perfect learning path. Follow math formatting rules strictly.",
		Prompt:      prompt,
		Schema:      pathSchema(),
		Temperature: 0.7,
		MaxTokens:   defaultMaxTokens,
	}
}

// BuildChallengeRequest composes the upgraded-unit request: one draft at
// the next level with 10-15 questions skewed medium/hard.
func BuildChallengeRequest(p *learner.UserProfile, unit learner.LearningUnit) Request {
	nextLevel := unit.Level + 1
	if unit.Level == 0 {
		nextLevel = 2
	}

	prompt := fmt.Sprintf(`
Đóng vai một chuyên gia giáo dục toán học AI. Học sinh đã hoàn thành xuất sắc bài học "%s".
Hãy tạo một PHIÊN BẢN NÂNG CAO (Level %d) cho bài học này để thử thách học sinh.

THÔNG TIN ĐẦU VÀO:
- Chủ đề: %s
- Lớp: %d
- Cấp độ mới: Khó hơn, chuyên sâu hơn.

%s

YÊU CẦU CỤ THỂ:
1. Tạo 1 Learning Unit mới vẫn giữ chủ đề cũ nhưng tên gọi thể hiện sự nâng cao (VD: "... - Thử thách", "... - Nâng cao").
2. SỐ LƯỢNG CÂU HỎI: Từ 10 đến 15 câu.
3. ĐỘ KHÓ: 20%% Trung bình, 80%% Khó/Vận dụng cao.
4. Tăng XP thưởng và thời gian làm bài.
5. Ngôn ngữ: Tiếng Việt.

OUTPUT JSON FORMAT ONLY (Single Unit object structure).
`, unit.Title, nextLevel, unit.Title, p.Grade, mathFormattingRules)

	return Request{
		System:      "You are a tough but fair AI Math Coach. Follow math formatting rules strictly.",
		Prompt:      prompt,
		Schema:      unitSchema("challenge-unit"),
		Temperature: 0.8,
		MaxTokens:   defaultMaxTokens,
	}
}

// BuildExamRequest composes the comprehensive test request: exactly 20
// questions in 5 easy / 10 medium / 5 hard bands, covering the path
// topics and drilling into the learner's weak areas.
func BuildExamRequest(p *learner.UserProfile, a analytics.Analysis) Request {
	pathTopics := "Toán tổng hợp"
	if len(p.LearningPath) > 0 {
		titles := make([]string, len(p.LearningPath))
		for i, u := range p.LearningPath {
			titles[i] = u.Title
		}
		pathTopics = strings.Join(titles, ", ")
	} else if len(p.SelectedTopics) > 0 {
		pathTopics = strings.Join(p.SelectedTopics, ", ")
	}

	weak := "Chưa có dữ liệu, hãy kiểm tra kiến thức nền tảng."
	if len(a.WeakTopics) > 0 {
		weak = strings.Join(a.WeakTopics, ", ")
	}

	prompt := fmt.Sprintf(`
Bạn là AI Giáo viên Toán cao cấp. Hãy tạo một BÀI KIỂM TRA TỔNG HỢP (Final Exam) cho học sinh này.

HỒ SƠ HỌC SINH:
- Lớp: %d
- Các chủ đề đã học trong lộ trình: %s
- Điểm yếu cần khắc phục (nếu có): %s
- Điểm mạnh (nếu có): %s

%s

YÊU CẦU ĐỀ THI:
1. SỐ LƯỢNG: Đúng 20 câu hỏi.
2. CẤU TRÚC ĐỘ KHÓ (Tăng dần):
   - 5 câu đầu: Dễ (Khởi động, kiến thức cơ bản).
   - 10 câu giữa: Trung bình (Vận dụng).
   - 5 câu cuối: Khó (Vận dụng cao, tư duy logic).
3. HÌNH THỨC ĐA DẠNG:
   - Phải có đủ 3 loại: 'multiple-choice', 'true-false', 'fill-in-blank'.
4. NỘI DUNG: Bao phủ các chủ đề trong lộ trình, nhưng tập trung xoáy sâu vào các phần học sinh còn yếu (nếu có).
5. Tên bài: "Kiểm tra Tổng hợp Kiến thức".
6. Ngôn ngữ: Tiếng Việt.

OUTPUT JSON FORMAT ONLY.
`, p.Grade, pathTopics, weak, strings.Join(a.StrongTopics, ", "), mathFormattingRules)

	return Request{
		System:      "You are a precise Exam Creator AI. You create balanced, progressive difficulty tests. Follow math formatting rules strictly.",
		Prompt:      prompt,
		Schema:      unitSchema("comprehensive-exam"),
		Temperature: 0.7,
		MaxTokens:   defaultMaxTokens,
	}
}
