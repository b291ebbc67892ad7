// Package curriculum holds the static Vietnamese math syllabus: the
// per-grade topic catalog shown during path setup, plus the standing
// exam-review entries appended to every grade.
package curriculum

// Topic is one selectable syllabus entry.
type Topic struct {
	ID       string
	Label    string
	SubLabel string
	Review   bool // semester exam review rather than a syllabus chapter
}

// Level groups grades into the Vietnamese school tiers.
type Level struct {
	ID     string
	Label  string
	Grades []int
}

// Levels lists the school tiers in ascending order.
var Levels = []Level{
	{ID: "primary", Label: "Tiểu học", Grades: []int{1, 2, 3, 4, 5}},
	{ID: "middle", Label: "THCS", Grades: []int{6, 7, 8, 9}},
	{ID: "high", Label: "THPT", Grades: []int{10, 11, 12}},
}

// examReviews are appended to every grade's topic list.
var examReviews = []Topic{
	{ID: "review-mid-1", Label: "Ôn tập Giữa Học kỳ 1", SubLabel: "Tổng hợp kiến thức SGK", Review: true},
	{ID: "review-end-1", Label: "Ôn tập Cuối Học kỳ 1", SubLabel: "Đề thi thử & Tổng hợp", Review: true},
	{ID: "review-mid-2", Label: "Ôn tập Giữa Học kỳ 2", SubLabel: "Tổng hợp kiến thức SGK", Review: true},
	{ID: "review-end-2", Label: "Ôn tập Cuối Học kỳ 2", SubLabel: "Đề thi thử & Tổng hợp", Review: true},
}

var byGrade = map[int][]Topic{
	1: {
		{ID: "g1-num", Label: "Số đến 100", SubLabel: "Đếm, so sánh số"},
		{ID: "g1-calc", Label: "Cộng trừ cơ bản", SubLabel: "Phạm vi 100"},
		{ID: "g1-geo", Label: "Hình học phẳng", SubLabel: "Vuông, tròn, tam giác"},
		{ID: "g1-meas", Label: "Đo lường", SubLabel: "Dài ngắn, nặng nhẹ"},
	},
	2: {
		{ID: "g2-num", Label: "Số đến 1000", SubLabel: "Cấu tạo số"},
		{ID: "g2-mul", Label: "Phép nhân chia", SubLabel: "Bảng cửu chương"},
		{ID: "g2-geo", Label: "Hình tứ giác", SubLabel: "Chữ nhật, hình vuông"},
		{ID: "g2-meas", Label: "Đại lượng", SubLabel: "Kg, Lít, Giờ phút"},
	},
	3: {
		{ID: "g3-num", Label: "Số đến 10.000", SubLabel: "Cộng trừ nhân chia"},
		{ID: "g3-frac", Label: "Phân số", SubLabel: "Làm quen phân số"},
		{ID: "g3-area", Label: "Diện tích", SubLabel: "Chu vi & Diện tích"},
		{ID: "g3-word", Label: "Toán có lời văn", SubLabel: "Giải toán 2 bước"},
	},
	4: {
		{ID: "g4-large", Label: "Số tự nhiên lớn", SubLabel: "Hàng triệu"},
		{ID: "g4-frac", Label: "Phân số nâng cao", SubLabel: "Tính toán phân số"},
		{ID: "g4-geo", Label: "Hình học", SubLabel: "Bình hành, Hình thoi"},
		{ID: "g4-avg", Label: "Trung bình cộng", SubLabel: "Toán thống kê"},
	},
	5: {
		{ID: "g5-dec", Label: "Số thập phân", SubLabel: "Tính toán hỗn số"},
		{ID: "g5-perc", Label: "Tỉ số phần trăm", SubLabel: "Ứng dụng thực tế"},
		{ID: "g5-area", Label: "Diện tích đa giác", SubLabel: "Tam giác, Hình thang"},
		{ID: "g5-vol", Label: "Thể tích", SubLabel: "Hình hộp, Lập phương"},
	},
	6: {
		{ID: "g6-nat", Label: "Số tự nhiên", SubLabel: "Lũy thừa, Chia hết"},
		{ID: "g6-int", Label: "Số nguyên", SubLabel: "Số âm, trục số"},
		{ID: "g6-frac", Label: "Phân số", SubLabel: "Tính toán phân số"},
		{ID: "g6-stat", Label: "Thống kê", SubLabel: "Biểu đồ tranh/cột"},
		{ID: "g6-geo", Label: "Hình học phẳng", SubLabel: "Đối xứng, Tam giác đều"},
	},
	7: {
		{ID: "g7-rat", Label: "Số hữu tỉ & thực", SubLabel: "Căn bậc hai, Số vô tỉ"},
		{ID: "g7-alg", Label: "Biểu thức đại số", SubLabel: "Đa thức một biến"},
		{ID: "g7-geo3d", Label: "Hình khối", SubLabel: "Lăng trụ, Hình chóp"},
		{ID: "g7-geo2d", Label: "Góc & Đường thẳng", SubLabel: "Tam giác bằng nhau"},
		{ID: "g7-prob", Label: "Xác suất", SubLabel: "Biến cố ngẫu nhiên"},
	},
	8: {
		{ID: "g8-alg", Label: "Hằng đẳng thức", SubLabel: "Phân tích đa thức"},
		{ID: "g8-frac", Label: "Phân thức đại số", SubLabel: "Cộng trừ nhân chia"},
		{ID: "g8-eq", Label: "Phương trình", SubLabel: "Bậc nhất một ẩn"},
		{ID: "g8-geo", Label: "Tứ giác", SubLabel: "Thang, Bình hành, Thoi"},
		{ID: "g8-func", Label: "Hàm số bậc nhất", SubLabel: "Đồ thị y = ax+b"},
	},
	9: {
		{ID: "g9-sys", Label: "Hệ phương trình", SubLabel: "Bậc nhất hai ẩn"},
		{ID: "g9-root", Label: "Căn bậc hai/ba", SubLabel: "Biến đổi căn thức"},
		{ID: "g9-circle", Label: "Đường tròn", SubLabel: "Góc, Tiếp tuyến"},
		{ID: "g9-trig", Label: "Hệ thức lượng", SubLabel: "Sin, Cos, Tan"},
		{ID: "g9-geo3d", Label: "Hình trụ, Nón, Cầu", SubLabel: "Diện tích, Thể tích"},
	},
	10: {
		{ID: "g10-set", Label: "Mệnh đề & Tập hợp", SubLabel: "Logic toán học"},
		{ID: "g10-ineq", Label: "Bất phương trình", SubLabel: "Hệ BPT bậc nhất"},
		{ID: "g10-vec", Label: "Vectơ", SubLabel: "Tọa độ, Tích vô hướng"},
		{ID: "g10-func", Label: "Hàm số bậc hai", SubLabel: "Parabol"},
		{ID: "g10-stat", Label: "Thống kê", SubLabel: "Số đặc trưng"},
	},
	11: {
		{ID: "g11-trig", Label: "Lượng giác", SubLabel: "Phương trình lượng giác"},
		{ID: "g11-seq", Label: "Dãy số", SubLabel: "Cấp số cộng/nhân"},
		{ID: "g11-lim", Label: "Giới hạn & Đạo hàm", SubLabel: "Lim, Tiếp tuyến"},
		{ID: "g11-geo", Label: "Quan hệ không gian", SubLabel: "Song song, Vuông góc"},
		{ID: "g11-prob", Label: "Xác suất", SubLabel: "Quy tắc cộng/nhân"},
	},
	12: {
		{ID: "g12-func", Label: "Khảo sát hàm số", SubLabel: "Đơn điệu, Cực trị"},
		{ID: "g12-int", Label: "Nguyên hàm Tích phân", SubLabel: "Diện tích, Thể tích"},
		{ID: "g12-comp", Label: "Số phức", SubLabel: "Biểu diễn hình học"},
		{ID: "g12-geo", Label: "Mặt nón, Trụ, Cầu", SubLabel: "Hình học không gian"},
		{ID: "g12-oxyz", Label: "Tọa độ Oxyz", SubLabel: "Phương trình mặt phẳng"},
	},
}

// TopicsForGrade returns the syllabus topics for a grade followed by the
// exam-review entries. Unknown grades get only the reviews.
func TopicsForGrade(grade int) []Topic {
	base := byGrade[grade]
	out := make([]Topic, 0, len(base)+len(examReviews))
	out = append(out, base...)
	out = append(out, examReviews...)
	return out
}

// DefaultSelection returns the ids of the first three syllabus topics of
// a grade, the preset used before the student adjusts the list.
func DefaultSelection(grade int) []string {
	base := byGrade[grade]
	n := len(base)
	if n > 3 {
		n = 3
	}
	ids := make([]string, 0, n)
	for _, t := range base[:n] {
		ids = append(ids, t.ID)
	}
	return ids
}

// ValidGrade reports whether a grade is in the supported 1..12 range.
func ValidGrade(grade int) bool {
	return grade >= 1 && grade <= 12
}
