// Package quizscreen runs the interactive quiz over one learning unit:
// question-by-question answering with immediate feedback, comprehensive
// exam generation, and the read-only review replay.
package quizscreen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/khanhvo/mathgenius/internal/contentgen"
	"github.com/khanhvo/mathgenius/internal/learner"
	"github.com/khanhvo/mathgenius/internal/quiz"
	"github.com/khanhvo/mathgenius/internal/router"
	"github.com/khanhvo/mathgenius/internal/screen"
	"github.com/khanhvo/mathgenius/internal/screens/summary"
	"github.com/khanhvo/mathgenius/internal/tutor"
	"github.com/khanhvo/mathgenius/internal/ui/components"
	"github.com/khanhvo/mathgenius/internal/ui/layout"
	"github.com/khanhvo/mathgenius/internal/ui/theme"
)

// examReadyMsg delivers a generated comprehensive exam unit.
type examReadyMsg struct {
	Unit *learner.LearningUnit
	Err  error
}

// resultAppliedMsg reports persistence of a finished quiz.
type resultAppliedMsg struct {
	Applied   learner.QuizResult
	PrevLevel int
	Err       error
}

// QuizScreen drives one quiz session.
type QuizScreen struct {
	svc     *tutor.Service
	profile *learner.UserProfile
	session *quiz.Session

	generating bool // exam mode, before the unit arrives
	feedback   bool // showing per-question feedback
	correct    bool
	finishing  bool

	mcActive bool
	mc       components.MultiChoice
	input    components.TextInput

	errMsg string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New starts a quiz over a path unit.
func New(svc *tutor.Service, profile *learner.UserProfile, unit learner.LearningUnit) *QuizScreen {
	q := &QuizScreen{svc: svc, profile: profile, session: quiz.Start(unit)}
	q.setupQuestion()
	return q
}

// NewExam starts a quiz whose unit is a comprehensive exam generated on
// Init.
func NewExam(svc *tutor.Service, profile *learner.UserProfile) *QuizScreen {
	return &QuizScreen{svc: svc, profile: profile, generating: true}
}

// NewReview replays a completed quiz read-only.
func NewReview(unit learner.LearningUnit, storedAnswers map[string]string) *QuizScreen {
	q := &QuizScreen{session: quiz.StartReview(unit, storedAnswers)}
	q.setupQuestion()
	return q
}

func (q *QuizScreen) Init() tea.Cmd {
	if !q.generating {
		return q.inputCmd()
	}
	svc, profile := q.svc, q.profile
	return func() tea.Msg {
		unit, err := svc.GenerateComprehensiveTest(context.Background(), profile)
		return examReadyMsg{Unit: unit, Err: err}
	}
}

// inputCmd returns the focus command when the current question uses the
// free-text input.
func (q *QuizScreen) inputCmd() tea.Cmd {
	if q.mcActive {
		return nil
	}
	return q.input.Init()
}

func (q *QuizScreen) Title() string {
	switch {
	case q.session == nil:
		return "Kiểm tra tổng hợp"
	case q.session.Review():
		return "Xem lại bài làm"
	case q.session.Unit().IsExam():
		return "Kiểm tra tổng hợp"
	default:
		return "Bài học"
	}
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case q.session != nil && q.session.Review():
		return []layout.KeyHint{
			{Key: "Enter", Description: "Câu tiếp"},
			{Key: "Esc", Description: "Quay lại"},
		}
	case q.feedback:
		return []layout.KeyHint{
			{Key: "phím bất kỳ", Description: "Tiếp tục"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Trả lời"},
			{Key: "Esc", Description: "Bỏ dở"},
		}
	}
}

// setupQuestion prepares the input widget for the current question.
func (q *QuizScreen) setupQuestion() {
	cur := q.session.Current()
	options := cur.Options
	if cur.Type == learner.TrueFalse {
		options = []string{"Đúng", "Sai"}
	}

	if cur.Type == learner.FillInBlank {
		q.mcActive = false
		q.input = components.NewTextInput("Câu trả lời...", false, 40)
		return
	}

	correctIndex := -1
	for i, opt := range options {
		if quiz.IsCorrect(opt, cur.CorrectAnswer) {
			correctIndex = i
			break
		}
	}
	q.mcActive = true
	q.mc = components.NewMultiChoice(cur.Content, options, correctIndex)

	if q.session.Review() {
		stored := q.session.AnswerFor(cur.ID)
		q.mc.Submitted = true
		q.mc.ChosenIndex = -1
		for i, opt := range options {
			if quiz.Normalize(opt) == quiz.Normalize(stored) {
				q.mc.ChosenIndex = i
				break
			}
		}
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case examReadyMsg:
		return q.handleExamReady(msg)
	case resultAppliedMsg:
		return q.handleResultApplied(msg)
	case tea.KeyMsg:
		return q.handleKey(msg)
	}

	if q.session != nil && !q.mcActive && !q.feedback && !q.session.Review() {
		var cmd tea.Cmd
		q.input, cmd = q.input.Update(msg)
		return q, cmd
	}
	return q, nil
}

func (q *QuizScreen) handleExamReady(msg examReadyMsg) (screen.Screen, tea.Cmd) {
	q.generating = false
	if msg.Err != nil {
		if errors.Is(msg.Err, contentgen.ErrMissingCredential) {
			q.errMsg = "Chưa có API key. Vào Cài đặt để nhập key trước."
		} else {
			q.errMsg = msg.Err.Error()
		}
		return q, nil
	}
	q.session = quiz.Start(*msg.Unit)
	q.setupQuestion()
	return q, q.inputCmd()
}

func (q *QuizScreen) handleResultApplied(msg resultAppliedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		q.finishing = false
		q.errMsg = msg.Err.Error()
		return q, nil
	}
	next := summary.New(msg.Applied, q.session.Unit(), msg.PrevLevel, q.profile.ProficiencyLevel)
	return q, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if q.generating || q.finishing {
		return q, nil
	}

	// Generation failed; any key goes back.
	if q.session == nil {
		return q, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if q.session.Review() {
		return q.handleReviewKey(msg)
	}

	if q.feedback {
		q.feedback = false
		if q.session.Next() {
			q.setupQuestion()
			return q, q.inputCmd()
		}
		return q.finish()
	}

	if q.mcActive {
		var cmd tea.Cmd
		q.mc, cmd = q.mc.Update(msg)
		if q.mc.Submitted {
			chosen := ""
			if q.mc.ChosenIndex >= 0 && q.mc.ChosenIndex < len(q.mc.Options) {
				chosen = q.mc.Options[q.mc.ChosenIndex]
			}
			_, correct := q.session.Answer(q.session.Current().ID, chosen)
			q.correct = correct
			q.feedback = true
		}
		return q, cmd
	}

	if msg.String() == "enter" {
		value := strings.TrimSpace(q.input.Value())
		if value == "" {
			return q, nil
		}
		accepted, correct := q.session.Answer(q.session.Current().ID, value)
		if accepted {
			q.input.Submit(correct)
			q.correct = correct
			q.feedback = true
		}
		return q, nil
	}

	var cmd tea.Cmd
	q.input, cmd = q.input.Update(msg)
	return q, cmd
}

func (q *QuizScreen) handleReviewKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter", " ", "right", "l":
		if q.session.Next() {
			q.setupQuestion()
			return q, nil
		}
		return q, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return q, nil
}

func (q *QuizScreen) finish() (screen.Screen, tea.Cmd) {
	q.finishing = true
	result := q.session.Finish()
	svc, profile, unit := q.svc, q.profile, q.session.Unit()
	prevLevel := profile.ProficiencyLevel
	return q, func() tea.Msg {
		applied, err := svc.ApplyResult(context.Background(), profile, unit, result)
		return resultAppliedMsg{Applied: applied, PrevLevel: prevLevel, Err: err}
	}
}

func (q *QuizScreen) View(width, height int) string {
	if q.generating {
		return centered(width, height,
			theme.Hint.Render("Đang tạo đề kiểm tra tổng hợp (20 câu)...\nAI cần một chút thời gian."))
	}
	if q.session == nil {
		return centered(width, height, theme.Incorrect.Render(q.errMsg))
	}
	if q.finishing {
		return centered(width, height, theme.Hint.Render("Đang chấm bài..."))
	}

	cur := q.session.Current()
	cw := components.CardWidth(width)

	var b strings.Builder

	progress := components.NewProgressBar(
		fmt.Sprintf("Câu %d/%d", q.session.Index()+1, q.session.Total()),
		float64(q.session.Index())/float64(q.session.Total()),
		false,
		cw,
	)
	b.WriteString(progress.View())
	b.WriteString("\n\n")

	b.WriteString(difficultyBadge(cur.Difficulty))
	b.WriteString("\n\n")

	if q.mcActive {
		b.WriteString(q.mc.View())
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(cur.Content))
		b.WriteString("\n\n")
		if q.session.Review() {
			b.WriteString(q.reviewFillIn(cur))
		} else {
			b.WriteString(q.input.View())
		}
	}

	if q.feedback || q.session.Review() {
		b.WriteString("\n\n")
		b.WriteString(q.feedbackView(cur))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(components.CardBox(b.String(), components.CardWidth(width)+8))
}

func (q *QuizScreen) reviewFillIn(cur learner.Question) string {
	stored := q.session.AnswerFor(cur.ID)
	if stored == "" {
		stored = "(bỏ trống)"
	}
	style := theme.Incorrect
	if quiz.IsCorrect(q.session.AnswerFor(cur.ID), cur.CorrectAnswer) {
		style = theme.Correct
	}
	return style.Render("Bạn trả lời: " + stored)
}

func (q *QuizScreen) feedbackView(cur learner.Question) string {
	var b strings.Builder

	correct := q.correct
	if q.session.Review() {
		correct = quiz.IsCorrect(q.session.AnswerFor(cur.ID), cur.CorrectAnswer)
	}

	if correct {
		b.WriteString(theme.Correct.Render("✓ Chính xác!"))
	} else {
		b.WriteString(theme.Incorrect.Render("✗ Chưa đúng."))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render("Đáp án: " + cur.CorrectAnswer))
	}
	if cur.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(cur.Explanation))
	}
	return b.String()
}

func difficultyBadge(d learner.Difficulty) string {
	label, c := "Vừa", theme.Warn
	switch d {
	case learner.Easy:
		label, c = "Dễ", theme.Success
	case learner.Hard:
		label, c = "Khó", theme.Error
	}
	return lipgloss.NewStyle().Foreground(c).Render("● " + label)
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
