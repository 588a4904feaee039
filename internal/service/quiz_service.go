package service

import (
	"errors"
	"learning_platform_backend/internal/model"
	"learning_platform_backend/internal/repository"
	"learning_platform_backend/internal/util"
	"learning_platform_backend/pkg/logger"
	"learning_platform_backend/pkg/monitoring"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type QuizService struct {
	Repo       *repository.QuizRepository
	LessonRepo *repository.LessonRepository
}

func NewQuizService(repo *repository.QuizRepository, lessonRepo *repository.LessonRepository) *QuizService {
	return &QuizService{Repo: repo, LessonRepo: lessonRepo}
}

type QuizQuestionDetail struct {
	model.QuizQuestion
	Answers []model.QuizAnswer `json:"answers"`
}

type QuizDetail struct {
	model.Quiz
	Questions []QuizQuestionDetail `json:"questions"`
}

// AnswerSubmission 一道题的作答，题目或选项不属于该测验时整条被忽略
type AnswerSubmission struct {
	QuestionID       uint `json:"questionId" binding:"required"`
	SelectedAnswerID uint `json:"selectedAnswerId" binding:"required"`
}

type QuizSubmissionRequest struct {
	UserID    uint               `json:"userId" binding:"required"`
	TimeSpent int                `json:"timeSpent"`
	Answers   []AnswerSubmission `json:"answers" binding:"required"`
}

func (s *QuizService) GetQuiz(id uint) (*QuizDetail, error) {
	quiz, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	return s.loadDetail(quiz)
}

func (s *QuizService) loadDetail(quiz *model.Quiz) (*QuizDetail, error) {
	questions, err := s.Repo.ListQuestions(quiz.ID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	answers, err := s.Repo.ListAnswersForQuestions(ids)
	if err != nil {
		return nil, err
	}

	byQuestion := make(map[uint][]model.QuizAnswer, len(questions))
	for _, a := range answers {
		byQuestion[a.QuestionID] = append(byQuestion[a.QuestionID], a)
	}

	detail := &QuizDetail{Quiz: *quiz, Questions: make([]QuizQuestionDetail, len(questions))}
	for i, q := range questions {
		detail.Questions[i] = QuizQuestionDetail{QuizQuestion: q, Answers: byQuestion[q.ID]}
	}
	return detail, nil
}

func (s *QuizService) List(page, limit int) ([]model.Quiz, int64, error) {
	return s.Repo.List(page, limit)
}

func (s *QuizService) ListByLesson(lessonID uint) ([]model.Quiz, error) {
	if _, err := s.LessonRepo.FindByID(lessonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}
	return s.Repo.ListByLesson(lessonID)
}

// SubmitQuiz 为一次提交评分并落一条答题记录
// 刻意非幂等：相同输入的重复提交各生成一条记录，本层不限制次数
func (s *QuizService) SubmitQuiz(quizID uint, req QuizSubmissionRequest) (*model.QuizAttempt, error) {
	quiz, err := s.Repo.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	questions, err := s.Repo.ListQuestions(quizID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	answers, err := s.Repo.ListAnswersForQuestions(ids)
	if err != nil {
		return nil, err
	}

	correct := CountCorrectAnswers(questions, answers, req.Answers)
	score := ComputeScore(correct, len(questions))
	passed := score >= quiz.PassingScore

	attempt := &model.QuizAttempt{
		UserID:      req.UserID,
		QuizID:      quizID,
		Score:       score,
		Passed:      passed,
		AttemptDate: time.Now().UTC(),
		TimeSpent:   req.TimeSpent,
	}
	if err := s.Repo.CreateAttempt(attempt); err != nil {
		return nil, err
	}

	monitoring.QuizSubmissions.WithLabelValues(boolLabel(passed)).Inc()
	logger.Log.Info("Quiz submitted",
		zap.Uint("quizId", quizID),
		zap.Uint("userId", req.UserID),
		zap.Float64("score", score),
		zap.Bool("passed", passed),
		zap.Int("correct", correct),
		zap.Int("total", len(questions)),
	)

	return attempt, nil
}

// CountCorrectAnswers 逐条解析作答：题目须属于该测验、选项须属于该题且被标为正确才计数
// 无法解析的条目静默跳过，不计分也不报错
func CountCorrectAnswers(questions []model.QuizQuestion, answers []model.QuizAnswer, submitted []AnswerSubmission) int {
	questionSet := make(map[uint]bool, len(questions))
	for _, q := range questions {
		questionSet[q.ID] = true
	}

	correctByQuestion := make(map[uint]map[uint]bool, len(questions))
	for _, a := range answers {
		if correctByQuestion[a.QuestionID] == nil {
			correctByQuestion[a.QuestionID] = make(map[uint]bool)
		}
		correctByQuestion[a.QuestionID][a.ID] = a.IsCorrect
	}

	correct := 0
	for _, sub := range submitted {
		if !questionSet[sub.QuestionID] {
			continue
		}
		if correctByQuestion[sub.QuestionID][sub.SelectedAnswerID] {
			correct++
		}
	}
	return correct
}

// ComputeScore 百分制得分，零题测验定义为 0 分而不是除零
func ComputeScore(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) * 100 / float64(total)
}

func (s *QuizService) GetResults(quizID uint) ([]model.QuizAttempt, error) {
	if _, err := s.Repo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	return s.Repo.ListAttemptsByQuiz(quizID)
}

func (s *QuizService) GetAttempt(attemptID uint) (*model.QuizAttempt, error) {
	attempt, err := s.Repo.FindAttemptByID(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAttemptNotFound
		}
		return nil, err
	}
	return attempt, nil
}

func (s *QuizService) ListUserAttempts(userID uint) ([]model.QuizAttempt, error) {
	return s.Repo.ListAttemptsByUser(userID)
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
