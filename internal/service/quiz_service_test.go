package service

import (
	"learning_platform_backend/internal/model"
	"learning_platform_backend/internal/repository"
	"learning_platform_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newQuizService(db *gorm.DB) *QuizService {
	return NewQuizService(repository.NewQuizRepository(db), repository.NewLessonRepository(db))
}

func TestComputeScore(t *testing.T) {
	tests := []struct {
		name     string
		correct  int
		total    int
		expected float64
	}{
		{"zero questions scores zero", 0, 0, 0},
		{"all correct", 4, 4, 100},
		{"none correct", 0, 4, 0},
		{"three of four", 3, 4, 75},
		{"one of three", 1, 3, 100.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ComputeScore(tt.correct, tt.total), 1e-9)
		})
	}
}

func TestCountCorrectAnswers(t *testing.T) {
	questions := []model.QuizQuestion{
		{BaseModel: model.BaseModel{ID: 1}},
		{BaseModel: model.BaseModel{ID: 2}},
	}
	answers := []model.QuizAnswer{
		{BaseModel: model.BaseModel{ID: 10}, QuestionID: 1, IsCorrect: true},
		{BaseModel: model.BaseModel{ID: 11}, QuestionID: 1, IsCorrect: false},
		{BaseModel: model.BaseModel{ID: 20}, QuestionID: 2, IsCorrect: true},
		{BaseModel: model.BaseModel{ID: 21}, QuestionID: 2, IsCorrect: false},
	}

	t.Run("counts only correct selections", func(t *testing.T) {
		submitted := []AnswerSubmission{
			{QuestionID: 1, SelectedAnswerID: 10},
			{QuestionID: 2, SelectedAnswerID: 21},
		}
		assert.Equal(t, 1, CountCorrectAnswers(questions, answers, submitted))
	})

	t.Run("skips questions not in quiz", func(t *testing.T) {
		submitted := []AnswerSubmission{
			{QuestionID: 99, SelectedAnswerID: 10},
			{QuestionID: 1, SelectedAnswerID: 10},
		}
		assert.Equal(t, 1, CountCorrectAnswers(questions, answers, submitted))
	})

	t.Run("skips answers from another question", func(t *testing.T) {
		submitted := []AnswerSubmission{
			{QuestionID: 1, SelectedAnswerID: 20},
		}
		assert.Equal(t, 0, CountCorrectAnswers(questions, answers, submitted))
	})

	t.Run("empty submission scores zero", func(t *testing.T) {
		assert.Equal(t, 0, CountCorrectAnswers(questions, answers, nil))
	})
}

func TestSubmitQuiz(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)

	user := createTestUser(t, db, "quiz@example.com")
	course := createTestCourse(t, db, "Course")
	lesson := createTestLesson(t, db, course.ID)
	quiz, questions, answers := createTestQuiz(t, db, lesson.ID, 4, 70)

	correctFor := func(q model.QuizQuestion) uint {
		for _, a := range answers {
			if a.QuestionID == q.ID && a.IsCorrect {
				return a.ID
			}
		}
		t.Fatalf("no correct answer for question %d", q.ID)
		return 0
	}
	wrongFor := func(q model.QuizQuestion) uint {
		for _, a := range answers {
			if a.QuestionID == q.ID && !a.IsCorrect {
				return a.ID
			}
		}
		t.Fatalf("no wrong answer for question %d", q.ID)
		return 0
	}

	t.Run("three of four passes at threshold 70", func(t *testing.T) {
		req := QuizSubmissionRequest{
			UserID:    user.ID,
			TimeSpent: 120,
			Answers: []AnswerSubmission{
				{QuestionID: questions[0].ID, SelectedAnswerID: correctFor(questions[0])},
				{QuestionID: questions[1].ID, SelectedAnswerID: correctFor(questions[1])},
				{QuestionID: questions[2].ID, SelectedAnswerID: correctFor(questions[2])},
				{QuestionID: questions[3].ID, SelectedAnswerID: wrongFor(questions[3])},
			},
		}

		attempt, err := svc.SubmitQuiz(quiz.ID, req)
		require.NoError(t, err)
		assert.Equal(t, 75.0, attempt.Score)
		assert.True(t, attempt.Passed)
		assert.Equal(t, user.ID, attempt.UserID)
		assert.Equal(t, quiz.ID, attempt.QuizID)
		assert.NotZero(t, attempt.ID)
	})

	t.Run("score exactly at passing score passes", func(t *testing.T) {
		// 75 >= 70 已由上例覆盖，这里验证恰好等于及格线
		quiz75, qs, ans := createTestQuiz(t, db, lesson.ID, 4, 75)
		var subs []AnswerSubmission
		for i, q := range qs {
			var selected uint
			for _, a := range ans {
				if a.QuestionID == q.ID && a.IsCorrect == (i < 3) {
					selected = a.ID
					break
				}
			}
			subs = append(subs, AnswerSubmission{QuestionID: q.ID, SelectedAnswerID: selected})
		}

		attempt, err := svc.SubmitQuiz(quiz75.ID, QuizSubmissionRequest{UserID: user.ID, Answers: subs})
		require.NoError(t, err)
		assert.Equal(t, 75.0, attempt.Score)
		assert.True(t, attempt.Passed)
	})

	t.Run("repeated submission creates a new attempt each time", func(t *testing.T) {
		req := QuizSubmissionRequest{
			UserID: user.ID,
			Answers: []AnswerSubmission{
				{QuestionID: questions[0].ID, SelectedAnswerID: correctFor(questions[0])},
			},
		}

		first, err := svc.SubmitQuiz(quiz.ID, req)
		require.NoError(t, err)
		second, err := svc.SubmitQuiz(quiz.ID, req)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, first.Score, second.Score)

		var count int64
		require.NoError(t, db.Model(&model.QuizAttempt{}).
			Where("user_id = ? AND quiz_id = ?", user.ID, quiz.ID).Count(&count).Error)
		assert.GreaterOrEqual(t, count, int64(2))
	})

	t.Run("quiz with no questions scores zero and fails", func(t *testing.T) {
		empty := &model.Quiz{LessonID: lesson.ID, Title: "Empty", PassingScore: 70}
		require.NoError(t, db.Create(empty).Error)

		attempt, err := svc.SubmitQuiz(empty.ID, QuizSubmissionRequest{UserID: user.ID})
		require.NoError(t, err)
		assert.Equal(t, 0.0, attempt.Score)
		assert.False(t, attempt.Passed)
	})

	t.Run("unknown quiz", func(t *testing.T) {
		_, err := svc.SubmitQuiz(99999, QuizSubmissionRequest{UserID: user.ID})
		assert.ErrorIs(t, err, util.ErrQuizNotFound)
	})
}

func TestGetQuizDetail(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)

	course := createTestCourse(t, db, "Course")
	lesson := createTestLesson(t, db, course.ID)
	quiz, questions, _ := createTestQuiz(t, db, lesson.ID, 2, 70)

	detail, err := svc.GetQuiz(quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, quiz.ID, detail.ID)
	require.Len(t, detail.Questions, 2)
	assert.Equal(t, questions[0].ID, detail.Questions[0].ID)
	assert.Len(t, detail.Questions[0].Answers, 4)

	_, err = svc.GetQuiz(99999)
	assert.ErrorIs(t, err, util.ErrQuizNotFound)
}

func TestGetResults(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)

	user := createTestUser(t, db, "results@example.com")
	course := createTestCourse(t, db, "Course")
	lesson := createTestLesson(t, db, course.ID)
	quiz, _, _ := createTestQuiz(t, db, lesson.ID, 1, 70)

	_, err := svc.SubmitQuiz(quiz.ID, QuizSubmissionRequest{UserID: user.ID})
	require.NoError(t, err)

	attempts, err := svc.GetResults(quiz.ID)
	require.NoError(t, err)
	assert.Len(t, attempts, 1)

	_, err = svc.GetResults(99999)
	assert.ErrorIs(t, err, util.ErrQuizNotFound)
}
