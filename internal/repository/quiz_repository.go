package repository

import (
	"learning_platform_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) CreateQuestion(q *model.QuizQuestion) error {
	return r.DB.Create(q).Error
}

func (r *QuizRepository) CreateAnswer(a *model.QuizAnswer) error {
	return r.DB.Create(a).Error
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var q model.Quiz
	err := r.DB.First(&q, id).Error
	return &q, err
}

func (r *QuizRepository) List(page, limit int) ([]model.Quiz, int64, error) {
	var qs []model.Quiz
	var total int64
	if err := r.DB.Model(&model.Quiz{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := r.DB.Order("created_at desc").Offset(offset).Limit(limit).Find(&qs).Error
	return qs, total, err
}

func (r *QuizRepository) ListByLesson(lessonID uint) ([]model.Quiz, error) {
	var qs []model.Quiz
	err := r.DB.Where("lesson_id = ?", lessonID).Find(&qs).Error
	return qs, err
}

// ListQuestions 返回测验的题目（按题序），不含答案
func (r *QuizRepository) ListQuestions(quizID uint) ([]model.QuizQuestion, error) {
	var qs []model.QuizQuestion
	err := r.DB.Where("quiz_id = ?", quizID).Order("question_order asc").Find(&qs).Error
	return qs, err
}

// ListAnswersForQuestions 按题目ID批量取选项（按选项序）
func (r *QuizRepository) ListAnswersForQuestions(questionIDs []uint) ([]model.QuizAnswer, error) {
	if len(questionIDs) == 0 {
		return nil, nil
	}
	var as []model.QuizAnswer
	err := r.DB.Where("question_id IN ?", questionIDs).Order("answer_order asc").Find(&as).Error
	return as, err
}

func (r *QuizRepository) CreateAttempt(attempt *model.QuizAttempt) error {
	return r.DB.Create(attempt).Error
}

func (r *QuizRepository) FindAttemptByID(id uint) (*model.QuizAttempt, error) {
	var a model.QuizAttempt
	err := r.DB.First(&a, id).Error
	return &a, err
}

func (r *QuizRepository) ListAttemptsByQuiz(quizID uint) ([]model.QuizAttempt, error) {
	var as []model.QuizAttempt
	err := r.DB.Where("quiz_id = ?", quizID).Order("attempt_date desc").Find(&as).Error
	return as, err
}

func (r *QuizRepository) ListAttemptsByUser(userID uint) ([]model.QuizAttempt, error) {
	var as []model.QuizAttempt
	err := r.DB.Where("user_id = ?", userID).Order("attempt_date desc").Find(&as).Error
	return as, err
}

// CountAttemptsForUserCourse 统计某用户在某课程相关测验上的答题记录数
func (r *QuizRepository) CountAttemptsForUserCourse(userID, courseID uint) (int64, error) {
	var n int64
	err := r.DB.Model(&model.QuizAttempt{}).
		Where("user_id = ? AND quiz_id IN (?)",
			userID,
			r.DB.Model(&model.Quiz{}).Select("quizzes.id").
				Joins("JOIN lessons ON lessons.id = quizzes.lesson_id").
				Where("lessons.course_id = ?", courseID),
		).
		Count(&n).Error
	return n, err
}
