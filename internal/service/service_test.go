package service

import (
	"fmt"
	"learning_platform_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB 每个测试一个独立的内存库，带唯一键冲突翻译
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Lesson{},
		&model.LessonProgress{},
		&model.Enrollment{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.QuizAnswer{},
		&model.QuizAttempt{},
		&model.Certificate{},
		&model.Achievement{},
		&model.UserAchievement{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := &model.User{
		Email:     email,
		Password:  "hashed",
		FirstName: "Test",
		LastName:  "User",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestCourse(t *testing.T, db *gorm.DB, title string) *model.Course {
	t.Helper()
	course := &model.Course{
		Title:    title,
		Category: "Learning",
		Level:    model.LevelBeginner,
	}
	require.NoError(t, db.Create(course).Error)
	return course
}

func createTestLesson(t *testing.T, db *gorm.DB, courseID uint) *model.Lesson {
	t.Helper()
	lesson := &model.Lesson{
		CourseID:    courseID,
		Title:       "Lesson",
		LessonOrder: 1,
	}
	require.NoError(t, db.Create(lesson).Error)
	return lesson
}

// createTestQuiz 建一份 total 道单选题的测验，每题四个选项，第一个为正确答案
func createTestQuiz(t *testing.T, db *gorm.DB, lessonID uint, total int, passingScore float64) (*model.Quiz, []model.QuizQuestion, []model.QuizAnswer) {
	t.Helper()

	quiz := &model.Quiz{
		LessonID:     lessonID,
		Title:        "Quiz",
		PassingScore: passingScore,
	}
	require.NoError(t, db.Create(quiz).Error)

	var questions []model.QuizQuestion
	var answers []model.QuizAnswer
	for i := 0; i < total; i++ {
		q := model.QuizQuestion{
			QuizID:        quiz.ID,
			Question:      fmt.Sprintf("Question %d", i+1),
			QuestionOrder: i + 1,
		}
		require.NoError(t, db.Create(&q).Error)
		questions = append(questions, q)

		for j := 0; j < 4; j++ {
			a := model.QuizAnswer{
				QuestionID:  q.ID,
				Answer:      fmt.Sprintf("Answer %d", j+1),
				IsCorrect:   j == 0,
				AnswerOrder: j + 1,
			}
			require.NoError(t, db.Create(&a).Error)
			answers = append(answers, a)
		}
	}

	return quiz, questions, answers
}
