package service

import (
	"learning_platform_backend/internal/model"
	"learning_platform_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedService 空库时写入演示数据，已有课程则跳过
type SeedService struct {
	db *gorm.DB
}

func NewSeedService(db *gorm.DB) *SeedService {
	return &SeedService{db: db}
}

func (s *SeedService) Run() error {
	var count int64
	if err := s.db.Model(&model.Course{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		courses := []model.Course{
			{Title: "Enterprise Architecture", Description: "Learn enterprise system design patterns, microservices, and scalability principles", Category: "Enterprise", Duration: "6 weeks", LessonCount: 12, Level: model.LevelAdvanced},
			{Title: "Cloud & DevOps", Description: "Master cloud platforms, containerization, and continuous deployment", Category: "Enterprise", Duration: "8 weeks", LessonCount: 15, Level: model.LevelAdvanced},
			{Title: "Geofencing Systems", Description: "Implement location-based services and geofence management systems", Category: "Enterprise", Duration: "4 weeks", LessonCount: 8, Level: model.LevelAdvanced},
			{Title: "Data Science Fundamentals", Description: "Introduction to data analysis, machine learning, and statistical methods", Category: "Learning", Duration: "10 weeks", LessonCount: 20, Level: model.LevelIntermediate},
			{Title: "Engineering Principles", Description: "Core engineering concepts and problem-solving methodologies", Category: "Learning", Duration: "8 weeks", LessonCount: 16, Level: model.LevelBeginner},
			{Title: "Mathematics for Technology", Description: "Essential mathematics concepts for software and systems engineering", Category: "Learning", Duration: "12 weeks", LessonCount: 24, Level: model.LevelIntermediate},
			{Title: "Physics & Technology", Description: "Apply physics principles to technology and systems design", Category: "Learning", Duration: "10 weeks", LessonCount: 18, Level: model.LevelIntermediate},
			{Title: "Chemistry Essentials", Description: "Chemical principles and their applications in technology", Category: "Learning", Duration: "8 weeks", LessonCount: 14, Level: model.LevelBeginner},
			{Title: "BioTechnology Program", Description: "Introduction to biotechnology and biomedical engineering", Category: "Learning", Duration: "12 weeks", LessonCount: 20, Level: model.LevelIntermediate},
			{Title: "Aerospace Engineering", Description: "Principles of aircraft and aerospace system design", Category: "Learning", Duration: "14 weeks", LessonCount: 28, Level: model.LevelAdvanced},
			{Title: "Research Methodologies", Description: "Scientific research methods and academic paper writing", Category: "Research", Duration: "6 weeks", LessonCount: 12, Level: model.LevelIntermediate},
			{Title: "Research Journals & Publication", Description: "Navigate academic publishing and peer-reviewed journals", Category: "Research", Duration: "4 weeks", LessonCount: 8, Level: model.LevelIntermediate},
		}
		if err := tx.Create(&courses).Error; err != nil {
			return err
		}

		achievements := []model.Achievement{
			{Name: "First Course", Description: "Complete your first course", Criteria: "Complete 1 course"},
			{Name: "Quiz Master", Description: "Complete 5 quizzes with perfect scores", Criteria: "Score 100% on 5 quizzes"},
			{Name: "Dedication", Description: "Maintain a 7-day learning streak", Criteria: "Learn every day for 7 days"},
			{Name: "Scholar", Description: "Complete 5 courses", Criteria: "Complete 5 courses"},
			{Name: "Lifelong Learner", Description: "Complete 10 courses", Criteria: "Complete 10 courses"},
		}
		if err := tx.Create(&achievements).Error; err != nil {
			return err
		}

		lessons := []model.Lesson{
			{CourseID: courses[0].ID, Title: "Architecture Foundations", Description: "Layered, hexagonal and event-driven styles", Duration: 45, LessonOrder: 1},
			{CourseID: courses[0].ID, Title: "Microservice Decomposition", Description: "Bounded contexts and service boundaries", Duration: 50, LessonOrder: 2},
			{CourseID: courses[0].ID, Title: "Scaling Strategies", Description: "Horizontal scaling, caching and partitioning", Duration: 55, LessonOrder: 3},
		}
		if err := tx.Create(&lessons).Error; err != nil {
			return err
		}

		quiz := model.Quiz{
			LessonID:     lessons[0].ID,
			Title:        "Architecture Foundations Quiz",
			Description:  "Check your understanding of architectural styles",
			TimeLimit:    15,
			PassingScore: 70,
		}
		if err := tx.Create(&quiz).Error; err != nil {
			return err
		}

		type seedQuestion struct {
			text    string
			answers []string
			correct int
		}
		questions := []seedQuestion{
			{
				text:    "Which style isolates domain logic behind ports and adapters?",
				answers: []string{"Layered architecture", "Hexagonal architecture", "Big ball of mud", "Client-server"},
				correct: 1,
			},
			{
				text:    "What is the main driver for splitting a monolith into microservices?",
				answers: []string{"Fewer repositories", "Independent deployability", "Shared database access", "Smaller binaries"},
				correct: 1,
			},
			{
				text:    "Which pattern decouples producers from consumers?",
				answers: []string{"Message queue", "Shared memory", "Foreign key", "Singleton"},
				correct: 0,
			},
			{
				text:    "What does horizontal scaling mean?",
				answers: []string{"Bigger machines", "More machines", "Faster disks", "More threads"},
				correct: 1,
			},
		}
		for i, q := range questions {
			question := model.QuizQuestion{
				QuizID:        quiz.ID,
				Question:      q.text,
				QuestionType:  "MultipleChoice",
				QuestionOrder: i + 1,
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
			for j, text := range q.answers {
				answer := model.QuizAnswer{
					QuestionID:  question.ID,
					Answer:      text,
					IsCorrect:   j == q.correct,
					AnswerOrder: j + 1,
				}
				if err := tx.Create(&answer).Error; err != nil {
					return err
				}
			}
		}

		users := []struct {
			email, password, first, last, country string
		}{
			{"alice@example.com", "password123", "Alice", "Johnson", "United States"},
			{"bob@example.com", "password123", "Bob", "Smith", "Canada"},
		}
		for _, u := range users {
			hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			user := model.User{
				Email:     u.email,
				Password:  string(hash),
				FirstName: u.first,
				LastName:  u.last,
				Country:   u.country,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		}

		logger.Log.Info("Demo data seeded",
			zap.Int("courses", len(courses)),
			zap.Int("achievements", len(achievements)),
		)
		return nil
	})
}
