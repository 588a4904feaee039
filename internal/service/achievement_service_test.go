package service

import (
	"learning_platform_backend/internal/model"
	"learning_platform_backend/internal/repository"
	"learning_platform_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwardAchievement(t *testing.T) {
	db := newTestDB(t)
	svc := NewAchievementService(
		repository.NewAchievementRepository(db),
		repository.NewUserRepository(db),
	)

	user := createTestUser(t, db, "award@example.com")
	achievement, err := svc.Create(AchievementRequest{Name: "First Course", Criteria: "Complete 1 course"})
	require.NoError(t, err)

	ua, err := svc.Award(user.ID, achievement.ID)
	require.NoError(t, err)
	assert.False(t, ua.EarnedDate.IsZero())

	t.Run("awarded only once per pair", func(t *testing.T) {
		_, err := svc.Award(user.ID, achievement.ID)
		assert.ErrorIs(t, err, util.ErrAchievementAlreadyEarned)

		var count int64
		require.NoError(t, db.Model(&model.UserAchievement{}).
			Where("user_id = ? AND achievement_id = ?", user.ID, achievement.ID).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Award(99999, achievement.ID)
		assert.ErrorIs(t, err, util.ErrUserNotFound)
	})

	t.Run("unknown achievement", func(t *testing.T) {
		_, err := svc.Award(user.ID, 99999)
		assert.ErrorIs(t, err, util.ErrAchievementNotFound)
	})

	t.Run("listed for user", func(t *testing.T) {
		list, err := svc.ListByUser(user.ID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}
