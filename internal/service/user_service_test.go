package service

import (
	"learning_platform_backend/internal/repository"
	"learning_platform_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	req := UserRequest{
		Email:     "new@example.com",
		Password:  "secret123",
		FirstName: "New",
		LastName:  "User",
	}

	user, err := svc.Create(req)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "New User", user.FullName())

	// 只存哈希，不存明文
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := svc.Create(req)
		assert.ErrorIs(t, err, util.ErrEmailRegistered)
	})
}

func TestGetAndDeleteUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	user := createTestUser(t, db, "gad@example.com")

	got, err := svc.Get(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	require.NoError(t, svc.Delete(user.ID))
	_, err = svc.Get(user.ID)
	assert.ErrorIs(t, err, util.ErrUserNotFound)

	assert.ErrorIs(t, svc.Delete(99999), util.ErrUserNotFound)
}

func TestReregisterEmailAfterDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	req := UserRequest{
		Email:     "recycled@example.com",
		Password:  "secret123",
		FirstName: "First",
		LastName:  "Owner",
	}

	user, err := svc.Create(req)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(user.ID))

	// 删除必须释放 email 唯一索引的槽位
	req.FirstName = "Second"
	recreated, err := svc.Create(req)
	require.NoError(t, err)
	assert.Equal(t, "recycled@example.com", recreated.Email)
}
