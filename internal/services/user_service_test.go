package services

import (
	"context"
	"testing"

	"github.com/greencityconnect/waste-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newUserFixture(t *testing.T) (*UserService, primitive.ObjectID) {
	t.Helper()
	userRepo := newFakeUserRepo()
	user := &models.User{
		Name:    "Asha",
		Email:   "asha@example.com",
		Address: "12 MG Road",
		Status:  models.UserStatusActive,
	}
	require.NoError(t, userRepo.Create(context.Background(), user))
	return NewUserService(userRepo), user.ID
}

func TestUpdateProfile(t *testing.T) {
	svc, userID := newUserFixture(t)
	ctx := context.Background()

	updated, err := svc.UpdateProfile(ctx, userID, &ProfileUpdate{Name: "Asha Verma"})
	require.NoError(t, err)
	assert.Equal(t, "Asha Verma", updated.Name)
	// Empty fields are left alone
	assert.Equal(t, "12 MG Road", updated.Address)

	_, err = svc.UpdateProfile(ctx, primitive.NewObjectID(), &ProfileUpdate{Name: "x"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUserStatus(t *testing.T) {
	svc, userID := newUserFixture(t)
	ctx := context.Background()

	updated, err := svc.UpdateUserStatus(ctx, userID, models.UserStatusBlocked)
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusBlocked, updated.Status)

	_, err = svc.UpdateUserStatus(ctx, userID, models.UserStatus("suspended"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestDeleteUser(t *testing.T) {
	svc, userID := newUserFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.DeleteUser(ctx, userID))
	assert.ErrorIs(t, svc.DeleteUser(ctx, userID), ErrUserNotFound)

	_, err := svc.GetUserByID(ctx, userID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
