package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOthersExcludesViewer(t *testing.T) {
	alice, bob := newTestUsers()
	svc := NewUserService(newFakeUserRepo(alice, bob))

	users, err := svc.ListOthers(context.Background(), alice.ID)
	require.NoError(t, err)

	require.Len(t, users, 1)
	assert.Equal(t, bob.ID, users[0].ID)
}

func TestListOthersEmpty(t *testing.T) {
	alice, _ := newTestUsers()
	svc := NewUserService(newFakeUserRepo(alice))

	users, err := svc.ListOthers(context.Background(), alice.ID)
	require.NoError(t, err)

	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserFindByIDUnknown(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
