package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soko/internal/models/db_models"
	"soko/pkg/utils"
)

type fakeUserRepoWithUpdate struct {
	*fakeUserRepo
	lastChanges map[string]any
}

func (f *fakeUserRepoWithUpdate) UpdateByID(ctx context.Context, id string, changes map[string]any) (*db_models.User, error) {
	f.lastChanges = changes
	for _, u := range f.users {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, utils.ErrNotFound
}

func TestUpdateMeRejectsPasswordField(t *testing.T) {
	user := hashedUser("achen@example.com", "pass1234")
	service := NewUserService(&fakeUserRepoWithUpdate{fakeUserRepo: newFakeUserRepo(user)})

	_, err := service.UpdateMe(context.Background(), user, map[string]any{
		"name":     "Achen",
		"password": "sneaky",
	})

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Contains(t, appErr.Message, "not for password updates")
}

func TestUpdateMeFiltersFields(t *testing.T) {
	user := hashedUser("achen@example.com", "pass1234")
	repo := &fakeUserRepoWithUpdate{fakeUserRepo: newFakeUserRepo(user)}
	service := NewUserService(repo)

	_, err := service.UpdateMe(context.Background(), user, map[string]any{
		"name": "Achen P.",
		"role": "admin",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"name": "Achen P."}, repo.lastChanges)
}

func TestDeleteMeDeactivates(t *testing.T) {
	user := hashedUser("achen@example.com", "pass1234")
	repo := &fakeUserRepoWithUpdate{fakeUserRepo: newFakeUserRepo(user)}
	service := NewUserService(repo)

	require.NoError(t, service.DeleteMe(context.Background(), user))
	assert.False(t, user.Active)
}
