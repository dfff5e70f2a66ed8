package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcaron/dialogue/internal/domain"
)

func TestGetOrCreateReturnsExistingConversation(t *testing.T) {
	env := newTestEnv(t)
	handler := NewConversationHandler(env.convService)

	body := `{"user_id":"` + env.bob.ID.String() + `"}`
	r := httptest.NewRequest(http.MethodPost, "/api/v1/conversations", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.GetOrCreate(w, authedRequest(r, env.alice.ID))

	require.Equal(t, http.StatusOK, w.Code)

	var conv domain.Conversation
	require.NoError(t, json.NewDecoder(w.Body).Decode(&conv))
	assert.Equal(t, env.conv.ID, conv.ID)
	assert.Equal(t, env.bob.ID, conv.OtherUserID)
	assert.Equal(t, "bob", conv.OtherUserUsername)
}

func TestGetOrCreateUnknownUser(t *testing.T) {
	env := newTestEnv(t)
	handler := NewConversationHandler(env.convService)

	body := `{"user_id":"` + uuid.NewString() + `"}`
	r := httptest.NewRequest(http.MethodPost, "/api/v1/conversations", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.GetOrCreate(w, authedRequest(r, env.alice.ID))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOrCreateMissingUserID(t *testing.T) {
	env := newTestEnv(t)
	handler := NewConversationHandler(env.convService)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/conversations", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	handler.GetOrCreate(w, authedRequest(r, env.alice.ID))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConversationGetForbidden(t *testing.T) {
	env := newTestEnv(t)
	handler := NewConversationHandler(env.convService)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/conversations/"+env.conv.ID.String(), nil)
	r.SetPathValue("id", env.conv.ID.String())
	w := httptest.NewRecorder()

	handler.Get(w, authedRequest(r, uuid.New()))

	assert.Equal(t, http.StatusForbidden, w.Code)
}
