package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warbler-app/api-go/models"
)

func TestAnonymousFeedIsEmpty(t *testing.T) {
	r, _ := setupRouter(t)
	ann := registerUser(t, r, "ann")
	postMessage(t, r, ann, "invisible to anonymous viewers")

	w := doJSON(t, r, http.MethodGet, "/api/feed", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, feedTexts(t, w))
}

func TestFeedWithInvalidTokenIsEmpty(t *testing.T) {
	r, _ := setupRouter(t)
	ann := registerUser(t, r, "ann")
	postMessage(t, r, ann, "hello")

	w := doJSON(t, r, http.MethodGet, "/api/feed", "not-a-real-token", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, feedTexts(t, w))
}

func TestFeedContainsOnlyFollowedAndSelf(t *testing.T) {
	r, _ := setupRouter(t)
	u := registerUser(t, r, "viewer")
	a := registerUser(t, r, "alice")
	b := registerUser(t, r, "bill")
	c := registerUser(t, r, "carol")

	require.Equal(t, http.StatusOK,
		doJSON(t, r, http.MethodPost, "/api/users/"+itoa(a.ID)+"/follow", u.AccessToken, nil).Code)
	require.Equal(t, http.StatusOK,
		doJSON(t, r, http.MethodPost, "/api/users/"+itoa(b.ID)+"/follow", u.AccessToken, nil).Code)

	postMessage(t, r, a, "from alice")
	postMessage(t, r, b, "from bill")
	postMessage(t, r, c, "from carol")
	postMessage(t, r, u, "from viewer")

	w := doJSON(t, r, http.MethodGet, "/api/feed", u.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	texts := feedTexts(t, w)
	assert.ElementsMatch(t, []string{"from alice", "from bill", "from viewer"}, texts)
	assert.NotContains(t, texts, "from carol")
}

func TestFeedOrdersNewestFirst(t *testing.T) {
	r, db := setupRouter(t)
	ann := registerUser(t, r, "ann")

	// Seed directly so the timestamps are distinct and controlled.
	base := time.Now().Add(-time.Hour)
	for i, text := range []string{"oldest", "middle", "newest"} {
		require.NoError(t, db.Create(&models.Message{
			Text:      text,
			UserID:    ann.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}).Error)
	}

	w := doJSON(t, r, http.MethodGet, "/api/feed", ann.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"newest", "middle", "oldest"}, feedTexts(t, w))
}

func TestFeedBreaksTimestampTiesByID(t *testing.T) {
	r, db := setupRouter(t)
	ann := registerUser(t, r, "ann")

	ts := time.Now().Truncate(time.Second)
	for _, text := range []string{"first insert", "second insert"} {
		require.NoError(t, db.Create(&models.Message{
			Text:      text,
			UserID:    ann.ID,
			CreatedAt: ts,
		}).Error)
	}

	w := doJSON(t, r, http.MethodGet, "/api/feed", ann.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"second insert", "first insert"}, feedTexts(t, w))
}

func TestFeedCappedAtHundred(t *testing.T) {
	r, db := setupRouter(t)
	ann := registerUser(t, r, "ann")

	base := time.Now().Add(-24 * time.Hour)
	for i := 0; i < 105; i++ {
		require.NoError(t, db.Create(&models.Message{
			Text:      fmt.Sprintf("message %d", i),
			UserID:    ann.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}).Error)
	}

	w := doJSON(t, r, http.MethodGet, "/api/feed", ann.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	texts := feedTexts(t, w)
	require.Len(t, texts, 100)
	assert.Equal(t, "message 104", texts[0])
	assert.Equal(t, "message 5", texts[99])
}

func TestFeedFollowScenario(t *testing.T) {
	r, _ := setupRouter(t)
	ann := registerUser(t, r, "ann")
	postMessage(t, r, ann, "hello")

	bob := registerUser(t, r, "bob")
	require.Equal(t, http.StatusOK,
		doJSON(t, r, http.MethodPost, "/api/users/"+itoa(ann.ID)+"/follow", bob.AccessToken, nil).Code)

	w := doJSON(t, r, http.MethodGet, "/api/feed", bob.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, feedTexts(t, w), "hello")

	require.Equal(t, http.StatusOK,
		doJSON(t, r, http.MethodDelete, "/api/users/"+itoa(ann.ID)+"/follow", bob.AccessToken, nil).Code)

	w = doJSON(t, r, http.MethodGet, "/api/feed", bob.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, feedTexts(t, w), "hello")
}
