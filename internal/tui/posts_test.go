package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/dev-connector/internal/mock"
	"github.com/MKhiriev/dev-connector/internal/service"
	"github.com/MKhiriev/dev-connector/internal/store"
	"github.com/MKhiriev/dev-connector/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPostsModel(t *testing.T, items ...models.Post) (*PostsModel, *mock.MockClientPostService) {
	t.Helper()
	posts := mock.NewMockClientPostService(gomock.NewController(t))
	session := &sessionState{}
	session.set(models.Session{Token: "tok", User: models.CurrentUser{ID: "u1", Name: "Ada"}})

	m := NewPostsModel(context.Background(), posts, session)
	m.Update(postsLoadedMsg{posts: items})
	return m, posts
}

func feed() []models.Post {
	now := time.Date(2026, time.October, 1, 12, 0, 0, 0, time.UTC)
	return []models.Post{
		{ID: "p2", User: "u2", Name: "Bob", Text: "second", Date: now},
		{ID: "p1", User: "u1", Name: "Ada", Text: "first", Date: now.Add(-time.Hour),
			Comments: []models.Comment{{ID: "c1", User: "u1", Name: "Ada", Text: "me again"}}},
	}
}

func TestPostsModel_Init_LoadsFeed(t *testing.T) {
	m, posts := newTestPostsModel(t)
	posts.EXPECT().Feed(gomock.Any()).Return(feed(), nil)

	loaded, ok := findMsg[postsLoadedMsg](collectMsgs(m.Init()))
	require.True(t, ok)
	m.Update(loaded)

	view := m.View()
	assert.Contains(t, view, "second")
	assert.Contains(t, view, "first")
	assert.Less(t, strings.Index(view, "second"), strings.Index(view, "first"))
}

func TestPostsModel_EmptyFeed(t *testing.T) {
	m, _ := newTestPostsModel(t)
	assert.Contains(t, m.View(), "No posts yet")
}

func TestPostsModel_Like(t *testing.T) {
	m, posts := newTestPostsModel(t, feed()...)

	liked := feed()[0]
	liked.Likes = []models.Like{{User: "u1"}}
	posts.EXPECT().Like(gomock.Any(), "p2").Return(liked, nil)

	_, cmd := m.Update(runes("l"))
	changed, ok := findMsg[postChangedMsg](collectMsgs(cmd))
	require.True(t, ok)
	m.Update(changed)

	assert.Len(t, m.items[0].Likes, 1)
	assert.Contains(t, m.View(), "(liked)")
	assert.False(t, m.busy)
}

func TestPostsModel_AlreadyLiked(t *testing.T) {
	m, posts := newTestPostsModel(t, feed()...)
	posts.EXPECT().Like(gomock.Any(), "p2").Return(models.Post{}, store.ErrAlreadyLiked)

	_, cmd := m.Update(runes("l"))
	changed, _ := findMsg[postChangedMsg](collectMsgs(cmd))
	m.Update(changed)

	assert.Empty(t, m.items[0].Likes)
	assert.Contains(t, m.View(), "You already liked this post")
}

func TestPostsModel_Unlike_NotLiked(t *testing.T) {
	m, posts := newTestPostsModel(t, feed()...)
	posts.EXPECT().Unlike(gomock.Any(), "p2").Return(models.Post{}, store.ErrNotLiked)

	_, cmd := m.Update(runes("u"))
	changed, _ := findMsg[postChangedMsg](collectMsgs(cmd))
	m.Update(changed)

	assert.Contains(t, m.View(), "You have not yet liked this post")
}

func TestPostsModel_NewPostIsPrepended(t *testing.T) {
	m, posts := newTestPostsModel(t, feed()...)
	posts.EXPECT().Create(gomock.Any(), "hello world").Return(models.Post{ID: "p3", Name: "Ada", Text: "hello world"}, nil)

	m.Update(runes("n"))
	require.Equal(t, composePost, m.mode)

	// keys go to the input while composing
	m.Update(runes("l"))
	assert.Equal(t, "l", m.input.Value())
	m.input.SetValue("hello world")

	_, cmd := m.Update(keyEnter)
	assert.Equal(t, composeNone, m.mode)
	created, ok := findMsg[postCreatedMsg](collectMsgs(cmd))
	require.True(t, ok)
	m.Update(created)

	require.Len(t, m.items, 3)
	assert.Equal(t, "p3", m.items[0].ID)
	assert.Equal(t, 0, m.idx)
}

func TestPostsModel_ComposeEscCancels(t *testing.T) {
	m, _ := newTestPostsModel(t, feed()...)

	m.Update(runes("c"))
	require.Equal(t, composeComment, m.mode)

	_, cmd := m.Update(keyEsc)
	assert.Nil(t, cmd)
	assert.Equal(t, composeNone, m.mode)
}

func TestPostsModel_CommentAndDeleteOwnComment(t *testing.T) {
	m, posts := newTestPostsModel(t, feed()...)
	m.idx = 1

	withTwo := feed()[1]
	withTwo.Comments = append([]models.Comment{{ID: "c2", User: "u1", Name: "Ada", Text: "hi"}}, withTwo.Comments...)
	gomock.InOrder(
		posts.EXPECT().Comment(gomock.Any(), "p1", "hi").Return(withTwo, nil),
		posts.EXPECT().DeleteComment(gomock.Any(), "p1", "c2").Return(withTwo, nil),
	)

	m.Update(runes("c"))
	m.input.SetValue("hi")
	_, cmd := m.Update(keyEnter)
	changed, ok := findMsg[postChangedMsg](collectMsgs(cmd))
	require.True(t, ok)
	m.Update(changed)
	assert.Len(t, m.items[1].Comments, 2)

	m.Update(keyEnter)
	assert.Contains(t, m.View(), "Ada: hi")

	// the server may keep the comment, the list shows what it returned
	_, cmd = m.Update(runes("x"))
	changed, ok = findMsg[postChangedMsg](collectMsgs(cmd))
	require.True(t, ok)
	m.Update(changed)
	assert.Len(t, m.items[1].Comments, 2)
	assert.Equal(t, "Comment removed", m.status)
}

func TestPostsModel_DeletePost(t *testing.T) {
	m, posts := newTestPostsModel(t, feed()...)
	posts.EXPECT().Delete(gomock.Any(), "p2").Return(service.ErrNotPostOwner)
	posts.EXPECT().Delete(gomock.Any(), "p1").Return(nil)

	_, cmd := m.Update(keyCtrlD())
	deleted, _ := findMsg[postDeletedMsg](collectMsgs(cmd))
	m.Update(deleted)
	assert.Len(t, m.items, 2)
	assert.Contains(t, m.View(), "Only the author can delete this post")

	m.Update(runes("j"))
	_, cmd = m.Update(keyCtrlD())
	deleted, _ = findMsg[postDeletedMsg](collectMsgs(cmd))
	m.Update(deleted)
	require.Len(t, m.items, 1)
	assert.Equal(t, "p2", m.items[0].ID)
	assert.Equal(t, 0, m.idx)
}

func TestPostsModel_CopyID(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	m, _ := newTestPostsModel(t, feed()...)
	m.Update(runes("y"))

	assert.Equal(t, "p2", copied)
	assert.Equal(t, "Post id copied", m.status)

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	m.Update(runes("y"))
	assert.Contains(t, m.errMsg, "no clipboard")
}

func TestPostsModel_SessionExpired(t *testing.T) {
	m, posts := newTestPostsModel(t, feed()...)
	posts.EXPECT().Like(gomock.Any(), "p2").Return(models.Post{}, service.ErrSessionExpired)

	_, cmd := m.Update(runes("l"))
	changed, _ := findMsg[postChangedMsg](collectMsgs(cmd))
	_, cmd = m.Update(changed)

	_, ok := findMsg[sessionExpiredMsg](collectMsgs(cmd))
	assert.True(t, ok)
}

func TestPostsModel_EscGoesBack(t *testing.T) {
	m, _ := newTestPostsModel(t, feed()...)

	m.Update(keyEnter)
	require.True(t, m.expanded)
	_, cmd := m.Update(keyEsc)
	assert.Nil(t, cmd)
	assert.False(t, m.expanded)

	_, cmd = m.Update(keyEsc)
	nav, ok := findMsg[NavigateTo](collectMsgs(cmd))
	require.True(t, ok)
	assert.Equal(t, pageDashboard, nav.Page)
}
