package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/dev-connector/internal/service"
	"github.com/MKhiriev/dev-connector/internal/store"
	"github.com/MKhiriev/dev-connector/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

type composeMode int

const (
	composeNone composeMode = iota
	composePost
	composeComment
)

const postTextWidth = 72

// PostsModel is the posts feed, newest first. The selected post can be
// liked, unliked, commented on, and, when it belongs to the user, deleted.
type PostsModel struct {
	ctx     context.Context
	posts   service.ClientPostService
	session *sessionState

	items    []models.Post
	idx      int
	expanded bool
	loading  bool
	busy     bool
	spinner  spinner.Model

	mode  composeMode
	input textinput.Model

	status string
	errMsg string
}

func NewPostsModel(ctx context.Context, posts service.ClientPostService, session *sessionState) *PostsModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	input := textinput.New()
	input.CharLimit = 300
	input.Width = postTextWidth

	return &PostsModel{
		ctx:     ctx,
		posts:   posts,
		session: session,
		spinner: s,
		input:   input,
	}
}

func (m *PostsModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *PostsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case postsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.posts
		m.clampIdx()
		return m, nil

	case postChangedMsg:
		m.busy = false
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		m.errMsg = ""
		m.replace(msg.post)
		m.status = msg.action
		return m, nil

	case postCreatedMsg:
		m.busy = false
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		m.errMsg = ""
		m.items = append([]models.Post{msg.post}, m.items...)
		m.idx = 0
		m.status = "Post added"
		return m, nil

	case postDeletedMsg:
		m.busy = false
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		m.errMsg = ""
		m.remove(msg.id)
		m.status = "Post removed"
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.mode != composeNone {
		return m.updateCompose(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		if m.expanded {
			m.expanded = false
			return m, nil
		}
		return m, navigate(pageDashboard)
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.expanded = !m.expanded
	case key.Matches(keyMsg, keys.refresh):
		return m, m.Init()
	case key.Matches(keyMsg, keys.newPost):
		m.startCompose(composePost, "What's on your mind?")
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.comment):
		if _, ok := m.current(); ok {
			m.startCompose(composeComment, "Leave a comment")
			return m, textinput.Blink
		}
	case key.Matches(keyMsg, keys.like):
		return m, m.act(func(ctx context.Context, id string) (models.Post, error) { return m.posts.Like(ctx, id) }, "Liked")
	case key.Matches(keyMsg, keys.unlike):
		return m, m.act(func(ctx context.Context, id string) (models.Post, error) { return m.posts.Unlike(ctx, id) }, "Like removed")
	case key.Matches(keyMsg, keys.uncomment):
		return m, m.deleteOwnComment()
	case key.Matches(keyMsg, keys.remove):
		return m, m.deletePost()
	case key.Matches(keyMsg, keys.copy):
		post, ok := m.current()
		if !ok {
			m.status = "Nothing to copy"
			return m, nil
		}
		if err := writeClipboard(post.ID); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.status = "Post id copied"
	}

	return m, nil
}

func (m *PostsModel) updateCompose(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.stopCompose()
		return m, nil
	case "enter":
		if m.busy {
			return m, nil
		}
		text := m.input.Value()
		mode := m.mode
		m.stopCompose()
		m.busy = true
		m.errMsg = ""

		if mode == composePost {
			return m, tea.Batch(m.spinner.Tick, m.cmdCreate(text))
		}
		post, _ := m.current()
		return m, tea.Batch(m.spinner.Tick, m.cmdChange("Comment added", post.ID, func(ctx context.Context, id string) (models.Post, error) {
			return m.posts.Comment(ctx, id, text)
		}))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	return m, cmd
}

func (m *PostsModel) View() string {
	var b strings.Builder

	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString(m.spinner.View() + " Loading posts...\n")
	case len(m.items) == 0:
		b.WriteString("No posts yet. Press n to write the first one.\n")
	default:
		userID := m.session.userID()
		for i, post := range m.items {
			m.writePost(&b, post, i == m.idx, userID)
		}
	}

	if m.mode != composeNone {
		label := "New post"
		if m.mode == composeComment {
			label = "Comment"
		}
		b.WriteString("\n")
		b.WriteString(label)
		b.WriteString(": [")
		b.WriteString(m.input.View())
		b.WriteString("]\n")
	}

	if m.busy {
		b.WriteString("\n" + m.spinner.View() + " Sending...\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorLine(m.errMsg))
		b.WriteString("\n")
	}

	hotKeys := "↑/↓: move │ enter: comments │ l: like │ u: unlike │ n: new post │ c: comment │ x: delete my comment │ ctrl+d: delete post │ y: copy id │ r: refresh │ esc: back"
	if m.mode != composeNone {
		hotKeys = "enter: send │ esc: cancel"
	}
	return renderPage("POSTS", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *PostsModel) writePost(b *strings.Builder, post models.Post, selected bool, userID string) {
	cursor := "  "
	if selected {
		cursor = "> "
	}

	liked := ""
	if userID != "" && post.LikedBy(userID) {
		liked = " (liked)"
	}

	head := fmt.Sprintf("%s%s · %s", cursor, valueOrDash(post.Name), post.Date.Local().Format(dateLayout))
	if selected {
		head = selectedStyle.Render(head)
	}
	b.WriteString(head)
	b.WriteString("\n    ")
	b.WriteString(fitText(post.Text, postTextWidth))
	b.WriteString("\n    ")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("♥ %d%s   💬 %d", len(post.Likes), liked, len(post.Comments))))
	b.WriteString("\n")

	if selected && m.expanded {
		if len(post.Comments) == 0 {
			b.WriteString(mutedStyle.Render("      no comments"))
			b.WriteString("\n")
		}
		for _, c := range post.Comments {
			b.WriteString("      ")
			b.WriteString(valueOrDash(c.Name))
			b.WriteString(": ")
			b.WriteString(fitText(c.Text, postTextWidth-8))
			b.WriteString("\n")
		}
	}
}

func (m *PostsModel) current() (models.Post, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Post{}, false
	}
	return m.items[m.idx], true
}

func (m *PostsModel) clampIdx() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *PostsModel) replace(post models.Post) {
	for i := range m.items {
		if m.items[i].ID == post.ID {
			m.items[i] = post
			return
		}
	}
}

func (m *PostsModel) remove(id string) {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			break
		}
	}
	m.clampIdx()
}

func (m *PostsModel) startCompose(mode composeMode, placeholder string) {
	m.mode = mode
	m.input.SetValue("")
	m.input.Placeholder = placeholder
	m.input.Focus()
	m.status = ""
}

func (m *PostsModel) stopCompose() {
	m.mode = composeNone
	m.input.Blur()
}

// fail shows err, or sends the user back to log in when the token was rejected.
func (m *PostsModel) fail(err error) tea.Cmd {
	if sessionExpired(err) {
		return expireSession
	}

	m.status = ""
	switch {
	case errors.Is(err, store.ErrAlreadyLiked):
		m.errMsg = "You already liked this post"
	case errors.Is(err, store.ErrNotLiked):
		m.errMsg = "You have not yet liked this post"
	case errors.Is(err, service.ErrNotPostOwner):
		m.errMsg = "Only the author can delete this post"
	default:
		m.errMsg = humanizeServerUnavailableError(err)
	}
	return nil
}

func (m *PostsModel) act(call func(ctx context.Context, id string) (models.Post, error), action string) tea.Cmd {
	post, ok := m.current()
	if !ok || m.busy {
		return nil
	}
	m.busy = true
	m.status = ""
	return tea.Batch(m.spinner.Tick, m.cmdChange(action, post.ID, call))
}

func (m *PostsModel) deleteOwnComment() tea.Cmd {
	post, ok := m.current()
	if !ok || m.busy {
		return nil
	}

	userID := m.session.userID()
	for _, c := range post.Comments {
		if c.User == userID {
			commentID := c.ID
			m.busy = true
			return tea.Batch(m.spinner.Tick, m.cmdChange("Comment removed", post.ID, func(ctx context.Context, id string) (models.Post, error) {
				return m.posts.DeleteComment(ctx, id, commentID)
			}))
		}
	}

	m.status = "You have no comments on this post"
	return nil
}

func (m *PostsModel) deletePost() tea.Cmd {
	post, ok := m.current()
	if !ok || m.busy {
		return nil
	}
	m.busy = true
	ctx, posts, id := m.ctx, m.posts, post.ID
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return postDeletedMsg{id: id, err: posts.Delete(ctx, id)}
	})
}

func (m *PostsModel) cmdLoad() tea.Cmd {
	ctx, posts := m.ctx, m.posts
	return func() tea.Msg {
		items, err := posts.Feed(ctx)
		return postsLoadedMsg{posts: items, err: err}
	}
}

func (m *PostsModel) cmdCreate(text string) tea.Cmd {
	ctx, posts := m.ctx, m.posts
	return func() tea.Msg {
		post, err := posts.Create(ctx, text)
		return postCreatedMsg{post: post, err: err}
	}
}

func (m *PostsModel) cmdChange(action, postID string, call func(ctx context.Context, id string) (models.Post, error)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		post, err := call(ctx, postID)
		return postChangedMsg{action: action, post: post, err: err}
	}
}
