package service

import (
	"context"

	"github.com/MKhiriev/dev-connector/internal/store"
	"github.com/MKhiriev/dev-connector/models"
)

// ─────────────────────────────────────────────
// Fake: store.UserRepository
// ─────────────────────────────────────────────

type fakeUserRepository struct {
	createFn      func(ctx context.Context, user models.User) (models.User, error)
	findByEmailFn func(ctx context.Context, email string) (models.User, error)
	findByIDFn    func(ctx context.Context, userID string) (models.User, error)
	deleteFn      func(ctx context.Context, userID string) error
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if f.createFn != nil {
		return f.createFn(ctx, user)
	}
	return user, nil
}

func (f *fakeUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return models.User{}, store.ErrUserNotFound
}

func (f *fakeUserRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, userID)
	}
	return models.User{}, store.ErrUserNotFound
}

func (f *fakeUserRepository) DeleteUser(ctx context.Context, userID string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Fake: store.ProfileRepository
// ─────────────────────────────────────────────

type fakeProfileRepository struct {
	findByUserFn    func(ctx context.Context, userID string) (models.Profile, error)
	findByHandleFn  func(ctx context.Context, handle string) (models.Profile, error)
	findAllFn       func(ctx context.Context) ([]models.Profile, error)
	createFn        func(ctx context.Context, p models.Profile) error
	updateFn        func(ctx context.Context, p models.Profile) error
	deleteFn        func(ctx context.Context, userID string) error
	addExperienceFn func(ctx context.Context, userID string, e models.Experience) error
	delExperienceFn func(ctx context.Context, userID, id string) error
	addEducationFn  func(ctx context.Context, userID string, e models.Education) error
	delEducationFn  func(ctx context.Context, userID, id string) error
}

func (f *fakeProfileRepository) FindProfileByUserID(ctx context.Context, userID string) (models.Profile, error) {
	if f.findByUserFn != nil {
		return f.findByUserFn(ctx, userID)
	}
	return models.Profile{}, store.ErrProfileNotFound
}

func (f *fakeProfileRepository) FindProfileByHandle(ctx context.Context, handle string) (models.Profile, error) {
	if f.findByHandleFn != nil {
		return f.findByHandleFn(ctx, handle)
	}
	return models.Profile{}, store.ErrProfileNotFound
}

func (f *fakeProfileRepository) FindAllProfiles(ctx context.Context) ([]models.Profile, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return []models.Profile{}, nil
}

func (f *fakeProfileRepository) CreateProfile(ctx context.Context, p models.Profile) error {
	if f.createFn != nil {
		return f.createFn(ctx, p)
	}
	return nil
}

func (f *fakeProfileRepository) UpdateProfile(ctx context.Context, p models.Profile) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, p)
	}
	return nil
}

func (f *fakeProfileRepository) DeleteProfile(ctx context.Context, userID string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, userID)
	}
	return nil
}

func (f *fakeProfileRepository) AddExperience(ctx context.Context, userID string, e models.Experience) error {
	if f.addExperienceFn != nil {
		return f.addExperienceFn(ctx, userID, e)
	}
	return nil
}

func (f *fakeProfileRepository) DeleteExperience(ctx context.Context, userID, id string) error {
	if f.delExperienceFn != nil {
		return f.delExperienceFn(ctx, userID, id)
	}
	return nil
}

func (f *fakeProfileRepository) AddEducation(ctx context.Context, userID string, e models.Education) error {
	if f.addEducationFn != nil {
		return f.addEducationFn(ctx, userID, e)
	}
	return nil
}

func (f *fakeProfileRepository) DeleteEducation(ctx context.Context, userID, id string) error {
	if f.delEducationFn != nil {
		return f.delEducationFn(ctx, userID, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Fake: store.PostRepository backed by a map
// ─────────────────────────────────────────────

// memPostRepository keeps posts in memory and enforces the same like/unlike
// and comment rules as the SQL implementation.
type memPostRepository struct {
	posts map[string]*models.Post
	order []string
}

func newMemPostRepository(posts ...models.Post) *memPostRepository {
	r := &memPostRepository{posts: make(map[string]*models.Post)}
	for i := range posts {
		p := posts[i]
		if p.Likes == nil {
			p.Likes = []models.Like{}
		}
		if p.Comments == nil {
			p.Comments = []models.Comment{}
		}
		r.posts[p.ID] = &p
		r.order = append([]string{p.ID}, r.order...)
	}
	return r
}

func (r *memPostRepository) ListPosts(ctx context.Context) ([]models.Post, error) {
	out := make([]models.Post, 0, len(r.order))
	for _, id := range r.order {
		if p, ok := r.posts[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memPostRepository) FindPostByID(ctx context.Context, postID string) (models.Post, error) {
	p, ok := r.posts[postID]
	if !ok {
		return models.Post{}, store.ErrPostNotFound
	}
	cp := *p
	cp.Likes = append([]models.Like{}, p.Likes...)
	cp.Comments = append([]models.Comment{}, p.Comments...)
	return cp, nil
}

func (r *memPostRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	post.Likes = []models.Like{}
	post.Comments = []models.Comment{}
	r.posts[post.ID] = &post
	r.order = append([]string{post.ID}, r.order...)
	return post, nil
}

func (r *memPostRepository) DeletePost(ctx context.Context, postID, userID string) error {
	p, ok := r.posts[postID]
	if !ok || p.User != userID {
		return store.ErrPostNotFound
	}
	delete(r.posts, postID)
	return nil
}

func (r *memPostRepository) AddLike(ctx context.Context, postID, userID string) error {
	p, ok := r.posts[postID]
	if !ok {
		return store.ErrPostNotFound
	}
	if p.LikedBy(userID) {
		return store.ErrAlreadyLiked
	}
	p.Likes = append([]models.Like{{User: userID}}, p.Likes...)
	return nil
}

func (r *memPostRepository) RemoveLike(ctx context.Context, postID, userID string) error {
	p, ok := r.posts[postID]
	if !ok {
		return store.ErrPostNotFound
	}
	for i, l := range p.Likes {
		if l.User == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return nil
		}
	}
	return store.ErrNotLiked
}

func (r *memPostRepository) AddComment(ctx context.Context, postID string, c models.Comment) (models.Comment, error) {
	p, ok := r.posts[postID]
	if !ok {
		return models.Comment{}, store.ErrPostNotFound
	}
	p.Comments = append([]models.Comment{c}, p.Comments...)
	return c, nil
}

func (r *memPostRepository) DeleteComment(ctx context.Context, postID, commentID string) error {
	p, ok := r.posts[postID]
	if !ok {
		return store.ErrPostNotFound
	}
	for i, c := range p.Comments {
		if c.ID == commentID {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return nil
		}
	}
	return store.ErrCommentNotFound
}
