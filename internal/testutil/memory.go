// Package testutil provides in-memory repository implementations so the
// usecase and handler tests run against the same interfaces as MongoDB
// without a live deployment.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"social-service/internal/domain"
)

// UserStore is an in-memory UserRepository.
type UserStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*domain.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[primitive.ObjectID]*domain.User)}
}

func (s *UserStore) Create(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	now := time.Now().UTC()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = cloneUser(user)
	return nil
}

func (s *UserStore) FindByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneUser(user), nil
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *UserStore) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.User
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out = append(out, *cloneUser(u))
		}
	}
	return out, nil
}

func (s *UserStore) FindAll(_ context.Context) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *UserStore) UpdateProfile(_ context.Context, id primitive.ObjectID, upd domain.ProfileUpdate) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Avatar != nil {
		user.Avatar = *upd.Avatar
	}
	if upd.Bio != nil {
		user.Bio = *upd.Bio
	}
	user.UpdatedAt = time.Now().UTC()
	return cloneUser(user), nil
}

func (s *UserStore) Follow(_ context.Context, actorID, targetID primitive.ObjectID) (*domain.User, *domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, ok := s.users[targetID]
	if !ok {
		return nil, nil, domain.ErrNotFound
	}
	actor, ok := s.users[actorID]
	if !ok {
		return nil, nil, domain.ErrNotFound
	}

	target.Followers = addToSet(target.Followers, actorID)
	actor.Following = addToSet(actor.Following, targetID)
	return cloneUser(target), cloneUser(actor), nil
}

func (s *UserStore) Unfollow(_ context.Context, actorID, targetID primitive.ObjectID) (*domain.User, *domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, ok := s.users[targetID]
	if !ok {
		return nil, nil, domain.ErrNotFound
	}
	actor, ok := s.users[actorID]
	if !ok {
		return nil, nil, domain.ErrNotFound
	}

	target.Followers = pull(target.Followers, actorID)
	actor.Following = pull(actor.Following, targetID)
	return cloneUser(target), cloneUser(actor), nil
}

// PostStore is an in-memory PostRepository. An insertion sequence breaks
// creation-time ties so feeds stay deterministically newest first.
type PostStore struct {
	mu    sync.Mutex
	posts map[primitive.ObjectID]*domain.Post
	order map[primitive.ObjectID]int
	seq   int
}

func NewPostStore() *PostStore {
	return &PostStore{
		posts: make(map[primitive.ObjectID]*domain.Post),
		order: make(map[primitive.ObjectID]int),
	}
}

func (s *PostStore) Create(_ context.Context, post *domain.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	post.ID = primitive.NewObjectID()
	post.CreatedAt = now
	post.UpdatedAt = now
	s.seq++
	s.posts[post.ID] = clonePost(post)
	s.order[post.ID] = s.seq
	return nil
}

func (s *PostStore) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(id)
}

func (s *PostStore) FindAll(_ context.Context) ([]domain.Post, error) {
	return s.findWhere(func(*domain.Post) bool { return true })
}

func (s *PostStore) FindByAuthor(_ context.Context, userID primitive.ObjectID) ([]domain.Post, error) {
	return s.findWhere(func(p *domain.Post) bool { return p.PostedBy == userID })
}

func (s *PostStore) AddLike(_ context.Context, postID, userID primitive.ObjectID) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, err := s.get(postID)
	if err != nil {
		return nil, err
	}
	s.posts[postID].Likes = addToSet(s.posts[postID].Likes, userID)
	post.Likes = addToSet(post.Likes, userID)
	return post, nil
}

func (s *PostStore) RemoveLike(_ context.Context, postID, userID primitive.ObjectID) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, err := s.get(postID)
	if err != nil {
		return nil, err
	}
	s.posts[postID].Likes = pull(s.posts[postID].Likes, userID)
	post.Likes = pull(post.Likes, userID)
	return post, nil
}

func (s *PostStore) AddComment(_ context.Context, postID primitive.ObjectID, comment domain.Comment) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.posts[postID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	stored.Comments = append(stored.Comments, comment)
	return clonePost(stored), nil
}

func (s *PostStore) RemoveComment(_ context.Context, postID, commentID primitive.ObjectID) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.posts[postID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	kept := stored.Comments[:0]
	for _, c := range stored.Comments {
		if c.ID != commentID {
			kept = append(kept, c)
		}
	}
	stored.Comments = kept
	return clonePost(stored), nil
}

func (s *PostStore) Delete(_ context.Context, postID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[postID]; !ok {
		return domain.ErrNotFound
	}
	delete(s.posts, postID)
	delete(s.order, postID)
	return nil
}

func (s *PostStore) get(id primitive.ObjectID) (*domain.Post, error) {
	post, ok := s.posts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return clonePost(post), nil
}

func (s *PostStore) findWhere(match func(*domain.Post) bool) ([]domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Post
	for _, p := range s.posts {
		if match(p) {
			out = append(out, *clonePost(p))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return s.order[out[i].ID] > s.order[out[j].ID]
	})
	return out, nil
}

func addToSet(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

func pull(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	kept := make([]primitive.ObjectID, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	return kept
}

func cloneUser(u *domain.User) *domain.User {
	c := *u
	c.Followers = append([]primitive.ObjectID(nil), u.Followers...)
	c.Following = append([]primitive.ObjectID(nil), u.Following...)
	return &c
}

func clonePost(p *domain.Post) *domain.Post {
	c := *p
	c.Likes = append([]primitive.ObjectID(nil), p.Likes...)
	c.Comments = append([]domain.Comment(nil), p.Comments...)
	return &c
}
