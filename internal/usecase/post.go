package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"social-service/internal/domain"
	"social-service/internal/repository"
)

// PostUsecase covers post creation, feeds and the like/comment/delete
// mutations together with their ownership rules.
type PostUsecase struct {
	posts repository.PostRepository
	users repository.UserRepository
}

func NewPostUsecase(posts repository.PostRepository, users repository.UserRepository) *PostUsecase {
	return &PostUsecase{posts: posts, users: users}
}

func (uc *PostUsecase) Create(ctx context.Context, authorID primitive.ObjectID, title, body, image string) (*domain.Post, error) {
	if title == "" || body == "" || image == "" {
		return nil, domain.ErrValidation
	}

	post := &domain.Post{
		Title:    title,
		Body:     body,
		Image:    image,
		PostedBy: authorID,
		Likes:    []primitive.ObjectID{},
		Comments: []domain.Comment{},
	}
	if err := uc.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (uc *PostUsecase) ListAll(ctx context.Context) ([]domain.PostView, error) {
	posts, err := uc.posts.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return postViews(ctx, uc.users, posts)
}

func (uc *PostUsecase) ListByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]domain.PostView, error) {
	posts, err := uc.posts.FindByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	return postViews(ctx, uc.users, posts)
}

// Like records the caller in the post's like set. Liking twice is a no-op.
func (uc *PostUsecase) Like(ctx context.Context, callerID, postID primitive.ObjectID) (*domain.Post, error) {
	return uc.posts.AddLike(ctx, postID, callerID)
}

func (uc *PostUsecase) Unlike(ctx context.Context, callerID, postID primitive.ObjectID) (*domain.Post, error) {
	return uc.posts.RemoveLike(ctx, postID, callerID)
}

// Comment appends a comment and returns the post with authors resolved.
func (uc *PostUsecase) Comment(ctx context.Context, callerID, postID primitive.ObjectID, text string) (*domain.PostView, error) {
	if text == "" {
		return nil, domain.ErrValidation
	}

	comment := domain.Comment{
		ID:       primitive.NewObjectID(),
		Text:     text,
		PostedBy: callerID,
	}
	post, err := uc.posts.AddComment(ctx, postID, comment)
	if err != nil {
		return nil, err
	}
	return uc.view(ctx, post)
}

// DeleteComment removes a comment. Only the comment author or the post
// owner may do so.
func (uc *PostUsecase) DeleteComment(ctx context.Context, callerID, postID, commentID primitive.ObjectID) (*domain.PostView, error) {
	post, err := uc.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	var comment *domain.Comment
	for i := range post.Comments {
		if post.Comments[i].ID == commentID {
			comment = &post.Comments[i]
			break
		}
	}
	if comment == nil {
		return nil, domain.ErrNotFound
	}
	if comment.PostedBy != callerID && post.PostedBy != callerID {
		return nil, domain.ErrForbidden
	}

	updated, err := uc.posts.RemoveComment(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	return uc.view(ctx, updated)
}

// Delete removes a post. Anyone but the owner gets an explicit refusal.
func (uc *PostUsecase) Delete(ctx context.Context, callerID, postID primitive.ObjectID) error {
	post, err := uc.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.PostedBy != callerID {
		return domain.ErrForbidden
	}
	return uc.posts.Delete(ctx, postID)
}

func (uc *PostUsecase) view(ctx context.Context, post *domain.Post) (*domain.PostView, error) {
	views, err := postViews(ctx, uc.users, []domain.Post{*post})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}
