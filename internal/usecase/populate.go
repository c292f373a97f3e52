package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"social-service/internal/domain"
)

// resolveRefs batch-loads the referenced users and returns display refs
// keyed by id. An id with no backing document still yields a ref so the
// response shape stays stable.
func resolveRefs(ctx context.Context, users userResolver, ids map[primitive.ObjectID]struct{}) (map[primitive.ObjectID]domain.UserRef, error) {
	refs := make(map[primitive.ObjectID]domain.UserRef, len(ids))
	if len(ids) == 0 {
		return refs, nil
	}

	list := make([]primitive.ObjectID, 0, len(ids))
	for id := range ids {
		list = append(list, id)
		refs[id] = domain.UserRef{ID: id}
	}

	found, err := users.FindByIDs(ctx, list)
	if err != nil {
		return nil, err
	}
	for i := range found {
		refs[found[i].ID] = found[i].Ref()
	}
	return refs, nil
}

// userResolver is the slice of UserRepository that population needs.
type userResolver interface {
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.User, error)
}

// postViews resolves post owners and comment authors for a page of posts.
func postViews(ctx context.Context, users userResolver, posts []domain.Post) ([]domain.PostView, error) {
	ids := make(map[primitive.ObjectID]struct{})
	for i := range posts {
		ids[posts[i].PostedBy] = struct{}{}
		for _, c := range posts[i].Comments {
			ids[c.PostedBy] = struct{}{}
		}
	}

	refs, err := resolveRefs(ctx, users, ids)
	if err != nil {
		return nil, err
	}

	views := make([]domain.PostView, 0, len(posts))
	for i := range posts {
		views = append(views, postView(&posts[i], refs))
	}
	return views, nil
}

func postView(post *domain.Post, refs map[primitive.ObjectID]domain.UserRef) domain.PostView {
	comments := make([]domain.CommentView, 0, len(post.Comments))
	for _, c := range post.Comments {
		comments = append(comments, domain.CommentView{
			ID:       c.ID,
			Text:     c.Text,
			PostedBy: refs[c.PostedBy],
		})
	}

	likes := post.Likes
	if likes == nil {
		likes = []primitive.ObjectID{}
	}

	return domain.PostView{
		ID:        post.ID,
		Title:     post.Title,
		Body:      post.Body,
		Image:     post.Image,
		PostedBy:  refs[post.PostedBy],
		Likes:     likes,
		Comments:  comments,
		CreatedAt: post.CreatedAt,
	}
}
