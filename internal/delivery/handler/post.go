package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"social-service/internal/domain"
	"social-service/internal/usecase"
)

type PostHandler struct {
	posts *usecase.PostUsecase
}

func NewPostHandler(posts *usecase.PostUsecase) *PostHandler {
	return &PostHandler{posts: posts}
}

func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.posts.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) MyPosts(c echo.Context) error {
	posts, err := h.posts.ListByAuthor(c.Request().Context(), CurrentUser(c).ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

type createPostRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
	Image string `json:"image" validate:"required"`
}

func (h *PostHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.posts.Create(c.Request().Context(), CurrentUser(c).ID, req.Title, req.Body, req.Image)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "post created successfully",
		"post":    post,
	})
}

type likeRequest struct {
	PostID string `json:"postId" validate:"required"`
}

func (h *PostHandler) Like(c echo.Context) error {
	postID, err := h.bindPostID(c)
	if err != nil {
		return err
	}
	post, err := h.posts.Like(c.Request().Context(), CurrentUser(c).ID, postID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Unlike(c echo.Context) error {
	postID, err := h.bindPostID(c)
	if err != nil {
		return err
	}
	post, err := h.posts.Unlike(c.Request().Context(), CurrentUser(c).ID, postID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

func (h *PostHandler) bindPostID(c echo.Context) (primitive.ObjectID, error) {
	var req likeRequest
	if err := c.Bind(&req); err != nil {
		return primitive.NilObjectID, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return primitive.NilObjectID, err
	}
	postID, err := primitive.ObjectIDFromHex(req.PostID)
	if err != nil {
		return primitive.NilObjectID, domain.ErrValidation
	}
	return postID, nil
}

type commentRequest struct {
	PostID  string `json:"postId" validate:"required"`
	Comment string `json:"comment" validate:"required"`
}

func (h *PostHandler) Comment(c echo.Context) error {
	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	postID, err := primitive.ObjectIDFromHex(req.PostID)
	if err != nil {
		return domain.ErrValidation
	}

	post, err := h.posts.Comment(c.Request().Context(), CurrentUser(c).ID, postID, req.Comment)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

func (h *PostHandler) DeleteComment(c echo.Context) error {
	postID, err := primitive.ObjectIDFromHex(c.Param("postId"))
	if err != nil {
		return domain.ErrNotFound
	}
	commentID, err := primitive.ObjectIDFromHex(c.Param("commentId"))
	if err != nil {
		return domain.ErrNotFound
	}

	post, err := h.posts.DeleteComment(c.Request().Context(), CurrentUser(c).ID, postID, commentID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Delete(c echo.Context) error {
	postID, err := primitive.ObjectIDFromHex(c.Param("postId"))
	if err != nil {
		return domain.ErrNotFound
	}

	if err := h.posts.Delete(c.Request().Context(), CurrentUser(c).ID, postID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "post deleted successfully"})
}
