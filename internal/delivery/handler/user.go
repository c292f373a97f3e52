package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"social-service/internal/domain"
	"social-service/internal/usecase"
)

type UserHandler struct {
	users *usecase.UserUsecase
}

func NewUserHandler(users *usecase.UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Profile(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return domain.ErrNotFound
	}

	profile, posts, err := h.users.Profile(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"user": profile, "posts": posts})
}

type followRequest struct {
	FollowID string `json:"followId" validate:"required"`
}

func (h *UserHandler) Follow(c echo.Context) error {
	var req followRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	targetID, err := primitive.ObjectIDFromHex(req.FollowID)
	if err != nil {
		return domain.ErrValidation
	}

	target, me, err := h.users.Follow(c.Request().Context(), CurrentUser(c).ID, targetID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"user": target, "me": me})
}

type unfollowRequest struct {
	UnfollowID string `json:"unfollowId" validate:"required"`
}

func (h *UserHandler) Unfollow(c echo.Context) error {
	var req unfollowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	targetID, err := primitive.ObjectIDFromHex(req.UnfollowID)
	if err != nil {
		return domain.ErrValidation
	}

	target, me, err := h.users.Unfollow(c.Request().Context(), CurrentUser(c).ID, targetID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"user": target, "me": me})
}

type updateProfileRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1"`
	Avatar *string `json:"avatar" validate:"omitempty,url"`
	Bio    *string `json:"bio" validate:"omitempty,max=280"`
}

// Update applies the allow-listed profile fields. Anything else in the
// payload is dropped on the floor rather than merged into the document.
func (h *UserHandler) Update(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.users.UpdateProfile(c.Request().Context(), CurrentUser(c).ID, domain.ProfileUpdate{
		Name:   req.Name,
		Avatar: req.Avatar,
		Bio:    req.Bio,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user})
}
