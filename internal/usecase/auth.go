package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"social-service/internal/domain"
	"social-service/internal/infrastructure"
	"social-service/internal/repository"
)

// AuthUsecase handles registration, login and session resolution.
type AuthUsecase struct {
	users  repository.UserRepository
	tokens *infrastructure.TokenService
}

func NewAuthUsecase(users repository.UserRepository, tokens *infrastructure.TokenService) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens}
}

// Register creates a new identity and issues its first token. A reused
// email is a conflict, both on the lookahead check and on the unique index
// underneath it.
func (uc *AuthUsecase) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", domain.ErrValidation
	}

	_, err := uc.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, "", domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Name:      name,
		Email:     email,
		Password:  string(hashed),
		Avatar:    domain.DefaultAvatar,
		Followers: []primitive.ObjectID{},
		Following: []primitive.ObjectID{},
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := uc.tokens.Generate(user.ID.Hex())
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login checks the credentials and issues a fresh token. Unknown email and
// wrong password collapse into the same error so the response does not leak
// which one was wrong.
func (uc *AuthUsecase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := uc.users.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := uc.tokens.Generate(user.ID.Hex())
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
