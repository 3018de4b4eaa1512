package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"devconnector/internal/auth"
	"devconnector/internal/errors"
	"devconnector/internal/model"
	"devconnector/internal/repository"
)

const bcryptCost = 10

// UserService handles registration and authentication.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	// Login returns a bearer-prefixed signed token on success. Unknown emails
	// and wrong passwords fail identically.
	Login(ctx context.Context, email, password string) (string, error)
}

type userService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository, jwtService *auth.JWTService) UserService {
	return &userService{
		users:      users,
		jwtService: jwtService,
	}
}

// Register creates a new user with a hashed password and a gravatar avatar.
func (s *userService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errors.ErrEmailTaken
	}
	if err != nil && err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:       primitive.NewObjectID(),
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Avatar:   GravatarURL(email),
		Date:     time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login authenticates a user and issues a signed token carrying the user's
// id, name and avatar.
func (s *userService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", errors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID.Hex(), user.Name, user.Avatar)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	return "Bearer " + token, nil
}

// GravatarURL derives the avatar URL for an email (200px, PG-rated, with the
// mystery-man fallback).
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))

	q := url.Values{}
	q.Set("s", "200")
	q.Set("r", "pg")
	q.Set("d", "mm")

	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?%s", hex.EncodeToString(sum[:]), q.Encode())
}
