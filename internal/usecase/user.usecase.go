package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"todo-service/internal/domain"
	"todo-service/pkg/id"
	"todo-service/pkg/jwtutil"
	"todo-service/pkg/utils"
	"todo-service/pkg/xerrors"
)

type UserUsecase struct {
	userRepo domain.UserRepository
	Sf       *id.Snowflake
	jwtGen   *jwtutil.Generator
}

func NewUserUsecase(userRepo domain.UserRepository, sf *id.Snowflake, jwtGen *jwtutil.Generator) *UserUsecase {
	return &UserUsecase{
		userRepo: userRepo,
		Sf:       sf,
		jwtGen:   jwtGen,
	}
}

func (u *UserUsecase) SignUp(ctx context.Context, username, email, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" {
		return nil, xerrors.ErrUsernameRequired
	}
	if email == "" {
		return nil, xerrors.ErrEmailRequired
	}
	if !utils.ValidateEmail(email) {
		return nil, xerrors.ErrInvalidEmailFormat
	}
	if password == "" {
		return nil, xerrors.ErrPasswordRequired
	}
	if err := utils.ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, xerrors.ErrInternalServer
	}

	user := &domain.User{
		ID:           u.Sf.Generate(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	return u.userRepo.Create(ctx, user)
}

// LogIn verifies credentials and mints an access token. Unknown users and
// wrong passwords both come back as ErrInvalidCredentials.
func (u *UserUsecase) LogIn(ctx context.Context, username, password string) (string, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, xerrors.ErrUserNotFound) {
			return "", xerrors.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", xerrors.ErrInvalidCredentials
	}

	token, _, err := u.jwtGen.Generate(user.ID, user.Email)
	if err != nil {
		return "", xerrors.ErrInternalServer
	}
	return token, nil
}

func (u *UserUsecase) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}
