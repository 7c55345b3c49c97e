package service

import (
	"context"
	"errors"
	"fmt"
	"planetary-api/internal/entity"
	"planetary-api/internal/notifier"
	"planetary-api/internal/repository"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when the email or password does not match.
	ErrInvalidCredentials = errors.New("bad email or password")
	// ErrInvalidToken is returned when a bearer token fails verification.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidRecoveryToken is returned when a recovery token is wrong or expired.
	ErrInvalidRecoveryToken = errors.New("invalid or expired recovery token")
)

const recoveryTokenTTL = 15 * time.Minute

// UserRepository is the account data access the service runs on.
type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	UpdateUserPassword(ctx context.Context, email, password string) error
}

// TokenStore holds short-lived recovery tokens. *redis.Client satisfies it.
type TokenStore interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type JwtCustomClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type UserService struct {
	userRepo  UserRepository
	rdb       TokenStore
	sender    notifier.Sender
	jwtSecret []byte
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo UserRepository, rdb TokenStore, sender notifier.Sender, jwtSecret string) *UserService {
	return &UserService{
		userRepo:  userRepo,
		rdb:       rdb,
		sender:    sender,
		jwtSecret: []byte(jwtSecret),
	}
}

// Register stores a new account with a bcrypt-hashed password. A taken email
// surfaces as repository.ErrConflict.
func (s *UserService) Register(ctx context.Context, user *entity.User) (*entity.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error().Err(err).Msg("Error hashing password")
		return nil, err
	}
	user.Password = string(hashed)

	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if !errors.Is(err, repository.ErrConflict) {
			logger.Error().Err(err).Msg("Error creating user")
		}
		return nil, err
	}

	return created, nil
}

// Login checks the credentials and issues a signed bearer token bound to the
// user's email. Verification is stateless, nothing is stored server-side.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		logger.Error().Err(err).Msg("Error logging in user")
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	claims := &JwtCustomClaims{
		Name:  user.FirstName + " " + user.LastName,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := tkn.SignedString(s.jwtSecret)
	if err != nil {
		logger.Error().Err(err).Msg("Error signing token")
		return "", err
	}

	return t, nil
}

// VerifyToken checks the signature and expiry of a bearer token and returns
// the email it is bound to.
func (s *UserService) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*JwtCustomClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	return claims.Email, nil
}

// RetrievePassword starts the recovery flow: a single-use token is stored
// with a TTL and mailed to the account's address. An unknown email surfaces
// as repository.ErrNotFound.
func (s *UserService) RetrievePassword(ctx context.Context, email string) error {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	token := uuid.NewString()
	key := fmt.Sprintf("recovery:%s", email)
	if err := s.rdb.Set(ctx, key, token, recoveryTokenTTL).Err(); err != nil {
		logger.Error().Err(err).Msgf("Error storing recovery token for %s", email)
		return err
	}

	body := fmt.Sprintf("Hi %s, your password recovery token is %s. It expires in 15 minutes.", user.FirstName, token)
	if err := s.sender.Send(ctx, user.Email, "Planetary API password recovery", body); err != nil {
		logger.Error().Err(err).Msgf("Error sending recovery mail to %s", email)
		return err
	}

	return nil
}

// ResetPassword consumes a recovery token and replaces the account password.
func (s *UserService) ResetPassword(ctx context.Context, email, token, newPassword string) error {
	key := fmt.Sprintf("recovery:%s", email)
	stored, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrInvalidRecoveryToken
		}
		logger.Error().Err(err).Msgf("Error reading recovery token for %s", email)
		return err
	}

	if stored != token {
		return ErrInvalidRecoveryToken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdateUserPassword(ctx, email, string(hashed)); err != nil {
		logger.Error().Err(err).Msgf("Error updating password for %s", email)
		return err
	}

	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		logger.Error().Err(err).Msgf("Error deleting recovery token for %s", email)
	}

	return nil
}
