package auth

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	autherrors "go-workflow/internal/auth/errors"
	"go-workflow/internal/domain"
	"go-workflow/internal/profile"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)
	Login(ctx context.Context, email, password string) (TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (TokenResponse, error)
	GetMe(ctx context.Context, userID string) (AuthResponse, error)
}

type service struct {
	repo        Repository
	profileRepo profile.Repository
	logger      *zap.Logger
}

func NewService(repo Repository, profileRepo profile.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, profileRepo: profileRepo, logger: l}
}

// Register creates the credential row, the profile, and the default employee
// role assignment.
func (s *service) Register(ctx context.Context, req RegisterRequest) (TokenResponse, error) {
	s.logger.Debug("register requested", zap.String("email", req.Email))

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return TokenResponse{}, err
	}

	u := &User{
		ID:       uuid.New(),
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return TokenResponse{}, autherrors.ErrEmailTaken
		}
		s.logger.Error("register persist failed", zap.Error(err))
		return TokenResponse{}, err
	}

	p := &profile.Profile{
		ID:         uuid.New(),
		UserID:     u.ID,
		Email:      req.Email,
		FullName:   req.FullName,
		Department: req.Department,
	}
	if err := s.profileRepo.Create(ctx, p); err != nil {
		s.logger.Error("register profile persist failed", zap.Error(err))
		return TokenResponse{}, err
	}

	if err := s.profileRepo.CreateRole(ctx, &profile.UserRole{
		ID:     uuid.New(),
		UserID: u.ID,
		Role:   domain.RoleEmployee,
	}); err != nil {
		s.logger.Error("register role persist failed", zap.Error(err))
		return TokenResponse{}, err
	}

	s.logger.Info("user registered", zap.String("user_id", u.ID.String()))
	return s.issueTokens(u.ID.String(), req.Email, req.FullName, req.Department, string(domain.RoleEmployee))
}

func (s *service) Login(ctx context.Context, email, password string) (TokenResponse, error) {
	s.logger.Debug("login requested", zap.String("email", email))

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenResponse{}, autherrors.ErrInvalidCredentials
		}
		return TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return TokenResponse{}, autherrors.ErrInvalidCredentials
	}

	p, err := s.profileRepo.FindByUserID(ctx, u.ID.String())
	if err != nil {
		return TokenResponse{}, err
	}
	role := s.currentRole(ctx, u.ID.String())

	s.logger.Info("login success", zap.String("user_id", u.ID.String()))
	return s.issueTokens(u.ID.String(), p.Email, p.FullName, p.Department, string(role))
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (TokenResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return TokenResponse{}, autherrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenResponse{}, autherrors.ErrInvalidToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return TokenResponse{}, autherrors.ErrInvalidToken
	}

	p, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenResponse{}, autherrors.ErrUserNotFound
		}
		return TokenResponse{}, err
	}
	role := s.currentRole(ctx, userID)

	return s.issueTokens(userID, p.Email, p.FullName, p.Department, string(role))
}

func (s *service) GetMe(ctx context.Context, userID string) (AuthResponse, error) {
	p, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, autherrors.ErrUserNotFound
		}
		return AuthResponse{}, err
	}
	role := s.currentRole(ctx, userID)

	return AuthResponse{
		UserID:     userID,
		Email:      p.Email,
		FullName:   p.FullName,
		Department: p.Department,
		Role:       string(role),
	}, nil
}

func (s *service) currentRole(ctx context.Context, userID string) domain.AppRole {
	role, err := s.profileRepo.GetRole(ctx, userID)
	if err != nil {
		return domain.RoleEmployee
	}
	return role
}

func (s *service) issueTokens(userID, email, fullName, department, role string) (TokenResponse, error) {
	access, err := s.generateToken(userID, email, accessTokenTTL)
	if err != nil {
		return TokenResponse{}, err
	}
	refresh, err := s.generateToken(userID, email, refreshTokenTTL)
	if err != nil {
		return TokenResponse{}, err
	}

	return TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User: AuthResponse{
			UserID:     userID,
			Email:      email,
			FullName:   fullName,
			Department: department,
			Role:       role,
		},
	}, nil
}

func (s *service) generateToken(userID, email string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(expiry).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
