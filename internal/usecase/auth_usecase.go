package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"yuva-hire-backend/internal/domain"
	"yuva-hire-backend/pkg/apperror"
	"yuva-hire-backend/pkg/auth"
	"yuva-hire-backend/pkg/logger"
	"yuva-hire-backend/pkg/security"
	"yuva-hire-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const msgInvalidCredentials = "Invalid email or password"

// TokenIssuer signs and verifies session tokens.
type TokenIssuer interface {
	Generate(userID, role, college string) (string, error)
	Parse(token string) (*auth.Claims, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// LoginGuard throttles repeated failed logins. *security.LoginTracker satisfies it.
type LoginGuard interface {
	IsBlocked(ctx context.Context, email, ip string) (bool, error)
	RecordFailedAttempt(ctx context.Context, email, ip, userAgent, requestID string) (bool, int, error)
	ClearAttempts(ctx context.Context, email, ip string) error
}

// AuthDeps groups the collaborators of the auth usecase.
type AuthDeps struct {
	Users      domain.UserRepository
	Candidates domain.CandidateRepository
	Tokens     TokenIssuer
	Hasher     PasswordHasher
	Guard      LoginGuard
	SecLog     *security.SecurityLogger
	Validate   *validator.Validate
}

type authUsecase struct {
	userRepo      domain.UserRepository
	candidateRepo domain.CandidateRepository
	tokens        TokenIssuer
	hasher        PasswordHasher
	guard         LoginGuard
	secLog        *security.SecurityLogger
	validate      *validator.Validate
}

func NewAuthUsecase(deps AuthDeps) domain.AuthUsecase {
	u := &authUsecase{
		userRepo:      deps.Users,
		candidateRepo: deps.Candidates,
		tokens:        deps.Tokens,
		hasher:        deps.Hasher,
		guard:         deps.Guard,
		secLog:        deps.SecLog,
		validate:      deps.Validate,
	}
	if u.secLog == nil {
		u.secLog = security.NopLogger()
	}
	if u.validate == nil {
		u.validate = validation.New()
	}
	return u
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func requestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(domain.KeyRequestID).(string); ok {
		return id
	}
	return ""
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func (u *authUsecase) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, string, error) {
	in.Email = normalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	in.College = strings.TrimSpace(in.College)
	in.Department = trimPtr(in.Department)
	in.StudentID = trimPtr(in.StudentID)

	if err := u.validate.Struct(in); err != nil {
		return nil, "", apperror.BadRequest(validation.Message(err))
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		PasswordHash: hash,
		Name:         in.Name,
		Role:         in.Role,
		College:      in.College,
		Department:   in.Department,
		StudentID:    in.StudentID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, "", apperror.Conflict("User with this email already exists")
		}
		return nil, "", apperror.Internal(err)
	}

	if user.IsStudent() {
		profile := &domain.CandidateProfile{
			UserID:       user.ID,
			Skills:       []string{},
			Projects:     []domain.Project{},
			Achievements: []string{},
			UpdatedAt:    now,
		}
		// The directory LEFT JOINs profiles, so a missing row only hides the enrichment.
		if err := u.candidateRepo.Upsert(ctx, profile); err != nil {
			logger.Log.Warn("failed to create candidate profile", "user_id", user.ID, "error", err)
		}
	}

	token, err := u.tokens.Generate(user.ID, user.Role, user.College)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	u.secLog.LogUserRegistered(ctx, user.Email, user.Role, "", requestIDFrom(ctx))
	return user, token, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string, meta domain.LoginMeta) (*domain.User, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", apperror.BadRequest("Email and password are required")
	}

	if u.guard != nil {
		blocked, err := u.guard.IsBlocked(ctx, email, meta.IP)
		if err != nil {
			logger.Log.Warn("login guard unavailable", "error", err)
		}
		if blocked {
			u.secLog.LogLoginBlocked(ctx, email, meta.IP, meta.UserAgent, meta.RequestID)
			return nil, "", apperror.TooManyRequests("Too many failed login attempts. Please try again later.")
		}
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, "", apperror.Internal(err)
	}

	hash := ""
	if user != nil {
		hash = user.PasswordHash
	}
	// Compare runs bcrypt against a dummy hash when hash is empty.
	if !u.hasher.Compare(hash, password) || user == nil {
		u.recordFailure(ctx, email, meta)
		return nil, "", apperror.Unauthorized(msgInvalidCredentials)
	}

	if u.guard != nil {
		if err := u.guard.ClearAttempts(ctx, email, meta.IP); err != nil {
			logger.Log.Warn("failed to clear login attempts", "error", err)
		}
	}

	token, err := u.tokens.Generate(user.ID, user.Role, user.College)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	u.secLog.LogLoginSuccess(ctx, user.ID, meta.IP, meta.UserAgent, meta.RequestID)
	return user, token, nil
}

func (u *authUsecase) recordFailure(ctx context.Context, email string, meta domain.LoginMeta) {
	if u.guard == nil {
		u.secLog.LogLoginFailed(ctx, email, meta.IP, meta.UserAgent, meta.RequestID, "invalid_credentials")
		return
	}
	if _, _, err := u.guard.RecordFailedAttempt(ctx, email, meta.IP, meta.UserAgent, meta.RequestID); err != nil {
		logger.Log.Warn("failed to record login attempt", "error", err)
	}
}

func (u *authUsecase) ResolveToken(ctx context.Context, token string) (*domain.User, error) {
	claims, err := u.tokens.Parse(token)
	if err != nil {
		return nil, apperror.Unauthorized("Unauthorized")
	}

	user, err := u.userRepo.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Unauthorized")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *authUsecase) UpdateProfile(ctx context.Context, userID string, in domain.ProfileUpdate) (*domain.User, error) {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		in.Name = &name
	}
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	user, err := u.GetCurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Department != nil {
		user.Department = trimPtr(in.Department)
	}
	if in.StudentID != nil {
		user.StudentID = trimPtr(in.StudentID)
	}
	user.UpdatedAt = time.Now().UTC()

	if err := u.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}
