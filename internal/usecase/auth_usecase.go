package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase — настоящий сервис аутентификации на месте заглушки
// исходной витрины: bcrypt-хэши паролей, JWT-токены и одноразовые
// токены сброса пароля с TTL.
type AuthUseCase struct {
	userRepo      UserRepository
	tokenRepo     TokenRepository
	tokens        TokenManager
	mailer        Mailer
	resetTokenTTL time.Duration
	bcryptCost    int
	logger        logger.Logger
}

func NewAuthUC(
	userRepo UserRepository,
	tokenRepo TokenRepository,
	tokens TokenManager,
	mailer Mailer,
	resetTokenTTL time.Duration,
	bcryptCost int,
	logger logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:      userRepo,
		tokenRepo:     tokenRepo,
		tokens:        tokens,
		mailer:        mailer,
		resetTokenTTL: resetTokenTTL,
		bcryptCost:    bcryptCost,
		logger:        logger,
	}
}

// Register создает учетную запись покупателя и сразу выдает токен доступа.
func (a *AuthUseCase) Register(ctx context.Context, req *RegisterReq) (*AuthRes, error) {
	const op = "AuthUseCase.Register"

	if err := a.validateCredentials(req.Email, req.Password); err != nil {
		return nil, e.Wrap(op, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	name := req.Name
	if name == "" {
		// Как и в исходной витрине: имя по умолчанию — часть почты до @.
		name = strings.SplitN(req.Email, "@", 2)[0]
	}

	user := domain.NewUser(uuid.NewString(), normalizeEmail(req.Email), name, hash, domain.RoleCustomer)
	if err := a.userRepo.Create(ctx, user); err != nil {
		return nil, e.Wrap(op, err)
	}

	token, err := a.tokens.Generate(user)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewAuthRes(token, user), nil
}

// Login проверяет пароль и выдает токен доступа.
func (a *AuthUseCase) Login(ctx context.Context, req *LoginReq) (*AuthRes, error) {
	const op = "AuthUseCase.Login"

	user, err := a.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, e.ErrUserNotFound) {
			return nil, e.Wrap(op, e.ErrInvalidCredentials)
		}
		return nil, e.Wrap(op, err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.Password)); err != nil {
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}

	token, err := a.tokens.Generate(user)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewAuthRes(token, user), nil
}

// ForgotPassword выпускает одноразовый токен сброса и отправляет его на почту.
// Для неизвестной почты возвращает успех, не раскрывая существование аккаунта.
func (a *AuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	const op = "AuthUseCase.ForgotPassword"

	if strings.TrimSpace(email) == "" {
		return e.Wrap(op, e.ErrEmailRequired)
	}

	user, err := a.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, e.ErrUserNotFound) {
			a.logger.Debugf("password reset requested for unknown email")
			return nil
		}
		return e.Wrap(op, err)
	}

	token := uuid.NewString()
	if err := a.tokenRepo.SaveResetToken(ctx, token, user.ID, a.resetTokenTTL); err != nil {
		return e.Wrap(op, err)
	}

	if err := a.mailer.SendPasswordReset(ctx, user.Email, token); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// ResetPassword меняет пароль по одноразовому токену сброса.
func (a *AuthUseCase) ResetPassword(ctx context.Context, token, newPassword string) error {
	const op = "AuthUseCase.ResetPassword"

	if len(newPassword) < 6 {
		return e.Wrap(op, e.ErrPasswordTooShort)
	}

	userID, err := a.tokenRepo.ConsumeResetToken(ctx, token)
	if err != nil {
		return e.Wrap(op, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), a.bcryptCost)
	if err != nil {
		return e.Wrap(op, err)
	}

	if err := a.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// GetProfile возвращает учетную запись по идентификатору из токена.
func (a *AuthUseCase) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	const op = "AuthUseCase.GetProfile"

	user, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return user, nil
}

// validateCredentials проверяет почту и минимальную длину пароля.
func (a *AuthUseCase) validateCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" || !strings.Contains(email, "@") {
		return e.ErrEmailRequired
	}

	if len(password) < 6 {
		return e.ErrPasswordTooShort
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
