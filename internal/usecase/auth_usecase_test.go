package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func authEnv() (*AuthUseCase, *stubUserRepo, *stubTokenRepo, *stubMailer) {
	userRepo := newStubUserRepo()
	tokenRepo := newStubTokenRepo()
	mailer := newStubMailer()

	uc := NewAuthUC(userRepo, tokenRepo, stubTokenManager{}, mailer, 30*time.Minute, bcrypt.MinCost, nopLogger{})
	return uc, userRepo, tokenRepo, mailer
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates customer and issues token", func(t *testing.T) {
		uc, _, _, _ := authEnv()

		res, err := uc.Register(ctx, &RegisterReq{Email: "jane@example.com", Name: "Jane", Password: "secret1"})
		require.NoError(t, err)

		assert.NotEmpty(t, res.Token)
		assert.Equal(t, "Jane", res.User.Name)
		assert.Equal(t, domain.RoleCustomer, res.User.Role)
	})

	t.Run("default name is email local part", func(t *testing.T) {
		uc, _, _, _ := authEnv()

		res, err := uc.Register(ctx, &RegisterReq{Email: "jane.doe@example.com", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, "jane.doe", res.User.Name)
	})

	t.Run("email is normalized", func(t *testing.T) {
		uc, _, _, _ := authEnv()

		res, err := uc.Register(ctx, &RegisterReq{Email: "  Jane@Example.COM ", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", res.User.Email)
	})

	t.Run("duplicate email", func(t *testing.T) {
		uc, _, _, _ := authEnv()

		_, err := uc.Register(ctx, &RegisterReq{Email: "jane@example.com", Password: "secret1"})
		require.NoError(t, err)

		_, err = uc.Register(ctx, &RegisterReq{Email: "JANE@example.com", Password: "secret2"})
		assert.ErrorIs(t, err, e.ErrEmailTaken)
	})

	t.Run("short password", func(t *testing.T) {
		uc, _, _, _ := authEnv()

		_, err := uc.Register(ctx, &RegisterReq{Email: "jane@example.com", Password: "12345"})
		assert.ErrorIs(t, err, e.ErrPasswordTooShort)
	})

	t.Run("invalid email", func(t *testing.T) {
		uc, _, _, _ := authEnv()

		_, err := uc.Register(ctx, &RegisterReq{Email: "not-an-email", Password: "secret1"})
		assert.ErrorIs(t, err, e.ErrEmailRequired)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		uc, _, _, _ := authEnv()
		_, err := uc.Register(ctx, &RegisterReq{Email: "jane@example.com", Password: "secret1"})
		require.NoError(t, err)

		res, err := uc.Login(ctx, &LoginReq{Email: "jane@example.com", Password: "secret1"})
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, _, _, _ := authEnv()
		_, err := uc.Register(ctx, &RegisterReq{Email: "jane@example.com", Password: "secret1"})
		require.NoError(t, err)

		_, err = uc.Login(ctx, &LoginReq{Email: "jane@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, e.ErrInvalidCredentials)
	})

	t.Run("unknown email indistinguishable from wrong password", func(t *testing.T) {
		uc, _, _, _ := authEnv()

		_, err := uc.Login(ctx, &LoginReq{Email: "nobody@example.com", Password: "secret1"})
		assert.ErrorIs(t, err, e.ErrInvalidCredentials)
	})
}

func TestPasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("full reset round trip", func(t *testing.T) {
		uc, _, _, mailer := authEnv()
		_, err := uc.Register(ctx, &RegisterReq{Email: "jane@example.com", Password: "secret1"})
		require.NoError(t, err)

		require.NoError(t, uc.ForgotPassword(ctx, "jane@example.com"))
		require.Len(t, mailer.resetSent, 1)
		token := mailer.resetSent[0]

		require.NoError(t, uc.ResetPassword(ctx, token, "newpass1"))

		_, err = uc.Login(ctx, &LoginReq{Email: "jane@example.com", Password: "secret1"})
		assert.ErrorIs(t, err, e.ErrInvalidCredentials)

		_, err = uc.Login(ctx, &LoginReq{Email: "jane@example.com", Password: "newpass1"})
		assert.NoError(t, err)
	})

	t.Run("token is single use", func(t *testing.T) {
		uc, _, _, mailer := authEnv()
		_, err := uc.Register(ctx, &RegisterReq{Email: "jane@example.com", Password: "secret1"})
		require.NoError(t, err)

		require.NoError(t, uc.ForgotPassword(ctx, "jane@example.com"))
		token := mailer.resetSent[0]

		require.NoError(t, uc.ResetPassword(ctx, token, "newpass1"))
		err = uc.ResetPassword(ctx, token, "another1")
		assert.ErrorIs(t, err, e.ErrInvalidToken)
	})

	t.Run("unknown email does not leak account existence", func(t *testing.T) {
		uc, _, _, mailer := authEnv()

		assert.NoError(t, uc.ForgotPassword(ctx, "nobody@example.com"))
		assert.Empty(t, mailer.resetSent)
	})

	t.Run("short new password rejected before token consumption", func(t *testing.T) {
		uc, _, tokenRepo, mailer := authEnv()
		_, err := uc.Register(ctx, &RegisterReq{Email: "jane@example.com", Password: "secret1"})
		require.NoError(t, err)

		require.NoError(t, uc.ForgotPassword(ctx, "jane@example.com"))
		token := mailer.resetSent[0]

		err = uc.ResetPassword(ctx, token, "123")
		assert.ErrorIs(t, err, e.ErrPasswordTooShort)

		// Токен не израсходован
		_, err = tokenRepo.ConsumeResetToken(ctx, token)
		assert.NoError(t, err)
	})
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()
	uc, _, _, _ := authEnv()

	res, err := uc.Register(ctx, &RegisterReq{Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)

	user, err := uc.GetProfile(ctx, res.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)

	_, err = uc.GetProfile(ctx, "ghost")
	assert.ErrorIs(t, err, e.ErrUserNotFound)
}
