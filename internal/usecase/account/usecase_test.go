package account

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/connect-marketplace/internal/audit"
	"github.com/BruksfildServices01/connect-marketplace/internal/auth"
	"github.com/BruksfildServices01/connect-marketplace/internal/db/dbtest"
	domain "github.com/BruksfildServices01/connect-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/connect-marketplace/internal/httperr"
	infraRepo "github.com/BruksfildServices01/connect-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/connect-marketplace/internal/models"
)

type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "h:" + p, nil }
func (plainHasher) Verify(h, p string) bool      { return h == "h:"+p }

type fixture struct {
	repo   *infraRepo.AccountGormRepository
	audit  *audit.Logger
	tokens *auth.TokenIssuer
}

func newFixture(t *testing.T) *fixture {
	return &fixture{
		repo:   infraRepo.NewAccountGormRepository(dbtest.New(t)),
		audit:  audit.New(slog.New(slog.NewTextHandler(io.Discard, nil))),
		tokens: auth.NewTokenIssuer("test-secret", 5*time.Minute, 24*time.Hour),
	}
}

func ptr[T any](v T) *T { return &v }

func providerInput(email string) RegistrationInput {
	return RegistrationInput{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       email,
		Password:    "password123",
		PhoneNumber: "0712345678",
		CompanyName: ptr("Acme"),
	}
}

func (f *fixture) provider(t *testing.T, email string) *models.ServiceProvider {
	t.Helper()
	p, err := NewRegisterServiceProvider(f.repo, plainHasher{}, f.audit).Execute(context.Background(), providerInput(email))
	require.NoError(t, err)
	return p
}

func (f *fixture) manager(t *testing.T, email string) *models.SystemManager {
	t.Helper()
	m, err := NewRegisterSystemManager(f.repo, plainHasher{}, f.audit).Execute(context.Background(), nil, SystemManagerInput{
		RegistrationInput: RegistrationInput{
			FirstName:   "Grace",
			LastName:    "Hopper",
			Email:       email,
			Password:    "password123",
			PhoneNumber: "0798765432",
		},
	})
	require.NoError(t, err)
	return m
}

func TestRegisterServiceProvider(t *testing.T) {
	f := newFixture(t)
	p := f.provider(t, "  ada@example.com ")

	assert.Equal(t, "ada@example.com", p.User.Email)
	assert.Equal(t, "ada@example.com", p.User.Username)
	assert.Equal(t, models.RoleServiceProvider, p.User.Role)
	assert.True(t, p.User.IsActive)
	assert.Equal(t, "h:password123", p.User.PasswordHash)
	require.NotNil(t, p.CompanyName)
	assert.Equal(t, "Acme", *p.CompanyName)
}

func TestRegisterServiceProvider_Validation(t *testing.T) {
	f := newFixture(t)
	f.provider(t, "ada@example.com")
	uc := NewRegisterServiceProvider(f.repo, plainHasher{}, f.audit)

	_, err := uc.Execute(context.Background(), providerInput("ada@example.com"))
	v, ok := httperr.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, []string{domain.MsgEmailTaken}, v.Fields["email"])

	in := providerInput("new@example.com")
	in.Password = "short"
	in.PhoneNumber = "123"
	in.CompanyName = ptr("A")
	_, err = uc.Execute(context.Background(), in)
	v, ok = httperr.AsValidation(err)
	require.True(t, ok)
	assert.True(t, v.Has("password"))
	assert.True(t, v.Has("phone_number"))
	assert.True(t, v.Has("company_name"))
}

func TestRegisterSystemManager_Superuser(t *testing.T) {
	f := newFixture(t)
	actor := &models.User{ID: 1, Role: models.RoleAdmin}

	m, err := NewRegisterSystemManager(f.repo, plainHasher{}, f.audit).Execute(context.Background(), actor, SystemManagerInput{
		RegistrationInput: RegistrationInput{
			FirstName:   "Root",
			LastName:    "Admin",
			Email:       "root@example.com",
			Password:    "password123",
			PhoneNumber: "0712345678",
		},
		Superuser: true,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, m.User.Role)
	assert.True(t, m.User.IsStaff)
	assert.True(t, m.User.IsSuperuser)

	plain := f.manager(t, "agent@example.com")
	assert.False(t, plain.User.IsSuperuser)
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	p := f.provider(t, "ada@example.com")
	uc := NewLogin(f.repo, plainHasher{}, f.tokens)

	res, err := uc.Execute(context.Background(), "ada@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, p.UserID, res.User.ID)

	claims, err := f.tokens.ParseAccess(res.Tokens.Access)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, models.RoleServiceProvider, claims.Role)

	access, err := NewRefreshAccess(f.tokens).Execute(res.Tokens.Refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, access)

	_, err = NewRefreshAccess(f.tokens).Execute(res.Tokens.Access)
	assert.ErrorIs(t, err, httperr.ErrInvalidToken)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	f := newFixture(t)
	p := f.provider(t, "ada@example.com")
	uc := NewLogin(f.repo, plainHasher{}, f.tokens)
	ctx := context.Background()

	_, errWrong := uc.Execute(ctx, "ada@example.com", "nope")
	_, errMissing := uc.Execute(ctx, "ghost@example.com", "password123")

	p.User.IsActive = false
	require.NoError(t, f.repo.SaveAccount(ctx, &p.User, nil, nil))
	_, errInactive := uc.Execute(ctx, "ada@example.com", "password123")

	for _, err := range []error{errWrong, errMissing, errInactive} {
		require.Error(t, err)
		assert.Equal(t, MsgBadCredentials, err.Error())
	}
}

func TestLoadProfile(t *testing.T) {
	f := newFixture(t)
	p := f.provider(t, "ada@example.com")
	m := f.manager(t, "boss@example.com")

	prof, err := LoadProfile(context.Background(), f.repo, p.UserID)
	require.NoError(t, err)
	assert.NotNil(t, prof.Provider)
	assert.Nil(t, prof.Manager)

	prof, err = LoadProfile(context.Background(), f.repo, m.UserID)
	require.NoError(t, err)
	assert.Nil(t, prof.Provider)
	assert.NotNil(t, prof.Manager)

	_, err = LoadProfile(context.Background(), f.repo, 999)
	assert.True(t, httperr.IsNotFound(err))
}

func TestUpdateInfo(t *testing.T) {
	f := newFixture(t)
	p := f.provider(t, "ada@example.com")
	f.provider(t, "taken@example.com")
	uc := NewUpdateInfo(f.repo, f.audit)
	ctx := context.Background()

	prof, err := uc.Execute(ctx, &p.User, p.UserID, UpdateInfoInput{
		FirstName:   ptr("Augusta"),
		Email:       ptr("augusta@example.com"),
		PhoneNumber: ptr("0700000000"),
		CompanyName: ptr("Engines Ltd"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Augusta", prof.User.FirstName)
	assert.Equal(t, "Lovelace", prof.User.LastName)
	assert.Equal(t, "augusta@example.com", prof.User.Username)
	assert.Equal(t, "0700000000", prof.Provider.PhoneNumber)

	stored, err := f.repo.FindServiceProvider(ctx, p.UserID)
	require.NoError(t, err)
	assert.Equal(t, "augusta@example.com", stored.User.Email)
	require.NotNil(t, stored.CompanyName)
	assert.Equal(t, "Engines Ltd", *stored.CompanyName)

	// Keeping your own email is fine; taking someone else's is not.
	_, err = uc.Execute(ctx, nil, p.UserID, UpdateInfoInput{Email: ptr("augusta@example.com")})
	assert.NoError(t, err)

	_, err = uc.Execute(ctx, nil, p.UserID, UpdateInfoInput{Email: ptr("taken@example.com")})
	v, ok := httperr.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, []string{domain.MsgEmailTaken}, v.Fields["email"])
}

func TestChangePassword(t *testing.T) {
	f := newFixture(t)
	p := f.provider(t, "ada@example.com")
	uc := NewChangePassword(f.repo, plainHasher{}, f.audit)
	ctx := context.Background()

	err := uc.Execute(ctx, p.UserID, "wrong", "newpassword", "newpassword")
	v, ok := httperr.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, []string{domain.MsgPreviousPassword}, v.Fields["previous_password"])

	err = uc.Execute(ctx, p.UserID, "password123", "newpassword", "different1")
	v, ok = httperr.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, []string{domain.MsgPasswordMismatch}, v.Fields["confirm_password"])

	require.NoError(t, uc.Execute(ctx, p.UserID, "password123", "newpassword", "newpassword"))

	user, err := f.repo.GetUserByID(ctx, p.UserID)
	require.NoError(t, err)
	assert.Equal(t, "h:newpassword", user.PasswordHash)
}

func TestSystemManagerAdministration(t *testing.T) {
	f := newFixture(t)
	m := f.manager(t, "boss@example.com")
	p := f.provider(t, "ada@example.com")
	admin := &models.User{ID: 99, Role: models.RoleAdmin}
	ctx := context.Background()

	updated, err := NewUpdateSystemManager(f.repo, f.audit).Execute(ctx, admin, m.UserID, UpdateInfoInput{
		LastName:    ptr("Murray"),
		PhoneNumber: ptr("0711111111"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Murray", updated.User.LastName)
	assert.Equal(t, "0711111111", updated.PhoneNumber)

	_, err = NewUpdateSystemManager(f.repo, f.audit).Execute(ctx, admin, p.UserID, UpdateInfoInput{})
	assert.True(t, httperr.IsNotFound(err))

	remove := NewDeleteSystemManager(f.repo, f.audit)
	assert.True(t, httperr.IsNotFound(remove.Execute(ctx, admin, p.UserID)))

	require.NoError(t, remove.Execute(ctx, admin, m.UserID))
	_, err = f.repo.GetUserByID(ctx, m.UserID)
	assert.True(t, httperr.IsNotFound(err))
	_, err = f.repo.FindSystemManager(ctx, m.UserID)
	assert.True(t, httperr.IsNotFound(err))
}
