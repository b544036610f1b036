package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/pkg/utils"
)

type fakeAccountRepo struct {
	byEmail map[string]*db_models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byEmail: make(map[string]*db_models.Account)}
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return f.byEmail[email], nil
}

func (f *fakeAccountRepo) FindByID(ctx context.Context, id string) (*db_models.Account, error) {
	for _, a := range f.byEmail {
		if a.ID.String() == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if err := account.BeforeCreate(nil); err != nil {
		return err
	}
	f.byEmail[account.Email] = account
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAccountService(newFakeAccountRepo())
	ctx := context.Background()

	resp, err := svc.Register(ctx, request_models.SignUpRequest{
		Email:     "Traveller@Example.com",
		Password:  "s3cret-pass",
		FirstName: "Asha",
	})
	require.NoError(t, err)
	assert.Equal(t, "traveller@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token)

	login, err := svc.Login(ctx, request_models.LoginRequest{
		Email:    "traveller@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAccountService(newFakeAccountRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, request_models.SignUpRequest{Email: "a@b.com", Password: "pw123456"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, request_models.SignUpRequest{Email: "a@b.com", Password: "pw123456"})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAccountService(newFakeAccountRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, request_models.SignUpRequest{Email: "a@b.com", Password: "pw123456"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, request_models.LoginRequest{Email: "a@b.com", Password: "wrong"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login(ctx, request_models.LoginRequest{Email: "nobody@b.com", Password: "pw123456"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}
