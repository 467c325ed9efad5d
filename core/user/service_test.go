package user_test

import (
	"context"
	"errors"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/stockd/inventory-service/core"
	"github.com/stockd/inventory-service/core/user"
	"github.com/stockd/inventory-service/testutil"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	testutil.ConfigLogging()
	os.Exit(m.Run())
}

func TestGet(t *testing.T) {
	usr := user.User{Username: "someuser", HashedPassword: "somehashedpassword", IsAdmin: false, Created: time.Now()}
	tests := []struct {
		name     string
		username string

		getFunc func(ctx context.Context, username string, tx ...core.QueryOptions) (user.User, error)

		wantUser user.User
		wantErr  bool
	}{
		{
			name:     "user is returned",
			username: "someuser",

			getFunc: func(ctx context.Context, username string, tx ...core.QueryOptions) (user.User, error) {
				return usr, nil
			},

			wantUser: usr,
		},
		{
			name:     "error is returned",
			username: "someuser",

			getFunc: func(ctx context.Context, username string, tx ...core.QueryOptions) (user.User, error) {
				return user.User{}, errors.New("some unexpected error")
			},

			wantErr:  true,
			wantUser: user.User{},
		},
	}

	for _, test := range tests {
		mockRepo := user.NewMockUserRepo()
		mockRepo.GetFunc = test.getFunc

		service := user.NewService(&mockRepo)

		t.Run(test.name, func(t *testing.T) {
			got, err := service.Get(context.Background(), test.username)
			if test.wantErr && err == nil {
				t.Errorf("expected error, got none")
			} else if !test.wantErr && err != nil {
				t.Errorf("did not want error, got=%v", err)
			}

			if !reflect.DeepEqual(got, test.wantUser) {
				t.Errorf("unexpected user\n got=%+v\nwant=%+v", got, test.wantUser)
			}
		})
	}
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name    string
		request user.CreateUserRequest

		createFunc func(ctx context.Context, user *user.User, tx ...core.UpdateOptions) error

		wantErr bool
	}{
		{
			name:    "user is created with a hashed password",
			request: user.CreateUserRequest{Username: "someuser", PlainTextPassword: "somepass", IsAdmin: true},
		},
		{
			name:    "username is required",
			request: user.CreateUserRequest{PlainTextPassword: "somepass"},
			wantErr: true,
		},
		{
			name:    "password is required",
			request: user.CreateUserRequest{Username: "someuser"},
			wantErr: true,
		},
		{
			name:    "repo error is surfaced",
			request: user.CreateUserRequest{Username: "someuser", PlainTextPassword: "somepass"},

			createFunc: func(ctx context.Context, user *user.User, tx ...core.UpdateOptions) error {
				return errors.New("some unexpected error")
			},

			wantErr: true,
		},
	}

	for _, test := range tests {
		mockRepo := user.NewMockUserRepo()
		if test.createFunc != nil {
			mockRepo.CreateFunc = test.createFunc
		}

		service := user.NewService(&mockRepo)

		t.Run(test.name, func(t *testing.T) {
			got, err := service.Create(context.Background(), test.request)
			if test.wantErr {
				if err == nil {
					t.Errorf("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("did not want error, got=%v", err)
			}

			if got.Username != test.request.Username {
				t.Errorf("username got=%s want=%s", got.Username, test.request.Username)
			}
			if got.IsAdmin != test.request.IsAdmin {
				t.Errorf("isAdmin got=%v want=%v", got.IsAdmin, test.request.IsAdmin)
			}
			if got.HashedPassword == test.request.PlainTextPassword || got.HashedPassword == "" {
				t.Error("password was not hashed")
			}
			if err := bcrypt.CompareHashAndPassword([]byte(got.HashedPassword), []byte(test.request.PlainTextPassword)); err != nil {
				t.Errorf("hash does not match password: %v", err)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("somepass"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	usr := user.User{Username: "someuser", HashedPassword: string(hash)}

	tests := []struct {
		name     string
		password string

		getFunc func(ctx context.Context, username string, tx ...core.QueryOptions) (user.User, error)

		wantErr bool
	}{
		{
			name:     "valid credentials",
			password: "somepass",

			getFunc: func(ctx context.Context, username string, tx ...core.QueryOptions) (user.User, error) {
				return usr, nil
			},
		},
		{
			name:     "wrong password",
			password: "wrongpass",

			getFunc: func(ctx context.Context, username string, tx ...core.QueryOptions) (user.User, error) {
				return usr, nil
			},

			wantErr: true,
		},
		{
			name:     "unknown user",
			password: "somepass",

			getFunc: func(ctx context.Context, username string, tx ...core.QueryOptions) (user.User, error) {
				return user.User{}, core.ErrNotFound
			},

			wantErr: true,
		},
	}

	for _, test := range tests {
		mockRepo := user.NewMockUserRepo()
		mockRepo.GetFunc = test.getFunc

		service := user.NewService(&mockRepo)

		t.Run(test.name, func(t *testing.T) {
			got, err := service.Login(context.Background(), "someuser", test.password)
			if test.wantErr {
				if err == nil {
					t.Errorf("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("did not want error, got=%v", err)
			}
			if got.Username != "someuser" {
				t.Errorf("username got=%s want=someuser", got.Username)
			}
		})
	}
}
