package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stockd/inventory-service/api"
	"github.com/stockd/inventory-service/core/user"
)

func setupUserTestServer(mockSvc *user.MockUserService) *httptest.Server {
	r := chi.NewRouter()
	r.With(api.Authenticate(mockSvc)).Route("/user", api.NewUserApi(mockSvc).ConfigureRouter)
	return httptest.NewServer(r)
}

func TestUserCreate(t *testing.T) {
	tests := []struct {
		name string

		body      string
		caller    user.User
		loginErr  error
		createErr error

		wantStatusCode int
	}{
		{
			name:           "admin creates a user",
			body:           `{"username":"newuser","password":"somepass"}`,
			caller:         user.User{Username: "admin", IsAdmin: true},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "non admin is rejected",
			body:           `{"username":"newuser","password":"somepass"}`,
			caller:         user.User{Username: "someuser", IsAdmin: false},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "bad credentials are rejected",
			body:           `{"username":"newuser","password":"somepass"}`,
			loginErr:       errors.New("invalid login"),
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "missing password is rejected",
			body:           `{"username":"newuser"}`,
			caller:         user.User{Username: "admin", IsAdmin: true},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "unexpected service error becomes 500",
			body:           `{"username":"newuser","password":"somepass"}`,
			caller:         user.User{Username: "admin", IsAdmin: true},
			createErr:      errors.New("some unexpected error"),
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mockSvc := user.NewMockUserService()
			mockSvc.LoginFunc = func(ctx context.Context, username, password string) (user.User, error) {
				return test.caller, test.loginErr
			}
			mockSvc.CreateFunc = func(ctx context.Context, req user.CreateUserRequest) (user.User, error) {
				return user.User{Username: req.Username}, test.createErr
			}

			ts := setupUserTestServer(&mockSvc)
			defer ts.Close()

			req, err := http.NewRequest("POST", ts.URL+"/user", strings.NewReader(test.body))
			if err != nil {
				t.Fatal(err)
			}
			req.Header.Set("Content-Type", "application/json")
			req.SetBasicAuth("someuser", "somepass")

			res, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatal(err)
			}

			if res.StatusCode != test.wantStatusCode {
				t.Errorf("status code got=%d want=%d", res.StatusCode, test.wantStatusCode)
			}
		})
	}
}
