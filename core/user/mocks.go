package user

import (
	"context"

	"github.com/stockd/inventory-service/core"
)

type MockUserService struct {
	CreateFunc func(ctx context.Context, req CreateUserRequest) (User, error)
	GetFunc    func(ctx context.Context, username string) (User, error)
	DeleteFunc func(ctx context.Context, username string) error
	LoginFunc  func(ctx context.Context, username, password string) (User, error)
}

func NewMockUserService() MockUserService {
	return MockUserService{
		CreateFunc: func(ctx context.Context, req CreateUserRequest) (User, error) { return User{}, nil },
		GetFunc:    func(ctx context.Context, username string) (User, error) { return User{}, nil },
		DeleteFunc: func(ctx context.Context, username string) error { return nil },
		LoginFunc:  func(ctx context.Context, username, password string) (User, error) { return User{}, nil },
	}
}

func (m *MockUserService) Create(ctx context.Context, req CreateUserRequest) (User, error) {
	return m.CreateFunc(ctx, req)
}

func (m *MockUserService) Get(ctx context.Context, username string) (User, error) {
	return m.GetFunc(ctx, username)
}

func (m *MockUserService) Delete(ctx context.Context, username string) error {
	return m.DeleteFunc(ctx, username)
}

func (m *MockUserService) Login(ctx context.Context, username, password string) (User, error) {
	return m.LoginFunc(ctx, username, password)
}

type MockUserRepo struct {
	CreateFunc func(ctx context.Context, user *User, tx ...core.UpdateOptions) error
	GetFunc    func(ctx context.Context, username string, tx ...core.QueryOptions) (User, error)
	DeleteFunc func(ctx context.Context, username string, tx ...core.UpdateOptions) error
}

func NewMockUserRepo() MockUserRepo {
	return MockUserRepo{
		CreateFunc: func(ctx context.Context, user *User, tx ...core.UpdateOptions) error { return nil },
		GetFunc: func(ctx context.Context, username string, tx ...core.QueryOptions) (User, error) {
			return User{}, nil
		},
		DeleteFunc: func(ctx context.Context, username string, tx ...core.UpdateOptions) error { return nil },
	}
}

func (m *MockUserRepo) Create(ctx context.Context, user *User, tx ...core.UpdateOptions) error {
	return m.CreateFunc(ctx, user, tx...)
}

func (m *MockUserRepo) Get(ctx context.Context, username string, tx ...core.QueryOptions) (User, error) {
	return m.GetFunc(ctx, username, tx...)
}

func (m *MockUserRepo) Delete(ctx context.Context, username string, tx ...core.UpdateOptions) error {
	return m.DeleteFunc(ctx, username, tx...)
}
