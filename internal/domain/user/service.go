package user

import "context"

type UserService interface {
	GetByID(ctx context.Context, id int64) (UserResponse, error)
	List(ctx context.Context, filter ListFilter) ([]UserResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, id int64, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, id int64) (UserResponse, error)
}
