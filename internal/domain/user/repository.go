package user

import "context"

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (User, error)
	List(ctx context.Context, filter ListFilter) ([]User, error)
	Create(ctx context.Context, newUser User) (User, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	// EmailTaken reports whether email (already lowercased) belongs to a user
	// other than excludeID. Pass 0 to check against all users.
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (User, error)
	Delete(ctx context.Context, id int64) (User, error)
}
