package user

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/expenseflow/expense-backend-go/internal/domain/company"
	"github.com/expenseflow/expense-backend-go/internal/domain/user"
	"github.com/expenseflow/expense-backend-go/internal/pkg/database"
	"github.com/expenseflow/expense-backend-go/internal/repository/postgresql"
)

type userServiceImpl struct {
	db          *database.DB
	userRepo    user.UserRepository
	companyRepo company.CompanyRepository
}

func NewUserService(db *database.DB, userRepo user.UserRepository, companyRepo company.CompanyRepository) user.UserService {
	return &userServiceImpl{db: db, userRepo: userRepo, companyRepo: companyRepo}
}

// isUniqueViolation reports a Postgres unique-constraint error (23505): the
// lower(email) index closes the check-then-insert race.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// GetByID implements user.UserService.
func (s *userServiceImpl) GetByID(ctx context.Context, id int64) (user.UserResponse, error) {
	found, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(found), nil
}

// List implements user.UserService.
func (s *userServiceImpl) List(ctx context.Context, filter user.ListFilter) ([]user.UserResponse, error) {
	users, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return user.ToResponseList(users), nil
}

// checkHierarchy enforces the hierarchy invariant: a user's manager must hold
// an equal-or-more-senior role.
func (s *userServiceImpl) checkHierarchy(ctx context.Context, role user.Role, managerID int64) error {
	manager, err := s.userRepo.GetByID(ctx, managerID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.ErrManagerNotFound
		}
		return err
	}
	if !role.CanReportTo(manager.Role) {
		return user.ErrInvalidHierarchy
	}
	return nil
}

// Create implements user.UserService. The existence, hierarchy and
// uniqueness checks and the insert run in one transaction.
func (s *userServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	newUser := req.NewUser()
	var created user.User
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		exists, err := s.companyRepo.ExistsByID(txCtx, req.CompanyID)
		if err != nil {
			return err
		}
		if !exists {
			return user.ErrCompanyNotFound
		}

		if req.ManagerID != nil {
			if err := s.checkHierarchy(txCtx, req.Role, *req.ManagerID); err != nil {
				return err
			}
		}

		taken, err := s.userRepo.EmailTaken(txCtx, newUser.Email, 0)
		if err != nil {
			return err
		}
		if taken {
			return user.ErrEmailExists
		}

		created, err = s.userRepo.Create(txCtx, newUser)
		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			return user.UserResponse{}, user.ErrEmailExists
		}
		return user.UserResponse{}, err
	}
	return user.ToResponse(created), nil
}

// Update implements user.UserService. Each provided field is re-validated;
// the email uniqueness re-check excludes the updated row itself.
func (s *userServiceImpl) Update(ctx context.Context, id int64, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	var updated user.User
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		existing, err := s.userRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		updates := make(map[string]interface{})

		if req.Name != nil {
			updates["name"] = strings.TrimSpace(*req.Name)
		}
		if req.Email != nil {
			email := strings.ToLower(*req.Email)
			taken, err := s.userRepo.EmailTaken(txCtx, email, id)
			if err != nil {
				return err
			}
			if taken {
				return user.ErrEmailExists
			}
			updates["email"] = email
		}
		if req.Role != nil {
			updates["role"] = *req.Role
		}
		if req.CompanyID != nil {
			exists, err := s.companyRepo.ExistsByID(txCtx, *req.CompanyID)
			if err != nil {
				return err
			}
			if !exists {
				return user.ErrCompanyNotFound
			}
			updates["company_id"] = *req.CompanyID
		}
		if req.ManagerID.Set {
			if req.ManagerID.Value != nil {
				// Hierarchy is checked against the incoming role when both
				// change in one request.
				role := existing.Role
				if req.Role != nil {
					role = *req.Role
				}
				if err := s.checkHierarchy(txCtx, role, *req.ManagerID.Value); err != nil {
					return err
				}
			}
			updates["manager_id"] = req.ManagerID.Value
		}
		if req.IsActive != nil {
			updates["is_active"] = *req.IsActive
		}

		updated, err = s.userRepo.Update(txCtx, id, updates)
		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			return user.UserResponse{}, user.ErrEmailExists
		}
		return user.UserResponse{}, err
	}
	return user.ToResponse(updated), nil
}

// Delete implements user.UserService.
func (s *userServiceImpl) Delete(ctx context.Context, id int64) (user.UserResponse, error) {
	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(deleted), nil
}
