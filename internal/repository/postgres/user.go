package postgres

import (
	"context"
	"database/sql"
	"errors"

	"booking/internal/domain"
	"booking/internal/repository"
)

// UserRepository implements repository.UserRepository using PostgreSQL.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create adds a new user. The phone column carries a unique constraint, so
// re-registering a phone number surfaces as ErrDuplicateID.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, name, phone, role, vehicle_type, vehicle_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Phone, user.Role,
		nullString(user.VehicleType), nullString(user.VehicleNumber), user.CreatedAt,
	)
	if err != nil {
		return mapCreateError(err)
	}
	return nil
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, name, phone, role, vehicle_type, vehicle_number, created_at FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

// GetByPhone retrieves a user by phone number.
func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	query := `SELECT id, name, phone, role, vehicle_type, vehicle_number, created_at FROM users WHERE phone = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, phone))
}

// GetAll retrieves all users.
func (r *UserRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT id, name, phone, role, vehicle_type, vehicle_number, created_at FROM users ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var user domain.User
		var vehicleType, vehicleNumber sql.NullString
		if err := rows.Scan(&user.ID, &user.Name, &user.Phone, &user.Role, &vehicleType, &vehicleNumber, &user.CreatedAt); err != nil {
			return nil, err
		}
		user.VehicleType = vehicleType.String
		user.VehicleNumber = vehicleNumber.String
		users = append(users, &user)
	}
	return users, rows.Err()
}

func (r *UserRepository) scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	var vehicleType, vehicleNumber sql.NullString

	err := row.Scan(&user.ID, &user.Name, &user.Phone, &user.Role, &vehicleType, &vehicleNumber, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	user.VehicleType = vehicleType.String
	user.VehicleNumber = vehicleNumber.String
	return &user, nil
}
