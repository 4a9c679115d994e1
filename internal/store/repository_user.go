package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avetikov/go-places-api/internal/logger"
	"github.com/avetikov/go-places-api/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, Places, CreatedAt).
//
// The INSERT returns all columns via a RETURNING clause, so the caller
// receives the canonical database representation of the newly created
// account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped in [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	userID := uuid.New()
	row := r.db.QueryRowContext(ctx, createUser, userID, user.Name, user.Email, user.PasswordHash, user.Image)

	var created models.User
	var places uuidArray
	if err := row.Scan(&created.UserID, &created.Name, &created.Email, &created.PasswordHash, &created.Image, &places, &created.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			log.Err(err).Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("email is already taken")
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: unexpected DB error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	created.Places = places

	return created, nil
}

// FindUserByEmail retrieves the user record whose email matches the given
// value.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByEmail, email)
	return r.scanUser(ctx, row, log, "*userRepository.FindUserByEmail")
}

// FindUserByID retrieves the user record with the given identifier.
//
// Error handling mirrors [userRepository.FindUserByEmail].
func (r *userRepository) FindUserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByID, userID)
	return r.scanUser(ctx, row, log, "*userRepository.FindUserByID")
}

// GetAllUsers returns every registered user.
//
// Returns an empty slice when no users exist.
func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllUsers)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.GetAllUsers").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("failed to execute query for getting all users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 50)

	for rows.Next() {
		var user models.User
		var places uuidArray

		scanErr := rows.Scan(
			&user.UserID,
			&user.Name,
			&user.Email,
			&user.PasswordHash,
			&user.Image,
			&places,
			&user.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.GetAllUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		user.Places = places
		users = append(users, user)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*userRepository.GetAllUsers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return users, nil
}

// scanUser scans a single user row shared by the find-by-email and
// find-by-id lookups, normalising sql.ErrNoRows to [ErrNoUserWasFound].
func (r *userRepository) scanUser(_ context.Context, row *sql.Row, log *logger.Logger, funcName string) (models.User, error) {
	var user models.User
	var places uuidArray

	if err := row.Scan(&user.UserID, &user.Name, &user.Email, &user.PasswordHash, &user.Image, &places, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).
			Str("func", funcName).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: unexpected DB error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	user.Places = places
	return user, nil
}
