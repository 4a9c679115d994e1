package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avetikov/go-places-api/internal/logger"
	"github.com/avetikov/go-places-api/models"
	"github.com/google/uuid"
)

// placeRepository is the PostgreSQL-backed implementation of
// [PlaceRepository]. It executes all place CRUD operations against the
// "places" table and maintains the owner back-references stored on the
// "users" table.
//
// The two multi-write operations (CreatePlace, DeletePlace) wrap the place
// write and the back-reference update in a single transaction so that a
// place never exists without its owner's back-reference and vice versa.
type placeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPlaceRepository constructs a [PlaceRepository] backed by the provided
// database connection and logger.
func NewPlaceRepository(db *DB, logger *logger.Logger) PlaceRepository {
	logger.Debug().Msg("creating place repository")
	return &placeRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePlace inserts the place and appends its id to the creator's places
// list within one transaction. On any failure both writes are rolled back
// and no partial state remains visible.
func (r *placeRepository) CreatePlace(ctx context.Context, place models.Place) (models.Place, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*placeRepository.CreatePlace").Msg("failed to begin transaction")
		return models.Place{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	placeID := uuid.New()
	row := tx.QueryRowContext(ctx, createPlace,
		placeID,
		place.Title,
		place.Description,
		place.Address,
		place.Location.Lat,
		place.Location.Lng,
		place.Image,
		place.Creator,
	)

	var created models.Place
	if err := r.scanPlaceRow(row, &created); err != nil {
		log.Err(err).
			Str("func", "*placeRepository.CreatePlace").
			Str("creator", place.Creator.String()).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("failed to insert place")
		return models.Place{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err := tx.ExecContext(ctx, appendPlaceToUser, created.PlaceID, created.Creator); err != nil {
		log.Err(err).
			Str("func", "*placeRepository.CreatePlace").
			Str("place_id", created.PlaceID.String()).
			Msg("failed to append place back-reference to creator")
		return models.Place{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*placeRepository.CreatePlace").Msg("failed to commit transaction")
		return models.Place{}, fmt.Errorf("%w: %w", ErrCommittingTransaction, commitErr)
	}

	return created, nil
}

// FindPlaceByID retrieves a single place record.
//
// Error handling:
//   - No matching row → [ErrPlaceNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *placeRepository) FindPlaceByID(ctx context.Context, placeID uuid.UUID) (models.Place, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findPlaceByID, placeID)

	var place models.Place
	if err := r.scanPlaceRow(row, &place); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Place{}, ErrPlaceNotFound
		}

		log.Err(err).
			Str("func", "*placeRepository.FindPlaceByID").
			Str("place_id", placeID.String()).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: unexpected DB error")
		return models.Place{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return place, nil
}

// FindPlacesByCreator returns every place owned by the given user, oldest
// first. An empty slice is returned when the user owns no places.
func (r *placeRepository) FindPlacesByCreator(ctx context.Context, creator uuid.UUID) ([]models.Place, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindPlacesByCreatorQuery(creator)
	if err != nil {
		log.Err(err).Str("func", "*placeRepository.FindPlacesByCreator").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, queryErr := r.db.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "*placeRepository.FindPlacesByCreator").
			Str("creator", creator.String()).
			Bool("retryable", r.db.errorClassificator.Classify(queryErr) == Retryable).
			Msg("failed to execute query for places by creator")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	places := make([]models.Place, 0, 10)

	for rows.Next() {
		var place models.Place

		scanErr := rows.Scan(
			&place.PlaceID,
			&place.Title,
			&place.Description,
			&place.Address,
			&place.Location.Lat,
			&place.Location.Lng,
			&place.Image,
			&place.Creator,
			&place.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*placeRepository.FindPlacesByCreator").Msg("failed to scan place row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		places = append(places, place)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*placeRepository.FindPlacesByCreator").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return places, nil
}

// UpdatePlace persists the mutable fields of the place and returns the
// stored row. A missing place surfaces as [ErrPlaceNotFound].
func (r *placeRepository) UpdatePlace(ctx context.Context, place models.Place) (models.Place, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePlaceQuery(place)
	if err != nil {
		log.Err(err).Str("func", "*placeRepository.UpdatePlace").Msg("failed to build query")
		return models.Place{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var updated models.Place
	if err := r.scanPlaceRow(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Place{}, ErrPlaceNotFound
		}

		log.Err(err).
			Str("func", "*placeRepository.UpdatePlace").
			Str("place_id", place.PlaceID.String()).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: unexpected DB error")
		return models.Place{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeletePlace removes the place and its back-reference from the creator's
// places list within one transaction. A place that does not exist surfaces
// as [ErrPlaceNotFound]; in that case nothing is committed.
func (r *placeRepository) DeletePlace(ctx context.Context, place models.Place) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*placeRepository.DeletePlace").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, deletePlace, place.PlaceID)
	if err != nil {
		log.Err(err).
			Str("func", "*placeRepository.DeletePlace").
			Str("place_id", place.PlaceID.String()).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("failed to delete place")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*placeRepository.DeletePlace").Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPlaceNotFound
	}

	if _, err := tx.ExecContext(ctx, removePlaceFromUser, place.PlaceID, place.Creator); err != nil {
		log.Err(err).
			Str("func", "*placeRepository.DeletePlace").
			Str("place_id", place.PlaceID.String()).
			Msg("failed to remove place back-reference from creator")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*placeRepository.DeletePlace").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, commitErr)
	}

	return nil
}

// scanPlaceRow scans the canonical place column set (see [placeColumns])
// into dst.
func (r *placeRepository) scanPlaceRow(row *sql.Row, dst *models.Place) error {
	return row.Scan(
		&dst.PlaceID,
		&dst.Title,
		&dst.Description,
		&dst.Address,
		&dst.Location.Lat,
		&dst.Location.Lng,
		&dst.Image,
		&dst.Creator,
		&dst.CreatedAt,
	)
}
