package store

import (
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/avetikov/go-places-api/models"
	"github.com/google/uuid"
)

const (
	createUser = `INSERT INTO users (user_id, name, email, password_hash, image)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, name, email, password_hash, image, places, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, image, places, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, name, email, password_hash, image, places, created_at
    FROM users
    WHERE user_id = $1;`

	getAllUsers = `SELECT user_id, name, email, password_hash, image, places, created_at
    FROM users;`

	createPlace = `INSERT INTO places (place_id, title, description, address, lat, lng, image, creator)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING place_id, title, description, address, lat, lng, image, creator, created_at;`

	findPlaceByID = `SELECT place_id, title, description, address, lat, lng, image, creator, created_at
    FROM places
    WHERE place_id = $1;`

	deletePlace = `DELETE FROM places
    WHERE place_id = $1;`

	appendPlaceToUser = `UPDATE users
    SET places = array_append(places, $1)
    WHERE user_id = $2;`

	removePlaceFromUser = `UPDATE users
    SET places = array_remove(places, $1)
    WHERE user_id = $2;`
)

// placeColumns is the canonical column order shared by the squirrel-built
// place queries and the row scanning code.
var placeColumns = []string{
	"place_id",
	"title",
	"description",
	"address",
	"lat",
	"lng",
	"image",
	"creator",
	"created_at",
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// buildFindPlacesByCreatorQuery builds the SELECT returning every place
// owned by the given user, oldest first.
func buildFindPlacesByCreatorQuery(creator uuid.UUID) (string, []any, error) {
	return psql.
		Select(placeColumns...).
		From("places").
		Where(squirrel.Eq{"creator": creator}).
		OrderBy("created_at").
		ToSql()
}

// buildUpdatePlaceQuery builds the UPDATE applying the mutable fields of a
// place. Only title and description ever change after creation.
func buildUpdatePlaceQuery(place models.Place) (string, []any, error) {
	return psql.
		Update("places").
		Set("title", place.Title).
		Set("description", place.Description).
		Where(squirrel.Eq{"place_id": place.PlaceID}).
		Suffix("RETURNING " + strings.Join(placeColumns, ", ")).
		ToSql()
}
