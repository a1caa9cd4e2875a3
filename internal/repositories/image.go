package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/imagevault/image-service/internal/logger"
	"github.com/imagevault/image-service/internal/models"
)

// ImageWriteRepository handles image metadata write operations.
type ImageWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewImageWriteRepository creates a write repository. txGetter may be nil;
// when it yields a transaction for the current request, writes run inside it.
func NewImageWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ImageWriteRepository {
	return &ImageWriteRepository{db: db, txGetter: txGetter}
}

func (r *ImageWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new image metadata record and returns it.
func (r *ImageWriteRepository) Save(ctx context.Context, title, imageURL, publicID string, uploadedBy uuid.UUID) (*models.ImageDB, error) {
	const query = `
		INSERT INTO images (title, image_url, public_id, uploaded_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING image_id, title, image_url, public_id, uploaded_by, created_at, updated_at
	`

	var image models.ImageDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &image, query, title, imageURL, publicID, uploadedBy)

	logger.Log.Debugw("image insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{title, imageURL, publicID, uploadedBy},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &image, nil
}

// UpdateTitle sets a new title on the image and returns the updated record,
// or (nil, nil) when no such image exists.
func (r *ImageWriteRepository) UpdateTitle(ctx context.Context, imageID uuid.UUID, newTitle string) (*models.ImageDB, error) {
	const query = `
		UPDATE images
		SET title = $2, updated_at = NOW()
		WHERE image_id = $1
		RETURNING image_id, title, image_url, public_id, uploaded_by, created_at, updated_at
	`

	var image models.ImageDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &image, query, imageID, newTitle)

	logger.Log.Debugw("image title update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{imageID, newTitle},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// Delete removes the image metadata record. Returns false when no row matched.
func (r *ImageWriteRepository) Delete(ctx context.Context, imageID uuid.UUID) (bool, error) {
	const query = `DELETE FROM images WHERE image_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, imageID)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("image delete",
		"query", query,
		"args", []any{imageID},
		"rows", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// ImageReadRepository handles image metadata read operations.
type ImageReadRepository struct {
	db *sqlx.DB
}

func NewImageReadRepository(db *sqlx.DB) *ImageReadRepository {
	return &ImageReadRepository{db: db}
}

// GetByID returns the image with the given id, or (nil, nil) when absent.
func (r *ImageReadRepository) GetByID(ctx context.Context, imageID uuid.UUID) (*models.ImageDB, error) {
	const query = `
		SELECT image_id, title, image_url, public_id, uploaded_by, created_at, updated_at
		FROM images
		WHERE image_id = $1
	`

	var image models.ImageDB
	err := r.db.GetContext(ctx, &image, query, imageID)

	logger.Log.Debugw("image select by id",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{imageID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// ListAll returns every image annotated with its owner's public identity.
// The join is a LEFT JOIN: images whose uploader was deleted still list,
// with null owner fields.
func (r *ImageReadRepository) ListAll(ctx context.Context) ([]models.ImageWithOwner, error) {
	const query = `
		SELECT i.image_id, i.title, i.image_url, i.public_id, i.uploaded_by,
		       i.created_at, i.updated_at,
		       u.username AS owner_username, u.email AS owner_email
		FROM images i
		LEFT JOIN users u ON u.user_id = i.uploaded_by
		ORDER BY i.created_at DESC
	`

	var images []models.ImageWithOwner
	err := r.db.SelectContext(ctx, &images, query)

	logger.Log.Debugw("image select all",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(images),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return images, nil
}

// ListByUser returns the images uploaded by the given user, newest first.
// An empty result is a valid outcome.
func (r *ImageReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ImageWithOwner, error) {
	const query = `
		SELECT i.image_id, i.title, i.image_url, i.public_id, i.uploaded_by,
		       i.created_at, i.updated_at,
		       u.username AS owner_username, u.email AS owner_email
		FROM images i
		LEFT JOIN users u ON u.user_id = i.uploaded_by
		WHERE i.uploaded_by = $1
		ORDER BY i.created_at DESC
	`

	var images []models.ImageWithOwner
	err := r.db.SelectContext(ctx, &images, query, userID)

	logger.Log.Debugw("image select by user",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"count", len(images),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return images, nil
}
