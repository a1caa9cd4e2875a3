package repositories

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/imagevault/image-service/internal/models"
)

func TestImageWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db)
	repo := NewImageWriteRepository(db, nil)
	ctx := context.Background()

	owner, err := userRepo.Save(ctx, "alice", "alice@example.com", "hash")
	assert.NoError(t, err)

	image, err := repo.Save(ctx, "sunset", "https://store/img.jpg", "obj-1", owner.UserID)
	assert.NoError(t, err)
	assert.NotNil(t, image)
	assert.NotEqual(t, uuid.Nil, image.ImageID)
	assert.Equal(t, "sunset", image.Title)
	assert.Equal(t, "https://store/img.jpg", image.ImageURL)
	assert.Equal(t, "obj-1", image.PublicID)
	assert.NotNil(t, image.UploadedBy)
	assert.Equal(t, owner.UserID, *image.UploadedBy)
}

func TestImageWriteRepository_SaveInTx(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db)
	ctx := context.Background()

	owner, err := userRepo.Save(ctx, "alice", "alice@example.com", "hash")
	assert.NoError(t, err)

	t.Run("CommittedTxPersists", func(t *testing.T) {
		tx, err := db.Beginx()
		assert.NoError(t, err)

		repo := NewImageWriteRepository(db, func(context.Context) *sqlx.Tx { return tx })
		image, err := repo.Save(ctx, "in-tx", "https://store/tx.jpg", "obj-tx", owner.UserID)
		assert.NoError(t, err)
		assert.NoError(t, tx.Commit())

		var count int
		assert.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM images WHERE image_id=$1", image.ImageID))
		assert.Equal(t, 1, count)
	})

	t.Run("RolledBackTxLeavesNothing", func(t *testing.T) {
		tx, err := db.Beginx()
		assert.NoError(t, err)

		repo := NewImageWriteRepository(db, func(context.Context) *sqlx.Tx { return tx })
		image, err := repo.Save(ctx, "rolled-back", "https://store/rb.jpg", "obj-rb", owner.UserID)
		assert.NoError(t, err)
		assert.NoError(t, tx.Rollback())

		var count int
		assert.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM images WHERE image_id=$1", image.ImageID))
		assert.Equal(t, 0, count)
	})
}

func TestImageWriteRepository_UpdateTitle(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db)
	repo := NewImageWriteRepository(db, nil)
	ctx := context.Background()

	owner, err := userRepo.Save(ctx, "alice", "alice@example.com", "hash")
	assert.NoError(t, err)

	created, err := repo.Save(ctx, "old title", "https://store/img.jpg", "obj-1", owner.UserID)
	assert.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		updated, err := repo.UpdateTitle(ctx, created.ImageID, "new title")
		assert.NoError(t, err)
		assert.NotNil(t, updated)
		assert.Equal(t, "new title", updated.Title)
		assert.Equal(t, created.ImageID, updated.ImageID)
	})

	t.Run("NotFound", func(t *testing.T) {
		updated, err := repo.UpdateTitle(ctx, uuid.New(), "whatever")
		assert.NoError(t, err)
		assert.Nil(t, updated)
	})
}

func TestImageWriteRepository_Delete(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db)
	repo := NewImageWriteRepository(db, nil)
	ctx := context.Background()

	owner, err := userRepo.Save(ctx, "alice", "alice@example.com", "hash")
	assert.NoError(t, err)

	created, err := repo.Save(ctx, "sunset", "https://store/img.jpg", "obj-1", owner.UserID)
	assert.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, created.ImageID)
		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("AlreadyGone", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, created.ImageID)
		assert.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestImageReadRepository_GetByID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db)
	writeRepo := NewImageWriteRepository(db, nil)
	readRepo := NewImageReadRepository(db)
	ctx := context.Background()

	owner, err := userRepo.Save(ctx, "alice", "alice@example.com", "hash")
	assert.NoError(t, err)

	created, err := writeRepo.Save(ctx, "sunset", "https://store/img.jpg", "obj-1", owner.UserID)
	assert.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		image, err := readRepo.GetByID(ctx, created.ImageID)
		assert.NoError(t, err)
		assert.NotNil(t, image)
		assert.Equal(t, "sunset", image.Title)
	})

	t.Run("NotFound", func(t *testing.T) {
		image, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, image)
	})
}

func TestImageReadRepository_ListAll(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db)
	writeRepo := NewImageWriteRepository(db, nil)
	readRepo := NewImageReadRepository(db)
	ctx := context.Background()

	t.Run("EmptyStore", func(t *testing.T) {
		images, err := readRepo.ListAll(ctx)
		assert.NoError(t, err)
		assert.Empty(t, images)
	})

	alice, err := userRepo.Save(ctx, "alice", "alice@example.com", "hash")
	assert.NoError(t, err)
	bob, err := userRepo.Save(ctx, "bob", "bob@example.com", "hash")
	assert.NoError(t, err)

	_, err = writeRepo.Save(ctx, "first", "https://store/1.jpg", "obj-1", alice.UserID)
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, "second", "https://store/2.jpg", "obj-2", bob.UserID)
	assert.NoError(t, err)

	t.Run("AnnotatesOwner", func(t *testing.T) {
		images, err := readRepo.ListAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, images, 2)

		byTitle := map[string]string{}
		for _, img := range images {
			assert.NotNil(t, img.OwnerUsername)
			byTitle[img.Title] = *img.OwnerUsername
		}
		assert.Equal(t, "alice", byTitle["first"])
		assert.Equal(t, "bob", byTitle["second"])
	})

	t.Run("DeletedOwnerListsWithNullIdentity", func(t *testing.T) {
		_, err := db.Exec("DELETE FROM users WHERE user_id=$1", bob.UserID)
		assert.NoError(t, err)

		images, err := readRepo.ListAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, images, 2)

		for _, img := range images {
			if img.Title == "second" {
				assert.Nil(t, img.OwnerUsername)
				assert.Nil(t, img.OwnerEmail)
			}
		}
	})
}

func TestImageReadRepository_ListByUser(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db)
	writeRepo := NewImageWriteRepository(db, nil)
	readRepo := NewImageReadRepository(db)
	ctx := context.Background()

	alice, err := userRepo.Save(ctx, "alice", "alice@example.com", "hash")
	assert.NoError(t, err)
	bob, err := userRepo.Save(ctx, "bob", "bob@example.com", "hash")
	assert.NoError(t, err)

	_, err = writeRepo.Save(ctx, "mine", "https://store/1.jpg", "obj-1", alice.UserID)
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, "not mine", "https://store/2.jpg", "obj-2", bob.UserID)
	assert.NoError(t, err)

	t.Run("OnlyOwnImages", func(t *testing.T) {
		images, err := readRepo.ListByUser(ctx, alice.UserID)
		assert.NoError(t, err)
		assert.Len(t, images, 1)
		assert.Equal(t, "mine", images[0].Title)
	})

	t.Run("NoImages", func(t *testing.T) {
		images, err := readRepo.ListByUser(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Empty(t, images)
	})
}

func TestImageRepositories_Lifecycle(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db)
	writeRepo := NewImageWriteRepository(db, nil)
	readRepo := NewImageReadRepository(db)
	ctx := context.Background()

	// Register
	owner, err := userRepo.Save(ctx, "alice", "alice@example.com", "hash")
	assert.NoError(t, err)

	// Upload
	created, err := writeRepo.Save(ctx, "sunset", "https://store/img.jpg", "obj-1", owner.UserID)
	assert.NoError(t, err)

	// List mine
	mine, err := readRepo.ListByUser(ctx, owner.UserID)
	assert.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.Equal(t, "sunset", mine[0].Title)

	// Rename
	renamed, err := writeRepo.UpdateTitle(ctx, created.ImageID, "sunset, renamed")
	assert.NoError(t, err)
	assert.NotNil(t, renamed)
	assert.Equal(t, "sunset, renamed", renamed.Title)

	// List all reflects the rename and carries the owner identity
	all, err := readRepo.ListAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, "sunset, renamed", all[0].Title)
	assert.NotNil(t, all[0].OwnerUsername)
	assert.Equal(t, "alice", *all[0].OwnerUsername)

	// Delete
	deleted, err := writeRepo.Delete(ctx, created.ImageID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	// List mine is empty again
	mine, err = readRepo.ListByUser(ctx, owner.UserID)
	assert.NoError(t, err)
	assert.Empty(t, mine)
}

func TestImageWriteRepository_ConcurrentUpdateTitle(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db)
	writeRepo := NewImageWriteRepository(db, nil)
	readRepo := NewImageReadRepository(db)
	ctx := context.Background()

	owner, err := userRepo.Save(ctx, "alice", "alice@example.com", "hash")
	assert.NoError(t, err)

	created, err := writeRepo.Save(ctx, "original", "https://store/img.jpg", "obj-1", owner.UserID)
	assert.NoError(t, err)

	titles := []string{"first writer", "second writer"}
	errs := make([]error, len(titles))
	results := make([]*models.ImageDB, len(titles))

	var wg sync.WaitGroup
	for i, title := range titles {
		wg.Add(1)
		go func(i int, title string) {
			defer wg.Done()
			results[i], errs[i] = writeRepo.UpdateTitle(ctx, created.ImageID, title)
		}(i, title)
	}
	wg.Wait()

	// Both writers succeed; neither observes a missing row.
	for i := range titles {
		assert.NoError(t, errs[i])
		assert.NotNil(t, results[i])
	}

	// Last write wins: the stored title is exactly one of the two.
	stored, err := readRepo.GetByID(ctx, created.ImageID)
	assert.NoError(t, err)
	assert.NotNil(t, stored)
	assert.Contains(t, titles, stored.Title)
}
