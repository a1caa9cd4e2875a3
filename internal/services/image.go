package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/imagevault/image-service/internal/facades"
	"github.com/imagevault/image-service/internal/logger"
	"github.com/imagevault/image-service/internal/models"
)

// Error variables
var (
	ErrUnsupportedPayload = errors.New("unsupported image payload")
	ErrImageNotFound      = errors.New("image not found")
	ErrNoImages           = errors.New("no images found")
	ErrRemoteStore        = errors.New("remote store failure")
)

// jpegBase64Prefix is the single accepted payload encoding.
const jpegBase64Prefix = "data:image/jpeg;base64,"

// ImageWriter defines write operations for image metadata.
type ImageWriter interface {
	Save(ctx context.Context, title, imageURL, publicID string, uploadedBy uuid.UUID) (*models.ImageDB, error)
	UpdateTitle(ctx context.Context, imageID uuid.UUID, newTitle string) (*models.ImageDB, error)
	Delete(ctx context.Context, imageID uuid.UUID) (bool, error)
}

// ImageReader defines read operations for image metadata.
type ImageReader interface {
	GetByID(ctx context.Context, imageID uuid.UUID) (*models.ImageDB, error)
	ListAll(ctx context.Context) ([]models.ImageWithOwner, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ImageWithOwner, error)
}

// RemoteStore defines the remote object store operations.
type RemoteStore interface {
	Upload(ctx context.Context, data []byte) (*facades.UploadResult, error)
	Delete(ctx context.Context, objectID string) error
}

// KafkaWriter defines the Kafka operations the service needs. Lifecycle of
// the underlying writer belongs to the caller.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// ImageService orchestrates the remote object store and the metadata store,
// enforcing the two-step mutation protocol for upload and delete.
type ImageService struct {
	writeRepo   ImageWriter
	readRepo    ImageReader
	remote      RemoteStore
	kafkaWriter KafkaWriter
}

// NewImageService creates a new ImageService.
func NewImageService(writeRepo ImageWriter, readRepo ImageReader, remote RemoteStore, kafkaWriter KafkaWriter) *ImageService {
	return &ImageService{
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		remote:      remote,
		kafkaWriter: kafkaWriter,
	}
}

// publishOrphan publishes a store-consistency violation for out-of-band
// reconciliation. Best-effort: failures only log.
func (s *ImageService) publishOrphan(ctx context.Context, event models.OrphanEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping orphan event", "object_id", event.ObjectID, "reason", event.Reason)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal orphan event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish orphan event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("orphan event published", "event_id", event.EventID, "object_id", event.ObjectID, "reason", event.Reason)
	}
}

// decodePayload validates the accepted encoding scheme and returns the raw
// image bytes.
func decodePayload(payload string) ([]byte, error) {
	if !strings.HasPrefix(payload, jpegBase64Prefix) {
		return nil, ErrUnsupportedPayload
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(payload, jpegBase64Prefix))
	if err != nil || len(data) == 0 {
		return nil, ErrUnsupportedPayload
	}

	return data, nil
}

// Upload sends the encoded payload to the remote store, then records the
// metadata. A rejected payload or a failed remote call leaves no metadata
// behind; a failed metadata write after a successful remote upload leaves an
// orphaned remote object, which is published for reconciliation rather than
// rolled back.
func (s *ImageService) Upload(ctx context.Context, user *models.UserDB, payload, title string) (*models.ImageDB, error) {
	data, err := decodePayload(payload)
	if err != nil {
		logger.Log.Warnw("rejected upload payload", "user_id", user.UserID)
		return nil, err
	}

	result, err := s.remote.Upload(ctx, data)
	if err != nil {
		logger.Log.Errorw("remote upload failed", "user_id", user.UserID, "error", err)
		return nil, ErrRemoteStore
	}

	image, err := s.writeRepo.Save(ctx, title, result.URL, result.ObjectID, user.UserID)
	if err != nil {
		logger.Log.Errorw("metadata write failed after remote upload, remote object orphaned",
			"object_id", result.ObjectID, "user_id", user.UserID, "error", err)
		s.publishOrphan(ctx, models.OrphanEvent{
			EventID:   uuid.NewString(),
			Timestamp: time.Now().Unix(),
			ObjectID:  result.ObjectID,
			Reason:    models.OrphanReasonMetadataWriteFailed,
		})
		return nil, err
	}

	return image, nil
}

// ListAll returns every image with its owner's public identity. An empty
// store is an error here, unlike ListMine.
func (s *ImageService) ListAll(ctx context.Context) ([]models.ImageWithOwner, error) {
	images, err := s.readRepo.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list images", "error", err)
		return nil, err
	}
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	return images, nil
}

// ListMine returns the requester's images, newest first. An empty result is
// a valid outcome.
func (s *ImageService) ListMine(ctx context.Context, userID uuid.UUID) ([]models.ImageWithOwner, error) {
	images, err := s.readRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list user images", "user_id", userID, "error", err)
		return nil, err
	}
	return images, nil
}

// Rename updates the image's title and returns the updated record. Any
// authenticated identity may rename any image.
func (s *ImageService) Rename(ctx context.Context, imageID uuid.UUID, newTitle string) (*models.ImageDB, error) {
	image, err := s.writeRepo.UpdateTitle(ctx, imageID, newTitle)
	if err != nil {
		logger.Log.Errorw("failed to update image title", "image_id", imageID, "error", err)
		return nil, err
	}
	if image == nil {
		return nil, ErrImageNotFound
	}
	return image, nil
}

// Delete removes the image. Remote deletion is attempted first but a remote
// failure does not abort: the metadata row is removed regardless, trading a
// possible orphaned remote object for guaranteed metadata cleanup. Returns
// the deleted record.
func (s *ImageService) Delete(ctx context.Context, imageID uuid.UUID) (*models.ImageDB, error) {
	image, err := s.readRepo.GetByID(ctx, imageID)
	if err != nil {
		logger.Log.Errorw("failed to load image for deletion", "image_id", imageID, "error", err)
		return nil, err
	}
	if image == nil {
		return nil, ErrImageNotFound
	}

	if image.PublicID != "" {
		if err := s.remote.Delete(ctx, image.PublicID); err != nil {
			logger.Log.Errorw("remote deletion failed, continuing with metadata removal",
				"image_id", imageID, "object_id", image.PublicID, "error", err)
			s.publishOrphan(ctx, models.OrphanEvent{
				EventID:   uuid.NewString(),
				Timestamp: time.Now().Unix(),
				ObjectID:  image.PublicID,
				ImageID:   image.ImageID.String(),
				Reason:    models.OrphanReasonRemoteDeleteFailed,
			})
		}
	} else {
		logger.Log.Warnw("image has no remote object id", "image_id", imageID)
	}

	deleted, err := s.writeRepo.Delete(ctx, imageID)
	if err != nil {
		logger.Log.Errorw("failed to delete image metadata", "image_id", imageID, "error", err)
		return nil, err
	}
	if !deleted {
		// Raced with a concurrent delete.
		return nil, ErrImageNotFound
	}

	return image, nil
}
