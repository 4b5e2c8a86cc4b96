package facility

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/campuskit/facility-booking-backend/internal/pkg/storage"
	"github.com/google/uuid"
)

// PhotoService manages the photo attached to a facility.
type PhotoService interface {
	SetPhoto(ctx context.Context, facilityID int64, header *multipart.FileHeader) (*Facility, error)
	Photo(ctx context.Context, facilityID int64) (io.ReadCloser, error)
	Thumbnail(ctx context.Context, facilityID int64) (io.ReadCloser, error)
}

type photoService struct {
	repo    Repository
	storage storage.Storage
	imgProc *storage.ImageProcessor
}

func NewPhotoService(repo Repository, store storage.Storage) PhotoService {
	return &photoService{
		repo:    repo,
		storage: store,
		imgProc: storage.NewImageProcessor(),
	}
}

func (s *photoService) SetPhoto(ctx context.Context, facilityID int64, header *multipart.FileHeader) (*Facility, error) {
	f, err := s.repo.GetByID(ctx, facilityID)
	if err != nil {
		return nil, err
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Buffer the upload so it can be read twice (save + thumbnail).
	photoBytes, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		ext = ".jpg"
	}

	photoID := uuid.New().String()
	photoPath := fmt.Sprintf("facility/%d/%s%s", facilityID, photoID, ext)

	if err := s.storage.Save(ctx, photoPath, bytes.NewReader(photoBytes)); err != nil {
		return nil, fmt.Errorf("failed to save photo to storage: %w", err)
	}

	var thumbnailPath *string
	thumbReader, err := s.imgProc.GenerateThumbnail(bytes.NewReader(photoBytes), 300, 300)
	if err == nil {
		tPath := fmt.Sprintf("facility/%d/%s_thumb.jpg", facilityID, photoID)
		if err := s.storage.Save(ctx, tPath, thumbReader); err == nil {
			thumbnailPath = &tPath
		}
	}

	// Replacing a photo removes the previous files best-effort.
	oldPhoto, oldThumb := f.PhotoPath, f.ThumbnailPath

	if err := s.repo.UpdatePhoto(ctx, facilityID, &photoPath, thumbnailPath); err != nil {
		_ = s.storage.Delete(ctx, photoPath)
		if thumbnailPath != nil {
			_ = s.storage.Delete(ctx, *thumbnailPath)
		}
		return nil, err
	}

	if oldPhoto != nil {
		_ = s.storage.Delete(ctx, *oldPhoto)
	}
	if oldThumb != nil {
		_ = s.storage.Delete(ctx, *oldThumb)
	}

	return s.repo.GetByID(ctx, facilityID)
}

func (s *photoService) Photo(ctx context.Context, facilityID int64) (io.ReadCloser, error) {
	f, err := s.repo.GetByID(ctx, facilityID)
	if err != nil {
		return nil, err
	}
	if f.PhotoPath == nil {
		return nil, ErrNoPhoto
	}

	stream, err := s.storage.Get(ctx, *f.PhotoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve photo from storage: %w", err)
	}
	return stream, nil
}

func (s *photoService) Thumbnail(ctx context.Context, facilityID int64) (io.ReadCloser, error) {
	f, err := s.repo.GetByID(ctx, facilityID)
	if err != nil {
		return nil, err
	}
	if f.ThumbnailPath == nil {
		return nil, ErrNoPhoto
	}

	stream, err := s.storage.Get(ctx, *f.ThumbnailPath)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve thumbnail from storage: %w", err)
	}
	return stream, nil
}
