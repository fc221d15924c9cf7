package service

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lacentralbaja/archivo/internal/domain"
	"github.com/lacentralbaja/archivo/internal/errors"
	"github.com/lacentralbaja/archivo/internal/logger"
)

type ArtistService interface {
	Create(s ArtistSubmission) (domain.Artist, error)
	List(limit int) ([]domain.Artist, error)
	Delete(id string) (int64, error)
}

type ArtistSubmission struct {
	Name  string
	Bio   string
	Role  string
	Link  string
	Tags  string
	Image *domain.PendingUpload
}

type Artists struct {
	storage ArtistStorage
	media   MediaStorage
}

type ArtistStorage interface {
	CreateArtist(artist domain.Artist) error
	ListArtists(limit int) ([]domain.Artist, error)
	DeleteArtist(id string) (int64, error)
}

func NewArtists(storage ArtistStorage, media MediaStorage) ArtistService {
	return &Artists{storage, media}
}

// Create adds a directory entry. There is no moderation step: the entry is
// public as soon as the row lands.
func (a *Artists) Create(s ArtistSubmission) (domain.Artist, error) {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return domain.Artist{}, &errors.ErrorWithStatusCode{Message: "Name is required", StatusCode: http.StatusBadRequest}
	}

	artist := domain.Artist{
		Id:        uuid.NewString(),
		CreatedAt: time.Now().UnixMilli(),
		Name:      name,
		Bio:       strings.TrimSpace(s.Bio),
		Role:      strings.TrimSpace(s.Role),
		Link:      strings.TrimSpace(s.Link),
		Tags:      strings.TrimSpace(s.Tags),
	}

	if s.Image != nil {
		defer s.Image.Data.Close()
		filename, err := a.media.Save(s.Image.Data, s.Image.Extension)
		if err != nil {
			return domain.Artist{}, err
		}
		artist.ImagePath = filename
	}

	if err := a.storage.CreateArtist(artist); err != nil {
		if artist.ImagePath != "" {
			if derr := a.media.Delete(artist.ImagePath); derr != nil {
				logger.Log.Warn("failed to remove orphaned upload", "file", artist.ImagePath, "err", derr)
			}
		}
		return domain.Artist{}, err
	}

	return artist, nil
}

func (a *Artists) List(limit int) ([]domain.Artist, error) {
	return a.storage.ListArtists(limit)
}

func (a *Artists) Delete(id string) (int64, error) {
	return a.storage.DeleteArtist(id)
}
