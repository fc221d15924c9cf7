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

// to mock service in tests
type BoardService interface {
	Submit(s Submission) (domain.BoardPost, error)
	CreateApproved(s Submission) (domain.BoardPost, error)
	ListPublic(limit int) ([]domain.BoardPost, error)
	ListByStatus(status domain.Status, limit int) ([]domain.BoardPost, error)
	SetStatus(id string, status domain.Status) (int64, error)
	Delete(id string) (int64, error)
}

// Submission is a board form as it arrives from the client, image already
// validated but not yet stored.
type Submission struct {
	Title  string
	Body   string
	Author string
	Tags   string
	Image  *domain.PendingUpload
}

type Board struct {
	storage BoardStorage
	media   MediaStorage
}

type BoardStorage interface {
	CreateBoardPost(post domain.BoardPost) error
	ListBoardPosts(status domain.Status, limit int) ([]domain.BoardPost, error)
	SetBoardPostStatus(id string, status domain.Status) (int64, error)
	DeleteBoardPost(id string) (int64, error)
}

func NewBoard(storage BoardStorage, media MediaStorage) BoardService {
	return &Board{storage, media}
}

// Submit creates a pending post from the anonymous submission path.
func (b *Board) Submit(s Submission) (domain.BoardPost, error) {
	return b.create(s, domain.StatusPending)
}

// CreateApproved is the admin creation path: the post is public immediately.
func (b *Board) CreateApproved(s Submission) (domain.BoardPost, error) {
	return b.create(s, domain.StatusApproved)
}

func (b *Board) create(s Submission, status domain.Status) (domain.BoardPost, error) {
	title := strings.TrimSpace(s.Title)
	if title == "" {
		return domain.BoardPost{}, &errors.ErrorWithStatusCode{Message: "Title is required", StatusCode: http.StatusBadRequest}
	}

	author := strings.TrimSpace(s.Author)
	if author == "" {
		author = domain.DefaultAuthor
	}

	post := domain.BoardPost{
		Id:        uuid.NewString(),
		CreatedAt: time.Now().UnixMilli(),
		Title:     title,
		Body:      strings.TrimSpace(s.Body),
		Author:    author,
		Tags:      strings.TrimSpace(s.Tags),
		Status:    status,
	}

	if s.Image != nil {
		defer s.Image.Data.Close()
		filename, err := b.media.Save(s.Image.Data, s.Image.Extension)
		if err != nil {
			return domain.BoardPost{}, err
		}
		post.ImagePath = filename
	}

	if err := b.storage.CreateBoardPost(post); err != nil {
		// The file was written before the row; compensate so a failed insert
		// does not leave an orphan behind.
		if post.ImagePath != "" {
			if derr := b.media.Delete(post.ImagePath); derr != nil {
				logger.Log.Warn("failed to remove orphaned upload", "file", post.ImagePath, "err", derr)
			}
		}
		return domain.BoardPost{}, err
	}

	return post, nil
}

// ListPublic returns approved posts only, newest first.
func (b *Board) ListPublic(limit int) ([]domain.BoardPost, error) {
	return b.storage.ListBoardPosts(domain.StatusApproved, limit)
}

func (b *Board) ListByStatus(status domain.Status, limit int) ([]domain.BoardPost, error) {
	if !status.Valid() {
		return nil, &errors.ErrorWithStatusCode{Message: "Unknown status", StatusCode: http.StatusBadRequest}
	}
	return b.storage.ListBoardPosts(status, limit)
}

// SetStatus moves a post to the given status. Updating a missing id is a
// success with a zero count; callers see the count and decide.
func (b *Board) SetStatus(id string, status domain.Status) (int64, error) {
	if !status.Valid() {
		return 0, &errors.ErrorWithStatusCode{Message: "Unknown status", StatusCode: http.StatusBadRequest}
	}
	return b.storage.SetBoardPostStatus(id, status)
}

// Delete removes the row. The stored upload, if any, is left behind; cleanup
// of orphans after delete is out of scope.
func (b *Board) Delete(id string) (int64, error) {
	return b.storage.DeleteBoardPost(id)
}
