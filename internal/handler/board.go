package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lacentralbaja/archivo/internal/api"
	"github.com/lacentralbaja/archivo/internal/domain"
	internal_errors "github.com/lacentralbaja/archivo/internal/errors"
	"github.com/lacentralbaja/archivo/internal/service"
	"github.com/lacentralbaja/archivo/internal/utils"
	"github.com/lacentralbaja/archivo/internal/validation"
)

// GetBoard lists approved posts only, newest first. Pending and rejected rows
// never cross this endpoint.
func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r.URL.Query().Get("limit"), defaultPublicBoardLimit)

	posts, err := h.board.ListPublic(limit)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.boardViews(posts, false))
}

// SubmitBoard is the anonymous submission path. The post lands pending and
// stays invisible until a moderator approves it.
func (h *Handler) SubmitBoard(w http.ResponseWriter, r *http.Request) {
	submission, err := h.parseBoardForm(w, r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, uploadError(err))
		return
	}

	post, err := h.board.Submit(submission)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.SubmitResponse{Ok: true, Id: post.Id})
}

// AdminListBoard lists posts by explicit status; there is no "all" view.
func (h *Handler) AdminListBoard(w http.ResponseWriter, r *http.Request) {
	rawStatus := r.URL.Query().Get("status")
	if rawStatus == "" {
		utils.WriteErrorAndStatusCode(w, &internal_errors.ErrorWithStatusCode{Message: "Status is required", StatusCode: http.StatusBadRequest})
		return
	}
	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, &internal_errors.ErrorWithStatusCode{Message: "Unknown status", StatusCode: http.StatusBadRequest})
		return
	}

	limit := parseLimit(r.URL.Query().Get("limit"), defaultAdminBoardLimit)

	posts, err := h.board.ListByStatus(status, limit)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.boardViews(posts, true))
}

// ApproveBoard makes a post public.
func (h *Handler) ApproveBoard(w http.ResponseWriter, r *http.Request) {
	h.setBoardStatus(w, r, domain.StatusApproved)
}

// RejectBoard hides a post without deleting it; the row stays for the record.
func (h *Handler) RejectBoard(w http.ResponseWriter, r *http.Request) {
	h.setBoardStatus(w, r, domain.StatusRejected)
}

func (h *Handler) setBoardStatus(w http.ResponseWriter, r *http.Request, status domain.Status) {
	id := chi.URLParam(r, "id")

	count, err := h.board.SetStatus(id, status)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.UpdateResponse{Ok: true, Updated: count})
}

// CreateBoard is the admin creation path: the post is approved on arrival.
func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	submission, err := h.parseBoardForm(w, r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, uploadError(err))
		return
	}

	post, err := h.board.CreateApproved(submission)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.boardView(post, true))
}

func (h *Handler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	count, err := h.board.Delete(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.DeleteResponse{Ok: true, Deleted: count})
}

func (h *Handler) parseBoardForm(w http.ResponseWriter, r *http.Request) (service.Submission, error) {
	if err := validation.ValidateAndParseMultipart(w, r, h.maxAttachmentBytes); err != nil {
		return service.Submission{}, err
	}

	image, err := validation.ValidateImage(formFile(r, "image"))
	if err != nil {
		return service.Submission{}, err
	}

	return service.Submission{
		Title:  r.FormValue("title"),
		Body:   r.FormValue("body"),
		Author: r.FormValue("author"),
		Tags:   r.FormValue("tags"),
		Image:  image,
	}, nil
}

func (h *Handler) boardView(post domain.BoardPost, withStatus bool) api.BoardPostView {
	return api.NewBoardPostView(post, h.renderer.Render(post.Body), withStatus)
}

func (h *Handler) boardViews(posts []domain.BoardPost, withStatus bool) []api.BoardPostView {
	views := make([]api.BoardPostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, h.boardView(post, withStatus))
	}
	return views
}
