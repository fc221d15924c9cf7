package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lacentralbaja/archivo/internal/api"
	"github.com/lacentralbaja/archivo/internal/domain"
	"github.com/lacentralbaja/archivo/internal/service"
	"github.com/lacentralbaja/archivo/internal/utils"
	"github.com/lacentralbaja/archivo/internal/validation"
)

func (h *Handler) GetArtists(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r.URL.Query().Get("limit"), defaultArtistLimit)

	artists, err := h.artists.List(limit)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	views := make([]api.ArtistView, 0, len(artists))
	for _, artist := range artists {
		views = append(views, h.artistView(artist))
	}
	writeJSON(w, http.StatusOK, views)
}

// CreateArtist adds a directory entry. Unlike board submissions there is no
// moderation queue: the entry is public the moment it lands.
func (h *Handler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	if err := validation.ValidateAndParseMultipart(w, r, h.maxAttachmentBytes); err != nil {
		utils.WriteErrorAndStatusCode(w, uploadError(err))
		return
	}

	image, err := validation.ValidateImage(formFile(r, "image"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, uploadError(err))
		return
	}

	artist, err := h.artists.Create(service.ArtistSubmission{
		Name:  r.FormValue("name"),
		Bio:   r.FormValue("bio"),
		Role:  r.FormValue("role"),
		Link:  r.FormValue("link"),
		Tags:  r.FormValue("tags"),
		Image: image,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.artistView(artist))
}

func (h *Handler) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	count, err := h.artists.Delete(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.DeleteResponse{Ok: true, Deleted: count})
}

func (h *Handler) artistView(artist domain.Artist) api.ArtistView {
	return api.NewArtistView(artist, h.renderer.Render(artist.Bio))
}
