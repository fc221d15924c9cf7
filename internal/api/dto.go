package api

import (
	"github.com/lacentralbaja/archivo/internal/domain"
)

// UploadsMount is the URL prefix under which stored uploads are served.
const UploadsMount = "/uploads/"

// BoardPostView is the denormalized board row shape returned by the read API.
type BoardPostView struct {
	Id        string        `json:"id"`
	CreatedAt int64         `json:"createdAt"`
	Title     string        `json:"title"`
	Body      string        `json:"body"`
	BodyHtml  string        `json:"bodyHtml,omitempty"`
	Author    string        `json:"author"`
	Tags      []string      `json:"tags"`
	ImageUrl  string        `json:"imageUrl"`
	Status    domain.Status `json:"status,omitempty"` // admin listing only
}

type ArtistView struct {
	Id        string   `json:"id"`
	CreatedAt int64    `json:"createdAt"`
	Name      string   `json:"name"`
	Bio       string   `json:"bio"`
	BioHtml   string   `json:"bioHtml,omitempty"`
	Role      string   `json:"role"`
	Link      string   `json:"link"`
	Tags      []string `json:"tags"`
	ImageUrl  string   `json:"imageUrl"`
}

// NewBoardPostView shapes a row: tags split, image path expanded, author
// defaulted. Status is only attached for admin listings.
func NewBoardPostView(post domain.BoardPost, bodyHtml string, withStatus bool) BoardPostView {
	author := post.Author
	if author == "" {
		author = domain.DefaultAuthor
	}
	view := BoardPostView{
		Id:        post.Id,
		CreatedAt: post.CreatedAt,
		Title:     post.Title,
		Body:      post.Body,
		BodyHtml:  bodyHtml,
		Author:    author,
		Tags:      domain.SplitTags(post.Tags),
		ImageUrl:  ImageUrl(post.ImagePath),
	}
	if withStatus {
		view.Status = post.Status
	}
	return view
}

func NewArtistView(artist domain.Artist, bioHtml string) ArtistView {
	return ArtistView{
		Id:        artist.Id,
		CreatedAt: artist.CreatedAt,
		Name:      artist.Name,
		Bio:       artist.Bio,
		BioHtml:   bioHtml,
		Role:      artist.Role,
		Link:      artist.Link,
		Tags:      domain.SplitTags(artist.Tags),
		ImageUrl:  ImageUrl(artist.ImagePath),
	}
}

// ImageUrl expands a bare stored filename to its fetchable URL, or returns ""
// when there is no image.
func ImageUrl(imagePath string) string {
	if imagePath == "" {
		return ""
	}
	return UploadsMount + imagePath
}

// SubmitResponse acknowledges a public submission.
type SubmitResponse struct {
	Ok bool   `json:"ok"`
	Id string `json:"id"`
}

// UpdateResponse reports how many rows a transition touched. Zero is a valid
// answer: updating a missing id is a no-op success.
type UpdateResponse struct {
	Ok      bool  `json:"ok"`
	Updated int64 `json:"updated"`
}

type DeleteResponse struct {
	Ok      bool  `json:"ok"`
	Deleted int64 `json:"deleted"`
}

// LoginRequest exchanges the shared admin key for a session cookie.
type LoginRequest struct {
	Key string `json:"key" validate:"required"`
}
