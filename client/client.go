// Package client is the archive's local-first companion: it talks to the read
// API, keeps the visitor's own timeline in a local store and merges it over
// the server seed on every load.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lacentralbaja/archivo/internal/api"
	"github.com/lacentralbaja/archivo/internal/domain"
)

// APIClient handles all communication with the archive API.
type APIClient struct {
	BaseURL    string
	HttpClient *http.Client
}

func New(baseURL string) *APIClient {
	return &APIClient{
		BaseURL:    baseURL,
		HttpClient: &http.Client{},
	}
}

// do builds and dispatches a request. A cancelled context short-circuits
// before anything is sent: closing the submit dialog must not fire a stray
// request.
func (c *APIClient) do(ctx context.Context, method, path, contentType string, body io.Reader) (*http.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend unavailable: %w", err)
	}
	return resp, nil
}

func (c *APIClient) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d for %s", resp.StatusCode, path)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// GetSeed fetches the server-authoritative baseline.
func (c *APIClient) GetSeed(ctx context.Context) (domain.SeedDocument, error) {
	var doc domain.SeedDocument
	err := c.getJSON(ctx, "/api/seed", &doc)
	return doc, err
}

// GetBoard fetches approved board posts, newest first.
func (c *APIClient) GetBoard(ctx context.Context, limit int) ([]api.BoardPostView, error) {
	views := []api.BoardPostView{}
	err := c.getJSON(ctx, "/api/board?limit="+url.QueryEscape(strconv.Itoa(limit)), &views)
	return views, err
}

func (c *APIClient) GetArtists(ctx context.Context, limit int) ([]api.ArtistView, error) {
	views := []api.ArtistView{}
	err := c.getJSON(ctx, "/api/artists?limit="+url.QueryEscape(strconv.Itoa(limit)), &views)
	return views, err
}

// IdeaForm is a board submission as gathered from the visitor. Image is
// optional; ImageFilename carries the original name so the server can keep
// the extension.
type IdeaForm struct {
	Title         string
	Body          string
	Author        string
	Tags          string
	Image         io.Reader
	ImageFilename string
}

// SubmitIdea posts an idea to the moderation queue.
func (c *APIClient) SubmitIdea(ctx context.Context, form IdeaForm) (api.SubmitResponse, error) {
	body, contentType, err := encodeIdeaForm(form)
	if err != nil {
		return api.SubmitResponse{}, err
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/board/submit", contentType, body)
	if err != nil {
		return api.SubmitResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return api.SubmitResponse{}, fmt.Errorf("submission rejected with status %d", resp.StatusCode)
	}

	var submitted api.SubmitResponse
	if err := json.NewDecoder(resp.Body).Decode(&submitted); err != nil {
		return api.SubmitResponse{}, err
	}
	return submitted, nil
}

func encodeIdeaForm(form IdeaForm) (io.Reader, string, error) {
	buf := new(bytes.Buffer)
	mw := multipart.NewWriter(buf)

	fields := map[string]string{
		"title":  form.Title,
		"body":   form.Body,
		"author": form.Author,
		"tags":   form.Tags,
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}

	if form.Image != nil {
		part, err := mw.CreateFormFile("image", form.ImageFilename)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, form.Image); err != nil {
			return nil, "", err
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return buf, mw.FormDataContentType(), nil
}
