package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/seed", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"project": {"title": "La Central Baja", "goals": {"min": 1000, "raised": 250}}, "entries": []}`))
	}))
	defer server.Close()

	doc, err := New(server.URL).GetSeed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "La Central Baja", doc.Project.Title)
	assert.Equal(t, 250.0, doc.Project.Goals.Raised)
}

func TestGetBoard(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/board", r.URL.Path)
		assert.Equal(t, "60", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": "p-1", "title": "Mural", "tags": ["arte"], "imageUrl": "/uploads/1-a.png"}]`))
	}))
	defer server.Close()

	posts, err := New(server.URL).GetBoard(context.Background(), 60)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Mural", posts[0].Title)
}

func TestGetBoard_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := New(server.URL).GetBoard(context.Background(), 60)
	assert.Error(t, err)
}

func TestSubmitIdea(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/board/submit", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Una idea", r.FormValue("title"))
		assert.Equal(t, "vera", r.FormValue("author"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "foto.png", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok": true, "id": "p-9"}`))
	}))
	defer server.Close()

	resp, err := New(server.URL).SubmitIdea(context.Background(), IdeaForm{
		Title:         "Una idea",
		Author:        "vera",
		Image:         strings.NewReader("fake image bytes"),
		ImageFilename: "foto.png",
	})
	require.NoError(t, err)
	assert.True(t, resp.Ok)
	assert.Equal(t, "p-9", resp.Id)
}

// Closing the dialog cancels the context; nothing may reach the server after
// that.
func TestCancelledContext_NothingDispatched(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(server.URL)

	_, err := c.SubmitIdea(ctx, IdeaForm{Title: "tarde"})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = c.GetSeed(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, int64(0), hits.Load())
}
