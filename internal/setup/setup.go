package setup

import (
	"github.com/lacentralbaja/archivo/internal/config"
	"github.com/lacentralbaja/archivo/internal/handler"
	"github.com/lacentralbaja/archivo/internal/jwt"
	"github.com/lacentralbaja/archivo/internal/markdown"
	"github.com/lacentralbaja/archivo/internal/middleware"
	"github.com/lacentralbaja/archivo/internal/service"
	"github.com/lacentralbaja/archivo/internal/storage/fs"
	"github.com/lacentralbaja/archivo/internal/storage/pg"
)

// Dependencies holds all initialized dependencies.
type Dependencies struct {
	Storage *pg.Storage
	Media   *fs.Storage
	Handler *handler.Handler
	Gate    *middleware.AdminGate
	Config  *config.Config
}

// SetupDependencies wires storage, services and handlers together.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg.Public.Pg)
	if err != nil {
		return nil, err
	}

	media, err := fs.New(cfg.Public.UploadsDir)
	if err != nil {
		storage.Cleanup()
		return nil, err
	}

	seed, err := service.LoadSeed(cfg.Public.SeedPath)
	if err != nil {
		storage.Cleanup()
		return nil, err
	}

	sessions := jwt.New(cfg.SessionKey(), cfg.SessionTTL())
	gate := middleware.NewAdminGate(cfg.AdminKeyHash(), sessions)

	board := service.NewBoard(storage, media)
	artists := service.NewArtists(storage, media)

	h := handler.New(board, artists, seed, gate, sessions, markdown.New(), cfg.MaxAttachmentBytes(), cfg.SessionTTL())

	return &Dependencies{
		Storage: storage,
		Media:   media,
		Handler: h,
		Gate:    gate,
		Config:  cfg,
	}, nil
}
