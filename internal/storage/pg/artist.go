package pg

import (
	"github.com/lacentralbaja/archivo/internal/domain"
)

func (s *Storage) CreateArtist(artist domain.Artist) error {
	_, err := s.db.Exec(`
		INSERT INTO artists(id, created_at, name, bio, role, link, tags, image_path)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)`,
		artist.Id, artist.CreatedAt, artist.Name, artist.Bio, artist.Role, artist.Link, artist.Tags, artist.ImagePath)
	return err
}

func (s *Storage) ListArtists(limit int) ([]domain.Artist, error) {
	rows, err := s.db.Query(`
		SELECT id, created_at, name, bio, role, link, tags, image_path
		FROM artists
		ORDER BY created_at DESC
		LIMIT $1`,
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	artists := []domain.Artist{}
	for rows.Next() {
		var artist domain.Artist
		if err := rows.Scan(&artist.Id, &artist.CreatedAt, &artist.Name, &artist.Bio, &artist.Role, &artist.Link, &artist.Tags, &artist.ImagePath); err != nil {
			return nil, err
		}
		artists = append(artists, artist)
	}
	return artists, rows.Err()
}

func (s *Storage) DeleteArtist(id string) (int64, error) {
	result, err := s.db.Exec(`DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
