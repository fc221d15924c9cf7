package pg

import (
	"github.com/lacentralbaja/archivo/internal/domain"
)

func (s *Storage) CreateBoardPost(post domain.BoardPost) error {
	_, err := s.db.Exec(`
		INSERT INTO board_posts(id, created_at, title, body, author, tags, image_path, status)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)`,
		post.Id, post.CreatedAt, post.Title, post.Body, post.Author, post.Tags, post.ImagePath, string(post.Status))
	return err
}

func (s *Storage) ListBoardPosts(status domain.Status, limit int) ([]domain.BoardPost, error) {
	rows, err := s.db.Query(`
		SELECT id, created_at, title, body, author, tags, image_path, status
		FROM board_posts
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2`,
		string(status), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []domain.BoardPost{}
	for rows.Next() {
		var post domain.BoardPost
		var rowStatus string
		if err := rows.Scan(&post.Id, &post.CreatedAt, &post.Title, &post.Body, &post.Author, &post.Tags, &post.ImagePath, &rowStatus); err != nil {
			return nil, err
		}
		post.Status = domain.Status(rowStatus)
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// SetBoardPostStatus is a single statement, so two moderators racing on the
// same post resolve to whichever update lands last; the post never ends up in
// two states.
func (s *Storage) SetBoardPostStatus(id string, status domain.Status) (int64, error) {
	result, err := s.db.Exec(`UPDATE board_posts SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *Storage) DeleteBoardPost(id string) (int64, error) {
	result, err := s.db.Exec(`DELETE FROM board_posts WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
