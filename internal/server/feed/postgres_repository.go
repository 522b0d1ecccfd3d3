package feed

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Kisalay21/familytree/internal/dbx"
	"github.com/Kisalay21/familytree/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const postColumns = `id, vault_media_id, author_id, author, author_image, relationship,
	content, image, video, ts, display_time, likes, is_liked, comments, comments_list`

func (r *PostgresRepository) Insert(ctx context.Context, post *models.Post) error {

	comments, err := json.Marshal(post.CommentsList)
	if err != nil {
		return fmt.Errorf("encoding comments: %w", err)
	}

	query := `INSERT INTO posts (` + postColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err = r.db.ExecContext(ctx, query,
		post.ID, post.VaultMediaID, post.AuthorID, post.Author, post.AuthorImage,
		post.Relationship, post.Content, post.Image, post.Video, post.Timestamp,
		post.DisplayTime, post.Likes, post.IsLiked, post.Comments, comments)

	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Post, bool, error) {

	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)

	post, err := scanPost(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("error performing sql request: %v", err)
	}
	return post, true, nil
}

func (r *PostgresRepository) Update(ctx context.Context, post *models.Post) error {

	comments, err := json.Marshal(post.CommentsList)
	if err != nil {
		return fmt.Errorf("encoding comments: %w", err)
	}

	query := `UPDATE posts SET likes = $2, is_liked = $3, comments = $4,
		comments_list = $5, content = $6 WHERE id = $1`

	_, err = r.db.ExecContext(ctx, query,
		post.ID, post.Likes, post.IsLiked, post.Comments, comments, post.Content)

	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {

	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("error performing sql request: %v", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Post, error) {

	query := `SELECT ` + postColumns + ` FROM posts ORDER BY ts DESC, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		post, err := scanPost(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %v", err)
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}

func scanPost(scan func(dest ...any) error) (*models.Post, error) {
	var post models.Post
	var comments []byte

	err := scan(&post.ID, &post.VaultMediaID, &post.AuthorID, &post.Author,
		&post.AuthorImage, &post.Relationship, &post.Content, &post.Image,
		&post.Video, &post.Timestamp, &post.DisplayTime, &post.Likes,
		&post.IsLiked, &post.Comments, &comments)
	if err != nil {
		return nil, err
	}

	if len(comments) > 0 {
		if err := json.Unmarshal(comments, &post.CommentsList); err != nil {
			return nil, fmt.Errorf("decoding comments: %w", err)
		}
	}
	if post.CommentsList == nil {
		post.CommentsList = []models.Comment{}
	}
	return &post, nil
}
