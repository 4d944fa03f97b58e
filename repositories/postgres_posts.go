package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"blog-taxonomy/models"
	"blog-taxonomy/query"
)

// PgxQuerier is the subset of *pgxpool.Pool used by PostgresPostRepository.
type PgxQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// PostgresPostRepository reads posts from Postgres, joining the posts_tags
// and posts_categories association tables.
type PostgresPostRepository struct {
	pool PgxQuerier
}

func NewPostgresPostRepository(pool PgxQuerier) *PostgresPostRepository {
	return &PostgresPostRepository{pool: pool}
}

// FindPost returns the post whose slug or id equals key. A slug match wins
// over an id match.
func (r *PostgresPostRepository) FindPost(ctx context.Context, key string) (*models.Post, error) {
	return r.findOne(ctx, findPostSQL, key)
}

const findPostSQL = `SELECT ` + postColumns + ` FROM posts p WHERE p.slug = $1 OR p.id = $1 ORDER BY (p.slug = $1) DESC LIMIT 1`

// FindPostByID returns the post with the given id.
func (r *PostgresPostRepository) FindPostByID(ctx context.Context, id string) (*models.Post, error) {
	return r.findOne(ctx, `SELECT `+postColumns+` FROM posts p WHERE p.id = $1`, id)
}

func (r *PostgresPostRepository) findOne(ctx context.Context, sql string, arg string) (*models.Post, error) {
	var p models.Post
	err := r.pool.QueryRow(ctx, sql, arg).Scan(&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.Published, &p.PublishedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query post: %w", err)
	}

	posts := []models.Post{p}
	if err := r.attach(ctx, posts); err != nil {
		return nil, err
	}
	return &posts[0], nil
}

// FindPosts runs the compiled candidate query, then loads tag and category
// associations for the returned rows in two follow-up queries.
func (r *PostgresPostRepository) FindPosts(ctx context.Context, q *query.Query) ([]models.Post, error) {
	sql, args, err := BuildSelect(q)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.Published, &p.PublishedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}

	if err := r.attach(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Ping verifies the pool can reach the server.
func (r *PostgresPostRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *PostgresPostRepository) attach(ctx context.Context, posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}
	ids := make([]string, len(posts))
	index := make(map[string]int, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
		index[p.ID] = i
		posts[i].TagIDs = []string{}
		posts[i].CategoryIDs = []string{}
		posts[i].Tags = []models.Tag{}
		posts[i].Categories = []models.Category{}
	}

	tagRows, err := r.pool.Query(ctx, `
		SELECT pt.post_id, t.id, t.name, t.slug
		FROM posts_tags pt
		INNER JOIN tags t ON t.id = pt.tag_id
		WHERE pt.post_id = ANY($1)
		ORDER BY t.name`, ids)
	if err != nil {
		return fmt.Errorf("query post tags: %w", err)
	}
	defer tagRows.Close()
	for tagRows.Next() {
		var postID string
		var t models.Tag
		if err := tagRows.Scan(&postID, &t.ID, &t.Name, &t.Slug); err != nil {
			return fmt.Errorf("scan post tag: %w", err)
		}
		if i, ok := index[postID]; ok {
			posts[i].TagIDs = append(posts[i].TagIDs, t.ID)
			posts[i].Tags = append(posts[i].Tags, t)
		}
	}
	if err := tagRows.Err(); err != nil {
		return fmt.Errorf("iterate post tags: %w", err)
	}

	catRows, err := r.pool.Query(ctx, `
		SELECT pc.post_id, c.id, c.name, c.slug
		FROM posts_categories pc
		INNER JOIN categories c ON c.id = pc.category_id
		WHERE pc.post_id = ANY($1)
		ORDER BY c.name`, ids)
	if err != nil {
		return fmt.Errorf("query post categories: %w", err)
	}
	defer catRows.Close()
	for catRows.Next() {
		var postID string
		var c models.Category
		if err := catRows.Scan(&postID, &c.ID, &c.Name, &c.Slug); err != nil {
			return fmt.Errorf("scan post category: %w", err)
		}
		if i, ok := index[postID]; ok {
			posts[i].CategoryIDs = append(posts[i].CategoryIDs, c.ID)
			posts[i].Categories = append(posts[i].Categories, c)
		}
	}
	if err := catRows.Err(); err != nil {
		return fmt.Errorf("iterate post categories: %w", err)
	}
	return nil
}
