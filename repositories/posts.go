package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"blog-taxonomy/models"
	"blog-taxonomy/query"
)

// PostRepository reads posts from MongoDB. Tag and category associations are
// embedded in each post document as tag_ids / category_ids arrays.
type PostRepository struct {
	col        *mongo.Collection
	tags       *mongo.Collection
	categories *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{
		col:        db.Collection("posts"),
		tags:       db.Collection("tags"),
		categories: db.Collection("categories"),
	}
}

// FindPost returns a post by slug, falling back to _id. A slug match wins
// over an _id match.
func (r *PostRepository) FindPost(ctx context.Context, key string) (*models.Post, error) {
	p, err := r.findOne(ctx, bson.M{"slug": key})
	if errors.Is(err, ErrNotFound) {
		return r.findOne(ctx, bson.M{"_id": key})
	}
	return p, err
}

// FindPostByID returns a post by its _id
func (r *PostRepository) FindPostByID(ctx context.Context, id string) (*models.Post, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *PostRepository) findOne(ctx context.Context, filter bson.M) (*models.Post, error) {
	var p models.Post
	if err := r.col.FindOne(ctx, filter).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	posts := []models.Post{p}
	if err := r.attach(ctx, posts); err != nil {
		return nil, err
	}
	return &posts[0], nil
}

// FindPosts runs the candidate query as an aggregation pipeline and attaches
// tags and categories to every returned post.
func (r *PostRepository) FindPosts(ctx context.Context, q *query.Query) ([]models.Post, error) {
	pipeline, err := BuildPipeline(q)
	if err != nil {
		return nil, err
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate posts: %w", err)
	}
	defer cur.Close(ctx)

	var results []models.Post
	for cur.Next(ctx) {
		var p models.Post
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	if err := r.attach(ctx, results); err != nil {
		return nil, err
	}
	return results, nil
}

// Ping runs the ping command against the posts database.
func (r *PostRepository) Ping(ctx context.Context) error {
	return r.col.Database().RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

func (r *PostRepository) attach(ctx context.Context, posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	var tagIDs, categoryIDs []string
	for _, p := range posts {
		tagIDs = append(tagIDs, p.TagIDs...)
		categoryIDs = append(categoryIDs, p.CategoryIDs...)
	}

	tags := map[string]models.Tag{}
	if len(tagIDs) > 0 {
		var found []models.Tag
		if err := r.findAll(ctx, r.tags, tagIDs, &found); err != nil {
			return fmt.Errorf("load tags: %w", err)
		}
		for _, t := range found {
			tags[t.ID] = t
		}
	}

	categories := map[string]models.Category{}
	if len(categoryIDs) > 0 {
		var found []models.Category
		if err := r.findAll(ctx, r.categories, categoryIDs, &found); err != nil {
			return fmt.Errorf("load categories: %w", err)
		}
		for _, c := range found {
			categories[c.ID] = c
		}
	}

	for i := range posts {
		posts[i].Tags = make([]models.Tag, 0, len(posts[i].TagIDs))
		for _, id := range posts[i].TagIDs {
			if t, ok := tags[id]; ok {
				posts[i].Tags = append(posts[i].Tags, t)
			}
		}
		posts[i].Categories = make([]models.Category, 0, len(posts[i].CategoryIDs))
		for _, id := range posts[i].CategoryIDs {
			if c, ok := categories[id]; ok {
				posts[i].Categories = append(posts[i].Categories, c)
			}
		}
	}
	return nil
}

func (r *PostRepository) findAll(ctx context.Context, col *mongo.Collection, ids []string, out any) error {
	cur, err := col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}
