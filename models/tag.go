package models

// Tag is a free-form label attached to posts
// Collection: tags
type Tag struct {
	ID   string `bson:"_id" json:"id" yaml:"id"`
	Name string `bson:"name" json:"name" yaml:"name"`
	Slug string `bson:"slug" json:"slug" yaml:"slug"`
}
