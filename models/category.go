package models

// Category groups posts under a navigable section
// Collection: categories
type Category struct {
	ID   string `bson:"_id" json:"id" yaml:"id"`
	Name string `bson:"name" json:"name" yaml:"name"`
	Slug string `bson:"slug" json:"slug" yaml:"slug"`

	URL string `bson:"-" json:"url" yaml:"-"`
}
