package dto

// RelatedPostsDTO is the related posts response for one seed post.
// swagger:model RelatedPostsDTO
type RelatedPostsDTO struct {
	Seed    string    `json:"seed" example:"hello-go"`
	OrderBy string    `json:"order_by" example:"relevance desc"`
	Limit   int       `json:"limit" example:"3"`
	Data    []PostDTO `json:"data"`
}

// OrderOptionDTO is one entry of the ordering vocabulary.
type OrderOptionDTO struct {
	Value string `json:"value" example:"published_at desc"`
	Label string `json:"label" example:"Published (descending)"`
}
