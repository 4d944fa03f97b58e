package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"blog-taxonomy/config"
	"blog-taxonomy/dto"
	"blog-taxonomy/logger"
	"blog-taxonomy/services"
	"blog-taxonomy/trace"
)

// RelatedPostsHandler godoc
// @Summary      Related posts
// @Description  Published posts sharing at least one tag with the seed post
// @Tags         related
// @Param        slug                path   string    true   "Seed post slug or id"
// @Param        order_by            query  string    false  "Ordering, see /related/order-options"
// @Param        limit               query  string    false  "Maximum results (^[0-9]+$, 0 = no limit)"
// @Param        exclude_categories  query  []string  false  "Category ids to exclude"
// @Param        include_categories  query  []string  false  "Category ids to restrict to"
// @Param        exclude_posts       query  []string  false  "Post ids to exclude"
// @Param        exclude_tags        query  []string  false  "Tag ids to exclude"
// @Param        published_after     query  string    false  "RFC3339 lower bound"
// @Param        published_before    query  string    false  "RFC3339 upper bound"
// @Param        min_shared_tags     query  int       false  "Minimum number of shared tags"
// @Param        post_page           query  string    false  "Page used to build post URLs"
// @Param        category_page       query  string    false  "Page used to build category URLs"
// @Produce      json
// @Success      200  {object}  dto.RelatedPostsDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /posts/{slug}/related [get]
func RelatedPostsHandler(svc *services.RelatedPostsService, urls *services.URLBuilder, defaults config.RelatedPostsProperties) gin.HandlerFunc {
	return func(c *gin.Context) {
		props, err := propertiesFromQuery(c, defaults)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		from, to, err := publishedBounds(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		seed := c.Param("slug")
		filters := services.FiltersFromProperties(props)
		filters = append(filters, services.PublishedBetween(from, to))

		posts, err := svc.Resolve(c.Request.Context(), seed, services.RelatedOptions{
			OrderBy:       props.OrderBy,
			Limit:         props.LimitValue(),
			MinSharedTags: props.MinSharedTags,
			Filters:       filters,
		})
		if err != nil {
			logger.ErrorWithFields("resolve related posts failed", logger.Fields{
				"request_id": trace.RequestIDFromContext(c.Request.Context()),
				"seed":       seed,
				"error":      err.Error(),
			})
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "internal error"})
			return
		}

		urls.AssignPostURLs(posts, props.PostPage, props.CategoryPage)
		c.JSON(http.StatusOK, dto.RelatedPostsDTO{
			Seed:    seed,
			OrderBy: props.OrderBy,
			Limit:   props.LimitValue(),
			Data:    dto.NewPostDTOs(posts),
		})
	}
}

// OrderOptionsHandler godoc
// @Summary      Ordering options
// @Description  Allowed related posts orderings, sorted by label
// @Tags         related
// @Produce      json
// @Success      200  {array}  dto.OrderOptionDTO
// @Router       /related/order-options [get]
func OrderOptionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		opts := services.OrderOptions()
		out := make([]dto.OrderOptionDTO, 0, len(opts))
		for _, o := range opts {
			out = append(out, dto.OrderOptionDTO{Value: o.Value, Label: o.Label})
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetPostHandler godoc
// @Summary      Get post by slug
// @Description  Get a single published post by slug or id
// @Tags         posts
// @Param        slug  path  string  true  "Post slug or id"
// @Produce      json
// @Success      200  {object}  dto.PostDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /posts/{slug} [get]
func GetPostHandler(svc *services.PostService, defaults config.RelatedPostsProperties) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		post, err := svc.GetBySlug(c.Request.Context(), slug, defaults.PostPage, defaults.CategoryPage)
		if services.IsNotFound(err) {
			c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "not found"})
			return
		}
		if err != nil {
			logger.ErrorWithFields("get post failed", logger.Fields{
				"request_id": trace.RequestIDFromContext(c.Request.Context()),
				"slug":       slug,
				"error":      err.Error(),
			})
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "internal error"})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// propertiesFromQuery overlays the request query on the configured defaults.
// Absent parameters keep the configured value.
func propertiesFromQuery(c *gin.Context, defaults config.RelatedPostsProperties) (config.RelatedPostsProperties, error) {
	p := defaults
	if v, ok := c.GetQuery("order_by"); ok {
		p.OrderBy = strings.TrimSpace(v)
	}
	if v, ok := c.GetQuery("limit"); ok {
		p.Limit = v
	}
	if v, ok := c.GetQuery("post_page"); ok {
		p.PostPage = v
	}
	if v, ok := c.GetQuery("category_page"); ok {
		p.CategoryPage = v
	}
	if v, ok := c.GetQuery("min_shared_tags"); ok {
		n, err := cast.ToIntE(strings.TrimSpace(v))
		if err != nil || n < 0 {
			return p, errInvalidParam("min_shared_tags")
		}
		p.MinSharedTags = n
	}
	if ids, ok := queryList(c, "exclude_categories"); ok {
		p.ExcludeCategories = ids
	}
	if ids, ok := queryList(c, "include_categories"); ok {
		p.IncludeCategories = ids
	}
	if ids, ok := queryList(c, "exclude_posts"); ok {
		p.ExcludePosts = ids
	}
	if ids, ok := queryList(c, "exclude_tags"); ok {
		p.ExcludeTags = ids
	}
	return p, nil
}

// queryList accepts both repeated (?a=1&a=2) and comma separated (?a=1,2) values.
func queryList(c *gin.Context, key string) ([]string, bool) {
	values, ok := c.GetQueryArray(key)
	if !ok {
		return nil, false
	}
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out, true
}

func publishedBounds(c *gin.Context) (*time.Time, *time.Time, error) {
	from, err := queryTime(c, "published_after")
	if err != nil {
		return nil, nil, err
	}
	to, err := queryTime(c, "published_before")
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func queryTime(c *gin.Context, key string) (*time.Time, error) {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, errInvalidParam(key)
	}
	return &t, nil
}

type errInvalidParam string

func (e errInvalidParam) Error() string { return "invalid " + string(e) }
