package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"soko/internal/services"
	"soko/pkg/query"
	"soko/pkg/utils"
)

const defaultSampleSize = 10

// BindFunc builds the entity to insert from the request.
type BindFunc[T any] func(c *gin.Context) (*T, error)

// BindUpdatesFunc extracts the column changes for a partial update.
type BindUpdatesFunc func(c *gin.Context) (map[string]any, error)

// ScopeFunc narrows a listing to the caller's slice of the data, for the
// nested routes.
type ScopeFunc func(c *gin.Context) map[string]any

// ResourceController produces the standard CRUD handlers for one entity, the
// per-entity controllers compose these with their own routes.
type ResourceController[T any] struct {
	service services.ResourceServiceInterface[T]
	spec    query.Spec
}

func NewResourceController[T any](service services.ResourceServiceInterface[T], spec query.Spec) *ResourceController[T] {
	return &ResourceController[T]{service: service, spec: spec}
}

func (r *ResourceController[T]) GetAll(scope ScopeFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts := query.Parse(c.Request.URL.Query(), r.spec)

		var narrowed map[string]any
		if scope != nil {
			narrowed = scope(c)
		}

		items, err := r.service.List(c.Request.Context(), opts, narrowed)
		if err != nil {
			fail(c, err)
			return
		}
		utils.RespondList(c, len(items), items)
	}
}

func (r *ResourceController[T]) GetOne() gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := r.service.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		utils.RespondSuccess(c, item, "")
	}
}

func (r *ResourceController[T]) CreateOne(bind BindFunc[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		entity, err := bind(c)
		if err != nil {
			fail(c, err)
			return
		}

		created, err := r.service.Create(c.Request.Context(), entity)
		if err != nil {
			fail(c, err)
			return
		}
		utils.RespondCreated(c, created, "")
	}
}

func (r *ResourceController[T]) UpdateOne(bind BindUpdatesFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		changes, err := bind(c)
		if err != nil {
			fail(c, err)
			return
		}

		if len(changes) == 0 {
			item, err := r.service.Get(c.Request.Context(), c.Param("id"))
			if err != nil {
				fail(c, err)
				return
			}
			utils.RespondSuccess(c, item, "")
			return
		}

		updated, err := r.service.Update(c.Request.Context(), c.Param("id"), changes)
		if err != nil {
			fail(c, err)
			return
		}
		utils.RespondSuccess(c, updated, "")
	}
}

func (r *ResourceController[T]) DeleteOne() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := r.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func (r *ResourceController[T]) GetCount(scope ScopeFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts := query.Parse(c.Request.URL.Query(), r.spec)

		var narrowed map[string]any
		if scope != nil {
			narrowed = scope(c)
		}

		count, err := r.service.Count(c.Request.Context(), opts, narrowed)
		if err != nil {
			fail(c, err)
			return
		}
		utils.RespondSuccess(c, gin.H{"count": count}, "")
	}
}

// GetDistinct returns a random sample, used by the landing pages.
func (r *ResourceController[T]) GetDistinct() gin.HandlerFunc {
	return func(c *gin.Context) {
		n := defaultSampleSize
		if raw := c.Query("limit"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
				n = parsed
			}
		}

		items, err := r.service.Sample(c.Request.Context(), n)
		if err != nil {
			fail(c, err)
			return
		}
		utils.RespondList(c, len(items), items)
	}
}

func (r *ResourceController[T]) Search() gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Query("q")
		if q == "" {
			fail(c, utils.NewAppError(http.StatusBadRequest, "Please provide a search term"))
			return
		}

		refs, err := r.service.Search(c.Request.Context(), q, 20)
		if err != nil {
			fail(c, err)
			return
		}
		utils.RespondList(c, len(refs), refs)
	}
}

// fail hands the error to the error-handling middleware.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
