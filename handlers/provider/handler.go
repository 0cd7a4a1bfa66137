package provider

import (
	"net/http"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	ma "github.com/webtor-io/movie-api-provider/services/movie_api"
)

type Handler struct {
	api *ma.Api
}

func RegisterHandler(r *gin.Engine, api *ma.Api) {
	h := &Handler{
		api: api,
	}

	gr := r.Group("/provider")
	gr.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET"},
	}))
	gr.GET("/manifest.json", h.manifest)
	gr.GET("/movies/:page", h.movies)
	gr.GET("/ids/:page", h.ids)
	gr.GET("/movie/:id", h.movie)
	gr.GET("/random", h.random)
	gr.GET("/stream/:id", h.stream)
}

func (s *Handler) manifest(c *gin.Context) {
	c.JSON(http.StatusOK, s.api.Manifest())
}

func (s *Handler) filters(c *gin.Context) (ma.Filters, error) {
	f := ma.Filters{
		Keywords: c.Query("keywords"),
		Genre:    c.Query("genre"),
		Sorter:   c.Query("sorter"),
		Lang:     c.Query("lang"),
		Quality:  c.Query("quality"),
	}
	if p := c.Param("page"); p != "" {
		page, err := strconv.Atoi(p)
		if err != nil {
			return f, errors.Wrapf(err, "invalid page %q", p)
		}
		f.Page = page
	}
	if o := c.Query("order"); o != "" {
		order, err := strconv.Atoi(o)
		if err != nil {
			return f, errors.Wrapf(err, "invalid order %q", o)
		}
		f.Order = order
	}
	return f, nil
}

func (s *Handler) search(c *gin.Context) (*ma.FetchResult, bool) {
	f, err := s.filters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	res, err := s.api.Search(c.Request.Context(), f)
	if err != nil {
		s.fail(c, err, "failed to search movies")
		return nil, false
	}
	return res, true
}

func (s *Handler) movies(c *gin.Context) {
	res, ok := s.search(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Handler) ids(c *gin.Context) {
	res, ok := s.search(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.api.ExtractIDs(res))
}

func (s *Handler) movie(c *gin.Context) {
	it, err := s.api.Detail(c.Request.Context(), c.Param("id"), nil)
	if err != nil {
		s.fail(c, err, "failed to get movie")
		return
	}
	c.JSON(http.StatusOK, it)
}

func (s *Handler) random(c *gin.Context) {
	it, err := s.api.Random(c.Request.Context())
	if err != nil {
		s.fail(c, err, "failed to get random movie")
		return
	}
	c.JSON(http.StatusOK, it)
}

func (s *Handler) stream(c *gin.Context) {
	f, err := s.filters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	it, err := s.api.Detail(c.Request.Context(), c.Param("id"), nil)
	if err != nil {
		s.fail(c, err, "failed to get movie")
		return
	}
	t, err := s.api.ResolveStream(f, it)
	if err != nil {
		s.fail(c, err, "failed to resolve stream")
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Handler) fail(c *gin.Context, err error, msg string) {
	var le *ma.LookupError
	if errors.As(err, &le) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	log.WithError(err).WithField("path", c.Request.URL.Path).Error(msg)
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}
