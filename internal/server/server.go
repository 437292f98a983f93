// Package server exposes the timeline build over HTTP: callers POST a
// project document and receive the resolved render manifest.
package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"reelcraft/internal/config"
	"reelcraft/internal/family"
	"reelcraft/internal/manifest"
	"reelcraft/internal/project"
	"reelcraft/internal/timeline"
)

// Server handles timeline-build requests. It holds no mutable state: every
// request is normalized and timed independently.
type Server struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// BuildResponse is the API response for a successful build.
type BuildResponse struct {
	JobID    string             `json:"job_id"`
	Manifest *manifest.Manifest `json:"manifest"`
}

// Router constructs a Gin engine with registered routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", s.handleHealth)
	r.POST("/api/v1/timeline", s.handleBuildTimeline)
	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleBuildTimeline builds a timeline from the posted project document.
// POST /api/v1/timeline?family=default&fps=30
// Malformed scene data never fails the request; only an unreadable body
// does.
func (s *Server) handleBuildTimeline(c *gin.Context) {
	proj, err := project.Decode(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	familyName := c.DefaultQuery("family", s.cfg.Family)
	if familyName == "" {
		familyName = family.DefaultFamily
	}
	registry, err := family.ForName(familyName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	fps := s.cfg.FPS
	if q := c.Query("fps"); q != "" {
		if n, err := strconv.Atoi(q); err == nil && n > 0 {
			fps = n
		}
	}
	if fps <= 0 {
		fps = int(proj.Theme.FPS)
	}

	builder := timeline.NewBuilder(fps, registry)
	timed := builder.Build(proj.Scenes)

	props := make([]project.Props, len(proj.Scenes))
	for i, scene := range proj.Scenes {
		props[i] = project.AssembleProps(scene)
	}

	m := manifest.Build(proj, familyName, builder.FPS, builder.TotalFrames(timed), timed, props)

	c.JSON(http.StatusOK, BuildResponse{
		JobID:    uuid.NewString(),
		Manifest: m,
	})
}
