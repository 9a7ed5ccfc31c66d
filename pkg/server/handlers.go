package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ja7ad/distill/pkg/config"
	"github.com/ja7ad/distill/pkg/distill"
	"github.com/ja7ad/distill/pkg/report"
)

// Response is the JSON envelope of every API reply.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func success(c *gin.Context, status int, data any) {
	c.JSON(status, Response{Code: 0, Message: "success", Data: data})
}

func fail(c *gin.Context, status int, err error) {
	c.JSON(status, Response{Code: status, Message: err.Error()})
}

var designErrors = []error{
	distill.ErrInvalidComposition,
	distill.ErrSpecification,
	distill.ErrDegenerateSplit,
	distill.ErrRootNotFound,
	distill.ErrInvalidReflux,
	distill.ErrEfficiencyOutOfRange,
	distill.ErrFeedStageOutOfBounds,
	distill.ErrInvalidSizingInput,
	distill.ErrLengthMismatch,
	distill.ErrUnknownCorrelation,
}

// statusOf maps pipeline errors to 422 and anything else to 500.
func statusOf(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	for _, target := range designErrors {
		if errors.Is(err, target) {
			return http.StatusUnprocessableEntity
		}
	}
	return http.StatusInternalServerError
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) components(c *gin.Context) {
	success(c, http.StatusOK, s.comps)
}

func (s *Server) packings(c *gin.Context) {
	success(c, http.StatusOK, distill.Packings)
}

type designSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Nmin     float64 `json:"nmin"`
	Nteo     float64 `json:"nteo"`
	Trays    int     `json:"trays"`
	Feed     int     `json:"feed_stage"`
	Diameter float64 `json:"diameter_m"`
}

func summarize(e *Entry) designSummary {
	return designSummary{
		ID:       e.ID,
		Name:     e.Name,
		Nmin:     e.Project.FUG.Nmin,
		Nteo:     e.Project.FUG.Nteo,
		Trays:    e.Project.Efficiency.Trays,
		Feed:     e.Project.FeedStage.FeedStage,
		Diameter: e.Project.Trays.Diameter.Meters(),
	}
}

func (s *Server) listDesigns(c *gin.Context) {
	entries := s.store.List()
	out := make([]designSummary, len(entries))
	for i, e := range entries {
		out[i] = summarize(e)
	}
	success(c, http.StatusOK, out)
}

// createDesign reads a case over the defaults, so a body may carry only the
// fields it changes. The server's own component table is always used.
func (s *Server) createDesign(c *gin.Context) {
	cs := config.DefaultCase()
	if err := c.ShouldBindJSON(&cs); err != nil {
		fail(c, http.StatusBadRequest, fmt.Errorf("invalid case: %w", err))
		return
	}

	in, err := cs.Input()
	if err != nil {
		fail(c, statusOf(err), err)
		return
	}
	p, err := distill.Design(in, s.comps)
	if err != nil {
		s.log.Warn("design failed", "name", cs.Name, "err", err)
		fail(c, statusOf(err), err)
		return
	}

	e := s.store.Put(cs.Name, p)
	s.log.Info("design", "id", e.ID, "name", e.Name, "nmin", p.FUG.Nmin, "trays", p.Efficiency.Trays)
	success(c, http.StatusCreated, e)
}

func (s *Server) entry(c *gin.Context) (*Entry, bool) {
	e, err := s.store.Get(c.Param("id"))
	if err != nil {
		fail(c, statusOf(err), err)
		return nil, false
	}
	return e, true
}

func (s *Server) getDesign(c *gin.Context) {
	if e, ok := s.entry(c); ok {
		success(c, http.StatusOK, e)
	}
}

// getSweep returns the stored sweep, or a new one for ?factors=1.1,1.5,...
func (s *Server) getSweep(c *gin.Context) {
	e, ok := s.entry(c)
	if !ok {
		return
	}
	raw := c.Query("factors")
	if raw == "" {
		success(c, http.StatusOK, e.Project.Sweep)
		return
	}

	factors, err := parseFactors(raw)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	rows, err := distill.Sweep(e.Project, factors)
	if err != nil {
		fail(c, statusOf(err), err)
		return
	}
	success(c, http.StatusOK, rows)
}

func parseFactors(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid factor %q", p)
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *Server) export(c *gin.Context) {
	e, ok := s.entry(c)
	if !ok {
		return
	}
	format, err := report.ParseFormat(c.DefaultQuery("format", "json"))
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, format, e.Project, report.Meta{ID: e.ID, Title: e.Name}); err != nil {
		s.log.Error("export", "id", e.ID, "format", format, "err", err)
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s%s"`, e.ID, format.Extension()))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
