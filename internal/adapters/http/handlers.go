package httpadapter

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/AliceKyte/sudokuDelDia/internal/domain"
	"github.com/AliceKyte/sudokuDelDia/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

// Register mounts the JSON API under /api/v1 plus a health probe.
func (h *Handler) Register(e *gin.Engine) {
	e.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := e.Group("/api").Group("/v1")
	v1.POST("/generate", h.Generate)
	v1.POST("/solve", h.Solve)
	v1.POST("/validate", h.Validate)
	v1.POST("/hint", h.Hint)
}

// bindGrid decodes a request body holding a grid and rejects cell values
// above 9. JSON binding accepts any uint8, so the range check has to happen
// here before the grid reaches the solvers. Returns false after writing the
// error response.
func bindGrid(c *gin.Context, req any, grid *domain.Grid) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON", "message": err.Error()})
		return false
	}
	for r := 0; r < 9; r++ {
		for col := 0; col < 9; col++ {
			if grid[r][col] > 9 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid grid", "message": "cell values must be 0..9"})
				return false
			}
		}
	}
	return true
}

// ---- Generate ----

type generateReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type generateResp struct {
	Grid       domain.Grid `json:"grid"`
	Solution   domain.Grid `json:"solution"`
	Seed       int64       `json:"seed"`
	Difficulty string      `json:"difficulty"`
	Filled     int         `json:"filled"`
	DurationMs int64       `json:"durationMs"`
	Nodes      int         `json:"nodes"`
}

func (h *Handler) Generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON", "message": err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	diff := domain.ParseDifficulty(req.Difficulty)
	p, st, err := h.UC.Generate(c.Request.Context(), seed, diff)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "generation failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, generateResp{
		Grid:       p.Grid,
		Solution:   p.Solution,
		Seed:       seed,
		Difficulty: diff.String(),
		Filled:     p.Grid.CountFilled(),
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Solve ----

type solveReq struct {
	Grid domain.Grid `json:"grid"`
}

type solveResp struct {
	Grid       domain.Grid `json:"grid"`
	Unique     bool        `json:"unique"`
	DurationMs int64       `json:"durationMs"`
	Nodes      int         `json:"nodes"`
}

func (h *Handler) Solve(c *gin.Context) {
	var req solveReq
	if !bindGrid(c, &req, &req.Grid) {
		return
	}
	out, st, err := h.UC.Solve(c.Request.Context(), &req.Grid)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no solution", "message": err.Error()})
		return
	}
	uniq, ust, err := h.UC.Unique(c.Request.Context(), &req.Grid)
	if err != nil {
		// the solution above stands; report the puzzle as not known unique
		log.Err(err).Msg("uniqueness check")
		uniq = false
	}
	c.JSON(http.StatusOK, solveResp{
		Grid:       *out,
		Unique:     uniq,
		DurationMs: (st.Duration + ust.Duration).Milliseconds(),
		Nodes:      st.Nodes + ust.Nodes,
	})
}

// ---- Validate ----

type validateReq struct {
	Grid domain.Grid `json:"grid"`
}

type validateResp struct {
	OK        bool               `json:"ok"`
	Complete  bool               `json:"complete"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
}

func (h *Handler) Validate(c *gin.Context) {
	var req validateReq
	if !bindGrid(c, &req, &req.Grid) {
		return
	}
	ok, conflicts, err := h.UC.Validate(c.Request.Context(), &req.Grid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "validation failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, validateResp{
		OK:        ok,
		Complete:  ok && req.Grid.CountFilled() == 81,
		Conflicts: conflicts,
	})
}

// ---- Hint ----

type hintReq struct {
	Grid domain.Grid `json:"grid"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
}

func (h *Handler) Hint(c *gin.Context) {
	var req hintReq
	if !bindGrid(c, &req, &req.Grid) {
		return
	}
	hint, found, err := h.UC.Hint(c.Request.Context(), &req.Grid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "hint failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, hintResp{Found: found, Hint: hint})
}
