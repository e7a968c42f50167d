package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"demandsim/internal/api/models"
	"demandsim/internal/config"
	"demandsim/internal/data"
	"demandsim/internal/sim"
)

// SimulateHandler runs simulations on request.
type SimulateHandler struct{}

func NewSimulateHandler() *SimulateHandler { return &SimulateHandler{} }

// Simulate handles POST /api/v1/simulate.
func (h *SimulateHandler) Simulate(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	cfg := configFromRequest(req)
	if err := cfg.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_CONFIG", Message: err.Error()},
		})
		return
	}

	params, err := cfg.Params()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_CONFIG", Message: err.Error()},
		})
		return
	}
	params.Workers = req.Options.Workers
	params.Logf = log.Printf

	archive, err := cfg.Archive()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "DATA_ERROR", Message: err.Error()},
		})
		return
	}

	engine := sim.New(params, archive)
	res, err := engine.Run(c.Request.Context())
	if err != nil {
		status := http.StatusInternalServerError
		code := "SIMULATION_FAILED"
		var gap *data.DataGapError
		if errors.As(err, &gap) {
			status = http.StatusUnprocessableEntity
			code = "DATA_GAP"
		}
		c.JSON(status, models.ErrorResponse{
			Error: models.ErrorDetail{Code: code, Message: err.Error()},
		})
		return
	}

	c.JSON(http.StatusOK, models.NewSimulateResponse(res, params.Timeline.StepHours(), req.Options.IncludeRows))
}

func configFromRequest(req models.SimulateRequest) *config.Config {
	cfg := &config.Config{}
	cfg.Simulation.StartDate = req.StartDate
	cfg.Simulation.LengthDays = req.LengthDays
	cfg.Simulation.HouseholdCount = req.HouseholdCount
	cfg.Simulation.StepMinutes = req.StepMinutes
	cfg.Simulation.Seed = req.Seed
	cfg.Target.Kind = req.Target.Kind
	cfg.Target.FlatKW = req.Target.FlatKW
	cfg.Prices.Lower = req.Prices.Lower
	cfg.Prices.Higher = req.Prices.Higher
	cfg.ApplyDefaults()
	return cfg
}
