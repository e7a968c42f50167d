package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"demandsim/internal/strategy"
)

// StrategiesHandler describes the fixed strategy set.
type StrategiesHandler struct{}

func NewStrategiesHandler() *StrategiesHandler { return &StrategiesHandler{} }

type strategyInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	UsesPrices  bool   `json:"uses_prices"`
}

var strategyDescriptions = map[strategy.Variant]strategyInfo{
	strategy.Uncontrolled: {
		Name:        strategy.Uncontrolled.String(),
		Description: "Starts every usage event as soon as its window opens.",
	},
	strategy.SpreadOut: {
		Name:        strategy.SpreadOut.String(),
		Description: "Spreads each event's energy evenly across its flexibility window.",
	},
	strategy.Smart: {
		Name:        strategy.Smart.String(),
		Description: "Places each event where the broadcast price ratio is cheapest.",
		UsesPrices:  true,
	},
}

// List handles GET /api/v1/strategies.
func (h *StrategiesHandler) List(c *gin.Context) {
	out := make([]strategyInfo, 0, len(strategy.Variants()))
	for _, v := range strategy.Variants() {
		out = append(out, strategyDescriptions[v])
	}
	c.JSON(http.StatusOK, gin.H{"strategies": out})
}
