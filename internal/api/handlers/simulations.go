package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gocable/internal/equilibrium"
	"github.com/alexiusacademia/gocable/internal/models"
	"github.com/alexiusacademia/gocable/internal/physics"
	"github.com/alexiusacademia/gocable/internal/store"
)

// CreateSimulation stores a solved record as submitted.
// Inputs go through the solver's range checks; tensions are not recomputed.
func CreateSimulation(st store.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SimulationInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid simulation body", "error": err.Error()})
			return
		}

		sim := req.ToSimulation()
		if err := validateRecord(sim); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid simulation values", "error": err.Error()})
			return
		}

		if err := st.Create(c.Request.Context(), &sim); err != nil {
			logger.Error("save simulation", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "error saving simulation"})
			return
		}

		logger.Info("simulation saved",
			zap.String("id", sim.ID),
			zap.Int("weight", sim.Weight),
			zap.Int("theta1", sim.Theta1),
			zap.Int("theta2", sim.Theta2),
		)
		c.JSON(http.StatusCreated, sim)
	}
}

// ListSimulations returns stored records, newest first
func ListSimulations(st store.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(store.DefaultListLimit)))
		if err != nil || limit < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "limit must be a positive integer"})
			return
		}

		sims, err := st.List(c.Request.Context(), limit)
		if err != nil {
			logger.Error("list simulations", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "error fetching simulations"})
			return
		}
		if sims == nil {
			sims = []models.Simulation{}
		}
		c.JSON(http.StatusOK, sims)
	}
}

// GetSimulation returns one record by id
func GetSimulation(st store.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if !store.ValidID(id) {
			c.JSON(http.StatusNotFound, gin.H{"message": "simulation not found"})
			return
		}

		sim, err := st.Get(c.Request.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "simulation not found"})
			return
		}
		if err != nil {
			logger.Error("get simulation", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "error fetching simulation"})
			return
		}
		c.JSON(http.StatusOK, sim)
	}
}

func validateRecord(sim models.Simulation) error {
	in := equilibrium.Input{
		Weight: float64(sim.Weight),
		Theta1: float64(sim.Theta1),
		Theta2: float64(sim.Theta2),
	}
	if err := in.Validate(); err != nil {
		return err
	}

	for field, t := range map[string]float64{"tension1": sim.Tension1, "tension2": sim.Tension2} {
		if !physics.IsFinite(t) || t < 0 {
			return &equilibrium.DomainError{Field: field, Value: t, Reason: "must be a non-negative finite number"}
		}
	}
	return nil
}
