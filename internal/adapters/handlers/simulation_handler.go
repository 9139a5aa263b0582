package handlers

import (
	"net/http"

	"github.com/iwtcode/stepperTorque/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// Simulate строит кривые момента для переданного набора моторов.
// @Summary Рассчитать кривые момента
// @Description Строит кривые доступного момента для моторов и линию требуемого момента без создания сессии.
// @Tags Simulation
// @Accept json
// @Produce json
// @Param input body models.SimulateRequest true "Моторы, параметры и развертка скорости"
// @Success 200 {object} models.CurveResponse "Построенные кривые"
// @Failure 400 {object} models.ErrorResponse "Неверные параметры"
// @Router /simulate [post]
func (h *Handler) Simulate(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid request payload")
		return
	}

	curves, err := h.usecase.Simulate(req)
	if err != nil {
		h.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "curves": curves})
}
