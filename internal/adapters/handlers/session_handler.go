package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/iwtcode/stepperTorque/internal/domain/models"
	sim "github.com/iwtcode/stepperTorque/models"

	"github.com/gin-gonic/gin"
)

// CreateSession создает новую сессию симуляции.
// @Summary Создать сессию
// @Description Создает сессию со своим набором моторов и параметрами. Изменения сессии пересчитываются в фоне.
// @Tags Session
// @Accept json
// @Produce json
// @Param input body models.CreateSessionRequest false "Начальные параметры и моторы"
// @Success 201 {object} models.SessionResponse "Созданная сессия"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Router /sessions [post]
func (h *Handler) CreateSession(c *gin.Context) {
	var req models.CreateSessionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BadRequest(c, err, "Invalid request payload")
			return
		}
	}

	info, err := h.usecase.CreateSession(req)
	if err != nil {
		h.Fail(c, err)
		return
	}

	h.logger.Info("Successfully created session", "sessionID", info.SessionID)
	c.JSON(http.StatusCreated, gin.H{"status": "ok", "session_info": info})
}

// GetSessions возвращает список всех сессий.
// @Summary Получить список сессий
// @Tags Session
// @Produce json
// @Success 200 {object} models.GetSessionsResponse "Список сессий"
// @Router /sessions [get]
func (h *Handler) GetSessions(c *gin.Context) {
	sessions := h.usecase.GetAllSessions()
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"pool_size": len(sessions),
		"sessions":  sessions,
	})
}

// GetSession возвращает состояние сессии.
// @Summary Получить сессию
// @Tags Session
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} models.SessionResponse "Сессия"
// @Failure 404 {object} models.ErrorResponse "Сессия не найдена"
// @Router /sessions/{id} [get]
func (h *Handler) GetSession(c *gin.Context) {
	info, err := h.usecase.GetSession(c.Param("id"))
	if err != nil {
		h.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "session_info": info})
}

// DeleteSession удаляет сессию и останавливает ее пересчет.
// @Summary Удалить сессию
// @Tags Session
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} models.MessageResponse "Сообщение об успешном удалении"
// @Failure 404 {object} models.ErrorResponse "Сессия не найдена"
// @Router /sessions/{id} [delete]
func (h *Handler) DeleteSession(c *gin.Context) {
	sessionID := c.Param("id")
	if err := h.usecase.DeleteSession(sessionID); err != nil {
		h.Fail(c, err)
		return
	}

	h.logger.Info("Successfully deleted session", "sessionID", sessionID)
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": fmt.Sprintf("Session %s deleted", sessionID),
	})
}

// AddMotor добавляет мотор в сессию.
// @Summary Добавить мотор
// @Description Добавляет мотор в конец набора. Повторное добавление того же brandModel отклоняется.
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "ID сессии"
// @Param input body sim.MotorSpec true "Паспортные данные мотора"
// @Success 200 {object} models.SessionResponse "Обновленная сессия"
// @Failure 400 {object} models.ErrorResponse "Некорректные данные мотора"
// @Failure 404 {object} models.ErrorResponse "Сессия не найдена"
// @Failure 409 {object} models.ErrorResponse "Мотор уже выбран"
// @Router /sessions/{id}/motors [post]
func (h *Handler) AddMotor(c *gin.Context) {
	var motor sim.MotorSpec
	if err := c.ShouldBindJSON(&motor); err != nil {
		h.BadRequest(c, err, "Invalid motor payload")
		return
	}

	info, err := h.usecase.AddMotor(c.Param("id"), motor)
	if err != nil {
		h.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "session_info": info})
}

// RemoveMotor удаляет мотор из сессии по индексу.
// @Summary Удалить мотор
// @Tags Session
// @Produce json
// @Param id path string true "ID сессии"
// @Param index path int true "Индекс мотора"
// @Success 200 {object} models.SessionResponse "Обновленная сессия"
// @Failure 400 {object} models.ErrorResponse "Некорректный индекс"
// @Failure 404 {object} models.ErrorResponse "Сессия или мотор не найдены"
// @Router /sessions/{id}/motors/{index} [delete]
func (h *Handler) RemoveMotor(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		h.BadRequest(c, err, "Motor index must be an integer")
		return
	}

	info, err := h.usecase.RemoveMotor(c.Param("id"), index)
	if err != nil {
		h.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "session_info": info})
}

// SetParameters заменяет параметры симуляции сессии.
// @Summary Изменить параметры
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "ID сессии"
// @Param input body sim.SimulationParams true "Параметры симуляции"
// @Success 200 {object} models.SessionResponse "Обновленная сессия"
// @Failure 400 {object} models.ErrorResponse "Неверные параметры"
// @Failure 404 {object} models.ErrorResponse "Сессия не найдена"
// @Router /sessions/{id}/params [put]
func (h *Handler) SetParameters(c *gin.Context) {
	var params sim.SimulationParams
	if err := c.ShouldBindJSON(&params); err != nil {
		h.BadRequest(c, err, "Invalid parameters payload")
		return
	}

	info, err := h.usecase.SetParameters(c.Param("id"), params)
	if err != nil {
		h.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "session_info": info})
}

// GetCurve строит кривые момента для текущего состояния сессии.
// @Summary Получить кривые сессии
// @Tags Session
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} models.CurveResponse "Построенные кривые"
// @Failure 404 {object} models.ErrorResponse "Сессия не найдена"
// @Router /sessions/{id}/curve [get]
func (h *Handler) GetCurve(c *gin.Context) {
	curves, err := h.usecase.SessionCurve(c.Param("id"))
	if err != nil {
		h.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "curves": curves})
}
