package calculator

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"formCalc/internal/ports"
)

// Controller — маршруты калькулятора: evaluate.
type Controller struct {
	uc  ports.ICalculatorUseCase
	log *slog.Logger
}

// New создаёт контроллер калькулятора.
func New(uc ports.ICalculatorUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.POST("/evaluate", c.evaluate)
}

// @Summary Выполнить вычисление
// @Description Принимает два текстовых операнда и операцию (+, -, *, /), возвращает результат как текст. Диагностики (division by zero, invalid operator) приходят в том же поле result.
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body EvaluateRequest true "Параметры вычисления"
// @Success 200 {object} EvaluateResponse "Результат вычисления"
// @Failure 400 {object} ErrorResponse "Невалидное тело запроса"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/evaluate [post]
func (c *Controller) evaluate(ctx *gin.Context) {
	var req EvaluateRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("evaluate bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	ev, err := c.uc.Evaluate(ctx.Request.Context(), req.Operand1, req.Operand2, req.Operator)
	if err != nil {
		c.log.Error("evaluate failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, EvaluateResponse{Result: ev.Text()})
}
