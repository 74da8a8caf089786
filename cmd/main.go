// Минимальная версия сервиса одним файлом: без журнала, кэша и брокера.
// Полная версия с инфраструктурой — в cmd/calculator.
package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"formCalc/internal/domain"
)

// Request структура для входящего запроса: операнды сырые, текстовые
type Request struct {
	Operand1 string `json:"operand1"`
	Operand2 string `json:"operand2"`
	Operator string `json:"operator"`
}

// Response структура для ответа: результат как текст (число, NaN или диагностика)
type Response struct {
	Result string `json:"result"`
	Error  string `json:"error,omitempty"`
}

// evaluateHandler обрабатывает запросы на вычисление
func evaluateHandler(c *gin.Context) {
	var req Request

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: "Неверный формат JSON: " + err.Error()})
		return
	}

	a := domain.ParseOperand(req.Operand1)
	b := domain.ParseOperand(req.Operand2)
	res := domain.Evaluate(a, b, req.Operator)

	// Диагностики — значения: отдаём их в том же поле, что и числа
	c.JSON(http.StatusOK, Response{Result: res.Text()})
}

func main() {
	// Создаём роутер gin
	r := gin.Default()

	// Регистрируем хэндлер
	r.POST("/evaluate", evaluateHandler)

	// Запускаем сервер на порту 8080
	r.Run(":8080")
}
