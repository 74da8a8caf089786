package calculator

// EvaluateRequest — запрос на вычисление (для POST /api/v1/evaluate).
// Операнды сырые, текстовые, без валидации на сервере: пустой или
// неразбираемый текст даёт NaN, пустая операция — диагностику
// "invalid operator". 400 возвращается только на битый JSON.
type EvaluateRequest struct {
	Operand1 string `json:"operand1"`
	Operand2 string `json:"operand2"`
	Operator string `json:"operator"`
}

// EvaluateResponse — ответ с результатом как текстом для отображения:
// число ("5"), "NaN" или диагностика ("division by zero"). Диагностики
// отдаются так же, как числа, — это значения, а не ошибки.
type EvaluateResponse struct {
	Result string `json:"result"`
}

// ErrorResponse — ответ при невалидном запросе или внутренней ошибке.
type ErrorResponse struct {
	Error string `json:"error"`
}
