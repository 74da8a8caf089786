package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Константы арифметических операций.
const (
	OpAdd = "+"
	OpSub = "-"
	OpMul = "*"
	OpDiv = "/"
)

// Диагностики — текстовые результаты, когда операцию нельзя выполнить.
// По контракту вычислителя это обычные значения, а не ошибки.
const (
	DiagDivisionByZero  = "division by zero"
	DiagInvalidOperator = "invalid operator"
)

// ParseOperand разбирает текстовый операнд как float64.
// Неразбираемый текст даёт NaN-сентинел, а не ошибку: дальше NaN
// пропагируется операциями по обычным правилам плавающей точки.
func ParseOperand(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Result — результат вычисления: либо число, либо диагностика.
type Result struct {
	Value      float64
	Diagnostic string
}

// IsDiagnostic сообщает, что вместо числа вернулась диагностика.
func (r Result) IsDiagnostic() bool {
	return r.Diagnostic != ""
}

// Text возвращает результат как текст для отображения:
// диагностику как есть, число — в компактной записи ("5", "0.1", "NaN").
func (r Result) Text() string {
	if r.IsDiagnostic() {
		return r.Diagnostic
	}
	return strconv.FormatFloat(r.Value, 'g', -1, 64)
}

// Evaluate выполняет одну арифметическую операцию над двумя операндами.
// Деление сравнивает сырое значение b с нулём: NaN-делитель проверку
// не проходит, деление выполняется и даёт NaN (унаследованный краевой
// случай, сохранён сознательно). Функция чистая, ошибок не возвращает.
func Evaluate(a, b float64, operator string) Result {
	switch operator {
	case OpAdd:
		return Result{Value: a + b}
	case OpSub:
		return Result{Value: a - b}
	case OpMul:
		return Result{Value: a * b}
	case OpDiv:
		if b == 0 {
			return Result{Diagnostic: DiagDivisionByZero}
		}
		return Result{Value: a / b}
	default:
		return Result{Diagnostic: DiagInvalidOperator}
	}
}

// Evaluation — запись об одном вычислении.
type Evaluation struct {
	ID         int
	Operand1   float64
	Operand2   float64
	Operator   string
	Result     float64
	Diagnostic string
	Timestamp  time.Time
}

// AsResult возвращает результат записи как тегированное значение.
func (e Evaluation) AsResult() Result {
	if e.Diagnostic != "" {
		return Result{Diagnostic: e.Diagnostic}
	}
	return Result{Value: e.Result}
}

// Text возвращает результат записи как текст для отображения.
func (e Evaluation) Text() string {
	return e.AsResult().Text()
}
