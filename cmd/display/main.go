// Аналог формы калькулятора для терминала: два текстовых операнда и операция
// приходят флагами, вычисление — один синхронный вызов, результат уходит
// на два дисплея (обе строки — stdout). Дисплеи внедряются в рендерер
// явно, без глобальных переменных.
package main

import (
	"flag"
	"log/slog"
	"os"

	"formCalc/internal/display"
	"formCalc/internal/domain"
)

func main() {
	operand1 := flag.String("a", "", "первый операнд (текст)")
	operand2 := flag.String("b", "", "второй операнд (текст)")
	operator := flag.String("op", "+", "операция: + - * /")
	flag.Parse()

	a := domain.ParseOperand(*operand1)
	b := domain.ParseOperand(*operand2)
	res := domain.Evaluate(a, b, *operator)

	r := display.New(os.Stdout, os.Stdout)
	if err := r.Show(res); err != nil {
		slog.Error("display failed", "error", err)
		os.Exit(1)
	}
}
