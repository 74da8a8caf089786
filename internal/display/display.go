// Package display — слой отображения: два дисплея калькулятора.
// Дисплеи передаются явными зависимостями (io.Writer), а не глобальными
// переменными уровня пакета: вызывающий решает, куда писать.
package display

import (
	"fmt"
	"io"

	"formCalc/internal/domain"
)

// ResultLabel — фиксированная подпись второго дисплея.
const ResultLabel = "Result: "

// Renderer пишет результат вычисления в два дисплея: в первый — текст
// результата как есть, во второй — тот же текст с подписью ResultLabel.
// Диагностики отображаются так же, как числа.
type Renderer struct {
	primary io.Writer
	labeled io.Writer
}

// New создаёт рендерер с двумя дисплеями.
func New(primary, labeled io.Writer) *Renderer {
	return &Renderer{primary: primary, labeled: labeled}
}

// Show отображает результат на обоих дисплеях.
func (r *Renderer) Show(res domain.Result) error {
	text := res.Text()
	if _, err := fmt.Fprintln(r.primary, text); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.labeled, ResultLabel+text); err != nil {
		return err
	}
	return nil
}
