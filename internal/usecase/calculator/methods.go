package calculator

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"formCalc/internal/domain"
)

// Evaluate — разбирает текстовые операнды, проверяет кэш; при промахе считает,
// пишет запись в журнал, кладёт числовой результат в кэш и публикует его в брокер.
// Диагностики ("division by zero", "invalid operator") — значения, а не ошибки:
// они возвращаются в записи как обычный результат. Ошибки здесь только
// инфраструктурные (журнал недоступен и т.п.).
func (u *UseCase) Evaluate(ctx context.Context, operand1, operand2, operator string) (*domain.Evaluation, error) {
	a := domain.ParseOperand(operand1)
	b := domain.ParseOperand(operand2)

	key := cacheKey(a, b, operator)
	if cached, found, err := u.cache.Get(ctx, key); err == nil && found {
		return &domain.Evaluation{
			Operand1:  a,
			Operand2:  b,
			Operator:  operator,
			Result:    cached,
			Timestamp: time.Now(),
		}, nil
	}

	res := domain.Evaluate(a, b, operator)

	ev := domain.Evaluation{
		Operand1:   a,
		Operand2:   b,
		Operator:   operator,
		Result:     res.Value,
		Diagnostic: res.Diagnostic,
		Timestamp:  time.Now(),
	}

	if err := u.journal.SaveEvaluation(ctx, ev); err != nil {
		return nil, err
	}
	u.log.Info("evaluation saved", "key", key, "result", res.Text())

	// Диагностики и нечисловые результаты (NaN, ±Inf при переполнении)
	// не кэшируем и не публикуем: JSON их не кодирует, а запись NaN в кэше
	// была бы бесполезна.
	if res.IsDiagnostic() || math.IsNaN(res.Value) || math.IsInf(res.Value, 0) {
		return &ev, nil
	}

	if err := u.cache.Set(ctx, key, res.Value); err != nil {
		return nil, err
	}

	value, err := json.Marshal(ev)
	if err != nil {
		return nil, err
	}

	if err := u.broker.Send(ctx, []byte(key), value); err != nil {
		u.log.Warn("broker send", "key", key, "error", err)
	} else {
		u.log.Info("evaluation published", "key", key, "result", res.Value)
	}

	return &ev, nil
}

// HandleEvaluationEvent вызывается консьюмером при получении сообщения из топика
// (часть ICalculatorUseCase): пишет вычисление в аналитическое хранилище.
func (u *UseCase) HandleEvaluationEvent(ctx context.Context, ev domain.Evaluation) error {
	if err := u.analytics.WriteEvaluation(ctx, ev); err != nil {
		u.log.Warn("analytics write", "error", err)
		return err
	}
	u.log.Info("evaluation stored to click", "operand1", ev.Operand1, "operator", ev.Operator, "operand2", ev.Operand2, "result", ev.Result)

	return nil
}
