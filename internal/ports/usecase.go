package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"formCalc/internal/domain"
)

// ICalculatorUseCase — контракт бизнес-логики калькулятора: вычисление по сырым
// текстовым операндам и обработка событий вычислений из брокера.
type ICalculatorUseCase interface {
	Evaluate(ctx context.Context, operand1, operand2, operator string) (*domain.Evaluation, error)
	HandleEvaluationEvent(ctx context.Context, ev domain.Evaluation) error
}
