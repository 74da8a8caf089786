package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"formCalc/internal/domain"
)

// IEvaluationAnalytics — запись вычислений в хранилище аналитики (например ClickHouse).
type IEvaluationAnalytics interface {
	WriteEvaluation(ctx context.Context, ev domain.Evaluation) error
}
