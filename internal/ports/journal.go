package ports

//go:generate mockgen -source=journal.go -destination=../mocks/journal_mock.go -package=mocks

import (
	"context"

	"formCalc/internal/domain"
)

// IEvaluationJournal — контракт журнала вычислений (PostgreSQL или MongoDB).
// Журнал пишется только на запись: операции чтения истории наружу не выдаются.
type IEvaluationJournal interface {
	SaveEvaluation(ctx context.Context, ev domain.Evaluation) error
	Ping(ctx context.Context) error
}
