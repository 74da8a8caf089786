package pg

import (
	"context"
	"log/slog"

	"formCalc/internal/domain"
)

// EvaluationJournal реализует ports.IEvaluationJournal для PostgreSQL.
// Журнал пишется только на запись; чтения истории наружу нет.
type EvaluationJournal struct {
	db  *DB
	log *slog.Logger
}

// NewEvaluationJournal возвращает журнал вычислений.
func NewEvaluationJournal(db *DB, log *slog.Logger) *EvaluationJournal {
	return &EvaluationJournal{db: db, log: log}
}

// SaveEvaluation сохраняет запись о вычислении. NaN-результаты PostgreSQL
// принимает в DOUBLE PRECISION как есть.
func (j *EvaluationJournal) SaveEvaluation(ctx context.Context, ev domain.Evaluation) error {
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO evaluations (operand1, operand2, operator, result, diagnostic, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		ev.Operand1, ev.Operand2, ev.Operator, ev.Result, ev.Diagnostic, ev.Timestamp)
	if err != nil {
		j.log.Debug("SaveEvaluation failed", "error", err)
		return err
	}
	return nil
}

// Ping проверяет доступность БД (readiness).
func (j *EvaluationJournal) Ping(ctx context.Context) error {
	return j.db.Ping(ctx)
}
