package click

import (
	"context"
	"fmt"

	"formCalc/internal/domain"
)

const evaluationsAnalyticsFull = "default.evaluations_analytics"

// EvaluationWriter пишет вычисления в ClickHouse в формате, удобном для
// аналитики использования (GROUP BY operator, по времени и т.д.).
type EvaluationWriter struct {
	db *Client
}

// NewEvaluationWriter создаёт писатель вычислений для аналитики.
func NewEvaluationWriter(db *Client) *EvaluationWriter {
	return &EvaluationWriter{db: db}
}

// EnsureTable создаёт таблицу вычислений для аналитики в default, если её ещё нет.
// Вызови один раз при старте приложения.
func (w *EvaluationWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			operand1 Float64,
			operand2 Float64,
			operator String,
			result Float64,
			diagnostic String,
			created_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (created_at, operator)
		PARTITION BY toYYYYMM(created_at)`,
		evaluationsAnalyticsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteEvaluation реализует ports.IEvaluationAnalytics: пишет одно вычисление в ClickHouse.
func (w *EvaluationWriter) WriteEvaluation(ctx context.Context, ev domain.Evaluation) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (operand1, operand2, operator, result, diagnostic, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		evaluationsAnalyticsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query,
		ev.Operand1, ev.Operand2, ev.Operator, ev.Result, ev.Diagnostic, ev.Timestamp)
	if err != nil {
		return fmt.Errorf("insert evaluation: %w", err)
	}
	return nil
}
