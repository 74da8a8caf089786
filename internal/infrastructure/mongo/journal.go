package mongo

import (
	"context"
	"log/slog"
	"time"

	"formCalc/internal/domain"
)

// evaluationDoc — документ в коллекции evaluations (без ID — в домене ID int
// для совместимости с PG, здесь он не используется).
type evaluationDoc struct {
	Operand1   float64   `bson:"operand1"`
	Operand2   float64   `bson:"operand2"`
	Operator   string    `bson:"operator"`
	Result     float64   `bson:"result"`
	Diagnostic string    `bson:"diagnostic"`
	CreatedAt  time.Time `bson:"created_at"`
}

// EvaluationJournal реализует ports.IEvaluationJournal для MongoDB —
// альтернативный бэкенд журнала, выбирается конфигом хранилища.
type EvaluationJournal struct {
	client *Client
	log    *slog.Logger
}

// NewEvaluationJournal возвращает журнал вычислений.
func NewEvaluationJournal(client *Client, log *slog.Logger) *EvaluationJournal {
	return &EvaluationJournal{client: client, log: log}
}

// SaveEvaluation сохраняет запись о вычислении в коллекцию.
func (j *EvaluationJournal) SaveEvaluation(ctx context.Context, ev domain.Evaluation) error {
	doc := evaluationDoc{
		Operand1:   ev.Operand1,
		Operand2:   ev.Operand2,
		Operator:   ev.Operator,
		Result:     ev.Result,
		Diagnostic: ev.Diagnostic,
		CreatedAt:  ev.Timestamp,
	}
	_, err := j.client.Coll().InsertOne(ctx, doc)
	if err != nil {
		j.log.Debug("SaveEvaluation failed", "error", err)
		return err
	}
	return nil
}

// Ping проверяет доступность БД (readiness).
func (j *EvaluationJournal) Ping(ctx context.Context) error {
	return j.client.Ping(ctx, nil)
}
