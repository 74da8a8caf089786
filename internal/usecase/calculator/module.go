package calculator

import (
	"log/slog"
	"strconv"

	"formCalc/internal/ports"
)

// cacheKey формирует читаемый ключ операции для кэша, например "1 + 1".
// NaN-операнды дают ключ вида "NaN + 1"; такие ключи никогда не пишутся
// в кэш, поэтому попадание по ним невозможно.
func cacheKey(a, b float64, operator string) string {
	return strconv.FormatFloat(a, 'f', -1, 64) + " " + operator + " " + strconv.FormatFloat(b, 'f', -1, 64)
}

// UseCase — бизнес-логика калькулятора.
type UseCase struct {
	journal   ports.IEvaluationJournal
	cache     ports.ICache
	broker    ports.IProducer
	analytics ports.IEvaluationAnalytics
	log       *slog.Logger
}

// New создаёт юзкейс калькулятора.
func New(journal ports.IEvaluationJournal, cache ports.ICache, broker ports.IProducer, analytics ports.IEvaluationAnalytics, log *slog.Logger) *UseCase {
	return &UseCase{journal: journal, cache: cache, broker: broker, analytics: analytics, log: log}
}
