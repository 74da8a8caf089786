package calculator

import (
	"context"
	"log/slog"
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"formCalc/internal/domain"
	"formCalc/internal/mocks"
)

// newTestLogger создаёт логгер для тестов (выводит только ошибки, чтобы не засорять вывод).
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// newMocks создаёт весь набор моков зависимостей UseCase.
func newMocks(ctrl *gomock.Controller) (*mocks.MockIEvaluationJournal, *mocks.MockICache, *mocks.MockIProducer, *mocks.MockIEvaluationAnalytics) {
	return mocks.NewMockIEvaluationJournal(ctrl),
		mocks.NewMockICache(ctrl),
		mocks.NewMockIProducer(ctrl),
		mocks.NewMockIEvaluationAnalytics(ctrl)
}

// Cache Hit — результат берётся из кэша, журнал и брокер не вызываются.
func TestEvaluate_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJournal, mockCache, mockBroker, mockAnalytics := newMocks(ctrl)

	mockCache.EXPECT().
		Get(gomock.Any(), "10 + 5").
		Return(15.0, true, nil)

	uc := New(mockJournal, mockCache, mockBroker, mockAnalytics, newTestLogger())

	ev, err := uc.Evaluate(context.Background(), "10", "5", "+")

	require.NoError(t, err)
	assert.Equal(t, 15.0, ev.Result)
	assert.Equal(t, 10.0, ev.Operand1)
	assert.Equal(t, 5.0, ev.Operand2)
	assert.Equal(t, "+", ev.Operator)
	assert.Empty(t, ev.Diagnostic)
}

// Cache Miss — полный флоу: разбор → расчёт → журнал → кэш → брокер.
func TestEvaluate_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJournal, mockCache, mockBroker, mockAnalytics := newMocks(ctrl)

	gomock.InOrder(
		mockCache.EXPECT().Get(gomock.Any(), "10 + 5").Return(0.0, false, nil),
		mockJournal.EXPECT().SaveEvaluation(gomock.Any(), gomock.Any()).Return(nil),
		mockCache.EXPECT().Set(gomock.Any(), "10 + 5", 15.0).Return(nil),
		mockBroker.EXPECT().Send(gomock.Any(), []byte("10 + 5"), gomock.Any()).Return(nil),
	)

	uc := New(mockJournal, mockCache, mockBroker, mockAnalytics, newTestLogger())

	ev, err := uc.Evaluate(context.Background(), "10", "5", "+")

	require.NoError(t, err)
	assert.Equal(t, 15.0, ev.Result)
	assert.Equal(t, "15", ev.Text())
}

// Деление на ноль — диагностика возвращается как значение, не как ошибка.
// Запись попадает в журнал, но не в кэш и не в брокер.
func TestEvaluate_DivisionByZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJournal, mockCache, mockBroker, mockAnalytics := newMocks(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), "10 / 0").Return(0.0, false, nil)
	mockJournal.EXPECT().SaveEvaluation(gomock.Any(), gomock.Any()).Return(nil)
	// cache.Set и broker.Send НЕ вызываются — диагностики не кэшируются

	uc := New(mockJournal, mockCache, mockBroker, mockAnalytics, newTestLogger())

	ev, err := uc.Evaluate(context.Background(), "10", "0", "/")

	require.NoError(t, err)
	assert.Equal(t, domain.DiagDivisionByZero, ev.Diagnostic)
	assert.Equal(t, "division by zero", ev.Text())
}

// Неизвестная операция — тоже диагностика в значении.
func TestEvaluate_InvalidOperator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJournal, mockCache, mockBroker, mockAnalytics := newMocks(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), "5 % 3").Return(0.0, false, nil)
	mockJournal.EXPECT().SaveEvaluation(gomock.Any(), gomock.Any()).Return(nil)

	uc := New(mockJournal, mockCache, mockBroker, mockAnalytics, newTestLogger())

	ev, err := uc.Evaluate(context.Background(), "5", "3", "%")

	require.NoError(t, err)
	assert.Equal(t, domain.DiagInvalidOperator, ev.Diagnostic)
}

// Неразбираемый операнд — NaN пропагируется как обычный результат:
// запись идёт в журнал, но NaN не кэшируется и не публикуется.
func TestEvaluate_NaNOperand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJournal, mockCache, mockBroker, mockAnalytics := newMocks(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), "NaN + 3").Return(0.0, false, nil)
	mockJournal.EXPECT().SaveEvaluation(gomock.Any(), gomock.Any()).Return(nil)

	uc := New(mockJournal, mockCache, mockBroker, mockAnalytics, newTestLogger())

	ev, err := uc.Evaluate(context.Background(), "abc", "3", "+")

	require.NoError(t, err)
	assert.True(t, math.IsNaN(ev.Result))
	assert.Empty(t, ev.Diagnostic)
	assert.Equal(t, "NaN", ev.Text())
}

// Деление на NaN — проверка нуля NaN пропускает, результат NaN (унаследованный
// краевой случай).
func TestEvaluate_DivisionByNaN(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJournal, mockCache, mockBroker, mockAnalytics := newMocks(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), "5 / NaN").Return(0.0, false, nil)
	mockJournal.EXPECT().SaveEvaluation(gomock.Any(), gomock.Any()).Return(nil)

	uc := New(mockJournal, mockCache, mockBroker, mockAnalytics, newTestLogger())

	ev, err := uc.Evaluate(context.Background(), "5", "def", "/")

	require.NoError(t, err)
	assert.Empty(t, ev.Diagnostic, "NaN-делитель не должен давать диагностику")
	assert.True(t, math.IsNaN(ev.Result))
}

// Ошибка журнала — инфраструктурная, пробрасывается наружу.
func TestEvaluate_JournalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJournal, mockCache, mockBroker, mockAnalytics := newMocks(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), "10 + 5").Return(0.0, false, nil)
	mockJournal.EXPECT().SaveEvaluation(gomock.Any(), gomock.Any()).Return(assert.AnError)

	uc := New(mockJournal, mockCache, mockBroker, mockAnalytics, newTestLogger())

	ev, err := uc.Evaluate(context.Background(), "10", "5", "+")

	assert.Nil(t, ev)
	assert.Error(t, err)
}

// Событие из брокера уходит в аналитическое хранилище.
func TestHandleEvaluationEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJournal, mockCache, mockBroker, mockAnalytics := newMocks(ctrl)

	ev := domain.Evaluation{Operand1: 10, Operand2: 5, Operator: "+", Result: 15}
	mockAnalytics.EXPECT().WriteEvaluation(gomock.Any(), ev).Return(nil)

	uc := New(mockJournal, mockCache, mockBroker, mockAnalytics, newTestLogger())

	err := uc.HandleEvaluationEvent(context.Background(), ev)
	require.NoError(t, err)
}
