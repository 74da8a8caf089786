package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formCalc/internal/domain"
	"formCalc/internal/infrastructure/click"
	"formCalc/tests/integration/testutil"
)

// clickContainer — контейнер ClickHouse, инициализируется в TestMain.
var clickContainer *testutil.ClickHouseContainer

// setupClickWriter подключается к тестовому ClickHouse и создаёт таблицу.
// Возвращает писатель и клиент (клиент нужен тестам для проверки содержимого).
func setupClickWriter(t *testing.T) (*click.EvaluationWriter, *click.Client) {
	t.Helper()

	ctx := context.Background()

	client, err := click.New(&click.Config{
		Host:     clickContainer.Host,
		Port:     clickContainer.Port,
		Database: clickContainer.Database,
		Username: clickContainer.User,
		Password: clickContainer.Password,
	})
	require.NoError(t, err, "не удалось подключиться к ClickHouse")

	writer := click.NewEvaluationWriter(client)

	err = writer.EnsureTable(ctx)
	require.NoError(t, err, "не удалось создать таблицу")

	// Очищаем таблицу перед тестом
	_, err = client.DB().ExecContext(ctx, "TRUNCATE TABLE default.evaluations_analytics")
	require.NoError(t, err, "не удалось очистить таблицу")

	t.Cleanup(func() {
		client.Close()
	})

	return writer, client
}

// =============================================================================
// Тесты ClickHouse writer
// =============================================================================

func TestClickWriter_WriteEvaluation(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	writer, client := setupClickWriter(t)
	ctx := context.Background()

	ev := domain.Evaluation{
		Operand1:  10,
		Operand2:  5,
		Operator:  "+",
		Result:    15,
		Timestamp: time.Now(),
	}

	err := writer.WriteEvaluation(ctx, ev)
	require.NoError(t, err, "WriteEvaluation должен успешно записать")

	var count uint64
	err = client.DB().QueryRowContext(ctx,
		"SELECT COUNT(*) FROM default.evaluations_analytics WHERE operator = '+'").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count, "в таблице должна быть 1 запись")
}
