package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"formCalc/internal/domain"
	"formCalc/internal/infrastructure/mongo"
	"formCalc/tests/integration/testutil"
)

// mongoContainer — контейнер MongoDB, инициализируется в TestMain.
var mongoContainer *testutil.MongoContainer

// setupMongoJournal подключается к тестовой MongoDB и очищает коллекцию.
// Возвращает журнал и клиент (клиент нужен тестам для проверки содержимого).
func setupMongoJournal(t *testing.T) (*mongo.EvaluationJournal, *mongo.Client) {
	t.Helper()

	ctx := context.Background()

	client, err := mongo.New(ctx, &mongo.Config{
		URI:        mongoContainer.URI(),
		Database:   "testdb",
		Collection: "evaluations",
	})
	require.NoError(t, err, "не удалось подключиться к MongoDB")

	// Очищаем коллекцию перед тестом
	err = client.Coll().Drop(ctx)
	if err != nil {
		// Игнорируем ошибку, если коллекции не было
		t.Logf("drop collection: %v (игнорируем)", err)
	}

	t.Cleanup(func() {
		client.Disconnect(context.Background())
	})

	return mongo.NewEvaluationJournal(client, newTestLogger()), client
}

// =============================================================================
// Тесты журнала MongoDB
// =============================================================================

func TestMongoJournal_SaveEvaluation(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	journal, client := setupMongoJournal(t)
	ctx := context.Background()

	ev := domain.Evaluation{
		Operand1:  10,
		Operand2:  5,
		Operator:  "+",
		Result:    15,
		Timestamp: time.Now(),
	}

	err := journal.SaveEvaluation(ctx, ev)
	require.NoError(t, err, "SaveEvaluation должен успешно сохранить")

	count, err := client.Coll().CountDocuments(ctx, bson.M{"operator": "+"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "в коллекции должна быть 1 запись")
}

func TestMongoJournal_Ping(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	journal, _ := setupMongoJournal(t)
	ctx := context.Background()

	err := journal.Ping(ctx)
	assert.NoError(t, err, "Ping должен успешно проверить соединение")
}
