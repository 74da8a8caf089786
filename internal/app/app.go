package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	apihttp "formCalc/internal/api/http"
	"formCalc/internal/api/http/controllers/calculator"
	"formCalc/internal/api/http/controllers/system"
	"formCalc/internal/infrastructure/click"
	"formCalc/internal/infrastructure/kafka"
	"formCalc/internal/infrastructure/mongo"
	"formCalc/internal/infrastructure/pg"
	"formCalc/internal/infrastructure/redis"
	"formCalc/internal/pkg/logger"
	"formCalc/internal/ports"
	calcUsecase "formCalc/internal/usecase/calculator"
)

// App — приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (инфраструктура подключается в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// openJournal подключает журнал вычислений по конфигу хранилища: PostgreSQL
// (по умолчанию, с миграцией) или MongoDB. Возвращает журнал и функцию закрытия.
func (a *App) openJournal(ctx context.Context, log *slog.Logger) (ports.IEvaluationJournal, func(), error) {
	switch a.cfg.Storage.Driver {
	case "mongo":
		cli, err := mongo.New(ctx, &a.cfg.Mongo)
		if err != nil {
			return nil, nil, fmt.Errorf("mongo: %w", err)
		}
		closeFn := func() { _ = cli.Disconnect(context.Background()) }
		return mongo.NewEvaluationJournal(cli, log), closeFn, nil
	case "postgres", "":
		db, err := pg.New(&a.cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("db: %w", err)
		}
		if err := pg.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		closeFn := func() { _ = db.Close() }
		return pg.NewEvaluationJournal(db, log), closeFn, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver: %q", a.cfg.Storage.Driver)
	}
}

// Run подключает журнал, Redis, Kafka и ClickHouse, инициализирует зависимости
// и запускает HTTP-сервер (блокирующий вызов).
func (a *App) Run() error {
	log := logger.NewWithLevel(a.cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	journal, closeJournal, err := a.openJournal(ctx, log)
	if err != nil {
		return err
	}
	defer closeJournal()

	rdb, err := redis.New(&a.cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer rdb.Close()
	cache := redis.NewCache(rdb, log)

	ch, err := click.New(&a.cfg.ClickHouse)
	if err != nil {
		return fmt.Errorf("clickhouse: %w", err)
	}
	defer ch.Close()
	writer := click.NewEvaluationWriter(ch)
	if err := writer.EnsureTable(ctx); err != nil {
		return fmt.Errorf("clickhouse table: %w", err)
	}

	producer := kafka.NewProducer(&a.cfg.Kafka)
	defer producer.Close()

	uc := calcUsecase.New(journal, cache, producer, writer, log)

	consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, log)
	defer consumer.Close()
	go func() {
		if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("kafka consumer failed", "error", err)
		}
	}()

	srv := apihttp.NewServer(a.cfg.Server)
	srv.AddController(
		system.New(journal, log),
		calculator.New(uc, log))

	httpAddr := a.cfg.Server.Host + ":" + a.cfg.Server.Port
	slog.Info("application started", "http", httpAddr, "storage", a.cfg.Storage.Driver)

	return srv.Start(ctx)
}
