package deps

import (
	"context"
	"fmt"
	"registration/internal/config"
	dl "registration/internal/core/domain/logging"
	duow "registration/internal/core/domain/unit_of_work"
	"registration/internal/core/domain/user"
	"registration/internal/db/migrations"
	uow "registration/internal/db/unit_of_work"
	"registration/internal/implementations/activation"
	"registration/internal/implementations/logging"
	"registration/internal/implementations/notifier"
	passwordhasher "registration/internal/implementations/password_hasher"
	"registration/internal/rabbitmq"
	activationcode "registration/internal/rabbitmq/publishers/activation_code"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	DB       *pgxpool.Pool
	Rabbitmq *rabbitmq.Connection

	Now func() time.Time

	UnitOfWork duow.UnitOfWork

	PasswordHasher          user.PasswordHasher
	ActivationCodeGenerator user.ActivationCodeGenerator
	ActivationCodeSender    user.ActivationCodeSender
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	deps.applyMigrations()
	closePgxPool := deps.initPgxPool()

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)
	deps.PasswordHasher = deps.initPasswordHasher()
	deps.ActivationCodeGenerator = activation.NewCodeGenerator()
	closeActivationCodeSender := deps.initActivationCodeSender()

	flushSentry := deps.initSentry()

	return deps, func() {
		closeFuncs := []func(){
			closeActivationCodeSender,
			closePgxPool,
			flushSentry,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
		closeLogger()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger(deps.Config.IsTestMode)
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) applyMigrations() {
	if !deps.Config.MigrateOnStart {
		deps.Logger.Info(context.Background(), "DB migrations are skipped.")
		return
	}
	if err := migrations.Up(deps.Config.PostgresqlURL); err != nil {
		deps.Logger.Error(context.Background(), "Could not apply DB migrations.", dl.Entry("err", err))
		panic(err)
	}
	deps.Logger.Info(context.Background(), "DB migrations applied.")
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initPasswordHasher() user.PasswordHasher {
	switch deps.Config.PasswordHasher {
	case config.PasswordHasherBcrypt:
		return passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)
	default:
		return passwordhasher.NewArgon2(deps.Config.Secret, passwordhasher.DefaultArgon2Params)
	}
}

func (deps *Deps) initActivationCodeSender() func() {
	if deps.Config.Notifier != config.NotifierRabbitmq {
		deps.ActivationCodeSender = notifier.NewLog(deps.Logger)
		return func() {}
	}

	connection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = connection

	channel, err := connection.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}
	if err := channel.DeclareTopicExchange(deps.Config.RabbitmqExchange); err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ exchange.", dl.Entry("err", err))
		panic(err)
	}

	deps.ActivationCodeSender = activationcode.NewRabbitMQ(deps.Logger, channel, deps.Config.RabbitmqExchange)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		channel.Close()
		connection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initSentry() func() {
	if deps.Config.SentryDsn != nil {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              deps.Config.SentryDsn.String(),
			TracesSampleRate: 0.01,
		})
		if err != nil {
			panic(fmt.Sprintf("could not init Sentry: %v\n", err))
		}
		deps.Logger.Info(context.Background(), "Sentry has been successfully initialized.")
		return func() {
			ok := sentry.Flush(5 * time.Second)
			deps.Logger.Info(context.Background(), "Sentry events flushed.", dl.Entry("ok", ok))
		}
	}

	deps.Logger.Info(context.Background(), "Sentry is disabled.")
	return func() {}
}
