package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v8"
	"github.com/go-playground/validator/v10"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/chucky-1/finfine/internal/api"
	"github.com/chucky-1/finfine/internal/assistant"
	"github.com/chucky-1/finfine/internal/config"
	"github.com/chucky-1/finfine/internal/consumer"
	"github.com/chucky-1/finfine/internal/producer"
	"github.com/chucky-1/finfine/internal/repository"
	"github.com/chucky-1/finfine/internal/service"
	"github.com/chucky-1/finfine/internal/web"
)

const connectTimeout = 10 * time.Second

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found")
	}

	cfg := config.Config{}
	if err := env.Parse(&cfg); err != nil {
		logrus.Fatalf("couldn't parse config: %v", err)
	}
	configureLogger(cfg)

	var sessions repository.Sessions = repository.NewSessionsLocalStorage()
	if cfg.PostgresEndpoint != "" {
		connCtx, connCancel := context.WithTimeout(ctx, connectTimeout)
		pool, err := pgxpool.Connect(connCtx, cfg.PostgresEndpoint)
		connCancel()
		if err != nil {
			logrus.Fatalf("couldn't connect to postgres: %v", err)
		}
		defer pool.Close()
		sessions = repository.NewSessionsPostgres(pool)
		logrus.Info("sessions are stored in postgres")
	}

	var plans repository.Plans = repository.NewPlansLocalStorage()
	if cfg.MongoEndpoint != "" {
		connCtx, connCancel := context.WithTimeout(ctx, connectTimeout)
		cli, err := mongo.Connect(connCtx, options.Client().ApplyURI(cfg.MongoEndpoint))
		if err == nil {
			err = cli.Ping(connCtx, nil)
		}
		connCancel()
		if err != nil {
			logrus.Fatalf("couldn't connect to mongo: %v", err)
		}
		defer func() {
			if err := cli.Disconnect(context.Background()); err != nil {
				logrus.Error(err)
			}
		}()
		plans = repository.NewPlansMongo(cli)
		logrus.Info("plans are stored in mongo")
	}

	client := api.NewClient(cfg.APIURL, &http.Client{Timeout: cfg.APITimeout})
	auth := service.NewAuth(client, sessions, validator.New(), cfg.AuthCheckWait)

	var (
		alerts  service.AlertSink
		linker  web.ChatLinker
		botName string
	)
	if cfg.Telegram.Token != "" {
		bot, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
		if err != nil {
			logrus.Fatal(err)
		}
		chats := service.NewChats(repository.NewChatsLocalStorage())

		notifier := producer.NewNotifier(bot, chats)
		notifier.Produce(ctx)
		alerts = notifier

		u := tgbotapi.NewUpdate(0)
		u.Timeout = cfg.Telegram.Timeout
		go consumer.NewBot(bot, bot.Self.UserName, bot.GetUpdatesChan(u), chats).Consume(ctx)

		linker = chats
		botName = bot.Self.UserName
	} else {
		logrus.Info("TG_TOKEN is not set, telegram alerts are disabled")
	}

	dashboard := service.NewDashboard(client, alerts)
	auth.ReleaseWith(dashboard)

	go consumer.NewCleaner(auth, cfg.SessionCleanInterval).Consume(ctx)

	server, err := web.NewServer(web.Options{
		Addr:         cfg.HTTPAddr,
		CookieSecure: cfg.CookieSecure,
		BotName:      botName,
	}, web.Deps{
		Auth:      auth,
		Dashboard: dashboard,
		Plans:     service.NewPlans(plans),
		Chats:     linker,
		Assistant: assistant.New(cfg.AssistantDelay),
	})
	if err != nil {
		logrus.Fatal(err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := server.ListenAndServe(ctx); err != nil {
			logrus.Error(err)
			cancel()
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, os.Interrupt)
	select {
	case <-quit:
	case <-ctx.Done():
	}
	cancel()
	<-done
}

func configureLogger(cfg config.Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Warnf("unknown log level %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if cfg.LogJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
