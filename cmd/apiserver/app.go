package main

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/areed15ev/shipping-calculator/internal/app/consumer"
	"github.com/areed15ev/shipping-calculator/internal/app/domains/modules/mdbatch"
	"github.com/areed15ev/shipping-calculator/internal/app/domains/services/svbatch"
	"github.com/areed15ev/shipping-calculator/internal/app/domains/services/svcallback"
	"github.com/areed15ev/shipping-calculator/internal/app/domains/services/svquote"
	quotehandler "github.com/areed15ev/shipping-calculator/internal/app/server/handlers/quote"
	"github.com/areed15ev/shipping-calculator/internal/app/server/routers"
	"github.com/areed15ev/shipping-calculator/pkg/config"
	"github.com/areed15ev/shipping-calculator/pkg/infra/redis"
	"github.com/areed15ev/shipping-calculator/pkg/lmstfy"
	"github.com/areed15ev/shipping-calculator/pkg/logger"
)

// App 应用依赖集合
type App struct {
	Engine           *gin.Engine
	CallbackConsumer *consumer.CallbackConsumer
	Logger           logger.Logger
}

// InitializeApp 装配全部依赖
// 返回的 cleanup 负责释放连接与日志缓冲
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	log, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	engine, err := cfg.BuildEngine()
	if err != nil {
		return nil, nil, err
	}

	lmstfyClient, err := lmstfy.NewClient(cfg.Lmstfy.Host, cfg.Lmstfy.Port, cfg.Lmstfy.Namespace, cfg.Lmstfy.Token)
	if err != nil {
		return nil, nil, err
	}

	redisClient, err := redis.NewPubSubClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, nil, err
	}

	batchModule := mdbatch.NewBatchModule(lmstfyClient, redisClient, cfg.Lmstfy.Queue)

	quoteService := svquote.NewQuoteService(engine, cfg.Quote.DefaultFxRate)
	batchService := svbatch.NewBatchService(batchModule, log, cfg.Quote.MaxWaitSeconds)
	callbackService := svcallback.NewCallbackService(redisClient, log)

	quoteHandler := quotehandler.NewQuoteHandler(quoteService, batchService, log)

	callbackConsumer := consumer.NewCallbackConsumer(lmstfyClient, callbackService, &consumer.Config{
		QueueName:    cfg.Lmstfy.CallbackQueue,
		Timeout:      3 * time.Second,
		TTR:          30 * time.Second,
		PollInterval: time.Second,
	}, log)

	cleanup := func() {
		_ = redisClient.Close()
		_ = log.Sync()
	}

	return &App{
		Engine:           routers.SetupRoutes(quoteHandler, log),
		CallbackConsumer: callbackConsumer,
		Logger:           log,
	}, cleanup, nil
}
