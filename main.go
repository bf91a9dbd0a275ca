package main

import (
	"log"

	"github.com/billonariostelegram2/WalletC22/config"
	"github.com/billonariostelegram2/WalletC22/internal/api"
	"github.com/billonariostelegram2/WalletC22/internal/database"
	"github.com/billonariostelegram2/WalletC22/internal/models"
	"github.com/billonariostelegram2/WalletC22/internal/notify"
	"github.com/billonariostelegram2/WalletC22/internal/services"
	"github.com/billonariostelegram2/WalletC22/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		zlog.Fatal("failed to connect database", zap.Error(err))
	}

	// Migrate the schema
	err = db.AutoMigrate(&models.User{}, &models.Voucher{}, &models.StatusCheck{})
	if err != nil {
		zlog.Fatal("failed to migrate database", zap.Error(err))
	}

	// The cache is optional; without Redis the registries go straight to
	// the database.
	var cache *redis.Client
	if addr := cfg.RedisFullAddr(); addr != "" {
		cache, err = database.ConnectRedis(addr, cfg.RedisPassword)
		if err != nil {
			zlog.Fatal("failed to connect redis", zap.Error(err))
		}
	}

	mailer := notify.NewSMTPMailer(notify.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		To:       cfg.NotifyEmail,
	})
	dispatcher := notify.NewDispatcher(mailer, zlog, cfg.NotifyQueueSize)
	dispatcher.Start()
	defer dispatcher.Stop()

	users := services.NewUserService(db, cache)
	vouchers := services.NewVoucherService(db, users, dispatcher)
	checks := services.NewStatusService(db)

	router := api.NewRouter(api.Deps{
		Log:      zlog,
		Users:    users,
		Vouchers: vouchers,
		Checks:   checks,
	})

	if err := router.Run(cfg.ServerAddr); err != nil {
		zlog.Fatal("failed to run server", zap.Error(err))
	}
}
