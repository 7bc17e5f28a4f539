package main

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/vandev268/fastfood-server/internal/config"
	"github.com/vandev268/fastfood-server/internal/domain/model"
	"github.com/vandev268/fastfood-server/internal/gateway"
	"github.com/vandev268/fastfood-server/internal/handler"
	"github.com/vandev268/fastfood-server/internal/infra/db"
	infraRepo "github.com/vandev268/fastfood-server/internal/infra/repository"
	"github.com/vandev268/fastfood-server/internal/notification"
	"github.com/vandev268/fastfood-server/internal/scheduler"
	"github.com/vandev268/fastfood-server/internal/server"
	"github.com/vandev268/fastfood-server/internal/usecase"
)

func main() {
	// Missing .env is fine in containers where everything comes from the
	// environment.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config load failed", "error", err)
		os.Exit(1)
	}

	gormDB, err := db.Connect()
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Address{},
		&model.Product{},
		&model.Variant{},
		&model.CartItem{},
		&model.Coupon{},
		&model.Table{},
		&model.Reservation{},
		&model.DraftItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.AuditLog{},
	); err != nil {
		logger.Error("auto migration failed", "error", err)
		os.Exit(1)
	}

	txm := infraRepo.NewTxManagerGorm(gormDB)

	publisher, err := notification.NewPublisher(cfg.RabbitMQURL, logger)
	if err != nil {
		logger.Error("rabbitmq connection failed", "error", err)
		os.Exit(1)
	}
	defer publisher.Close()

	vnpay := gateway.NewVNPayClient(cfg.VNPay.TmnCode, cfg.VNPay.HashSecret, cfg.VNPay.URL, cfg.VNPay.ReturnURL)
	momo := gateway.NewMomoClient(cfg.Momo.Endpoint, cfg.Momo.AccessKey, cfg.Momo.SecretKey, cfg.Momo.RedirectURL, 10*time.Second)

	orderUC := usecase.NewOrderUsecase(txm, vnpay, momo, publisher, logger, cfg.BaseUserEmail, cfg.BaseUserPassword)

	sched := scheduler.NewCancelScheduler(cfg.OrderCancelAfter, orderUC.CancelUnpaidOrder, logger)
	defer sched.Stop()
	orderUC.SetScheduler(sched)

	paymentUC := usecase.NewPaymentUsecase(txm, sched, vnpay, momo, publisher, logger)

	orderH := handler.NewOrderHandler(orderUC)
	paymentH := handler.NewPaymentHandler(paymentUC, logger)

	e := server.New(cfg.JWTSecret, orderH, paymentH)

	addr := cfg.Port
	if !strings.HasPrefix(addr, ":") {
		addr = ":" + addr
	}

	logger.Info("server starting", "addr", addr)
	if err := server.Start(e, addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
