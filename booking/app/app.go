package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/court-booking/booking/config"
	"github.com/Astemirdum/court-booking/booking/internal/handler"
	"github.com/Astemirdum/court-booking/booking/internal/server"
	"github.com/Astemirdum/court-booking/booking/internal/service"
	"github.com/Astemirdum/court-booking/pkg/logger"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "booking")
	defer log.Sync() //nolint:errcheck

	st, err := openStorage(context.Background(), cfg, log)
	if err != nil {
		return fmt.Errorf("storage init %v", err)
	}
	log.Info("storage ready", zap.String("driver", st.repo.Driver()))

	pub := newPublisher(cfg.Kafka, log)

	svc := service.NewService(st.repo, log,
		service.WithPublisher(pub),
		service.WithOpeningHours(cfg.Booking.OpenHour, cfg.Booking.CloseHour),
		service.WithCodeAttempts(cfg.Booking.CodeAttempts),
	)
	h := handler.New(svc, log)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	if err = pub.Close(); err != nil {
		log.Error("publisher close", zap.Error(err))
	}
	st.close()
	log.Info("Graceful shutdown finished")
	return nil
}
