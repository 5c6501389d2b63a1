package main

import (
	stdLog "log"
	"time"

	"github.com/Astemirdum/court-booking/booking/app"
	"github.com/Astemirdum/court-booking/booking/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// @title       Court booking API
// @version     1.0
// @description Reservas de quadras esportivas.
// @BasePath    /api
func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env file, using environment")
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal(err)
	}
}
