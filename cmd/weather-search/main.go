package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"weather-search/config"
	_ "weather-search/docs"
	v1 "weather-search/internal/controllers/http/v1"
	"weather-search/internal/repositories"
	"weather-search/internal/services/session"
	"weather-search/internal/services/weather"
	"weather-search/pkg/httpserver"
	"weather-search/pkg/logger"
	"weather-search/pkg/observe"
	"weather-search/web"
)

const sweepInterval = time.Minute

// @title Weather Search
// @version 1.0.0
// @description Current conditions, a 5-day forecast and recent searches for any city, backed by OpenWeatherMap.

// @contact.name Weather Search Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Weather
// @tag.description City weather search
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf := config.NewConfig()

	writers := []io.Writer{os.Stdout}
	hook := observe.NewSentryHook(cnf.AppEnv, cnf.AppName, cnf.SentryDSN, cnf.IsDevelopment())
	if hook != nil {
		writers = append(writers, hook)
	}

	l := logger.New(logger.Options{
		AppName: cnf.AppName,
		AppEnv:  cnf.AppEnv,
		Level:   cnf.LogLevel,
		Writers: writers,
	})
	if hook != nil {
		hook.SetLogger(l)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observe.NewMetrics(reg)

	repo, err := repositories.InitWeatherRepository(cnf, l, metrics)
	if err != nil {
		l.Fatal("cannot init weather repository", map[string]any{"err": err})
	}

	service := weather.NewWeatherService(repo, cnf.OpenWeather.IconBaseURL, l)

	store := session.NewStore(func(id string) *weather.Session {
		return weather.NewSession(id, service, cnf.DefaultCity, l)
	}, cnf.SessionTTL, l)
	go store.Run(ctx, sweepInterval)

	app := httpserver.InitFiberServer(cnf.AppName, web.Engine(), metrics.Middleware())

	v1.NewRouter(
		app,
		store,
		v1.Options{
			Title:         "Weather Search",
			Location:      cnf.Location(),
			Gatherer:      reg,
			SecureCookies: cnf.IsProduction(),
		},
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":         cnf.Port,
		"version":      cnf.AppVersion,
		"repository":   repo.Name(),
		"default_city": cnf.DefaultCity,
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		cancel()
		store.Close()
		if hook != nil {
			hook.Flush()
		}
		_ = l.Stop()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
