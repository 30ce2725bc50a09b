package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/nitadee/roomreport/internal/api"
	"github.com/nitadee/roomreport/internal/pkg/constants"
	"github.com/nitadee/roomreport/internal/pkg/logger"
	"github.com/nitadee/roomreport/internal/pkg/querycache"
	"github.com/nitadee/roomreport/internal/pkg/upstream"
	"github.com/nitadee/roomreport/internal/service/report"
	"github.com/spf13/viper"
)

func initConfig() {
	viper.SetDefault(constants.ViperKeyListenAddr, ":8090")
	viper.SetDefault(constants.ViperKeyUpstreamBaseURL, "http://localhost:3001/api")
	viper.SetDefault(constants.ViperKeyUpstreamTimeout, 30*time.Second)
	viper.SetDefault(constants.ViperKeyCacheStaleTime, 5*time.Minute)
	viper.SetDefault(constants.ViperKeyRetryCount, 1)
	viper.SetDefault(constants.ViperKeyRetryWait, 100*time.Millisecond)
	viper.SetDefault(constants.ViperKeyLogLevel, "info")
	viper.SetDefault(constants.ViperKeyAllowOrigins, "http://localhost:3000")

	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()
}

func main() {
	ctx := context.Background()

	initConfig()

	if err := logger.Init(viper.GetString(constants.ViperKeyLogLevel)); err != nil {
		logger.Fatal(ctx, err)
	}
	defer logger.Sync()

	source := upstream.NewClient(
		viper.GetString(constants.ViperKeyUpstreamBaseURL),
		viper.GetDuration(constants.ViperKeyUpstreamTimeout),
	)

	cacheCfg := querycache.Config{
		StaleTime:  viper.GetDuration(constants.ViperKeyCacheStaleTime),
		RetryCount: viper.GetUint64(constants.ViperKeyRetryCount),
		RetryWait:  viper.GetDuration(constants.ViperKeyRetryWait),
	}

	reportService := report.NewService(source, cacheCfg)

	svc, err := api.NewAPIService(reportService, strings.Split(viper.GetString(constants.ViperKeyAllowOrigins), ","))
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go svc.Serve(viper.GetString(constants.ViperKeyListenAddr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(shutdownCtx, "shutdown: %s", err.Error())
	}
}
