package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-colorable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"areaadmin/config"
	"areaadmin/internal/gateway"
	"areaadmin/internal/gateway/base"
	"areaadmin/internal/prompt"
	"areaadmin/internal/service/area"
	"areaadmin/pkg/cache"
	"areaadmin/pkg/code"
	"areaadmin/pkg/logger"
)

const usage = `usage: areactl [-f config] [-debug] <command> [flags] [args]

commands:
  list                 list areas
  get <pk>             show one area
  add                  create an area interactively
  edit <pk>            edit an area interactively
  create               create an area from flags
  update <pk>          update an area from flags
  delete <pk>          delete an area
`

var (
	configFile = flag.String("f", "", "the config file, defaults to ~/.areactl.yaml")
	debug      = flag.Bool("debug", false, "log every request as a curl command")
)

func main() {
	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage) }
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	// 初始化配置
	if err := config.LoadConfig(config.WithConfigFile(*configFile)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *debug {
		viper.Set("log.level", "DEBUG")
	}
	if err := run(flag.Args()); err != nil {
		// area failures were already shown as notifications
		var ce *code.Error
		if !errors.As(err, &ce) && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newShell(client gateway.IClient, queries *cache.QueryCache, out, errOut io.Writer,
	driver prompt.Driver) (*shell, error) {
	sh := &shell{
		out:       out,
		driver:    driver,
		confirmer: &prompt.Confirmer{Driver: driver},
	}
	sh.ui = area.UI{
		Notifier:  &notifier{w: errOut},
		Navigator: sh,
		Confirmer: sh.confirmer,
	}
	var err error
	if sh.srv, err = area.NewAreaSrv(client, queries, sh.ui); err != nil {
		return nil, err
	}
	return sh, nil
}

func run(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.New(
		logger.WithName("areactl"),
		logger.WithFields(zap.String("endpoint", viper.GetString("api.url"))),
		logger.WithLevel(viper.GetString("log.level")),
		logger.WithEncoder(viper.GetString("log.format")),
		logger.WithWriter(logger.SetWriter(viper.GetBool("log.console"), viper.GetString("log.path"))),
	)
	defer log.Sync()
	ctx = logger.With(ctx, log)

	reg := prometheus.NewRegistry()
	defer logMetrics(ctx, reg)

	tr, _, err := base.NewTransport(base.Config{
		URL:           viper.GetString("api.url"),
		Timeout:       viper.GetDuration("api.timeout"),
		Retry:         viper.GetInt("api.retry"),
		RetryInterval: viper.GetDuration("api.retry_interval"),
		RateLimit:     viper.GetFloat64("api.rate_limit"),
		Burst:         viper.GetInt("api.burst"),
		CSRFCookie:    viper.GetString("api.csrf_cookie"),
		CSRFHeader:    viper.GetString("api.csrf_header"),
		Cookies:       viper.GetStringMapString("api.cookies"),
		Registerer:    reg,
		Namespace:     "areactl",
	})
	if err != nil {
		log.Error("build transport failed", zap.Error(err))
		return err
	}
	queries := cache.New(
		cache.WithStaleTime(viper.GetDuration("cache.stale_time")),
		cache.WithCleanupInterval(viper.GetDuration("cache.cleanup_interval")),
	)

	sh, err := newShell(gateway.NewClient(tr, viper.GetString("api.url")), queries,
		colorable.NewColorableStdout(), colorable.NewColorableStderr(), prompt.NewSurveyDriver())
	if err != nil {
		log.Error("build area service failed", zap.Error(err))
		return err
	}
	sh.pageSize = viper.GetInt("table.page_size")
	return sh.Run(ctx, args)
}
