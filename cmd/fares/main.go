package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	lib "github.com/le0holt/Fares"
	"github.com/le0holt/Fares/config"
	"github.com/le0holt/Fares/dataset"
)

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|serve")
	format := flag.String("format", "text", "text|json")
	route := flag.String("route", "", "route name (optional)")
	faretype := flag.String("faretype", "", "fare type label")
	start := flag.String("start", "", "start place")
	end := flag.String("end", "", "destination place")
	startStage := flag.String("startStage", "", "explicit start fare stage")
	endStage := flag.String("endStage", "", "explicit end fare stage")
	archive := flag.String("archive", "", "dataset archive path or URL (overrides config)")
	logLevel := flag.String("logLevel", "info", "zap log level")
	flag.Parse()

	logger, err := lib.InitLogging(*logLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := config.LoadAppConfig(); err != nil {
		if *mode == "serve" {
			logger.Fatalw("config load failed", "error", err)
		}
		config.Config.Resolver = config.DefaultResolver()
	}
	if *archive != "" {
		if strings.Contains(*archive, "://") {
			config.Config.Dataset.ArchiveURL = *archive
			config.Config.Dataset.ArchivePath = ""
		} else {
			config.Config.Dataset.ArchivePath = *archive
		}
	}

	store := dataset.NewStore(dataset.NewLoader(config.Config.Dataset, logger))
	if _, err := store.Reload(); err != nil {
		logger.Warnw("initial dataset load failed", "error", err)
	}

	switch *mode {
	case "serve":
		lib.StartServer(store)
		lib.HandleGracefulShutdown()
	case "oneshot":
		eng := lib.NewEngine(store.Snapshot(), config.Config.Resolver)
		q := lib.FareQuery{
			Route:    *route,
			FareType: *faretype,
			Start:    *start,
			End:      *end,
		}
		var res lib.FareResult
		if *startStage != "" || *endStage != "" {
			res = eng.ResolveStages(q, *startStage, *endStage)
		} else {
			res = eng.ResolveFare(q)
		}
		if *format == "json" {
			buf, err := json.Marshal(res)
			if err != nil {
				panic(err)
			}
			fmt.Println(string(buf))
		} else {
			fmt.Println(lib.FormatResult(res, config.Config.Resolver.CurrencySymbol))
		}
	default:
		panic("unknown mode")
	}
}
