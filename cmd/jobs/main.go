// Command jobs runs one generation or sharing job and exits. It is meant to be
// invoked by a scheduler (cron, CI schedule).
//
//	jobs --job=quiz
//	jobs --job=horoscope --date=2025-04-01
//	jobs --job=share-horoscope
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"quiz-zone/internal/adapter/imagegen"
	"quiz-zone/internal/adapter/llmgen"
	"quiz-zone/internal/adapter/storage"
	"quiz-zone/internal/adapter/telegram"
	"quiz-zone/internal/config"
	"quiz-zone/internal/database"
	"quiz-zone/internal/domain"
	"quiz-zone/internal/logger"
	"quiz-zone/internal/repository"
	"quiz-zone/internal/service"
	"quiz-zone/internal/util"
	"quiz-zone/internal/validation"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const (
	exitFailure     = 1
	exitUsage       = 2
	exitInvalidData = 3
)

func main() {
	flags := pflag.NewFlagSet("jobs", pflag.ExitOnError)
	jobName := flags.String("job", "", "job to run: "+strings.Join([]string{
		service.JobQuiz, service.JobHoroscope, service.JobPastEvent, service.JobShareHoroscope, service.JobShareQuizzes,
	}, ", "))
	date := flags.String("date", "", "optional date override (YYYY-MM-DD)")
	timeout := flags.Duration("timeout", 10*time.Minute, "overall time limit")
	_ = flags.Parse(os.Args[1:])

	if *jobName == "" {
		fmt.Fprintln(os.Stderr, "--job is required")
		flags.PrintDefaults()
		os.Exit(exitUsage)
	}
	override, err := service.ParseJobDate(*date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get().With(zap.String("job", *jobName))
	defer logger.Sync()

	db, err := database.NewSQLXPostgresDB(cfg.GetDSN(), database.Options{MaxOpenConns: 4, MaxIdleConns: 2})
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	runner, err := buildRunner(*jobName, cfg, db, appLogger)
	if err != nil {
		appLogger.Error("Failed to set up job", zap.Error(err))
		os.Exit(exitFailure)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	result, err := runner.Run(ctx, *jobName, service.JobOptions{Date: override})
	if err != nil {
		os.Exit(exitCode(err))
	}

	out, _ := json.Marshal(result)
	fmt.Println(string(out))
}

// buildRunner wires only what the requested job needs so that, for example,
// a horoscope run does not require Telegram credentials.
func buildRunner(name string, cfg *config.Config, db *sqlx.DB, appLogger *zap.Logger) (*service.JobRunner, error) {
	categoryRepository := repository.NewCategoryDatabaseAdapter(db)
	quizRepository := repository.NewQuizDatabaseAdapter(db)
	horoscopeRepository := repository.NewHoroscopeDatabaseAdapter(db)
	pastEventRepository := repository.NewPastEventDatabaseAdapter(db)

	switch name {
	case service.JobQuiz, service.JobHoroscope, service.JobPastEvent:
		model, err := llmgen.NewModel(cfg.LLM)
		if err != nil {
			return nil, err
		}
		generator := llmgen.NewGenerator(model, cfg.LLM, validation.NewValidator(), appLogger)
		return service.NewJobRunner(appLogger,
			service.NewQuizGenerationService(categoryRepository, quizRepository, generator, util.Rand{}, cfg.Generation, appLogger),
			service.NewHoroscopeGenerationService(horoscopeRepository, generator, nil, time.Now, cfg.Generation, appLogger),
			service.NewPastEventGenerationService(pastEventRepository, generator, cfg.Generation, appLogger),
		), nil

	case service.JobShareHoroscope, service.JobShareQuizzes:
		bot, err := telegram.NewBot(cfg.Telegram.BotToken)
		if err != nil {
			return nil, err
		}
		renderer, err := imagegen.NewCardRenderer(cfg.Site.Name)
		if err != nil {
			return nil, err
		}
		deps := service.ShareDeps{
			Storage:   storage.NewS3Storage(storage.NewS3Client(cfg.Storage), cfg.Storage),
			Publisher: telegram.NewPublisher(bot, cfg.Telegram.Channel, appLogger),
			Renderer:  renderer,
			Now:       time.Now,
			Site:      cfg.Site,
			KeyPrefix: cfg.Storage.KeyPrefix,
			Delay:     cfg.Telegram.ShareDelay,
			Logger:    appLogger,
		}
		return service.NewJobRunner(appLogger,
			service.NewShareHoroscopeService(horoscopeRepository, deps),
			service.NewShareQuizzesService(quizRepository, deps),
		), nil
	}
	return nil, domain.NewInvalidInputError(fmt.Sprintf("unknown job %q", name))
}

func exitCode(err error) int {
	switch {
	case domain.HasCode(err, domain.CodeGenerationSchema):
		return exitInvalidData
	case domain.HasCode(err, domain.CodeInvalidInput):
		return exitUsage
	default:
		return exitFailure
	}
}
