package main

import (
	"context"
	"time"

	"festfusion/config"
	"festfusion/internal/credentials"
	"festfusion/internal/handler"
	"festfusion/internal/intake"
	"festfusion/internal/redis"
	"festfusion/internal/server"
	"festfusion/internal/services"
	"festfusion/internal/storage"
	"festfusion/internal/summarizer"
	"festfusion/internal/tabular"
	"festfusion/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	mode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		mode = logger.ProductionMode
	}
	l := logger.New(mode)
	logger.SetGlobalLogger(l)

	ctx := context.Background()

	// Local intake is the primary archival path and always available.
	fileStore := intake.NewStore(cfg.UploadDir, cfg.MaxUploadBytes)

	// Object store mirror is best-effort: without a bucket the service runs
	// with local copies only.
	var archiver services.Archiver
	if cfg.S3Bucket != "" {
		s3Client, err := storage.NewClient(ctx, storage.S3Config{
			Region:     cfg.S3Region,
			Bucket:     cfg.S3Bucket,
			AccessKey:  cfg.S3AccessKey,
			SecretKey:  cfg.S3SecretKey,
			Endpoint:   cfg.S3Endpoint,
			PublicBase: cfg.S3PublicBase,
			PresignTTL: 24 * time.Hour,
		})
		if err != nil {
			l.Warnf("object store unavailable, continuing without remote archival: %s", err)
		} else {
			archiver = storage.NewArchiver(s3Client)
		}
	}

	// The worksheet is the system of record. Credential or lookup failure
	// leaves the recorder nil; confirms then fail with a credential error
	// while intake keeps working.
	var recorder services.Recorder
	var cleaner services.RowCleaner
	provider := credentials.NewProvider(cfg.GoogleKeyfile, cfg.GoogleCredentialsJSON)
	if opts, err := provider.Acquire(); err != nil {
		l.Warnf("tabular store disabled: %s", err)
	} else if ws, err := tabular.OpenByName(ctx, cfg.SpreadsheetName, opts...); err != nil {
		l.Warnf("could not open spreadsheet %q: %s", cfg.SpreadsheetName, err)
	} else {
		rec := tabular.NewRecorder(ws, l)
		recorder = rec
		cleaner = rec
	}

	var model summarizer.ModelSummarizer
	var transcriber services.Transcriber
	if cfg.SummaryStrategy == summarizer.StrategyModel && cfg.GenAIKey != "" {
		genaiClient, err := summarizer.NewGenAIClient(ctx, cfg.GenAIKey, cfg.GenAIModel)
		if err != nil {
			l.Warnf("model summarizer unavailable, using templates: %s", err)
		} else {
			model = genaiClient
			transcriber = genaiClient
		}
	}
	summaries := summarizer.NewService(cfg.SummaryStrategy, model, l)

	redis.Initialize(redis.Config{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
	})
	drafts := redis.NewDraftStore(redis.GetClient(), time.Duration(cfg.DraftTTLMin)*time.Minute)
	limiter := redis.NewRateLimiter(redis.GetClient(), redis.RateLimitConfig{
		SubmitLimit:  cfg.SubmitLimit,
		SubmitWindow: time.Duration(cfg.SubmitWindowSec) * time.Second,
		AdminLimit:   redis.DefaultRateLimitConfig().AdminLimit,
		AdminWindow:  redis.DefaultRateLimitConfig().AdminWindow,
	})

	submissionService := services.NewSubmissionService(fileStore, archiver, recorder, summaries, transcriber, drafts, l)
	diagnostics := services.NewDiagnosticsService(cleaner, func() error {
		_, err := provider.Acquire()
		return err
	}, l)

	srv := server.New(cfg, l)
	srv.SetupRoutes(&server.Handlers{
		Submissions: handler.NewSubmissionHandler(submissionService, cfg.MaxUploadBytes),
		Districts:   handler.NewDistrictHandler(),
		Admin:       handler.NewAdminHandler(diagnostics),
	}, limiter)

	if err := srv.Start(); err != nil {
		l.Errorf("server exited with error: %s", err)
	}
}
