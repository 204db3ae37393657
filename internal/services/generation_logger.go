package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// GenerationLogger provides structured logging for dataset generation events
type GenerationLogger struct {
	logger *slog.Logger
}

// NewGenerationLogger creates a new generation logger
func NewGenerationLogger(logger *slog.Logger) GenerationLoggerInterface {
	return &GenerationLogger{
		logger: logger,
	}
}

func (gl *GenerationLogger) LogGenerationStarted(ctx context.Context, scenario string, rows int, seed int64) {
	gl.logger.InfoContext(ctx, "generation started",
		slog.String("event_type", "generation_started"),
		slog.String("scenario", scenario),
		slog.Int("rows", rows),
		slog.Int64("seed", seed),
		slog.Time("timestamp", time.Now()),
	)
}

func (gl *GenerationLogger) LogGenerationCompleted(ctx context.Context, scenario string, rows, incomeRows int, durationMs int64) {
	gl.logger.InfoContext(ctx, "generation completed",
		slog.String("event_type", "generation_completed"),
		slog.String("scenario", scenario),
		slog.Int("rows", rows),
		slog.Int("income_rows", incomeRows),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
	)
}

func (gl *GenerationLogger) LogGenerationFailed(ctx context.Context, scenario string, errorMsg string) {
	gl.logger.WarnContext(ctx, "generation failed",
		slog.String("event_type", "generation_failed"),
		slog.String("scenario", scenario),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
	)
}

func (gl *GenerationLogger) LogFileWritten(ctx context.Context, path string, rows int) {
	gl.logger.InfoContext(ctx, "file written",
		slog.String("event_type", "file_written"),
		slog.String("path", path),
		slog.Int("rows", rows),
		slog.Time("timestamp", time.Now()),
	)
}

func (gl *GenerationLogger) LogBatchPersisted(ctx context.Context, batchID uuid.UUID, rows int, durationMs int64) {
	gl.logger.InfoContext(ctx, "batch persisted",
		slog.String("event_type", "batch_persisted"),
		slog.String("batch_id", batchID.String()),
		slog.Int("rows", rows),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
	)
}

func (gl *GenerationLogger) LogBatchStaged(ctx context.Context, batchID uuid.UUID, rows int) {
	gl.logger.InfoContext(ctx, "batch staged",
		slog.String("event_type", "batch_staged"),
		slog.String("batch_id", batchID.String()),
		slog.Int("rows", rows),
		slog.Time("timestamp", time.Now()),
	)
}

func (gl *GenerationLogger) LogSummary(ctx context.Context, netWorth, income, expenses, investments string) {
	gl.logger.InfoContext(ctx, "batch summary",
		slog.String("event_type", "batch_summary"),
		slog.String("net_worth", netWorth),
		slog.String("total_income", income),
		slog.String("total_expenses", expenses),
		slog.String("total_investments", investments),
	)
}
