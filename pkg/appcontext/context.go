package appcontext

import (
	"context"

	"github.com/sirupsen/logrus"
)

type contextId int

const (
	sourceDirKeyId contextId = iota
	outputDirKeyId
	timestampKeyId
	bundleKeyId
)

func WithSourceDir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, sourceDirKeyId, dir)
}

func WithOutputDir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, outputDirKeyId, dir)
}

func WithTimestamp(ctx context.Context, timestamp string) context.Context {
	return context.WithValue(ctx, timestampKeyId, timestamp)
}

func WithBundle(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, bundleKeyId, path)
}

func LoggerFromContext(logger logrus.FieldLogger, ctx context.Context) logrus.FieldLogger {
	if ctx == nil {
		return logger
	}

	result := logger

	if ctxSourceDir, ok := ctx.Value(sourceDirKeyId).(string); ok && ctxSourceDir != "" {
		result = result.WithField("source_dir", ctxSourceDir)
	}

	if ctxOutputDir, ok := ctx.Value(outputDirKeyId).(string); ok && ctxOutputDir != "" {
		result = result.WithField("output_dir", ctxOutputDir)
	}

	if ctxTimestamp, ok := ctx.Value(timestampKeyId).(string); ok && ctxTimestamp != "" {
		result = result.WithField("timestamp", ctxTimestamp)
	}

	if ctxBundle, ok := ctx.Value(bundleKeyId).(string); ok && ctxBundle != "" {
		result = result.WithField("bundle", ctxBundle)
	}

	return result
}
