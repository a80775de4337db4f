package domainfx

import (
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(PathResolver),
	fx.Provide(JobProvider),
	fx.Provide(HistoryLog),
	fx.Provide(Archiver),
	fx.Provide(RetentionSweeper),
	fx.Provide(ArchiveService),
	fx.Invoke(RunArchiveJob),
)
