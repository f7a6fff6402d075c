package app

import (
	"context"

	"github.com/carousell/ct-go/pkg/logger"
	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"

	"github.com/namanpunn/logikxmind-uat/internal/config"
	"github.com/namanpunn/logikxmind-uat/internal/repo/llm"
	"github.com/namanpunn/logikxmind-uat/internal/repo/mongodb"
	"github.com/namanpunn/logikxmind-uat/internal/server"
	"github.com/namanpunn/logikxmind-uat/internal/usecase"
)

func Invoke(funcs ...any) *fx.App {
	log := logger.MustNamed("app")
	conf := config.MustLoad()
	log.Debugw("config loaded", log.Reflect("config", conf))
	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{
				Logger: log.Unwrap().Desugar(),
			}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Provide(
			newGenkitClient,
			newMongoDB,

			server.NewController,
			server.NewComplaintController,
			server.NewRoadmapController,
			server.NewAuthController,

			usecase.NewChatUsecase,
			usecase.NewComplaintUsecase,
			usecase.NewRoadmapUsecase,
			usecase.NewAuthUsecase,

			mongodb.NewStudentRepository,
			mongodb.NewChatEntryRepository,
			mongodb.NewComplaintRepository,
			mongodb.NewRoadmapRepository,

			newCatalogRepository,
			llm.NewMentor,
		),
		fx.Supply(conf),
		fx.Invoke(funcs...),
	)
}

func newGenkitClient(cfg *config.Config) (*genkit.Genkit, error) {
	ctx := context.Background()
	googleAI := &googlegenai.GoogleAI{
		APIKey: cfg.LLM.GeminiAPIKey,
	}
	return genkit.Init(ctx, genkit.WithPlugins(googleAI)), nil
}
