package cmd

import (
	"context"
	"fmt"

	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/net/ghttp"
	"github.com/gogf/gf/v2/os/gcmd"

	workflowCtrl "media-clip-service/internal/controller/workflow"
	"media-clip-service/internal/middlewares"
	"media-clip-service/internal/service/mediatoad"
	"media-clip-service/internal/service/storage"
	workflowSvc "media-clip-service/internal/service/workflow"
)

var (
	Main = gcmd.Command{
		Name:  "main",
		Usage: "main",
		Brief: "start http server",
		Func: func(ctx context.Context, parser *gcmd.Parser) (err error) {
			fmt.Println(`
 __  __          _ _          ____ _ _         ____                  _
|  \/  | ___  __| (_) __ _   / ___| (_)_ __   / ___|  ___ _ ____   _(_) ___ ___
| |\/| |/ _ \/ _` + "`" + ` | |/ _` + "`" + ` | | |   | | | '_ \  \___ \ / _ \ '__\ \ / / |/ __/ _ \
| |  | |  __/ (_| | | (_| | | |___| | | |_) |  ___) |  __/ |   \ V /| | (_|  __/
|_|  |_|\___|\__,_|_|\__,_|  \____|_|_| .__/  |____/ \___|_|    \_/ |_|\___\___|
                                      |_|
			`)
			fmt.Println("Media Clip Microservice")
			fmt.Println()

			objects, err := storage.New(ctx)
			if err != nil {
				return err
			}
			engine := mediatoad.NewClient(ctx)
			svc := workflowSvc.New(workflowSvc.NewStore(), objects, engine, loadWorkflowConfig(ctx))

			s := g.Server()
			s.SetPort(g.Cfg().MustGet(ctx, "server.port").Int())
			s.SetClientMaxBodySize(1024 * 1024 * 1024)
			s.Use(middlewares.BrotliMiddleware)
			s.Use(ghttp.MiddlewareCORS)

			oai := s.GetOpenApi()
			oai.Config.CommonResponse = ghttp.DefaultHandlerResponse{}
			oai.Config.CommonResponseDataField = "Data"
			s.SetOpenApiPath(g.Cfg().MustGet(ctx, "server.openapiPath").String())
			s.SetSwaggerPath(g.Cfg().MustGet(ctx, "server.swaggerPath").String())

			s.Group("/workflow", func(group *ghttp.RouterGroup) {
				group.Middleware(ghttp.MiddlewareHandlerResponse)
				group.Bind(
					workflowCtrl.NewV1(svc, objects),
				)
			})

			s.Run()
			return nil
		},
	}
)

func loadWorkflowConfig(ctx context.Context) workflowSvc.Config {
	return workflowSvc.Config{
		APIBase:               g.Cfg().MustGet(ctx, "server.apiBase").String(),
		Bucket:                g.Cfg().MustGet(ctx, "volc.tos.bucket").String(),
		PathBase:              g.Cfg().MustGet(ctx, "mediatoad.pathBase").String(),
		TranscriptionProvider: g.Cfg().MustGet(ctx, "providers.transcription.provider").String(),
		TranscriptionAPIKey:   g.Cfg().MustGet(ctx, "providers.transcription.apiKey").String(),
		Language:              g.Cfg().MustGet(ctx, "providers.transcription.language").String(),
		SegmentationModel:     g.Cfg().MustGet(ctx, "providers.segmentation.model").String(),
		SegmentationAPIKey:    g.Cfg().MustGet(ctx, "providers.segmentation.apiKey").String(),
		Queue:                 g.Cfg().MustGet(ctx, "mediatoad.queue.selector").String(),
		JobType:               g.Cfg().MustGet(ctx, "mediatoad.jobType").String(),
	}
}
