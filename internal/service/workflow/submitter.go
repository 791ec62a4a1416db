package workflow

import (
	"context"

	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/google/uuid"

	"media-clip-service/internal/consts"
	"media-clip-service/internal/model/entity"
	"media-clip-service/internal/service/mediatoad"
)

// SubmitPipeline 为一批转写记录构造任务图并作为单个作业提交给引擎，
// 返回作业句柄。每条记录展开为三个任务：transcription 消费源资产，
// segmentation 消费转写产物，clip（批量模式）同时消费源资产与切分产物。
// 本组件不做重试，提交失败原样抛给调用方。
func (s *Service) SubmitPipeline(ctx context.Context, transcripts []*entity.Transcript, assets []*entity.Asset, urls map[string]string) (string, error) {
	if len(transcripts) == 0 {
		return "", gerror.NewCode(consts.CodeValidation, "没有可提交的转写记录")
	}

	assetById := make(map[string]*entity.Asset, len(assets))
	for _, a := range assets {
		assetById[a.Id] = a
	}

	params := &mediatoad.JobParams{
		JobId:  uuid.NewString(),
		Assets: make([]mediatoad.JobAsset, 0, len(transcripts)),
		Tasks:  make([]mediatoad.Task, 0, len(transcripts)*3),
		Storage: &mediatoad.Storage{
			Bucket:      s.cfg.Bucket,
			Base:        s.cfg.PathBase,
			StorageType: "s3",
		},
		Queue:      s.cfg.Queue,
		Type:       s.cfg.JobType,
		ExternalId: "",
	}

	for _, t := range transcripts {
		asset, ok := assetById[t.AssetId]
		if !ok {
			return "", gerror.NewCodef(consts.CodeValidation, "记录 %s 引用的资产 %s 不在本批次中", t.Id, t.AssetId)
		}

		sourceAsset := "video-asset-" + asset.Id
		transcriptionAsset := "transcription-asset-" + t.Id
		segmentationAsset := "segmentation-asset-" + t.Id
		taskNotify := &mediatoad.Notification{
			Url: mediatoad.NotificationURL(s.cfg.APIBase, consts.NotificationKindTask, t.Id),
		}

		params.Assets = append(params.Assets, mediatoad.JobAsset{
			Name: sourceAsset,
			Url:  urls[asset.Id],
		})
		params.Tasks = append(params.Tasks,
			mediatoad.Task{
				Operation:   consts.OperationTranscription,
				Id:          mediatoad.TaskID(consts.OperationTranscription, t.Id),
				Asset:       sourceAsset,
				OutputAsset: transcriptionAsset,
				Provider:    s.cfg.TranscriptionProvider,
				ApiKey:      s.cfg.TranscriptionAPIKey,
				Language:    s.cfg.Language,
				Notify:      taskNotify,
			},
			mediatoad.Task{
				Operation:   consts.OperationSegmentation,
				Id:          mediatoad.TaskID(consts.OperationSegmentation, t.Id),
				Asset:       transcriptionAsset,
				OutputAsset: segmentationAsset,
				Model:       s.cfg.SegmentationModel,
				ModelApiKey: s.cfg.SegmentationAPIKey,
				Notify:      taskNotify,
			},
			mediatoad.Task{
				Operation:     consts.OperationClip,
				Id:            mediatoad.TaskID(consts.OperationClip, t.Id),
				Asset:         sourceAsset,
				OutputAsset:   "clip-asset-" + t.Id,
				BatchClip:     true,
				SegmentsAsset: segmentationAsset,
				Notify:        taskNotify,
			},
		)
	}

	// 作业级回调端点按记录寻址，只有单记录批次能确定唯一的回调地址。
	if len(transcripts) == 1 {
		params.Notify = &mediatoad.Notification{
			Url: mediatoad.NotificationURL(s.cfg.APIBase, consts.NotificationKindJob, transcripts[0].Id),
		}
	}

	workflowId, err := s.engine.SubmitJob(ctx, params)
	if err != nil {
		return "", gerror.WrapCode(consts.CodeCollaborator, err, "作业提交失败")
	}
	g.Log().Infof(ctx, "作业 %s 已提交，包含 %d 条记录", workflowId, len(transcripts))
	return workflowId, nil
}
