package workflow

import (
	"context"

	"github.com/gogf/gf/v2/encoding/gjson"
	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/google/uuid"

	"media-clip-service/internal/consts"
	"media-clip-service/internal/model/do"
	"media-clip-service/internal/service/mediatoad"
)

// TaskCallback 处理引擎的单任务完成通知，把通知折叠为一次状态转移。
// 转移由完成任务的 operation 决定；每次推进都要求记录处于期望的前置
// 状态，否则拒绝（重复或乱序投递）。任务级失败标记短路整个转移表，
// 记录直接置为 FAILED。
func (s *Service) TaskCallback(ctx context.Context, transcriptId string, payload *mediatoad.TaskNotification) error {
	if payload == nil || transcriptId == "" {
		return gerror.NewCode(consts.CodeValidation, "通知载荷或记录ID缺失")
	}

	task := payload.Task
	if task == nil && payload.TaskId != "" {
		task = mediatoad.FindTask(payload.Tasks, payload.TaskId)
	}
	if task == nil {
		return gerror.NewCodef(consts.CodeValidation, "通知载荷缺少任务结果，taskId=%s", payload.TaskId)
	}

	// 任务ID由 (operation, 记录ID) 确定性生成，回调地址中的记录ID必须能从
	// 任务ID还原出来，对不上说明通知投错了端点。
	if task.Id != "" && mediatoad.TranscriptIDFromTask(task.Id, task.Operation) != transcriptId {
		return gerror.NewCodef(consts.CodeValidation, "任务 %s 不属于记录 %s", task.Id, transcriptId)
	}

	if task.Failed() {
		return s.failTranscript(ctx, transcriptId, task)
	}

	switch task.Operation {
	case consts.OperationTranscription:
		return s.advance(ctx, transcriptId, consts.StatusTranscribing, consts.StatusGeneratingSegments, task.Operation)
	case consts.OperationSegmentation:
		return s.advance(ctx, transcriptId, consts.StatusGeneratingSegments, consts.StatusGeneratingClips, task.Operation)
	case consts.OperationClip:
		return s.commitPipeline(ctx, transcriptId, payload)
	default:
		return gerror.NewCodef(consts.CodeValidation, "未知的任务操作类型：%s", task.Operation)
	}
}

// advance 纯状态推进，不取任何数据。
func (s *Service) advance(ctx context.Context, id, from, to, operation string) error {
	affected, err := s.store.AdvanceStatus(ctx, id, from, to)
	if err != nil {
		return gerror.WrapCode(consts.CodeCollaborator, err, "更新记录状态失败")
	}
	if affected == 0 {
		return gerror.NewCodef(consts.CodeValidation,
			"记录 %s 不在 %s 状态，拒绝 %s 完成通知（重复或乱序投递）", id, from, operation)
	}
	g.Log().Infof(ctx, "[%s] %s 完成，状态推进 %s -> %s", id, operation, from, to)
	return nil
}

// failTranscript 任务级失败：记录强制置为 FAILED。已 DONE 的记录不回退。
func (s *Service) failTranscript(ctx context.Context, id string, task *mediatoad.TaskState) error {
	affected, err := s.store.MarkFailed(ctx, id)
	if err != nil {
		return gerror.WrapCode(consts.CodeCollaborator, err, "标记记录失败状态时写库失败")
	}
	if affected == 0 {
		g.Log().Warningf(ctx, "[%s] 收到 %s 任务失败通知，但记录已是 DONE 或不存在", id, task.Operation)
		return nil
	}
	g.Log().Errorf(ctx, "[%s] 任务 %s 失败，记录置为 FAILED。error=%s workflowFailed=%v",
		id, task.Operation, task.Error, task.WorkflowFailed)
	return gerror.NewCodef(consts.CodeFatalUpstream, "引擎上报任务 %s 失败：%s", task.Operation, task.Error)
}

// commitPipeline 剪辑任务完成是整条流水线的提交点：取回转写结果，
// 写入记录并置 DONE，然后批量落库剪辑资产与剪辑行。
//
// DONE 更新先于资产/剪辑的落库，且各步不在同一事务中，后续步骤失败时
// 前面的变更不回滚。这是 store 协作方不提供跨行事务前提下的已知缺口，
// 不在此处掩盖。
func (s *Service) commitPipeline(ctx context.Context, id string, payload *mediatoad.TaskNotification) error {
	transcriptionTask := mediatoad.FindTask(payload.Tasks, mediatoad.TaskID(consts.OperationTranscription, id))
	segmentationTask := mediatoad.FindTask(payload.Tasks, mediatoad.TaskID(consts.OperationSegmentation, id))
	clipTask := mediatoad.FindTask(payload.Tasks, mediatoad.TaskID(consts.OperationClip, id))
	if transcriptionTask == nil || segmentationTask == nil || clipTask == nil {
		return gerror.NewCodef(consts.CodeValidation,
			"通知未捆绑全部三个任务结果。transcription=%v segmentation=%v clip=%v",
			transcriptionTask != nil, segmentationTask != nil, clipTask != nil)
	}

	if transcriptionTask.Key == "" {
		return gerror.NewCode(consts.CodeValidation, "转写任务结果缺少存储位置")
	}
	transcriptResult, err := s.objects.DownloadJSON(ctx, transcriptionTask.Bucket, transcriptionTask.Key)
	if err != nil {
		return gerror.WrapCode(consts.CodeCollaborator, err, "下载转写结果失败")
	}
	response := transcriptResult.Get("transcript")
	if response.IsNil() {
		return gerror.NewCodef(consts.CodeCollaborator, "转写结果缺少 transcript 字段，key=%s", transcriptionTask.Key)
	}

	// 切分产物缺失不阻塞完成，剪辑已经生成。
	var segments *gjson.Json
	if segmentationTask.Key == "" {
		g.Log().Warningf(ctx, "[%s] 切分任务结果没有存储位置，segments 留空", id)
	} else if segments, err = s.objects.DownloadJSON(ctx, segmentationTask.Bucket, segmentationTask.Key); err != nil {
		g.Log().Warningf(ctx, "[%s] 下载切分结果失败，segments 留空: %v", id, err)
		segments = nil
	}

	batch := clipTask.BatchClips
	if len(batch) == 0 {
		return gerror.NewCode(consts.CodeValidation, "剪辑任务结果不含任何批量剪辑")
	}
	seen := make(map[string]struct{}, len(batch))
	for _, entry := range batch {
		if entry.Key == "" {
			return gerror.NewCode(consts.CodeValidation, "批量剪辑存在空的存储 key")
		}
		if _, dup := seen[entry.Key]; dup {
			return gerror.NewCodef(consts.CodeValidation, "批量剪辑存储 key 重复：%s（疑似引擎缺陷）", entry.Key)
		}
		seen[entry.Key] = struct{}{}
		if entry.Start < 0 || entry.Start >= entry.End {
			return gerror.NewCodef(consts.CodeValidation, "剪辑区间非法：start=%v end=%v key=%s", entry.Start, entry.End, entry.Key)
		}
	}

	affected, err := s.store.CompleteTranscript(ctx, id, gjson.New(response.Val()), segments)
	if err != nil {
		return gerror.WrapCode(consts.CodeCollaborator, err, "写入转写结果失败")
	}
	if affected == 0 {
		return gerror.NewCodef(consts.CodeValidation,
			"记录 %s 不在 %s 状态，拒绝流水线提交（重复、乱序或记录已删除）", id, consts.StatusGeneratingClips)
	}

	assetRows := make([]*do.Asset, 0, len(batch))
	keys := make([]string, 0, len(batch))
	for _, entry := range batch {
		bucket := entry.Bucket
		if bucket == "" {
			bucket = s.objects.Bucket()
		}
		assetRows = append(assetRows, &do.Asset{
			Id:     uuid.NewString(),
			Bucket: bucket,
			Key:    entry.Key,
			Name:   "clip-" + entry.Key,
		})
		keys = append(keys, entry.Key)
	}
	affected, err = s.store.InsertAssets(ctx, assetRows)
	if err != nil {
		return gerror.WrapCode(consts.CodeCollaborator, err, "剪辑资产写库失败")
	}
	if affected != int64(len(assetRows)) {
		return gerror.NewCodef(consts.CodeCollaborator, "剪辑资产写库行数不符：期望 %d，实际 %d", len(assetRows), affected)
	}

	// 按存储 key 回查并关联，不依赖插入顺序。
	insertedAssets, err := s.store.AssetsByKeys(ctx, keys)
	if err != nil {
		return gerror.WrapCode(consts.CodeCollaborator, err, "回查剪辑资产失败")
	}
	assetIdByKey := make(map[string]string, len(insertedAssets))
	for _, a := range insertedAssets {
		assetIdByKey[a.Key] = a.Id
	}

	clipRows := make([]*do.Clip, 0, len(batch))
	for _, entry := range batch {
		assetId, ok := assetIdByKey[entry.Key]
		if !ok {
			return gerror.NewCodef(consts.CodeCollaborator, "批量剪辑 %s 找不到对应的资产行", entry.Key)
		}
		clipRows = append(clipRows, &do.Clip{
			Id:           uuid.NewString(),
			TranscriptId: id,
			AssetId:      assetId,
			Start:        entry.Start,
			End:          entry.End,
			Metadata:     gjson.New(entry),
		})
	}
	affected, err = s.store.InsertClips(ctx, clipRows)
	if err != nil {
		return gerror.WrapCode(consts.CodeCollaborator, err, "剪辑写库失败")
	}
	if affected != int64(len(clipRows)) {
		return gerror.NewCodef(consts.CodeCollaborator,
			"剪辑写库行数不符：期望 %d，实际 %d（记录已置 DONE，需人工对账）", len(clipRows), affected)
	}

	g.Log().Infof(ctx, "[%s] 流水线提交完成：%d 个剪辑落库，状态 %s", id, len(clipRows), consts.StatusDone)
	return nil
}
