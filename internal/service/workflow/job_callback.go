package workflow

import (
	"context"

	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"

	"media-clip-service/internal/consts"
	"media-clip-service/internal/service/mediatoad"
)

// JobCallback 处理作业级完成通知。这是独立于单任务对账的粗粒度兜底：
// 只要该记录的任何任务没有到达 DONE，记录就置为 FAILED。
// 从不向成功方向推进，也不会把已 DONE 的记录改回去。
func (s *Service) JobCallback(ctx context.Context, transcriptId string, payload *mediatoad.JobNotification) error {
	if payload == nil || transcriptId == "" {
		return gerror.NewCode(consts.CodeValidation, "通知载荷或记录ID缺失")
	}

	tasks := tasksForTranscript(payload.Tasks, transcriptId)
	if len(tasks) == 0 {
		// 任务ID对不上时退化为检查整个作业。
		tasks = payload.Tasks
	}
	if len(tasks) == 0 {
		return gerror.NewCode(consts.CodeValidation, "作业通知不含任何任务状态")
	}

	for _, task := range tasks {
		if task.Status == consts.TaskStatusDone {
			continue
		}
		affected, err := s.store.MarkFailed(ctx, transcriptId)
		if err != nil {
			return gerror.WrapCode(consts.CodeCollaborator, err, "标记记录失败状态时写库失败")
		}
		if affected == 0 {
			g.Log().Warningf(ctx, "[%s] 作业通知含未完成任务 %s(%s)，但记录已是 DONE 或不存在",
				transcriptId, task.Operation, task.Status)
			return nil
		}
		g.Log().Errorf(ctx, "[%s] 作业 %s 中任务 %s 终态为 %s，记录置为 FAILED",
			transcriptId, payload.JobId, task.Operation, task.Status)
		return nil
	}
	return nil
}

// tasksForTranscript 按确定性任务ID筛选属于该记录的任务。
func tasksForTranscript(tasks []mediatoad.TaskState, transcriptId string) []mediatoad.TaskState {
	operations := []string{consts.OperationTranscription, consts.OperationSegmentation, consts.OperationClip}
	matched := make([]mediatoad.TaskState, 0, len(operations))
	for _, op := range operations {
		if task := mediatoad.FindTask(tasks, mediatoad.TaskID(op, transcriptId)); task != nil {
			matched = append(matched, *task)
		}
	}
	return matched
}
