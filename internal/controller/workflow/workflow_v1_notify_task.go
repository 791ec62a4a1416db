package workflow

import (
	"context"

	v1 "media-clip-service/api/workflow/v1"
)

// NotifyTask 引擎单任务完成回调端点。对账失败时错误原样返回给引擎，
// 由引擎的通知投递机制决定是否重试；这里不做本地重试。
func (c *ControllerV1) NotifyTask(ctx context.Context, req *v1.NotifyTaskReq) (res *v1.NotifyTaskRes, err error) {
	if err = c.svc.TaskCallback(ctx, req.TranscriptId, &req.TaskNotification); err != nil {
		return nil, err
	}
	return &v1.NotifyTaskRes{Success: true}, nil
}
