package workflow

import (
	"context"

	v1 "media-clip-service/api/workflow/v1"
)

// NotifyJob 引擎作业完成回调端点，失败兜底。
func (c *ControllerV1) NotifyJob(ctx context.Context, req *v1.NotifyJobReq) (res *v1.NotifyJobRes, err error) {
	if err = c.svc.JobCallback(ctx, req.TranscriptId, &req.JobNotification); err != nil {
		return nil, err
	}
	return &v1.NotifyJobRes{Success: true}, nil
}
