package workflow

import (
	"context"

	v1 "media-clip-service/api/workflow/v1"
	workflowSvc "media-clip-service/internal/service/workflow"
)

// Register 登记已直传的对象并提交流水线。
func (c *ControllerV1) Register(ctx context.Context, req *v1.RegisterReq) (res *v1.RegisterRes, err error) {
	uploads := make([]workflowSvc.Upload, 0, len(req.Uploads))
	for _, u := range req.Uploads {
		uploads = append(uploads, workflowSvc.Upload{
			Key:    u.Key,
			Bucket: u.Bucket,
			Name:   u.Name,
		})
	}

	transcripts, assets, urls, err := c.svc.RegisterAssets(ctx, uploads)
	if err != nil {
		return nil, err
	}
	workflowId, err := c.svc.SubmitPipeline(ctx, transcripts, assets, urls)
	if err != nil {
		return nil, err
	}

	res = &v1.RegisterRes{WorkflowId: workflowId}
	for _, t := range transcripts {
		res.Transcripts = append(res.Transcripts, v1.TranscriptMeta{
			Id:      t.Id,
			AssetId: t.AssetId,
			Title:   t.Title,
			Status:  t.Status,
		})
	}
	return res, nil
}
