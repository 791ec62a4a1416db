package workflow

import (
	"context"

	"github.com/gogf/gf/v2/errors/gerror"

	v1 "media-clip-service/api/workflow/v1"
	"media-clip-service/internal/dao"
)

func (c *ControllerV1) ListTranscripts(ctx context.Context, req *v1.ListTranscriptsReq) (res *v1.ListTranscriptsRes, err error) {
	res = &v1.ListTranscriptsRes{}
	limit := req.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	cols := dao.Transcript.Columns()
	if err = dao.Transcript.Ctx(ctx).
		Fields(cols.Id, cols.AssetId, cols.Title, cols.Status, cols.CreatedAt, cols.UpdatedAt).
		OrderDesc(cols.CreatedAt).
		Limit(limit).
		Scan(&res.Transcripts); err != nil {
		return nil, gerror.Wrap(err, "查询数据库失败")
	}
	return res, nil
}
