package workflow

import (
	"context"

	"github.com/gogf/gf/v2/errors/gcode"
	"github.com/gogf/gf/v2/errors/gerror"

	v1 "media-clip-service/api/workflow/v1"
	"media-clip-service/internal/dao"
)

// DeleteTranscript 删除记录及其剪辑。这是 UI 层面的操作，对账核心从不删除记录。
func (c *ControllerV1) DeleteTranscript(ctx context.Context, req *v1.DeleteTranscriptReq) (res *v1.DeleteTranscriptRes, err error) {
	res = &v1.DeleteTranscriptRes{}
	if _, err := dao.Clip.Ctx(ctx).Where(dao.Clip.Columns().TranscriptId, req.TranscriptId).Delete(); err != nil {
		return nil, gerror.WrapCode(gcode.CodeDbOperationError, err, "删除剪辑失败")
	}
	if sqlRes, err := dao.Transcript.Ctx(ctx).Where(dao.Transcript.Columns().Id, req.TranscriptId).Delete(); err != nil {
		return nil, gerror.WrapCode(gcode.CodeDbOperationError, err, "删除记录失败")
	} else if eftRow, err := sqlRes.RowsAffected(); eftRow == 0 {
		return nil, gerror.New("找不到记录。数据库影响行数为0。")
	} else if err != nil {
		return nil, gerror.WrapCode(gcode.CodeDbOperationError, err, "检查记录删除情况失败")
	}
	res.Success = true
	return
}
