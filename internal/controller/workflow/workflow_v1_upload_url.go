package workflow

import (
	"context"
	"path/filepath"

	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/google/uuid"

	v1 "media-clip-service/api/workflow/v1"
	"media-clip-service/internal/consts"
)

// UploadURL 为浏览器直传生成预签名 PUT 地址。直传完成后调用 Register 登记。
func (c *ControllerV1) UploadURL(ctx context.Context, req *v1.UploadURLReq) (res *v1.UploadURLRes, err error) {
	pathBase := g.Cfg().MustGet(ctx, "mediatoad.pathBase").String()
	key := pathBase + "/" + uuid.NewString() + filepath.Ext(req.Filename)

	url, err := c.objects.PresignPut(ctx, key, consts.PresignExpires)
	if err != nil {
		return nil, gerror.Wrap(err, "生成预签名上传地址失败")
	}
	return &v1.UploadURLRes{
		Url:    url,
		Key:    key,
		Bucket: c.objects.Bucket(),
	}, nil
}
