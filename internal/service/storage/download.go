package storage

import (
	"context"
	"io"

	"github.com/gogf/gf/v2/encoding/gjson"
	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/volcengine/ve-tos-golang-sdk/v2/tos"
)

// DownloadJSON 下载对象并解析为 JSON。bucket 为空时使用默认存储桶。
func (c *Client) DownloadJSON(ctx context.Context, bucket, key string) (*gjson.Json, error) {
	if bucket == "" {
		bucket = c.bucket
	}
	output, err := c.tos.GetObjectV2(ctx, &tos.GetObjectV2Input{
		Bucket: bucket,
		Key:    key,
	})
	if err != nil {
		return nil, gerror.Wrapf(err, "下载对象失败，key=%s", key)
	}
	defer output.Content.Close()

	raw, err := io.ReadAll(output.Content)
	if err != nil {
		return nil, gerror.Wrapf(err, "读取对象内容失败，key=%s", key)
	}
	parsed, err := gjson.LoadContent(raw)
	if err != nil {
		return nil, gerror.Wrapf(err, "对象内容不是合法 JSON，key=%s", key)
	}
	if parsed == nil {
		return nil, gerror.Newf("对象内容为空，key=%s", key)
	}
	return parsed, nil
}
