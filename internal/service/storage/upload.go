package storage

import (
	"context"
	"io"

	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/volcengine/ve-tos-golang-sdk/v2/tos"
)

// PutObject 上传对象到默认存储桶。
func (c *Client) PutObject(ctx context.Context, key string, contentType string, content io.Reader) error {
	_, err := c.tos.PutObjectV2(ctx, &tos.PutObjectV2Input{
		PutObjectBasicInput: tos.PutObjectBasicInput{
			Bucket:      c.bucket,
			Key:         key,
			ContentType: contentType,
		},
		Content: content,
	})
	if err != nil {
		if serverErr, ok := err.(*tos.TosServerError); ok {
			return gerror.Wrapf(serverErr, "TOS 上传失败，RequestID=%s Code=%s", serverErr.RequestID, serverErr.Code)
		}
		return gerror.Wrap(err, "TOS 上传失败")
	}
	return nil
}
