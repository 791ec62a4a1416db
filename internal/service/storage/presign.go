package storage

import (
	"context"

	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/volcengine/ve-tos-golang-sdk/v2/tos"
	"github.com/volcengine/ve-tos-golang-sdk/v2/tos/enum"
)

// PresignGet 生成对象的预签名下载地址。地址是临时能力凭证，不落库，读取时按需重新生成。
func (c *Client) PresignGet(ctx context.Context, key string, expires int64) (string, error) {
	url, err := c.tos.PreSignedURL(&tos.PreSignedURLInput{
		HTTPMethod: enum.HttpMethodGet,
		Bucket:     c.bucket,
		Key:        key,
		Expires:    expires,
	})
	if err != nil {
		return "", gerror.Wrap(err, "获取文件访问地址失败")
	}
	return url.SignedUrl, nil
}

// PresignPut 生成对象的预签名上传地址，供浏览器直传使用。
func (c *Client) PresignPut(ctx context.Context, key string, expires int64) (string, error) {
	url, err := c.tos.PreSignedURL(&tos.PreSignedURLInput{
		HTTPMethod: enum.HttpMethodPut,
		Bucket:     c.bucket,
		Key:        key,
		Expires:    expires,
	})
	if err != nil {
		return "", gerror.Wrap(err, "获取文件上传地址失败")
	}
	return url.SignedUrl, nil
}
