package storage

import (
	"context"

	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/volcengine/ve-tos-golang-sdk/v2/tos"
)

// Client 封装 TOS 对象存储访问。统一通过构造函数注入，便于测试替换。
type Client struct {
	tos    *tos.ClientV2
	bucket string
}

func New(ctx context.Context) (*Client, error) {
	g.Log().Info(ctx, "Volcengine TOS GO SDK Version:", tos.Version)

	credential := tos.NewStaticCredentials(
		g.Cfg().MustGet(ctx, "volc.ak").String(),
		g.Cfg().MustGet(ctx, "volc.sk").String(),
	)
	client, err := tos.NewClientV2(
		g.Cfg().MustGet(ctx, "volc.tos.endpoint").String(),
		tos.WithCredentials(credential),
		tos.WithRegion(g.Cfg().MustGet(ctx, "volc.tos.region").String()),
	)
	if err != nil {
		return nil, gerror.Wrap(err, "初始化 TOS 客户端失败")
	}
	g.Log().Info(ctx, "Volcengine TOS Client initialized")
	return &Client{
		tos:    client,
		bucket: g.Cfg().MustGet(ctx, "volc.tos.bucket").String(),
	}, nil
}

// Bucket 返回默认存储桶名称。
func (c *Client) Bucket() string {
	return c.bucket
}
