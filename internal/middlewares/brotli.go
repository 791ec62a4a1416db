package middlewares

import (
	"bytes"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/net/ghttp"
)

// Brotli 压缩中间件。转写结果和剪辑元数据的响应体偏大，压缩收益明显。
func BrotliMiddleware(r *ghttp.Request) {
	// 1. 检查客户端是否支持 Brotli
	acceptEncoding := r.Header.Get("Accept-Encoding")
	if !strings.Contains(acceptEncoding, "br") {
		r.Middleware.Next()
		return
	}

	// 2. 先执行业务逻辑
	r.Middleware.Next()

	// 3. 只有当响应状态码为 200 且响应内容不为空时才进行压缩
	if r.Response.Status != 200 || r.Response.BufferLength() == 0 {
		return
	}

	// 4. 对响应内容进行 Brotli 压缩
	originalBody := r.Response.Buffer()
	var compressedBody bytes.Buffer

	writer := brotli.NewWriterLevel(&compressedBody, 11)
	_, err := writer.Write(originalBody)
	if err != nil {
		g.Log().Errorf(r.Context(), "Brotli 写入失败: %v", err)
		return
	}
	err = writer.Close()
	if err != nil {
		g.Log().Errorf(r.Context(), "Brotli 写入器关闭失败: %v", err)
		return
	}

	// 5. 设置响应头，并用压缩后的内容替换原始响应
	r.Response.Header().Set("Content-Encoding", "br")
	r.Response.Header().Set("Vary", "Accept-Encoding")
	r.Response.ClearBuffer()
	r.Response.Write(compressedBody.Bytes())
}
