package workflow

import (
	"context"

	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"

	v1 "media-clip-service/api/workflow/v1"
	"media-clip-service/internal/consts"
	"media-clip-service/internal/dao"
	"media-clip-service/internal/model/entity"
)

// GetTranscript 记录详情。预签名地址不落库，每次读取现场重新生成。
func (c *ControllerV1) GetTranscript(ctx context.Context, req *v1.GetTranscriptReq) (res *v1.GetTranscriptRes, err error) {
	var transcript *entity.Transcript
	if err = dao.Transcript.Ctx(ctx).Where(dao.Transcript.Columns().Id, req.TranscriptId).Limit(1).Scan(&transcript); err != nil {
		return nil, gerror.Wrap(err, "查询记录失败")
	}
	if transcript == nil {
		return nil, gerror.New("记录不存在")
	}

	res = &v1.GetTranscriptRes{
		TranscriptMeta: v1.TranscriptMeta{
			Id:        transcript.Id,
			AssetId:   transcript.AssetId,
			Title:     transcript.Title,
			Status:    transcript.Status,
			CreatedAt: transcript.CreatedAt,
			UpdatedAt: transcript.UpdatedAt,
		},
		Response: transcript.Response,
		Segments: transcript.Segments,
	}

	var sourceAsset *entity.Asset
	if err = dao.Asset.Ctx(ctx).Where(dao.Asset.Columns().Id, transcript.AssetId).Limit(1).Scan(&sourceAsset); err != nil {
		return nil, gerror.Wrap(err, "查询源资产失败")
	}
	if sourceAsset != nil {
		if url, err := c.objects.PresignGet(ctx, sourceAsset.Key, consts.PresignExpires); err != nil {
			g.Log().Warningf(ctx, "源资产 %s 预签名失败: %v", sourceAsset.Key, err)
		} else {
			res.AssetUrl = url
		}
	}

	var clips []*entity.Clip
	if err = dao.Clip.Ctx(ctx).Where(dao.Clip.Columns().TranscriptId, transcript.Id).Scan(&clips); err != nil {
		return nil, gerror.Wrap(err, "查询剪辑失败")
	}
	for _, clip := range clips {
		info := v1.ClipInfo{
			Id:           clip.Id,
			TranscriptId: clip.TranscriptId,
			Start:        clip.Start,
			End:          clip.End,
			Metadata:     clip.Metadata,
			CreatedAt:    clip.CreatedAt,
			UpdatedAt:    clip.UpdatedAt,
		}
		var clipAsset *entity.Asset
		if err = dao.Asset.Ctx(ctx).Where(dao.Asset.Columns().Id, clip.AssetId).Limit(1).Scan(&clipAsset); err != nil {
			return nil, gerror.Wrap(err, "查询剪辑资产失败")
		}
		if clipAsset != nil {
			if url, err := c.objects.PresignGet(ctx, clipAsset.Key, consts.PresignExpires); err != nil {
				g.Log().Warningf(ctx, "剪辑资产 %s 预签名失败: %v", clipAsset.Key, err)
			} else {
				info.AssetUrl = url
			}
		}
		res.Clips = append(res.Clips, info)
	}
	return res, nil
}
