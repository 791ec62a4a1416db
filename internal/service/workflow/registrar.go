package workflow

import (
	"context"

	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/google/uuid"

	"media-clip-service/internal/consts"
	"media-clip-service/internal/model/do"
	"media-clip-service/internal/model/entity"
)

// Upload 一个已上传到对象存储的源媒体。
type Upload struct {
	Key    string
	Bucket string
	Name   string
}

// RegisterAssets 把上传结果登记为持久的资产记录，并为每个资产创建一条
// TRANSCRIBING 状态的转写记录。返回创建的记录、资产以及资产ID到预签名
// 下载地址的映射，供作业提交使用。
//
// 资产写库失败整体中止，不会尝试创建任何记录；单个资产的预签名失败
// 不致命，url 留空即可，读取侧随时可以重新生成。
func (s *Service) RegisterAssets(ctx context.Context, uploads []Upload) ([]*entity.Transcript, []*entity.Asset, map[string]string, error) {
	if len(uploads) == 0 {
		return nil, nil, nil, gerror.NewCode(consts.CodeValidation, "所有上传均失败，没有可登记的资产")
	}

	assetRows := make([]*do.Asset, 0, len(uploads))
	keys := make([]string, 0, len(uploads))
	for _, u := range uploads {
		bucket := u.Bucket
		if bucket == "" {
			bucket = s.objects.Bucket()
		}
		assetRows = append(assetRows, &do.Asset{
			Id:     uuid.NewString(),
			Bucket: bucket,
			Key:    u.Key,
			Name:   u.Name,
		})
		keys = append(keys, u.Key)
	}

	affected, err := s.store.InsertAssets(ctx, assetRows)
	if err != nil {
		return nil, nil, nil, gerror.WrapCode(consts.CodeCollaborator, err, "资产写库失败")
	}
	if affected != int64(len(assetRows)) {
		return nil, nil, nil, gerror.NewCodef(consts.CodeCollaborator, "资产写库行数不符：期望 %d，实际 %d", len(assetRows), affected)
	}

	assets, err := s.store.AssetsByKeys(ctx, keys)
	if err != nil {
		return nil, nil, nil, gerror.WrapCode(consts.CodeCollaborator, err, "回查资产记录失败")
	}
	if len(assets) != len(assetRows) {
		return nil, nil, nil, gerror.NewCodef(consts.CodeCollaborator, "回查资产记录行数不符：期望 %d，实际 %d", len(assetRows), len(assets))
	}

	urls := make(map[string]string, len(assets))
	for _, asset := range assets {
		url, err := s.objects.PresignGet(ctx, asset.Key, consts.PresignExpires)
		if err != nil {
			g.Log().Warningf(ctx, "资产 %s 预签名失败，url 留空: %v", asset.Key, err)
			continue
		}
		urls[asset.Id] = url
	}

	transcriptRows := make([]*do.Transcript, 0, len(assets))
	transcripts := make([]*entity.Transcript, 0, len(assets))
	for _, asset := range assets {
		id := uuid.NewString()
		transcriptRows = append(transcriptRows, &do.Transcript{
			Id:      id,
			AssetId: asset.Id,
			Title:   asset.Name,
			Status:  consts.StatusTranscribing,
		})
		transcripts = append(transcripts, &entity.Transcript{
			Id:      id,
			AssetId: asset.Id,
			Title:   asset.Name,
			Status:  consts.StatusTranscribing,
		})
	}

	affected, err = s.store.InsertTranscripts(ctx, transcriptRows)
	if err != nil {
		return nil, nil, nil, gerror.WrapCode(consts.CodeCollaborator, err, "转写记录写库失败")
	}
	if affected != int64(len(transcriptRows)) {
		return nil, nil, nil, gerror.NewCodef(consts.CodeCollaborator, "转写记录写库行数不符：期望 %d，实际 %d", len(transcriptRows), affected)
	}

	g.Log().Infof(ctx, "已登记 %d 个资产并创建同数转写记录", len(assets))
	return transcripts, assets, urls, nil
}
