package workflow

import (
	"context"

	"github.com/gogf/gf/v2/encoding/gjson"
	"github.com/gogf/gf/v2/frame/g"

	"media-clip-service/internal/consts"
	"media-clip-service/internal/dao"
	"media-clip-service/internal/model/do"
	"media-clip-service/internal/model/entity"
)

// Store 基于 DAO 的 RecordStore 实现。
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

func (st *Store) InsertAssets(ctx context.Context, assets []*do.Asset) (int64, error) {
	result, err := dao.Asset.Ctx(ctx).Data(assets).Insert()
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (st *Store) AssetsByKeys(ctx context.Context, keys []string) ([]*entity.Asset, error) {
	var assets []*entity.Asset
	if err := dao.Asset.Ctx(ctx).WhereIn(dao.Asset.Columns().Key, keys).Scan(&assets); err != nil {
		return nil, err
	}
	return assets, nil
}

func (st *Store) InsertTranscripts(ctx context.Context, transcripts []*do.Transcript) (int64, error) {
	result, err := dao.Transcript.Ctx(ctx).Data(transcripts).Insert()
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (st *Store) InsertClips(ctx context.Context, clips []*do.Clip) (int64, error) {
	result, err := dao.Clip.Ctx(ctx).Data(clips).Insert()
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (st *Store) AdvanceStatus(ctx context.Context, id, from, to string) (int64, error) {
	cols := dao.Transcript.Columns()
	result, err := dao.Transcript.Ctx(ctx).
		Data(g.Map{cols.Status: to}).
		Where(cols.Id, id).
		Where(cols.Status, from).
		Update()
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (st *Store) CompleteTranscript(ctx context.Context, id string, response, segments *gjson.Json) (int64, error) {
	cols := dao.Transcript.Columns()
	data := g.Map{
		cols.Status:   consts.StatusDone,
		cols.Response: response,
	}
	if segments != nil {
		data[cols.Segments] = segments
	}
	result, err := dao.Transcript.Ctx(ctx).
		Data(data).
		Where(cols.Id, id).
		Where(cols.Status, consts.StatusGeneratingClips).
		Update()
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (st *Store) MarkFailed(ctx context.Context, id string) (int64, error) {
	cols := dao.Transcript.Columns()
	result, err := dao.Transcript.Ctx(ctx).
		Data(g.Map{cols.Status: consts.StatusFailed}).
		Where(cols.Id, id).
		WhereNot(cols.Status, consts.StatusDone).
		Update()
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
