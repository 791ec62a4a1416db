package workflow

import (
	"context"

	"github.com/gogf/gf/v2/encoding/gjson"
	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/util/gconv"

	"media-clip-service/internal/consts"
	"media-clip-service/internal/model/do"
	"media-clip-service/internal/model/entity"
	"media-clip-service/internal/service/mediatoad"
)

// fakeStore 内存版 RecordStore，模拟逐条原子的 insert/update 语义。
type fakeStore struct {
	transcripts map[string]*entity.Transcript
	assets      []*entity.Asset
	clips       []*entity.Clip

	failInsertAssets      bool
	failInsertTranscripts bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		transcripts: make(map[string]*entity.Transcript),
	}
}

func (f *fakeStore) addTranscript(id, assetId, status string) {
	f.transcripts[id] = &entity.Transcript{
		Id:      id,
		AssetId: assetId,
		Title:   "t-" + id,
		Status:  status,
	}
}

func (f *fakeStore) InsertAssets(ctx context.Context, assets []*do.Asset) (int64, error) {
	if f.failInsertAssets {
		return 0, gerror.New("insert assets failed")
	}
	for _, row := range assets {
		f.assets = append(f.assets, &entity.Asset{
			Id:     gconv.String(row.Id),
			Bucket: gconv.String(row.Bucket),
			Key:    gconv.String(row.Key),
			Name:   gconv.String(row.Name),
		})
	}
	return int64(len(assets)), nil
}

func (f *fakeStore) AssetsByKeys(ctx context.Context, keys []string) ([]*entity.Asset, error) {
	wanted := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		wanted[k] = struct{}{}
	}
	var matched []*entity.Asset
	for _, a := range f.assets {
		if _, ok := wanted[a.Key]; ok {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func (f *fakeStore) InsertTranscripts(ctx context.Context, transcripts []*do.Transcript) (int64, error) {
	if f.failInsertTranscripts {
		return 0, gerror.New("insert transcripts failed")
	}
	for _, row := range transcripts {
		id := gconv.String(row.Id)
		f.transcripts[id] = &entity.Transcript{
			Id:      id,
			AssetId: gconv.String(row.AssetId),
			Title:   gconv.String(row.Title),
			Status:  gconv.String(row.Status),
		}
	}
	return int64(len(transcripts)), nil
}

func (f *fakeStore) InsertClips(ctx context.Context, clips []*do.Clip) (int64, error) {
	for _, row := range clips {
		f.clips = append(f.clips, &entity.Clip{
			Id:           gconv.String(row.Id),
			TranscriptId: gconv.String(row.TranscriptId),
			AssetId:      gconv.String(row.AssetId),
			Start:        gconv.Float64(row.Start),
			End:          gconv.Float64(row.End),
			Metadata:     row.Metadata,
		})
	}
	return int64(len(clips)), nil
}

func (f *fakeStore) AdvanceStatus(ctx context.Context, id, from, to string) (int64, error) {
	t, ok := f.transcripts[id]
	if !ok || t.Status != from {
		return 0, nil
	}
	t.Status = to
	return 1, nil
}

func (f *fakeStore) CompleteTranscript(ctx context.Context, id string, response, segments *gjson.Json) (int64, error) {
	t, ok := f.transcripts[id]
	if !ok || t.Status != consts.StatusGeneratingClips {
		return 0, nil
	}
	t.Status = consts.StatusDone
	t.Response = response
	t.Segments = segments
	return 1, nil
}

func (f *fakeStore) MarkFailed(ctx context.Context, id string) (int64, error) {
	t, ok := f.transcripts[id]
	if !ok || t.Status == consts.StatusDone {
		return 0, nil
	}
	t.Status = consts.StatusFailed
	return 1, nil
}

// fakeObjects 内存版对象存储。objects 按 key 存放可下载的 JSON。
type fakeObjects struct {
	bucket      string
	objects     map[string]*gjson.Json
	failPresign map[string]bool
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{
		bucket:      "b",
		objects:     make(map[string]*gjson.Json),
		failPresign: make(map[string]bool),
	}
}

func (f *fakeObjects) Bucket() string {
	return f.bucket
}

func (f *fakeObjects) PresignGet(ctx context.Context, key string, expires int64) (string, error) {
	if f.failPresign[key] {
		return "", gerror.New("presign failed")
	}
	return "https://signed.example.com/" + key, nil
}

func (f *fakeObjects) DownloadJSON(ctx context.Context, bucket, key string) (*gjson.Json, error) {
	obj, ok := f.objects[key]
	if !ok {
		return nil, gerror.Newf("object not found: %s", key)
	}
	return obj, nil
}

// fakeEngine 捕获提交的任务图。
type fakeEngine struct {
	submitted []*mediatoad.JobParams
	failNext  bool
}

func (f *fakeEngine) SubmitJob(ctx context.Context, params *mediatoad.JobParams) (string, error) {
	if f.failNext {
		return "", gerror.New("engine unavailable")
	}
	f.submitted = append(f.submitted, params)
	return "wf-" + params.JobId, nil
}

func testConfig() Config {
	return Config{
		APIBase:               "http://localhost:8200",
		Bucket:                "b",
		PathBase:              "media-clip/workflows",
		TranscriptionProvider: "deepgram",
		TranscriptionAPIKey:   "dg-key",
		Language:              "en",
		SegmentationModel:     "gemini-1.5-flash",
		SegmentationAPIKey:    "gm-key",
	}
}

func newTestService() (*Service, *fakeStore, *fakeObjects, *fakeEngine) {
	store := newFakeStore()
	objects := newFakeObjects()
	engine := &fakeEngine{}
	return New(store, objects, engine, testConfig()), store, objects, engine
}
