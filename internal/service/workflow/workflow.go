// Package workflow 实现上传记录的异步回调对账核心。
//
// 引擎把转写、切分、剪辑三个任务的完成情况通过 HTTP 通知推回本服务，
// 通知可能乱序、重复或只携带部分结果。本包的两个回调对账器负责把这些
// 通知折叠成一致的记录状态和派生实体（资产、剪辑）。
//
// 回调粒度约定：每个单任务通知只推进一个状态转移，转移由完成任务的
// operation 决定；剪辑任务的通知承载整条流水线的提交。作业级回调只用作
// 失败兜底，从不推进成功方向。所有状态推进都是条件更新（当前状态必须
// 等于期望的前置状态），影响行数为零即拒绝本次通知，使重复与乱序投递
// 成为可观测的失败而不是错误转移。
package workflow

import (
	"context"

	"github.com/gogf/gf/v2/encoding/gjson"

	"media-clip-service/internal/model/do"
	"media-clip-service/internal/model/entity"
	"media-clip-service/internal/service/mediatoad"
)

// RecordStore 记录存储协作方。insert/update 逐条原子，不提供跨行事务。
type RecordStore interface {
	InsertAssets(ctx context.Context, assets []*do.Asset) (int64, error)
	AssetsByKeys(ctx context.Context, keys []string) ([]*entity.Asset, error)
	InsertTranscripts(ctx context.Context, transcripts []*do.Transcript) (int64, error)
	InsertClips(ctx context.Context, clips []*do.Clip) (int64, error)

	// AdvanceStatus 条件状态推进：仅当记录当前状态为 from 时更新为 to，返回影响行数。
	AdvanceStatus(ctx context.Context, id, from, to string) (int64, error)
	// CompleteTranscript 流水线提交：写入转写结果与切分结果并置为 DONE，
	// 仅当记录当前状态为 GENERATING_CLIPS。
	CompleteTranscript(ctx context.Context, id string, response, segments *gjson.Json) (int64, error)
	// MarkFailed 置为 FAILED，已 DONE 的记录不回退。
	MarkFailed(ctx context.Context, id string) (int64, error)
}

// ObjectStorage 对象存储协作方。
type ObjectStorage interface {
	Bucket() string
	PresignGet(ctx context.Context, key string, expires int64) (string, error)
	DownloadJSON(ctx context.Context, bucket, key string) (*gjson.Json, error)
}

// Engine 工作流引擎协作方，只暴露作业提交。
type Engine interface {
	SubmitJob(ctx context.Context, params *mediatoad.JobParams) (string, error)
}

// Config 作业构图所需的静态参数，启动时从配置读入。
type Config struct {
	APIBase  string // 回调地址前缀
	Bucket   string // 作业产物存储桶
	PathBase string // 作业产物路径前缀

	TranscriptionProvider string
	TranscriptionAPIKey   string
	Language              string
	SegmentationModel     string
	SegmentationAPIKey    string

	Queue   string // 为空时引擎使用默认队列
	JobType string // 作业检索属性，可为空
}

// Service 聚合资产登记、作业提交与两个回调对账器。
// 协作方全部通过构造注入，测试时可替换为假实现。
type Service struct {
	store   RecordStore
	objects ObjectStorage
	engine  Engine
	cfg     Config
}

func New(store RecordStore, objects ObjectStorage, engine Engine, cfg Config) *Service {
	return &Service{
		store:   store,
		objects: objects,
		engine:  engine,
		cfg:     cfg,
	}
}
