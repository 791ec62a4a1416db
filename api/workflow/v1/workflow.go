package v1

import (
	"github.com/gogf/gf/v2/encoding/gjson"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/os/gtime"

	"media-clip-service/internal/service/mediatoad"
)

// 文件上传并提交处理流水线（支持单文件和多文件）
type UploadReq struct {
	g.Meta `path:"/upload" method:"post" mime:"multipart/form-data" summary:"上传媒体文件" dc:"使用 multipart/form-data 方式上传（可批量，并行处理）。字段名是 files。上传成功后自动提交转写-切分-剪辑流水线。"`
}
type UploadRes struct {
	WorkflowId  string           `json:"workflowId" dc:"作业句柄"`
	Transcripts []TranscriptMeta `json:"transcripts" dc:"创建的转写记录"`
	Errors      []FileError      `json:"errors,omitempty" dc:"上传失败的文件错误信息"`
	Total       int              `json:"total" dc:"总文件数"`
	Success     int              `json:"success" dc:"成功上传数"`
	Failed      int              `json:"failed" dc:"上传失败数"`
}
type FileError struct {
	FileName string `json:"file_name" dc:"文件名"`
	Error    string `json:"error" dc:"错误信息"`
}

// 浏览器直传：获取预签名上传地址
type UploadURLReq struct {
	g.Meta      `path:"/upload-url" method:"post" summary:"获取预签名上传地址"`
	Filename    string `json:"filename" v:"required" dc:"文件名"`
	ContentType string `json:"contentType" dc:"MIME 类型"`
}
type UploadURLRes struct {
	Url    string `json:"url" dc:"预签名 PUT 地址"`
	Key    string `json:"key" dc:"对象存储 key"`
	Bucket string `json:"bucket" dc:"存储桶"`
}

// 登记已直传的对象并提交流水线
type RegisterReq struct {
	g.Meta  `path:"/register" method:"post" summary:"登记已上传对象"`
	Uploads []RegisterUpload `json:"uploads" v:"required" dc:"已上传对象列表"`
}
type RegisterUpload struct {
	Key    string `json:"key" v:"required" dc:"对象存储 key"`
	Bucket string `json:"bucket" dc:"存储桶，为空用默认桶"`
	Name   string `json:"name" v:"required" dc:"展示文件名"`
}
type RegisterRes struct {
	WorkflowId  string           `json:"workflowId" dc:"作业句柄"`
	Transcripts []TranscriptMeta `json:"transcripts" dc:"创建的转写记录"`
}

// 引擎回调：单任务完成通知
type NotifyTaskReq struct {
	g.Meta       `path:"/notification/task/{transcript_id}" method:"post" summary:"任务完成回调"`
	TranscriptId string `json:"transcript_id" v:"required" dc:"记录ID"`
	mediatoad.TaskNotification
}
type NotifyTaskRes struct {
	Success bool `json:"success" dc:"是否处理成功"`
}

// 引擎回调：作业完成通知
type NotifyJobReq struct {
	g.Meta       `path:"/notification/job/{transcript_id}" method:"post" summary:"作业完成回调"`
	TranscriptId string `json:"transcript_id" v:"required" dc:"记录ID"`
	mediatoad.JobNotification
}
type NotifyJobRes struct {
	Success bool `json:"success" dc:"是否处理成功"`
}

type TranscriptMeta struct {
	Id        string      `json:"id" dc:"记录ID"`
	AssetId   string      `json:"asset_id" dc:"源资产ID"`
	Title     string      `json:"title" dc:"标题"`
	Status    string      `json:"status" dc:"流水线状态"`
	CreatedAt *gtime.Time `json:"created_at" dc:"创建时间"`
	UpdatedAt *gtime.Time `json:"updated_at" dc:"更新时间"`
}

type ClipInfo struct {
	Id           string      `json:"id" dc:"剪辑ID"`
	TranscriptId string      `json:"transcript_id" dc:"所属记录ID"`
	Start        float64     `json:"start" dc:"起点（秒）"`
	End          float64     `json:"end" dc:"终点（秒）"`
	AssetUrl     string      `json:"asset_url" dc:"剪辑预签名地址"`
	Metadata     *gjson.Json `json:"metadata" dc:"引擎产出的剪辑元数据"`
	CreatedAt    *gtime.Time `json:"created_at" dc:"创建时间"`
	UpdatedAt    *gtime.Time `json:"updated_at" dc:"更新时间"`
}

// 记录详情查询
type GetTranscriptReq struct {
	g.Meta       `path:"/transcript/{transcript_id}" method:"get" summary:"获取记录详情"`
	TranscriptId string `json:"transcript_id" v:"required" dc:"记录ID"`
}
type GetTranscriptRes struct {
	TranscriptMeta
	AssetUrl string      `json:"asset_url" dc:"源媒体预签名地址"`
	Response *gjson.Json `json:"response" dc:"转写结果"`
	Segments *gjson.Json `json:"segments" dc:"候选片段描述"`
	Clips    []ClipInfo  `json:"clips" dc:"剪辑列表"`
}

type ListTranscriptsReq struct {
	g.Meta `path:"/transcripts" method:"get" summary:"获取记录列表"`
	Limit  int `json:"limit" d:"20" v:"min:1|max:100" dc:"返回条数，默认20，最大100"`
}
type ListTranscriptsRes struct {
	Transcripts []TranscriptMeta `json:"transcripts" dc:"记录列表"`
}

type DeleteTranscriptReq struct {
	g.Meta       `path:"/transcript/{transcript_id}" method:"delete" summary:"删除记录"`
	TranscriptId string `json:"transcript_id" v:"required" dc:"记录ID"`
}
type DeleteTranscriptRes struct {
	Success bool `json:"success" dc:"是否删除成功"`
}
