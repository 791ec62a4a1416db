package consts

import "github.com/gogf/gf/v2/frame/g"

// 转写记录状态机：TRANSCRIBING → GENERATING_SEGMENTS → GENERATING_CLIPS → DONE。
// FAILED 为吸收态，任意状态都可进入。
const (
	StatusTranscribing       = "TRANSCRIBING"
	StatusGeneratingSegments = "GENERATING_SEGMENTS"
	StatusGeneratingClips    = "GENERATING_CLIPS"
	StatusDone               = "DONE"
	StatusFailed             = "FAILED"
)

// 引擎侧任务操作类型
const (
	OperationTranscription = "transcription"
	OperationSegmentation  = "segmentation"
	OperationClip          = "clip"
)

// 引擎侧任务终态
const (
	TaskStatusDone   = "DONE"
	TaskStatusFailed = "FAILED"
)

// 回调类型，对应两个通知端点
const (
	NotificationKindTask = "task"
	NotificationKindJob  = "job"
)

var (
	MediaExt = g.MapStrStr{
		".mp4":  "video",
		".avi":  "video",
		".mov":  "video",
		".mkv":  "video",
		".wmv":  "video",
		".flv":  "video",
		".webm": "video",
		".mp3":  "audio",
		".wav":  "audio",
		".aac":  "audio",
		".flac": "audio",
		".ogg":  "audio",
	}
)

const (
	MaxUploadSize  = 1024 * 1024 * 200 // 200MB
	PresignExpires = 3600              // 预签名 URL 有效期（秒）
)
