package mediatoad

import "media-clip-service/internal/consts"

// Notification 任务/作业完成后的回调配置。
type Notification struct {
	Url string `json:"url,omitempty"`
}

// Task 描述提交给引擎的一个声明式工作单元。operation 决定引擎如何解释其余字段。
type Task struct {
	Operation   string        `json:"operation"`
	Id          string        `json:"id,omitempty"`
	Asset       string        `json:"asset,omitempty"`
	OutputAsset string        `json:"outputAsset,omitempty"`
	Notify      *Notification `json:"notify,omitempty"`

	// transcription
	Provider string `json:"provider,omitempty"`
	ApiKey   string `json:"apiKey,omitempty"`
	Language string `json:"language,omitempty"`

	// segmentation
	Model       string `json:"model,omitempty"`
	ModelApiKey string `json:"modelApiKey,omitempty"`
	ClipLength  int    `json:"clipLength,omitempty"`

	// clip
	BatchClip     bool   `json:"batchClip,omitempty"`
	SegmentsAsset string `json:"segmentsAsset,omitempty"`
}

// BatchClip 剪辑任务批量模式下产出的一个候选片段。
type BatchClip struct {
	Bucket                  string  `json:"Bucket"`
	Key                     string  `json:"Key"`
	Url                     string  `json:"url,omitempty"`
	FileSize                int64   `json:"fileSize,omitempty"`
	Start                   float64 `json:"start"`
	End                     float64 `json:"end"`
	Duration                float64 `json:"duration,omitempty"`
	TranscriptText          string  `json:"transcriptText,omitempty"`
	BriefSegmentDescription string  `json:"briefSegmentDescription,omitempty"`
	ViralityScore           float64 `json:"viralityScore,omitempty"`
	ViralScoreExplanation   string  `json:"viralScoreExplanation,omitempty"`
}

// TaskState 任务执行后的结果信封。
type TaskState struct {
	Task

	Status         string      `json:"status"`
	Percentage     float64     `json:"percentage,omitempty"`
	StartTime      int64       `json:"startTime,omitempty"`
	EndTime        int64       `json:"endTime,omitempty"`
	Duration       int64       `json:"duration,omitempty"`
	Bucket         string      `json:"Bucket,omitempty"`
	Key            string      `json:"Key,omitempty"`
	Url            string      `json:"url,omitempty"`
	FileSize       int64       `json:"fileSize,omitempty"`
	StorageType    string      `json:"storageType,omitempty"`
	Error          string      `json:"error,omitempty"`
	WorkflowFailed bool        `json:"workflowFailed,omitempty"`
	BatchClips     []BatchClip `json:"batchClips,omitempty"`
}

// Failed 判断任务是否携带失败标记。
func (s *TaskState) Failed() bool {
	return s.Status == consts.TaskStatusFailed || s.Error != "" || s.WorkflowFailed
}

// JobAsset 作业级资源声明，任务通过名称引用。
type JobAsset struct {
	Name    string `json:"name"`
	Url     string `json:"url"`
	UrlType string `json:"urlType,omitempty"`
}

// Storage 作业产物的存储配置。
type Storage struct {
	Bucket      string `json:"bucket,omitempty"`
	Base        string `json:"base,omitempty"`
	StorageType string `json:"storageType,omitempty"`
}

// JobParams 一次作业提交的完整任务图。
type JobParams struct {
	JobId      string        `json:"jobId,omitempty"`
	Assets     []JobAsset    `json:"assets"`
	Tasks      []Task        `json:"tasks"`
	Storage    *Storage      `json:"storage,omitempty"`
	Notify     *Notification `json:"notify,omitempty"`
	Queue      string        `json:"queue,omitempty"`
	Type       string        `json:"type,omitempty"`
	ExternalId string        `json:"externalId,omitempty"`
}

// TaskNotification 单任务完成通知的载荷。tasks 携带作业内全部任务的当前状态，
// task 为本次完成的任务。
type TaskNotification struct {
	JobId        string      `json:"jobId"`
	TaskId       string      `json:"taskId"`
	Status       string      `json:"status"`
	NotifyStatus string      `json:"notifyStatus,omitempty"`
	Task         *TaskState  `json:"task"`
	Tasks        []TaskState `json:"tasks"`
}

// JobNotification 作业级完成通知的载荷，携带作业内每个任务的终态。
type JobNotification struct {
	JobId        string      `json:"jobId"`
	Status       string      `json:"status"`
	NotifyStatus string      `json:"notifyStatus,omitempty"`
	Tasks        []TaskState `json:"tasks"`
}

// FindTask 按任务ID在通知载荷中定位任务结果。
func FindTask(tasks []TaskState, taskId string) *TaskState {
	for i := range tasks {
		if tasks[i].Id == taskId {
			return &tasks[i]
		}
	}
	return nil
}
