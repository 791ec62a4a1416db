package mediatoad

import (
	"github.com/gogf/gf/v2/text/gstr"
)

// 任务ID由 (operation, transcriptId) 确定性生成，回调侧据此把通知关联回记录，
// 不需要额外的任务映射表。
func TaskID(operation, transcriptId string) string {
	return operation + "-task-" + transcriptId
}

// TranscriptIDFromTask 从任务ID还原记录ID。
func TranscriptIDFromTask(taskId, operation string) string {
	return gstr.TrimLeftStr(taskId, operation+"-task-", 1)
}

// NotificationURL 生成回调地址，kind 为 task 或 job。
func NotificationURL(apiBase, kind, transcriptId string) string {
	return apiBase + "/workflow/notification/" + kind + "/" + transcriptId
}
