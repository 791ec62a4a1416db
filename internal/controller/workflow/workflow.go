// =================================================================================
// This is auto-generated by GoFrame CLI tool only once. Fill this file as you wish.
// =================================================================================

package workflow

import (
	workflowApi "media-clip-service/api/workflow"
	"media-clip-service/internal/service/storage"
	workflowSvc "media-clip-service/internal/service/workflow"
)

type ControllerV1 struct {
	svc     *workflowSvc.Service
	objects *storage.Client
}

func NewV1(svc *workflowSvc.Service, objects *storage.Client) workflowApi.IWorkflowV1 {
	return &ControllerV1{
		svc:     svc,
		objects: objects,
	}
}
