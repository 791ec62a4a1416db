package consts

import "github.com/gogf/gf/v2/errors/gcode"

// 回调错误分类。
// CodeValidation：通知载荷不完整或非法，记录保持原状态；
// CodeCollaborator：存储下载/解析或数据库调用失败，已执行的变更不回滚；
// CodeFatalUpstream：引擎上报任务级失败，记录强制置为 FAILED。
var (
	CodeValidation    = gcode.New(50001, "ValidationError", nil)
	CodeCollaborator  = gcode.New(50002, "CollaboratorError", nil)
	CodeFatalUpstream = gcode.New(50003, "FatalUpstream", nil)
)
