package mediatoad

import (
	"context"

	"github.com/gogf/gf/v2/encoding/gjson"
	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"
)

// Client 工作流引擎客户端。引擎对我们是不透明的作业提交 API，
// 任务如何调度、重试由引擎自行负责。
type Client struct {
	endpoint          string
	defaultQueue      string
	highPriorityQueue string
}

func NewClient(ctx context.Context) *Client {
	return &Client{
		endpoint:          g.Cfg().MustGet(ctx, "mediatoad.endpoint").String(),
		defaultQueue:      g.Cfg().MustGet(ctx, "mediatoad.queue.default").String(),
		highPriorityQueue: g.Cfg().MustGet(ctx, "mediatoad.queue.highPriority").String(),
	}
}

// SubmitJob 把任务图作为一个作业提交给引擎，返回作业句柄。
// jobId 同时作为幂等键，重复提交同一作业不会触发第二次执行。
func (c *Client) SubmitJob(ctx context.Context, params *JobParams) (string, error) {
	taskQueue := c.defaultQueue
	if params.Queue == "highPriority" {
		taskQueue = c.highPriorityQueue
	}

	searchAttributes := g.Map{}
	if params.Type != "" {
		searchAttributes["MediaInfraJobType"] = []string{params.Type}
	}
	if params.ExternalId != "" {
		searchAttributes["ExternalId"] = []string{params.ExternalId}
	}

	response, err := g.Client().ContentJson().
		SetHeaderMap(g.MapStrStr{
			"X-Idempotency-Id": params.JobId,
		}).
		Post(ctx, c.endpoint+"/api/v1/workflows", g.Map{
			"workflow":         "mediaJobWorkflow",
			"workflowId":       "clip-workflow-" + params.JobId,
			"taskQueue":        taskQueue,
			"searchAttributes": searchAttributes,
			"args":             []any{params},
		})
	if err != nil {
		return "", gerror.Wrap(err, "提交作业失败，POST 请求发生错误")
	}
	defer response.Close()

	bodyStr := response.ReadAllString()
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return "", gerror.Newf("引擎返回非 2xx。StatusCode=%d Body=%s", response.StatusCode, bodyStr)
	}

	workflowId := gjson.New(bodyStr).Get("workflowId").String()
	if workflowId == "" {
		return "", gerror.Newf("引擎响应缺少 workflowId。Body=%s", bodyStr)
	}
	g.Log().Infof(ctx, "[%s] 作业已提交，workflowId=%s queue=%s", params.JobId, workflowId, taskQueue)
	return workflowId, nil
}
