package workflow

import (
	"context"
	"testing"

	"github.com/gogf/gf/v2/encoding/gjson"
	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/test/gtest"

	"media-clip-service/internal/consts"
	"media-clip-service/internal/service/mediatoad"
)

func taskDone(operation, transcriptId string) mediatoad.TaskState {
	return mediatoad.TaskState{
		Task: mediatoad.Task{
			Operation: operation,
			Id:        mediatoad.TaskID(operation, transcriptId),
		},
		Status: consts.TaskStatusDone,
	}
}

func taskNotification(task mediatoad.TaskState, bundle ...mediatoad.TaskState) *mediatoad.TaskNotification {
	tasks := append([]mediatoad.TaskState{task}, bundle...)
	return &mediatoad.TaskNotification{
		JobId:  "job-1",
		TaskId: task.Id,
		Status: task.Status,
		Task:   &task,
		Tasks:  tasks,
	}
}

// clipBundle 构造一个携带全部三个任务结果的剪辑完成通知。
func clipBundle(transcriptId string, batch []mediatoad.BatchClip) *mediatoad.TaskNotification {
	transcription := taskDone(consts.OperationTranscription, transcriptId)
	transcription.Bucket = "b"
	transcription.Key = "transcription/" + transcriptId + ".json"

	segmentation := taskDone(consts.OperationSegmentation, transcriptId)
	segmentation.Bucket = "b"
	segmentation.Key = "segmentation/" + transcriptId + ".json"

	clip := taskDone(consts.OperationClip, transcriptId)
	clip.BatchClips = batch

	return taskNotification(clip, transcription, segmentation)
}

func seedClipObjects(objects *fakeObjects, transcriptId string) {
	objects.objects["transcription/"+transcriptId+".json"] = gjson.New(map[string]any{
		"transcript": map[string]any{
			"words": []any{map[string]any{"word": "hello", "start": 0.0, "end": 0.4}},
		},
	})
	objects.objects["segmentation/"+transcriptId+".json"] = gjson.New([]any{
		map[string]any{"start": 0, "end": 5, "description": "intro"},
	})
}

func twoClips() []mediatoad.BatchClip {
	return []mediatoad.BatchClip{
		{Bucket: "b", Key: "c1", Start: 0, End: 5, ViralityScore: 0.9},
		{Bucket: "b", Key: "c2", Start: 10, End: 15, ViralityScore: 0.4},
	}
}

func TestTaskCallbackTranscriptionAdvance(t *testing.T) {
	gtest.C(t, func(t *gtest.T) {
		ctx := context.Background()
		svc, store, _, _ := newTestService()
		store.addTranscript("t1", "a1", consts.StatusTranscribing)

		err := svc.TaskCallback(ctx, "t1", taskNotification(taskDone(consts.OperationTranscription, "t1")))
		t.AssertNil(err)
		t.Assert(store.transcripts["t1"].Status, consts.StatusGeneratingSegments)
		t.Assert(len(store.assets), 0)
		t.Assert(len(store.clips), 0)
	})
}

func TestTaskCallbackSegmentationAdvance(t *testing.T) {
	gtest.C(t, func(t *gtest.T) {
		ctx := context.Background()
		svc, store, _, _ := newTestService()
		store.addTranscript("t1", "a1", consts.StatusGeneratingSegments)

		err := svc.TaskCallback(ctx, "t1", taskNotification(taskDone(consts.OperationSegmentation, "t1")))
		t.AssertNil(err)
		t.Assert(store.transcripts["t1"].Status, consts.StatusGeneratingClips)
	})
}

func TestTaskCallbackRejectsOutOfOrder(t *testing.T) {
	gtest.C(t, func(t *gtest.T) {
		ctx := context.Background()
		svc, store, _, _ := newTestService()
		store.addTranscript("t1", "a1", consts.StatusTranscribing)

		// 切分完成先于转写完成到达，状态前置条件不满足，必须拒绝。
		err := svc.TaskCallback(ctx, "t1", taskNotification(taskDone(consts.OperationSegmentation, "t1")))
		t.AssertNE(err, nil)
		t.Assert(gerror.Code(err), consts.CodeValidation)
		t.Assert(store.transcripts["t1"].Status, consts.StatusTranscribing)
	})
}

func TestTaskCallbackRejectsDuplicateDelivery(t *testing.T) {
	gtest.C(t, func(t *gtest.T) {
		ctx := context.Background()
		svc, store, _, _ := newTestService()
		store.addTranscript("t1", "a1", consts.StatusTranscribing)

		notification := taskNotification(taskDone(consts.OperationTranscription, "t1"))
		t.AssertNil(svc.TaskCallback(ctx, "t1", notification))

		err := svc.TaskCallback(ctx, "t1", notification)
		t.AssertNE(err, nil)
		t.Assert(gerror.Code(err), consts.CodeValidation)
		t.Assert(store.transcripts["t1"].Status, consts.StatusGeneratingSegments)
	})
}

func TestTaskCallbackClipCommit(t *testing.T) {
	gtest.C(t, func(t *gtest.T) {
		ctx := context.Background()
		svc, store, objects, _ := newTestService()
		store.addTranscript("t1", "a1", consts.StatusGeneratingClips)
		seedClipObjects(objects, "t1")

		err := svc.TaskCallback(ctx, "t1", clipBundle("t1", twoClips()))
		t.AssertNil(err)

		record := store.transcripts["t1"]
		t.Assert(record.Status, consts.StatusDone)
		t.AssertNE(record.Response, nil)
		t.Assert(record.Response.Get("words.0.word").String(), "hello")
		t.AssertNE(record.Segments, nil)

		t.Assert(len(store.assets), 2)
		t.Assert(len(store.clips), 2)

		// 剪辑与资产按存储 key 关联，不依赖插入顺序。
		assetIdByKey := make(map[string]string)
		for _, a := range store.assets {
			assetIdByKey[a.Key] = a.Id
		}
		for _, clip := range store.clips {
			meta := clip.Metadata
			t.AssertNE(meta, nil)
			t.Assert(clip.AssetId, assetIdByKey[meta.Get("Key").String()])
		}

		bounds := map[string][2]float64{}
		for _, clip := range store.clips {
			bounds[clip.Metadata.Get("Key").String()] = [2]float64{clip.Start, clip.End}
		}
		t.Assert(bounds["c1"], [2]float64{0, 5})
		t.Assert(bounds["c2"], [2]float64{10, 15})
	})
}

func TestTaskCallbackClipCommitDuplicateKeys(t *testing.T) {
	gtest.C(t, func(t *gtest.T) {
		ctx := context.Background()
		svc, store, objects, _ := newTestService()
		store.addTranscript("t1", "a1", consts.StatusGeneratingClips)
		seedClipObjects(objects, "t1")

		batch := []mediatoad.BatchClip{
			{Bucket: "b", Key: "c1", Start: 0, End: 5},
			{Bucket: "b", Key: "c1", Start: 10, End: 15},
		}
		err := svc.TaskCallback(ctx, "t1", clipBundle("t1", batch))
		t.AssertNE(err, nil)
		t.Assert(gerror.Code(err), consts.CodeValidation)
		t.Assert(store.transcripts["t1"].Status, consts.StatusGeneratingClips)
		t.Assert(len(store.assets), 0)
		t.Assert(len(store.clips), 0)
	})
}

func TestTaskCallbackClipCommitMissingTranscriptionTask(t *testing.T) {
	gtest.C(t, func(t *gtest.T) {
		ctx := context.Background()
		svc, store, objects, _ := newTestService()
		store.addTranscript("t1", "a1", consts.StatusGeneratingClips)
		seedClipObjects(objects, "t1")

		segmentation := taskDone(consts.OperationSegmentation, "t1")
		clip := taskDone(consts.OperationClip, "t1")
		clip.BatchClips = twoClips()

		err := svc.TaskCallback(ctx, "t1", taskNotification(clip, segmentation))
		t.AssertNE(err, nil)
		t.Assert(gerror.Code(err), consts.CodeValidation)
		t.Assert(store.transcripts["t1"].Status, consts.StatusGeneratingClips)
		t.Assert(len(store.assets), 0)
		t.Assert(len(store.clips), 0)
	})
}

func TestTaskCallbackClipCommitEmptyBatch(t *testing.T) {
	gtest.C(t, func(t *gtest.T) {
		ctx := context.Background()
		svc, store, objects, _ := newTestService()
		store.addTranscript("t1", "a1", consts.StatusGeneratingClips)
		seedClipObjects(objects, "t1")

		err := svc.TaskCallback(ctx, "t1", clipBundle("t1", nil))
		t.AssertNE(err, nil)
		t.Assert(gerror.Code(err), consts.CodeValidation)
		t.Assert(store.transcripts["t1"].Status, consts.StatusGeneratingClips)
	})
}

func TestTaskCallbackClipCommitMissingSegmentationKeyTolerated(t *testing.T) {
	gtest.C(t, func(t *gtest.T) {
		ctx := context.Background()
		svc, store, objects, _ := newTestService()
		store.addTranscript("t1", "a1", consts.StatusGeneratingClips)
		seedClipObjects(objects, "t1")

		notification := clipBundle("t1", twoClips())
		for i := range notification.Tasks {
			if notification.Tasks[i].Operation == consts.OperationSegmentation {
				notification.Tasks[i].Key = ""
			}
		}

		err := svc.TaskCallback(ctx, "t1", notification)
		t.AssertNil(err)
		t.Assert(store.transcripts["t1"].Status, consts.StatusDone)
		t.AssertNil(store.transcripts["t1"].Segments)
		t.Assert(len(store.clips), 2)
	})
}

func TestTaskCallbackClipCommitReplayRejected(t *testing.T) {
	gtest.C(t, func(t *gtest.T) {
		ctx := context.Background()
		svc, store, objects, _ := newTestService()
		store.addTranscript("t1", "a1", consts.StatusGeneratingClips)
		seedClipObjects(objects, "t1")

		notification := clipBundle("t1", twoClips())
		t.AssertNil(svc.TaskCallback(ctx, "t1", notification))

		// 重放同一通知：DONE 更新的前置条件不再满足，提交在任何插入前被拒绝。
		err := svc.TaskCallback(ctx, "t1", notification)
		t.AssertNE(err, nil)
		t.Assert(gerror.Code(err), consts.CodeValidation)
		t.Assert(len(store.assets), 2)
		t.Assert(len(store.clips), 2)
	})
}

func TestTaskCallbackFailureFlag(t *testing.T) {
	gtest.C(t, func(t *gtest.T) {
		ctx := context.Background()
		svc, store, _, _ := newTestService()
		store.addTranscript("t1", "a1", consts.StatusGeneratingSegments)

		failed := taskDone(consts.OperationSegmentation, "t1")
		failed.Status = consts.TaskStatusFailed
		failed.Error = "model quota exceeded"

		err := svc.TaskCallback(ctx, "t1", taskNotification(failed))
		t.AssertNE(err, nil)
		t.Assert(gerror.Code(err), consts.CodeFatalUpstream)
		t.Assert(store.transcripts["t1"].Status, consts.StatusFailed)
	})
}

func TestTaskCallbackFailureFlagDoesNotDemoteDone(t *testing.T) {
	gtest.C(t, func(t *gtest.T) {
		ctx := context.Background()
		svc, store, _, _ := newTestService()
		store.addTranscript("t1", "a1", consts.StatusDone)

		failed := taskDone(consts.OperationClip, "t1")
		failed.WorkflowFailed = true

		err := svc.TaskCallback(ctx, "t1", taskNotification(failed))
		t.AssertNil(err)
		t.Assert(store.transcripts["t1"].Status, consts.StatusDone)
	})
}

func TestTaskCallbackUnknownOperation(t *testing.T) {
	gtest.C(t, func(t *gtest.T) {
		ctx := context.Background()
		svc, store, _, _ := newTestService()
		store.addTranscript("t1", "a1", consts.StatusTranscribing)

		err := svc.TaskCallback(ctx, "t1", taskNotification(taskDone("dubbing", "t1")))
		t.AssertNE(err, nil)
		t.Assert(gerror.Code(err), consts.CodeValidation)
		t.Assert(store.transcripts["t1"].Status, consts.StatusTranscribing)
	})
}

func TestTaskCallbackWrongTranscript(t *testing.T) {
	gtest.C(t, func(t *gtest.T) {
		ctx := context.Background()
		svc, store, _, _ := newTestService()
		store.addTranscript("t1", "a1", consts.StatusTranscribing)
		store.addTranscript("t2", "a2", consts.StatusTranscribing)

		// t2 的任务结果投到了 t1 的回调地址，两条记录都不该动。
		err := svc.TaskCallback(ctx, "t1", taskNotification(taskDone(consts.OperationTranscription, "t2")))
		t.AssertNE(err, nil)
		t.Assert(gerror.Code(err), consts.CodeValidation)
		t.Assert(store.transcripts["t1"].Status, consts.StatusTranscribing)
		t.Assert(store.transcripts["t2"].Status, consts.StatusTranscribing)
	})
}

func TestTaskCallbackEmptyPayload(t *testing.T) {
	gtest.C(t, func(t *gtest.T) {
		ctx := context.Background()
		svc, _, _, _ := newTestService()

		err := svc.TaskCallback(ctx, "t1", nil)
		t.AssertNE(err, nil)
		t.Assert(gerror.Code(err), consts.CodeValidation)

		err = svc.TaskCallback(ctx, "", taskNotification(taskDone(consts.OperationTranscription, "t1")))
		t.AssertNE(err, nil)
		t.Assert(gerror.Code(err), consts.CodeValidation)
	})
}
