package workflow

import (
	"context"
	"mime/multipart"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/net/ghttp"
	"github.com/google/uuid"

	v1 "media-clip-service/api/workflow/v1"
	"media-clip-service/internal/consts"
	workflowSvc "media-clip-service/internal/service/workflow"
)

// Upload 文件上传接口（支持单文件和多文件）。上传成功的文件统一登记为
// 资产并作为一个批次提交流水线。
func (c *ControllerV1) Upload(ctx context.Context, req *v1.UploadReq) (res *v1.UploadRes, err error) {
	uploadFiles := g.RequestFromCtx(ctx).GetUploadFiles("files")
	if uploadFiles == nil {
		return nil, gerror.New("上传文件为空，请使用字段名'files'上传文件")
	}

	// 并发处理多个文件
	var wg sync.WaitGroup
	resultCh := make(chan uploadResult, len(uploadFiles))
	semaphore := make(chan struct{}, 3) // 限制并发数量

	for _, file := range uploadFiles {
		wg.Add(1)
		go func(file *ghttp.UploadFile) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()
			resultCh <- c.processFileUpload(ctx, &httpUploadSource{file: file})
		}(file)
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	// 收集处理结果
	var uploads []workflowSvc.Upload
	var errorFiles []v1.FileError

	for result := range resultCh {
		if result.Error != nil {
			errorFiles = append(errorFiles, v1.FileError{
				FileName: result.FileName,
				Error:    result.Error.Error(),
			})
		} else {
			uploads = append(uploads, result.Upload)
		}
	}

	res = &v1.UploadRes{
		Errors:  errorFiles,
		Total:   len(uploadFiles),
		Success: len(uploads),
		Failed:  len(errorFiles),
	}
	if len(uploads) == 0 {
		return nil, gerror.New("所有上传均失败")
	}

	transcripts, assets, urls, err := c.svc.RegisterAssets(ctx, uploads)
	if err != nil {
		return nil, err
	}
	workflowId, err := c.svc.SubmitPipeline(ctx, transcripts, assets, urls)
	if err != nil {
		return nil, err
	}

	res.WorkflowId = workflowId
	for _, t := range transcripts {
		res.Transcripts = append(res.Transcripts, v1.TranscriptMeta{
			Id:      t.Id,
			AssetId: t.AssetId,
			Title:   t.Title,
			Status:  t.Status,
		})
	}
	return res, nil
}

type uploadResult struct {
	Upload   workflowSvc.Upload
	FileName string
	Error    error
}

// UploadSource 抽象上传文件来源，便于复用上传逻辑。
type UploadSource interface {
	FileName() string
	FileSize() int64
	Open() (multipart.File, error)
}

type httpUploadSource struct {
	file *ghttp.UploadFile
}

func (h *httpUploadSource) FileName() string {
	return h.file.Filename
}

func (h *httpUploadSource) FileSize() int64 {
	return h.file.Size
}

func (h *httpUploadSource) Open() (multipart.File, error) {
	return h.file.Open()
}

// processFileUpload 校验单个文件并上传到对象存储。
func (c *ControllerV1) processFileUpload(ctx context.Context, file UploadSource) uploadResult {
	result := uploadResult{
		FileName: file.FileName(),
	}
	if file.FileSize() >= consts.MaxUploadSize {
		result.Error = gerror.Newf("文件大小超过最大限制：%d / %d 字节", file.FileSize(), consts.MaxUploadSize)
		return result
	}

	// 打开文件
	fileReader, err := file.Open()
	if err != nil {
		result.Error = gerror.Wrap(err, "打开文件失败")
		return result
	}
	defer fileReader.Close()

	// 校验文件类型
	mType, err := mimetype.DetectReader(fileReader)
	if err != nil {
		result.Error = gerror.Wrap(err, "检测文件类型失败")
		return result
	}
	_, ok := consts.MediaExt[mType.Extension()]
	if !ok {
		result.Error = gerror.Newf("不支持的文件格式：%s", mType.Extension())
		return result
	}

	// 重置文件读取器，因为 mimetype.DetectReader 已经读取了一部分
	if _, err := fileReader.Seek(0, 0); err != nil {
		result.Error = gerror.Wrap(err, "无法重置文件读取器")
		return result
	}

	pathBase := g.Cfg().MustGet(ctx, "mediatoad.pathBase").String()
	key := pathBase + "/" + uuid.NewString() + mType.Extension()
	if err := c.objects.PutObject(ctx, key, mType.String(), fileReader); err != nil {
		result.Error = gerror.Wrap(err, "上传文件失败")
		return result
	}

	result.Upload = workflowSvc.Upload{
		Key:    key,
		Bucket: c.objects.Bucket(),
		Name:   file.FileName(),
	}
	return result
}
