package dto

// PhotoListRequest 图片列表
type PhotoListRequest struct {
	PageQuery
	OrderBy string `form:"order_by" binding:"omitempty,oneof=latest oldest popular"`
}

// RandomPhotosRequest 随机图片
type RandomPhotosRequest struct {
	Count int    `form:"count" binding:"omitempty,min=1,max=30"`
	Query string `form:"query"`
}

// DownloadRequest 下载请求，quality 缺省为 full
type DownloadRequest struct {
	Quality string `json:"quality" binding:"omitempty,oneof=raw full regular small thumb"`
}

// DownloadTaskInfo 已提交的下载任务
type DownloadTaskInfo struct {
	TaskID  string `json:"task_id"`
	PhotoID string `json:"photo_id"`
	Quality string `json:"quality"`
	Object  string `json:"object"`
}
