package common

import (
	"github.com/areed15ev/shipping-calculator/pkg/errorutil"
)

// BatchResult 批次处理结果（实现 ResultI 接口）
type BatchResult struct {
	ID     string           `json:"id"`
	Status string           `json:"status"`
	Data   interface{}      `json:"data"`
	Error  *errorutil.Error `json:"error,omitempty"`
}

const (
	BatchStatusSuccess = "SUCCESS"
	BatchStatusFailed  = "FAILED"
)

// NewBatchResult 创建批次处理结果
func NewBatchResult() *BatchResult {
	return &BatchResult{}
}

// Set 实现 ResultI 接口
func (r *BatchResult) Set(meta *Meta, err error) {
	r.ID = meta.ID
	if err != nil {
		r.Status = BatchStatusFailed
		r.Error = errorutil.Wrap(err)
	} else {
		r.Status = BatchStatusSuccess
	}
}

// GetStatus 实现 ResultI 接口
func (r *BatchResult) GetStatus() string {
	return r.Status
}
