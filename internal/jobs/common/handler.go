package common

import (
	"context"

	"github.com/areed15ev/shipping-calculator/internal/business"
	"github.com/areed15ev/shipping-calculator/internal/quote"
)

// HandlerDeps Handler 依赖集合，由 worker 装配后逐级传入
type HandlerDeps struct {
	Engine        *quote.Engine
	Publisher     business.CallbackPublisher
	CallbackQueue string
}

// HandlerServProc Handler 构造函数类型
type HandlerServProc func(ctx context.Context, meta *Meta, payload interface{}, deps *HandlerDeps) (HandlerServ, error)

// HandlerServ Handler 接口
type HandlerServ interface {
	GetProcess() *Response
}
