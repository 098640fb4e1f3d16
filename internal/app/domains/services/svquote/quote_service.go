package svquote

import (
	"context"
	"errors"
	"time"

	"github.com/areed15ev/shipping-calculator/internal/model"
	"github.com/areed15ev/shipping-calculator/internal/quote"
	"github.com/areed15ev/shipping-calculator/pkg/metrics"
)

// QuoteService 同步报价服务
// 报价是纯计算，没有存储依赖，服务层只补充指标埋点与展示换算缺省
type QuoteService struct {
	engine        *quote.Engine
	defaultFxRate float64
}

// NewQuoteService 创建报价服务实例
// defaultFxRate 为请求未指定 fx_rate 时的缺省汇率，0 表示不换算
func NewQuoteService(engine *quote.Engine, defaultFxRate float64) *QuoteService {
	return &QuoteService{
		engine:        engine,
		defaultFxRate: defaultFxRate,
	}
}

// CreateQuote 计算一次报价对比
// fxRate 为人民币兑美元除数，仅用于展示换算
func (s *QuoteService) CreateQuote(ctx context.Context, in quote.Input, fxRate float64) (*model.QuoteResultData, error) {
	if fxRate <= 0 {
		fxRate = s.defaultFxRate
	}

	start := time.Now()
	res, err := s.engine.Quote(in)
	metrics.QuoteDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		outcome := "error"
		if errors.Is(err, quote.ErrInvalidPairCount) {
			outcome = "invalid"
		}
		metrics.QuoteRequestsTotal.WithLabelValues(outcome).Inc()
		return nil, err
	}

	for i := range res.Rows {
		if res.Rows[i].OutOfRange() {
			metrics.CarrierOutOfRangeTotal.WithLabelValues(res.Rows[i].Carrier).Inc()
		}
	}

	if res.Best == nil {
		metrics.QuoteRequestsTotal.WithLabelValues("out_of_range").Inc()
	} else {
		metrics.QuoteRequestsTotal.WithLabelValues("ok").Inc()
	}

	return model.QuoteResultFromEngine(res, fxRate), nil
}

// ListCarriers 承运商列表（声明顺序）
func (s *QuoteService) ListCarriers() []quote.CarrierSpec {
	return s.engine.Carriers()
}

// ListCartons 预设箱型表
func (s *QuoteService) ListCartons() quote.CartonPresets {
	return s.engine.Presets()
}

// Engine 暴露引擎给请求转换使用
func (s *QuoteService) Engine() *quote.Engine {
	return s.engine
}
