package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shipquote"

// 报价链路指标，/metrics 暴露
var (
	// QuoteRequestsTotal 报价请求计数，outcome: ok / out_of_range / invalid / error
	QuoteRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quote_requests_total",
		Help:      "Quote requests by outcome.",
	}, []string{"outcome"})

	// QuoteDuration 单次报价计算耗时
	QuoteDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "quote_duration_seconds",
		Help:      "Quote computation latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	// CarrierOutOfRangeTotal 按承运商统计的超范围行数
	CarrierOutOfRangeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "carrier_out_of_range_total",
		Help:      "Quote rows priced out of range by carrier.",
	}, []string{"carrier"})

	// BatchJobsTotal 批量任务计数，result: published / SUCCESS / PARTIAL / FAILED
	BatchJobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "batch_jobs_total",
		Help:      "Batch quote jobs by result.",
	}, []string{"result"})
)
