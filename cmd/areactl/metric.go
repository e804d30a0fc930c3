package main

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"areaadmin/pkg/logger"
)

// logMetrics dumps the request counters at debug level before exit
func logMetrics(ctx context.Context, g prometheus.Gatherer) {
	log := logger.From(ctx)
	if !log.Core().Enabled(zapcore.DebugLevel) {
		return
	}
	families, err := g.Gather()
	if err != nil {
		log.Warn("gather metrics failed", zap.Error(err))
		return
	}
	for _, family := range families {
		for _, m := range family.GetMetric() {
			log.Debug("client metric",
				zap.String("name", family.GetName()),
				zap.Any("labels", labels(m)),
				zap.Float64("value", value(family.GetType(), m)))
		}
	}
}

func labels(m *dto.Metric) map[string]string {
	result := make(map[string]string, len(m.GetLabel()))
	for _, l := range m.GetLabel() {
		result[l.GetName()] = l.GetValue()
	}
	return result
}

func value(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	case dto.MetricType_HISTOGRAM:
		return float64(m.GetHistogram().GetSampleCount())
	default:
		return 0
	}
}
