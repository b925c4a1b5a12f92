package metrics

import "github.com/prometheus/client_golang/prometheus"

// GetRegisterer 返回默认指标使用的 Registerer
func GetRegisterer() prometheus.Registerer {
	return prometheus.DefaultRegisterer
}
