// petrel
// (C) 2024, Deutsche Telekom IT GmbH
//
// Deutsche Telekom IT GmbH and all other contributors /
// copyright owners license this file to you under the Apache
// License, Version 2.0 (the "License"); you may not use this
// file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package checker

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	count     *prometheus.CounterVec
	latency   *prometheus.GaugeVec
	histogram *prometheus.HistogramVec
}

// newMetrics initializes the metric collectors of the pool
func newMetrics() metrics {
	return metrics{
		count: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "petrel_check_count",
				Help: "Count of resolved checks per target and outcome kind",
			},
			[]string{
				"target",
				"kind",
			},
		),
		latency: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "petrel_check_latency_seconds",
				Help: "Latency of the final attempt for each target",
			},
			[]string{
				"target",
			},
		),
		histogram: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "petrel_check_duration",
				Help: "Latency of targets in seconds",
			},
			[]string{
				"target",
			},
		),
	}
}

// record updates the collectors with a resolved result
func (m metrics) record(res CheckResult) {
	m.count.WithLabelValues(res.Target, string(res.Outcome.Kind)).Inc()
	m.latency.WithLabelValues(res.Target).Set(res.Outcome.Elapsed.Seconds())
	m.histogram.WithLabelValues(res.Target).Observe(res.Outcome.Elapsed.Seconds())
}

// GetMetricCollectors returns all metric collectors of the pool
func (p *Pool) GetMetricCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		p.metrics.count,
		p.metrics.latency,
		p.metrics.histogram,
	}
}
