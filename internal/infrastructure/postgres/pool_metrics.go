package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

// PoolStatsCollector exporta las estadísticas de pgxpool a Prometheus.
type PoolStatsCollector struct {
	pool *pgxpool.Pool

	acquired     *prometheus.Desc
	idle         *prometheus.Desc
	total        *prometheus.Desc
	max          *prometheus.Desc
	acquireCount *prometheus.Desc
	acquireSecs  *prometheus.Desc
}

// NewPoolStatsCollector construye el collector; registrarlo con prometheus.MustRegister.
func NewPoolStatsCollector(pool *pgxpool.Pool) *PoolStatsCollector {
	return &PoolStatsCollector{
		pool:         pool,
		acquired:     prometheus.NewDesc("sellout_db_pool_acquired_connections", "Conexiones en uso", nil, nil),
		idle:         prometheus.NewDesc("sellout_db_pool_idle_connections", "Conexiones ociosas", nil, nil),
		total:        prometheus.NewDesc("sellout_db_pool_total_connections", "Conexiones abiertas", nil, nil),
		max:          prometheus.NewDesc("sellout_db_pool_max_connections", "Máximo de conexiones", nil, nil),
		acquireCount: prometheus.NewDesc("sellout_db_pool_acquire_count_total", "Adquisiciones de conexión", nil, nil),
		acquireSecs:  prometheus.NewDesc("sellout_db_pool_acquire_duration_seconds_total", "Tiempo esperando conexión", nil, nil),
	}
}

func (c *PoolStatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.acquired
	ch <- c.idle
	ch <- c.total
	ch <- c.max
	ch <- c.acquireCount
	ch <- c.acquireSecs
}

func (c *PoolStatsCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.pool.Stat()
	ch <- prometheus.MustNewConstMetric(c.acquired, prometheus.GaugeValue, float64(s.AcquiredConns()))
	ch <- prometheus.MustNewConstMetric(c.idle, prometheus.GaugeValue, float64(s.IdleConns()))
	ch <- prometheus.MustNewConstMetric(c.total, prometheus.GaugeValue, float64(s.TotalConns()))
	ch <- prometheus.MustNewConstMetric(c.max, prometheus.GaugeValue, float64(s.MaxConns()))
	ch <- prometheus.MustNewConstMetric(c.acquireCount, prometheus.CounterValue, float64(s.AcquireCount()))
	ch <- prometheus.MustNewConstMetric(c.acquireSecs, prometheus.CounterValue, s.AcquireDuration().Seconds())
}
