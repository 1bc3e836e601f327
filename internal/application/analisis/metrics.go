package analisis

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	analisisTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sellout_promocion_analisis_total",
			Help: "Análisis de promociones ejecutados, por mecánica y veredicto",
		},
		[]string{"tipo", "veredicto"},
	)

	analisisDuracion = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sellout_promocion_analisis_duration_seconds",
			Help:    "Duración del análisis (consultas + motor), sin aciertos de caché",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"tipo"},
	)

	cacheConsultas = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sellout_promocion_cache_total",
			Help: "Consultas a la caché de resultados (hit, miss, error)",
		},
		[]string{"resultado"},
	)
)
