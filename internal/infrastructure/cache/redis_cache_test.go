package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sellout-api/internal/domain/promociones"
	"github.com/jhoicas/sellout-api/internal/infrastructure/cache"
	"github.com/jhoicas/sellout-api/pkg/config"
)

func setupCache(t *testing.T) (*cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return cache.NewRedisCache(client), mr
}

func resultadoEjemplo() *promociones.PromocionResultado {
	return &promociones.PromocionResultado{
		Config: promociones.PromocionConfig{
			Nombre:           "Semana del café",
			ProductoIDs:      []string{"SKU-CAFE-500"},
			Tipo:             promociones.TipoDescuentoPorcentaje,
			Parametros:       promociones.DescuentoPorcentaje{Porcentaje: decimal.NewFromInt(20)},
			FechaInicioPromo: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			FechaFinPromo:    time.Date(2025, 4, 14, 0, 0, 0, 0, time.UTC),
			DiasPostPromo:    14,
		},
		Kpis: promociones.PromocionKpis{
			VentaPromo:    decimal.RequireFromString("150000"),
			VentaBaseline: decimal.RequireFromString("100000"),
			ROI:           decimal.NewNullDecimal(decimal.RequireFromString("1.6667")),
		},
		Productos: []promociones.ProductoPromocionAnalisis{},
		Insights:  []promociones.PromocionInsight{},
		Veredicto: promociones.VeredictoExitosa,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Get / Set
// ──────────────────────────────────────────────────────────────────────────────

func TestRedisCache_SetYGet(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "promo:analisis:t1:abc", resultadoEjemplo(), time.Hour))

	got, ok, err := c.Get(ctx, "promo:analisis:t1:abc")
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, promociones.VeredictoExitosa, got.Veredicto)
	assert.True(t, decimal.RequireFromString("150000").Equal(got.Kpis.VentaPromo))
	require.True(t, got.Kpis.ROI.Valid)
	assert.True(t, decimal.RequireFromString("1.6667").Equal(got.Kpis.ROI.Decimal))
	assert.Nil(t, got.Canibalizacion)

	p, ok := got.Config.Parametros.(promociones.DescuentoPorcentaje)
	require.True(t, ok, "parametros debe reconstruirse con su tipo concreto")
	assert.True(t, decimal.NewFromInt(20).Equal(p.Porcentaje))
}

func TestRedisCache_Get_NoExiste(t *testing.T) {
	c, _ := setupCache(t)

	got, ok, err := c.Get(context.Background(), "promo:analisis:t1:nada")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestRedisCache_Get_JSONCorrupto(t *testing.T) {
	c, mr := setupCache(t)
	require.NoError(t, mr.Set("promo:analisis:t1:roto", "{no-es-json"))

	_, ok, err := c.Get(context.Background(), "promo:analisis:t1:roto")
	require.Error(t, err)
	assert.False(t, ok)
}

func TestRedisCache_Set_TTL(t *testing.T) {
	c, mr := setupCache(t)
	key := "promo:analisis:t1:ttl"

	require.NoError(t, c.Set(context.Background(), key, resultadoEjemplo(), 30*time.Minute))
	assert.Equal(t, 30*time.Minute, mr.TTL(key))

	mr.FastForward(31 * time.Minute)

	_, ok, err := c.Get(context.Background(), key)
	require.NoError(t, err)
	assert.False(t, ok, "la clave debe expirar tras el TTL")
}

func TestRedisCache_ServidorCaido(t *testing.T) {
	c, mr := setupCache(t)
	mr.Close()

	_, _, err := c.Get(context.Background(), "promo:analisis:t1:x")
	assert.Error(t, err)
	assert.Error(t, c.Set(context.Background(), "promo:analisis:t1:x", resultadoEjemplo(), time.Minute))
}

// ──────────────────────────────────────────────────────────────────────────────
// NewRedisClient
// ──────────────────────────────────────────────────────────────────────────────

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.RequireAuth("secreta")
	host, port := mr.Host(), mr.Server().Addr().Port

	client, err := cache.NewRedisClient(context.Background(), config.RedisConfig{Host: host, Port: port, Password: "secreta"})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	_, err = cache.NewRedisClient(context.Background(), config.RedisConfig{Host: host, Port: port, Password: "incorrecta"})
	assert.Error(t, err)
}
