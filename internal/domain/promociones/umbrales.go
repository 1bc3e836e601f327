package promociones

import "github.com/shopspring/decimal"

// Umbrales tabla de cortes usada por los analizadores y el generador de insights.
// Se pasa por valor: una vez construida no se modifica.
type Umbrales struct {
	// Variación % de venta promo vs baseline.
	UpliftExcelente decimal.Decimal
	UpliftBueno     decimal.Decimal
	UpliftNegativo  decimal.Decimal

	// ROI % del descuento.
	ROIExcelente decimal.Decimal
	ROIBueno     decimal.Decimal
	ROINegativo  decimal.Decimal

	// Valor absoluto de la elasticidad precio.
	ElasticidadMuyElastica decimal.Decimal
	ElasticidadElastica    decimal.Decimal

	// CanibalizacionBajo: variación % bajo la cual un hermano se considera afectado.
	// Alta/Moderada: pérdida total como % del uplift del producto promocionado.
	CanibalizacionBajo     decimal.Decimal
	CanibalizacionAlta     decimal.Decimal
	CanibalizacionModerada decimal.Decimal

	// Índice de retención (venta diaria post / durante).
	RetencionExcelente decimal.Decimal
	RetencionBuena     decimal.Decimal
	RetencionRegular   decimal.Decimal

	// Uplift % bajo el cual la promoción es negativa sin importar los insights.
	VeredictoNegativoUplift decimal.Decimal
}

// UmbralesPorDefecto devuelve la política comercial vigente.
func UmbralesPorDefecto() Umbrales {
	return Umbrales{
		UpliftExcelente: decimal.NewFromInt(30),
		UpliftBueno:     decimal.NewFromInt(10),
		UpliftNegativo:  decimal.Zero,

		ROIExcelente: decimal.NewFromInt(100),
		ROIBueno:     decimal.NewFromInt(50),
		ROINegativo:  decimal.Zero,

		ElasticidadMuyElastica: decimal.NewFromInt(2),
		ElasticidadElastica:    decimal.NewFromInt(1),

		CanibalizacionBajo:     decimal.NewFromInt(-5),
		CanibalizacionAlta:     decimal.NewFromInt(50),
		CanibalizacionModerada: decimal.NewFromInt(20),

		RetencionExcelente: decimal.RequireFromString("0.70"),
		RetencionBuena:     decimal.RequireFromString("0.50"),
		RetencionRegular:   decimal.RequireFromString("0.30"),

		VeredictoNegativoUplift: decimal.NewFromInt(-10),
	}
}
