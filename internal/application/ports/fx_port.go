package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// CurrencyConverter define el puerto de salida hacia el servicio de conversión
// de divisas. Convert NUNCA falla por falta de tasa: la implementación degrada
// por una cadena de fallbacks (directa → cross-rate → tabla estática →
// identidad con warning). Solo retorna error ante códigos irresolubles.
type CurrencyConverter interface {
	// Convert convierte amount de fromCode a toCode. Los códigos se normalizan
	// (case-insensitive, alias, símbolos) antes de convertir.
	Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error)
}
