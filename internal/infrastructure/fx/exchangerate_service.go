package fx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gastos-api/internal/application/ports"
	"github.com/jhoicas/Gastos-api/internal/domain"
	"github.com/jhoicas/Gastos-api/pkg/config"
)

// Verificar en tiempo de compilación que ExchangeRateService implementa CurrencyConverter.
var _ ports.CurrencyConverter = (*ExchangeRateService)(nil)

// ExchangeRateService adaptador que implementa CurrencyConverter contra la API
// REST de exchangerate.host. Usa net/http de la librería estándar.
//
// La conversión degrada por una cadena de fallbacks para que el registro de un
// gasto nunca se bloquee por el proveedor de tasas:
//  1. /convert directo (from -> to)
//  2. /latest con base=from y símbolo to
//  3. cross-rate vía la divisa de referencia (from -> USD -> to)
//  4. tabla estática de tasas conocidas
//  5. identidad 1:1 con warning en el log
type ExchangeRateService struct {
	baseURL    string
	reference  string
	httpClient *http.Client
	log        zerolog.Logger
}

func NewExchangeRateService(cfg config.FXConfig, log zerolog.Logger) *ExchangeRateService {
	return &ExchangeRateService{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		reference: normalizeCode(cfg.ReferenceCode),
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		log: log,
	}
}

// ── Normalización de códigos de divisa ────────────────────────────────────────

// currencyAliases alias y símbolos habituales en recibos -> código ISO 4217.
var currencyAliases = map[string]string{
	"RUPEE": "INR", "RUPEES": "INR", "RS": "INR", "₹": "INR",
	"DOLLAR": "USD", "DOLLARS": "USD", "US$": "USD", "$": "USD",
	"EURO": "EUR", "EUROS": "EUR", "€": "EUR",
	"POUND": "GBP", "POUNDS": "GBP", "£": "GBP",
	"YEN": "JPY", "¥": "JPY",
	"YUAN": "CNY", "RMB": "CNY",
	"DIRHAM": "AED", "DIRHAMS": "AED",
}

// normalizeCode lleva un código o símbolo de divisa a su forma ISO 4217.
// Devuelve "" si no es resoluble.
func normalizeCode(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}
	if iso, ok := currencyAliases[s]; ok {
		return iso
	}
	// Quitar todo lo que no sea letra ("USD.", "usd ", "U.S.D").
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	s = b.String()
	if iso, ok := currencyAliases[s]; ok {
		return iso
	}
	if len(s) == 3 {
		return s
	}
	return ""
}

// ── Estructuras del protocolo exchangerate.host ───────────────────────────────

type convertResponse struct {
	Success bool     `json:"success"`
	Result  *float64 `json:"result"`
}

type latestResponse struct {
	Success bool               `json:"success"`
	Rates   map[string]float64 `json:"rates"`
}

// staticCrossRates tasas de emergencia referidas a USD, usadas cuando el
// proveedor no responde. Valores aproximados, solo para degradar con gracia.
var staticCrossRates = map[string]decimal.Decimal{
	"USD": decimal.NewFromInt(1),
	"INR": decimal.NewFromInt(83),
	"EUR": decimal.RequireFromString("0.92"),
	"GBP": decimal.RequireFromString("0.78"),
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// Convert convierte amount de fromCode a toCode siguiendo la cadena de
// fallbacks. Solo retorna error si alguno de los códigos es irresoluble.
func (s *ExchangeRateService) Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error) {
	from := normalizeCode(fromCode)
	to := normalizeCode(toCode)
	if from == "" || to == "" {
		return decimal.Zero, fmt.Errorf("%w: divisa irresoluble %q -> %q", domain.ErrConversionDegraded, fromCode, toCode)
	}
	if from == to {
		return amount, nil
	}

	// 1. Conversión directa.
	if result, err := s.fetchConvert(ctx, from, to, amount); err == nil {
		return result, nil
	}

	// 2. Tasa directa vía /latest.
	if rate, err := s.fetchRate(ctx, from, to); err == nil {
		return amount.Mul(rate), nil
	}

	// 3. Cross-rate vía la divisa de referencia.
	if from != s.reference && to != s.reference {
		toRef, err1 := s.fetchRate(ctx, from, s.reference)
		fromRef, err2 := s.fetchRate(ctx, s.reference, to)
		if err1 == nil && err2 == nil {
			return amount.Mul(toRef).Mul(fromRef), nil
		}
	}

	// 4. Tabla estática referida a USD.
	if fromUSD, ok1 := staticCrossRates[from]; ok1 {
		if toUSD, ok2 := staticCrossRates[to]; ok2 {
			return amount.Div(fromUSD).Mul(toUSD), nil
		}
	}

	// 5. Identidad 1:1. El gasto se registra igual; el monto convertido queda
	// sin ajustar y se deja constancia en el log.
	s.log.Warn().
		Str("from", from).
		Str("to", to).
		Msg("conversión de divisa degradada a identidad 1:1")
	return amount, nil
}

func (s *ExchangeRateService) fetchConvert(ctx context.Context, from, to string, amount decimal.Decimal) (decimal.Decimal, error) {
	endpoint := fmt.Sprintf("%s/convert?from=%s&to=%s&amount=%s",
		s.baseURL, url.QueryEscape(from), url.QueryEscape(to), url.QueryEscape(amount.String()))
	var resp convertResponse
	if err := s.getJSON(ctx, endpoint, &resp); err != nil {
		return decimal.Zero, err
	}
	if !resp.Success || resp.Result == nil {
		return decimal.Zero, fmt.Errorf("convert %s->%s: respuesta sin resultado", from, to)
	}
	return decimal.NewFromFloat(*resp.Result), nil
}

func (s *ExchangeRateService) fetchRate(ctx context.Context, base, symbol string) (decimal.Decimal, error) {
	endpoint := fmt.Sprintf("%s/latest?base=%s&symbols=%s",
		s.baseURL, url.QueryEscape(base), url.QueryEscape(symbol))
	var resp latestResponse
	if err := s.getJSON(ctx, endpoint, &resp); err != nil {
		return decimal.Zero, err
	}
	rate, ok := resp.Rates[symbol]
	if !resp.Success || !ok || rate <= 0 {
		return decimal.Zero, fmt.Errorf("latest %s->%s: tasa no disponible", base, symbol)
	}
	return decimal.NewFromFloat(rate), nil
}

func (s *ExchangeRateService) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("llamar proveedor de tasas: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("leer respuesta: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("proveedor de tasas respondió HTTP %d", resp.StatusCode)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parsear respuesta: %w", err)
	}
	return nil
}
