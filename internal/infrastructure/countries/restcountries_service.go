package countries

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/Gastos-api/internal/application/ports"
	"github.com/jhoicas/Gastos-api/internal/domain"
	"github.com/jhoicas/Gastos-api/pkg/config"
)

// Verificar en tiempo de compilación que RestCountriesService implementa el puerto.
var _ ports.CountryCurrencyResolver = (*RestCountriesService)(nil)

// RestCountriesService adaptador que resuelve la divisa de un país usando la
// API pública restcountries.com.
type RestCountriesService struct {
	baseURL    string
	httpClient *http.Client
}

func NewRestCountriesService(cfg config.CountriesConfig) *RestCountriesService {
	return &RestCountriesService{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

type countryRecord struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Currencies map[string]struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
	} `json:"currencies"`
}

// CurrencyForCountry devuelve el código ISO 4217 de la divisa del país cuyo
// nombre común coincide (case-insensitive). Devuelve domain.ErrUnknownCountry
// si el país no aparece o no tiene divisa registrada.
func (s *RestCountriesService) CurrencyForCountry(ctx context.Context, countryName string) (string, error) {
	name := strings.TrimSpace(countryName)
	if name == "" {
		return "", domain.ErrUnknownCountry
	}

	endpoint := s.baseURL + "/all?fields=name,currencies"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("llamar restcountries: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return "", fmt.Errorf("leer respuesta: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("restcountries respondió HTTP %d", resp.StatusCode)
	}

	var records []countryRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return "", fmt.Errorf("parsear respuesta: %w", err)
	}

	for _, rec := range records {
		if !strings.EqualFold(rec.Name.Common, name) {
			continue
		}
		for code := range rec.Currencies {
			return strings.ToUpper(code), nil
		}
		return "", domain.ErrUnknownCountry
	}
	return "", domain.ErrUnknownCountry
}
