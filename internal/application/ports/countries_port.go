package ports

import "context"

// CountryCurrencyResolver define el puerto que resuelve la divisa base de un
// país por su nombre común (usado en el signup para fijar la divisa de la
// empresa). Devuelve domain.ErrUnknownCountry si el país no existe o no tiene
// divisa registrada.
type CountryCurrencyResolver interface {
	CurrencyForCountry(ctx context.Context, countryName string) (string, error)
}
