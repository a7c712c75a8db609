package models

import "database/sql"

// Launch represents a "Lancamento" element of the feed: a development still
// under construction, with a price range and a delivery estimate.
type Launch struct {
	Code             sql.NullString // codigoLancamento
	Name             sql.NullString // nome
	Type             sql.NullString // tipo
	City             sql.NullString // cidade
	State            sql.NullString // estado
	District         sql.NullString // bairro
	Street           sql.NullString // endereco
	Number           sql.NullString // numero
	MinPrice         sql.NullString // valorMinimo
	MaxPrice         sql.NullString // valorMaximo
	ExpectedDelivery sql.NullString // previsaoEntrega
	Builder          sql.NullString // construtora
	MinBedrooms      sql.NullString // dormitoriosMin
	MaxBedrooms      sql.NullString // dormitoriosMax
}

// LaunchFilter narrows stored launches. Empty strings are ignored.
type LaunchFilter struct {
	City    string
	Builder string
	Limit   int
}
