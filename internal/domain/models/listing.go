package models

import "database/sql"

// Listing represents a single "Imovel" element of the XML feed.
//
// Every field is raw text taken verbatim from the feed. A field whose child
// element is missing from the node is left invalid (Valid=false), which the
// storage layer persists as NULL.
//
// Field order follows the feed mapping:
//
//	codigo, codigo_auxiliar, titulo, tipo, subtipo, finalidade,
//	endereco, numero, bairro, cidade, estado, cep,
//	preco_venda, preco_locacao, area_util, area_total,
//	dormitorios, suites, banheiros, vagas,
//	data_cadastro, data_atualizacao
type Listing struct {
	Code          sql.NullString // CodigoImovel
	AuxiliaryCode sql.NullString // CodigoImovelAuxiliar
	Title         sql.NullString // TituloImovel
	Type          sql.NullString // TipoImovel
	Subtype       sql.NullString // SubTipoImovel
	Purpose       sql.NullString // Finalidade
	Street        sql.NullString // Endereco
	Number        sql.NullString // Numero
	District      sql.NullString // Bairro
	City          sql.NullString // Cidade
	State         sql.NullString // Estado
	PostalCode    sql.NullString // CEP
	SalePrice     sql.NullString // PrecoVenda
	RentPrice     sql.NullString // PrecoLocacao
	UsableArea    sql.NullString // AreaUtil
	TotalArea     sql.NullString // AreaTotal
	Bedrooms      sql.NullString // QtdDormitorios
	Suites        sql.NullString // QtdSuites
	Bathrooms     sql.NullString // QtdBanheiros
	ParkingSpots  sql.NullString // QtdVagas
	RegisteredAt  sql.NullString // DataCadastro
	LastUpdatedAt sql.NullString // DataAtualizacao
}

// ListingFilter narrows stored listings. Empty strings are ignored.
type ListingFilter struct {
	City    string
	State   string
	Purpose string
	Limit   int
}
