package dto

import (
	"database/sql"

	"github.com/guttosm/imoveisxml/internal/domain/models"
)

// ListingResponse is the JSON shape of a stored listing.
//
// Field names match the feed mapping. Absent feed values are omitted.
type ListingResponse struct {
	Codigo          *string `json:"codigo,omitempty" example:"AB123"`
	CodigoAuxiliar  *string `json:"codigo_auxiliar,omitempty"`
	Titulo          *string `json:"titulo,omitempty" example:"Casa Bonita"`
	Tipo            *string `json:"tipo,omitempty" example:"Casa"`
	Subtipo         *string `json:"subtipo,omitempty"`
	Finalidade      *string `json:"finalidade,omitempty" example:"Residencial"`
	Endereco        *string `json:"endereco,omitempty"`
	Numero          *string `json:"numero,omitempty"`
	Bairro          *string `json:"bairro,omitempty"`
	Cidade          *string `json:"cidade,omitempty" example:"Santos"`
	Estado          *string `json:"estado,omitempty" example:"SP"`
	CEP             *string `json:"cep,omitempty"`
	PrecoVenda      *string `json:"preco_venda,omitempty" example:"350000"`
	PrecoLocacao    *string `json:"preco_locacao,omitempty"`
	AreaUtil        *string `json:"area_util,omitempty"`
	AreaTotal       *string `json:"area_total,omitempty"`
	Dormitorios     *string `json:"dormitorios,omitempty"`
	Suites          *string `json:"suites,omitempty"`
	Banheiros       *string `json:"banheiros,omitempty"`
	Vagas           *string `json:"vagas,omitempty"`
	DataCadastro    *string `json:"data_cadastro,omitempty"`
	DataAtualizacao *string `json:"data_atualizacao,omitempty"`
}

// LaunchResponse is the JSON shape of a stored launch.
type LaunchResponse struct {
	Codigo          *string `json:"codigo,omitempty"`
	Nome            *string `json:"nome,omitempty" example:"Edificio A"`
	Tipo            *string `json:"tipo,omitempty"`
	Cidade          *string `json:"cidade,omitempty"`
	Estado          *string `json:"estado,omitempty"`
	Bairro          *string `json:"bairro,omitempty"`
	Endereco        *string `json:"endereco,omitempty"`
	Numero          *string `json:"numero,omitempty"`
	ValorMinimo     *string `json:"valor_minimo,omitempty"`
	ValorMaximo     *string `json:"valor_maximo,omitempty"`
	PrevisaoEntrega *string `json:"previsao_entrega,omitempty"`
	Construtora     *string `json:"construtora,omitempty"`
	DormitoriosMin  *string `json:"dormitorios_min,omitempty"`
	DormitoriosMax  *string `json:"dormitorios_max,omitempty"`
}

// ListingsResponse wraps a page of listings.
type ListingsResponse struct {
	Count int               `json:"count" example:"1"`
	Items []ListingResponse `json:"items"`
}

// LaunchesResponse wraps a page of launches.
type LaunchesResponse struct {
	Count int              `json:"count" example:"2"`
	Items []LaunchResponse `json:"items"`
}

func NewListingResponse(l models.Listing) ListingResponse {
	return ListingResponse{
		Codigo:          opt(l.Code),
		CodigoAuxiliar:  opt(l.AuxiliaryCode),
		Titulo:          opt(l.Title),
		Tipo:            opt(l.Type),
		Subtipo:         opt(l.Subtype),
		Finalidade:      opt(l.Purpose),
		Endereco:        opt(l.Street),
		Numero:          opt(l.Number),
		Bairro:          opt(l.District),
		Cidade:          opt(l.City),
		Estado:          opt(l.State),
		CEP:             opt(l.PostalCode),
		PrecoVenda:      opt(l.SalePrice),
		PrecoLocacao:    opt(l.RentPrice),
		AreaUtil:        opt(l.UsableArea),
		AreaTotal:       opt(l.TotalArea),
		Dormitorios:     opt(l.Bedrooms),
		Suites:          opt(l.Suites),
		Banheiros:       opt(l.Bathrooms),
		Vagas:           opt(l.ParkingSpots),
		DataCadastro:    opt(l.RegisteredAt),
		DataAtualizacao: opt(l.LastUpdatedAt),
	}
}

func NewLaunchResponse(l models.Launch) LaunchResponse {
	return LaunchResponse{
		Codigo:          opt(l.Code),
		Nome:            opt(l.Name),
		Tipo:            opt(l.Type),
		Cidade:          opt(l.City),
		Estado:          opt(l.State),
		Bairro:          opt(l.District),
		Endereco:        opt(l.Street),
		Numero:          opt(l.Number),
		ValorMinimo:     opt(l.MinPrice),
		ValorMaximo:     opt(l.MaxPrice),
		PrevisaoEntrega: opt(l.ExpectedDelivery),
		Construtora:     opt(l.Builder),
		DormitoriosMin:  opt(l.MinBedrooms),
		DormitoriosMax:  opt(l.MaxBedrooms),
	}
}

func NewListingsResponse(ls []models.Listing) ListingsResponse {
	items := make([]ListingResponse, 0, len(ls))
	for _, l := range ls {
		items = append(items, NewListingResponse(l))
	}
	return ListingsResponse{Count: len(items), Items: items}
}

func NewLaunchesResponse(ls []models.Launch) LaunchesResponse {
	items := make([]LaunchResponse, 0, len(ls))
	for _, l := range ls {
		items = append(items, NewLaunchResponse(l))
	}
	return LaunchesResponse{Count: len(items), Items: items}
}

func opt(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
