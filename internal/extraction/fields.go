package extraction

import (
	"database/sql"

	"github.com/guttosm/imoveisxml/internal/domain/models"
	"github.com/guttosm/imoveisxml/internal/feed"
)

// Field binds one record field name to the feed element it is read from.
type Field struct {
	Name string // record field name, e.g. "preco_venda"
	Tag  string // feed element name, e.g. "PrecoVenda" (case-sensitive)
}

type listingField struct {
	Field
	path feed.Path
	set  func(*models.Listing, sql.NullString)
}

type launchField struct {
	Field
	path feed.Path
	set  func(*models.Launch, sql.NullString)
}

func listingCol(name, tag string, set func(*models.Listing, sql.NullString)) listingField {
	return listingField{Field: Field{Name: name, Tag: tag}, path: feed.Descendant(tag), set: set}
}

func launchCol(name, tag string, set func(*models.Launch, sql.NullString)) launchField {
	return launchField{Field: Field{Name: name, Tag: tag}, path: feed.Descendant(tag), set: set}
}

// listingFields is the fixed, ordered mapping for "Imovel" nodes.
var listingFields = []listingField{
	listingCol("codigo", "CodigoImovel", func(l *models.Listing, v sql.NullString) { l.Code = v }),
	listingCol("codigo_auxiliar", "CodigoImovelAuxiliar", func(l *models.Listing, v sql.NullString) { l.AuxiliaryCode = v }),
	listingCol("titulo", "TituloImovel", func(l *models.Listing, v sql.NullString) { l.Title = v }),
	listingCol("tipo", "TipoImovel", func(l *models.Listing, v sql.NullString) { l.Type = v }),
	listingCol("subtipo", "SubTipoImovel", func(l *models.Listing, v sql.NullString) { l.Subtype = v }),
	listingCol("finalidade", "Finalidade", func(l *models.Listing, v sql.NullString) { l.Purpose = v }),
	listingCol("endereco", "Endereco", func(l *models.Listing, v sql.NullString) { l.Street = v }),
	listingCol("numero", "Numero", func(l *models.Listing, v sql.NullString) { l.Number = v }),
	listingCol("bairro", "Bairro", func(l *models.Listing, v sql.NullString) { l.District = v }),
	listingCol("cidade", "Cidade", func(l *models.Listing, v sql.NullString) { l.City = v }),
	listingCol("estado", "Estado", func(l *models.Listing, v sql.NullString) { l.State = v }),
	listingCol("cep", "CEP", func(l *models.Listing, v sql.NullString) { l.PostalCode = v }),
	listingCol("preco_venda", "PrecoVenda", func(l *models.Listing, v sql.NullString) { l.SalePrice = v }),
	listingCol("preco_locacao", "PrecoLocacao", func(l *models.Listing, v sql.NullString) { l.RentPrice = v }),
	listingCol("area_util", "AreaUtil", func(l *models.Listing, v sql.NullString) { l.UsableArea = v }),
	listingCol("area_total", "AreaTotal", func(l *models.Listing, v sql.NullString) { l.TotalArea = v }),
	listingCol("dormitorios", "QtdDormitorios", func(l *models.Listing, v sql.NullString) { l.Bedrooms = v }),
	listingCol("suites", "QtdSuites", func(l *models.Listing, v sql.NullString) { l.Suites = v }),
	listingCol("banheiros", "QtdBanheiros", func(l *models.Listing, v sql.NullString) { l.Bathrooms = v }),
	listingCol("vagas", "QtdVagas", func(l *models.Listing, v sql.NullString) { l.ParkingSpots = v }),
	listingCol("data_cadastro", "DataCadastro", func(l *models.Listing, v sql.NullString) { l.RegisteredAt = v }),
	listingCol("data_atualizacao", "DataAtualizacao", func(l *models.Listing, v sql.NullString) { l.LastUpdatedAt = v }),
}

// launchFields is the fixed, ordered mapping for "Lancamento" nodes.
var launchFields = []launchField{
	launchCol("codigo", "codigoLancamento", func(l *models.Launch, v sql.NullString) { l.Code = v }),
	launchCol("nome", "nome", func(l *models.Launch, v sql.NullString) { l.Name = v }),
	launchCol("tipo", "tipo", func(l *models.Launch, v sql.NullString) { l.Type = v }),
	launchCol("cidade", "cidade", func(l *models.Launch, v sql.NullString) { l.City = v }),
	launchCol("estado", "estado", func(l *models.Launch, v sql.NullString) { l.State = v }),
	launchCol("bairro", "bairro", func(l *models.Launch, v sql.NullString) { l.District = v }),
	launchCol("endereco", "endereco", func(l *models.Launch, v sql.NullString) { l.Street = v }),
	launchCol("numero", "numero", func(l *models.Launch, v sql.NullString) { l.Number = v }),
	launchCol("valor_minimo", "valorMinimo", func(l *models.Launch, v sql.NullString) { l.MinPrice = v }),
	launchCol("valor_maximo", "valorMaximo", func(l *models.Launch, v sql.NullString) { l.MaxPrice = v }),
	launchCol("previsao_entrega", "previsaoEntrega", func(l *models.Launch, v sql.NullString) { l.ExpectedDelivery = v }),
	launchCol("construtora", "construtora", func(l *models.Launch, v sql.NullString) { l.Builder = v }),
	launchCol("dormitorios_min", "dormitoriosMin", func(l *models.Launch, v sql.NullString) { l.MinBedrooms = v }),
	launchCol("dormitorios_max", "dormitoriosMax", func(l *models.Launch, v sql.NullString) { l.MaxBedrooms = v }),
}

// ListingFields returns the ordered field mapping used for listings.
func ListingFields() []Field {
	out := make([]Field, len(listingFields))
	for i, f := range listingFields {
		out[i] = f.Field
	}
	return out
}

// LaunchFields returns the ordered field mapping used for launches.
func LaunchFields() []Field {
	out := make([]Field, len(launchFields))
	for i, f := range launchFields {
		out[i] = f.Field
	}
	return out
}
