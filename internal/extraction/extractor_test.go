package extraction

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/guttosm/imoveisxml/internal/domain/models"
	"github.com/guttosm/imoveisxml/internal/feed"
)

func mustParse(t *testing.T, xml string) *feed.Document {
	t.Helper()
	doc, err := feed.Parse(strings.NewReader(xml))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func present(s string) sql.NullString { return sql.NullString{String: s, Valid: true} }

const fullFeed = `<?xml version="1.0" encoding="UTF-8"?>
<Carga>
  <Imoveis>
    <Imovel>
      <CodigoImovel>AP001</CodigoImovel>
      <CodigoImovelAuxiliar>AUX-1</CodigoImovelAuxiliar>
      <TituloImovel>Apartamento Jardins</TituloImovel>
      <TipoImovel>Apartamento</TipoImovel>
      <SubTipoImovel>Padrão</SubTipoImovel>
      <Finalidade>Residencial</Finalidade>
      <Endereco>Rua Augusta</Endereco>
      <Numero>1500</Numero>
      <Bairro>Jardins</Bairro>
      <Cidade>São Paulo</Cidade>
      <Estado>SP</Estado>
      <CEP>01304-001</CEP>
      <PrecoVenda>850000</PrecoVenda>
      <PrecoLocacao>4500</PrecoLocacao>
      <AreaUtil>90</AreaUtil>
      <AreaTotal>110</AreaTotal>
      <QtdDormitorios>3</QtdDormitorios>
      <QtdSuites>1</QtdSuites>
      <QtdBanheiros>2</QtdBanheiros>
      <QtdVagas>2</QtdVagas>
      <DataCadastro>2024-01-10</DataCadastro>
      <DataAtualizacao>2024-03-02</DataAtualizacao>
    </Imovel>
  </Imoveis>
  <Lancamentos>
    <Lancamento>
      <codigoLancamento>L-77</codigoLancamento>
      <nome>Residencial Aurora</nome>
      <tipo>Apartamento</tipo>
      <cidade>Campinas</cidade>
      <estado>SP</estado>
      <bairro>Cambuí</bairro>
      <endereco>Av. Norte-Sul</endereco>
      <numero>200</numero>
      <valorMinimo>400000</valorMinimo>
      <valorMaximo>720000</valorMaximo>
      <previsaoEntrega>12/2026</previsaoEntrega>
      <construtora>Construtora Alfa</construtora>
      <dormitoriosMin>2</dormitoriosMin>
      <dormitoriosMax>4</dormitoriosMax>
    </Lancamento>
  </Lancamentos>
</Carga>`

func TestExtractListings_AllFields(t *testing.T) {
	got := ExtractListings(mustParse(t, fullFeed))
	if len(got) != 1 {
		t.Fatalf("want 1 listing, got %d", len(got))
	}
	want := models.Listing{
		Code:          present("AP001"),
		AuxiliaryCode: present("AUX-1"),
		Title:         present("Apartamento Jardins"),
		Type:          present("Apartamento"),
		Subtype:       present("Padrão"),
		Purpose:       present("Residencial"),
		Street:        present("Rua Augusta"),
		Number:        present("1500"),
		District:      present("Jardins"),
		City:          present("São Paulo"),
		State:         present("SP"),
		PostalCode:    present("01304-001"),
		SalePrice:     present("850000"),
		RentPrice:     present("4500"),
		UsableArea:    present("90"),
		TotalArea:     present("110"),
		Bedrooms:      present("3"),
		Suites:        present("1"),
		Bathrooms:     present("2"),
		ParkingSpots:  present("2"),
		RegisteredAt:  present("2024-01-10"),
		LastUpdatedAt: present("2024-03-02"),
	}
	if got[0] != want {
		t.Fatalf("listing mismatch:\n got %+v\nwant %+v", got[0], want)
	}
}

func TestExtractLaunches_AllFields(t *testing.T) {
	got := ExtractLaunches(mustParse(t, fullFeed))
	if len(got) != 1 {
		t.Fatalf("want 1 launch, got %d", len(got))
	}
	want := models.Launch{
		Code:             present("L-77"),
		Name:             present("Residencial Aurora"),
		Type:             present("Apartamento"),
		City:             present("Campinas"),
		State:            present("SP"),
		District:         present("Cambuí"),
		Street:           present("Av. Norte-Sul"),
		Number:           present("200"),
		MinPrice:         present("400000"),
		MaxPrice:         present("720000"),
		ExpectedDelivery: present("12/2026"),
		Builder:          present("Construtora Alfa"),
		MinBedrooms:      present("2"),
		MaxBedrooms:      present("4"),
	}
	if got[0] != want {
		t.Fatalf("launch mismatch:\n got %+v\nwant %+v", got[0], want)
	}
}

func TestExtractListings_PartialRecord(t *testing.T) {
	doc := mustParse(t, `<Carga><Imovel>
  <CodigoImovel>AB123</CodigoImovel>
  <TituloImovel>Casa Bonita</TituloImovel>
  <PrecoVenda>350000</PrecoVenda>
</Imovel></Carga>`)

	got := ExtractListings(doc)
	if len(got) != 1 {
		t.Fatalf("want 1 listing, got %d", len(got))
	}
	want := models.Listing{
		Code:      present("AB123"),
		Title:     present("Casa Bonita"),
		SalePrice: present("350000"),
	}
	if got[0] != want {
		t.Fatalf("want only codigo/titulo/preco_venda set, got %+v", got[0])
	}
}

func TestExtractLaunches_DocumentOrder(t *testing.T) {
	doc := mustParse(t, `<Carga>
  <Lancamento><nome>Edificio A</nome></Lancamento>
  <Imovel><CodigoImovel>X</CodigoImovel></Imovel>
  <Lancamento><nome>Edificio B</nome></Lancamento>
</Carga>`)

	got := ExtractLaunches(doc)
	if len(got) != 2 {
		t.Fatalf("want 2 launches, got %d", len(got))
	}
	if got[0].Name.String != "Edificio A" || got[1].Name.String != "Edificio B" {
		t.Fatalf("unexpected order: %q, %q", got[0].Name.String, got[1].Name.String)
	}
	if got[0].Code.Valid || got[1].Code.Valid {
		t.Fatalf("codigo should be absent")
	}
}

func TestExtract_EmptyCollections(t *testing.T) {
	cases := []struct {
		name         string
		xml          string
		wantListings int
		wantLaunches int
	}{
		{name: "no records", xml: `<Carga><Outro/></Carga>`},
		{name: "only listings", xml: `<Carga><Imovel/><Imovel/></Carga>`, wantListings: 2},
		{name: "only launches", xml: `<Carga><Lancamento/></Carga>`, wantLaunches: 1},
		{name: "case sensitive tags", xml: `<Carga><imovel/><LANCAMENTO/></Carga>`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Extract(mustParse(t, tc.xml))
			if res.Listings == nil || res.Launches == nil {
				t.Fatalf("expected non-nil slices")
			}
			if len(res.Listings) != tc.wantListings {
				t.Fatalf("listings: want %d got %d", tc.wantListings, len(res.Listings))
			}
			if len(res.Launches) != tc.wantLaunches {
				t.Fatalf("launches: want %d got %d", tc.wantLaunches, len(res.Launches))
			}
		})
	}
}

func TestExtract_ArbitraryDepth(t *testing.T) {
	doc := mustParse(t, `<Raiz>
  <Imovel><CodigoImovel>1</CodigoImovel></Imovel>
  <A><B><C><Imovel><CodigoImovel>2</CodigoImovel></Imovel></C></B></A>
  <Grupo><Lancamento><nome>Profundo</nome></Lancamento></Grupo>
  <Lancamento><nome>Raso</nome></Lancamento>
</Raiz>`)

	res := Extract(doc)
	if len(res.Listings) != 2 || res.Listings[0].Code.String != "1" || res.Listings[1].Code.String != "2" {
		t.Fatalf("unexpected listings: %+v", res.Listings)
	}
	if len(res.Launches) != 2 || res.Launches[0].Name.String != "Profundo" || res.Launches[1].Name.String != "Raso" {
		t.Fatalf("unexpected launches: %+v", res.Launches)
	}
}

func TestExtractListings_FirstDescendantWins(t *testing.T) {
	doc := mustParse(t, `<Imovel>
  <Endereco>Rua Um</Endereco>
  <Extra><Endereco>Rua Dois</Endereco></Extra>
  <Endereco>Rua Tres</Endereco>
  <Caracteristicas><QtdVagas>1</QtdVagas></Caracteristicas>
  <Desconhecido>ignorado</Desconhecido>
</Imovel>`)

	got := ExtractListings(doc)[0]
	if got.Street.String != "Rua Um" {
		t.Fatalf("want first match, got %q", got.Street.String)
	}
	if !got.ParkingSpots.Valid || got.ParkingSpots.String != "1" {
		t.Fatalf("nested child should be found, got %+v", got.ParkingSpots)
	}
}

func TestExtractListings_EmptyElementIsPresent(t *testing.T) {
	got := ExtractListings(mustParse(t, `<Imovel><PrecoLocacao></PrecoLocacao></Imovel>`))[0]
	if !got.RentPrice.Valid || got.RentPrice.String != "" {
		t.Fatalf("empty element should be present and empty, got %+v", got.RentPrice)
	}
	if got.SalePrice.Valid {
		t.Fatalf("missing element should be absent")
	}
}

func TestFieldTables(t *testing.T) {
	listing := ListingFields()
	if len(listing) != 22 {
		t.Fatalf("listing fields: want 22 got %d", len(listing))
	}
	if listing[0] != (Field{Name: "codigo", Tag: "CodigoImovel"}) || listing[21] != (Field{Name: "data_atualizacao", Tag: "DataAtualizacao"}) {
		t.Fatalf("unexpected listing ordering: first=%+v last=%+v", listing[0], listing[21])
	}

	launch := LaunchFields()
	if len(launch) != 14 {
		t.Fatalf("launch fields: want 14 got %d", len(launch))
	}
	if launch[0] != (Field{Name: "codigo", Tag: "codigoLancamento"}) || launch[13] != (Field{Name: "dormitorios_max", Tag: "dormitoriosMax"}) {
		t.Fatalf("unexpected launch ordering: first=%+v last=%+v", launch[0], launch[13])
	}

	seen := map[string]bool{}
	for _, f := range listing {
		if seen[f.Name] {
			t.Fatalf("duplicate listing field %q", f.Name)
		}
		seen[f.Name] = true
	}
}
