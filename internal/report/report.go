// Package report renders extracted listings and launches as console text.
package report

import (
	"database/sql"
	"fmt"
	"io"

	"github.com/guttosm/imoveisxml/internal/domain/models"
)

// Write prints the listings section followed by the launches section.
// Each record is introduced by a header with its 1-based position. Absent
// fields are printed as empty text.
//
// The first write error aborts the report and is returned.
func Write(w io.Writer, listings []models.Listing, launches []models.Launch) error {
	p := &printer{w: w}

	p.printf("Encontrados %d imóveis:\n", len(listings))
	for i, l := range listings {
		p.printf("\n--- Imóvel %d ---\n", i+1)
		writeListing(p, l)
	}

	p.printf("\nEncontrados %d lançamentos:\n", len(launches))
	for i, l := range launches {
		p.printf("\n--- Lançamento %d ---\n", i+1)
		writeLaunch(p, l)
	}

	return p.err
}

func writeListing(p *printer, l models.Listing) {
	p.printf("Código: %s (%s)\n", v(l.Code), v(l.AuxiliaryCode))
	p.printf("Título: %s\n", v(l.Title))
	p.printf("Tipo: %s - %s (%s)\n", v(l.Type), v(l.Subtype), v(l.Purpose))
	p.printf("Endereço: %s, %s - %s, %s/%s - CEP: %s\n",
		v(l.Street), v(l.Number), v(l.District), v(l.City), v(l.State), v(l.PostalCode))
	p.printf("Preço venda: R$ %s\n", v(l.SalePrice))
	p.printf("Preço locação: R$ %s\n", v(l.RentPrice))
	p.printf("Área: %sm² (útil) / %sm² (total)\n", v(l.UsableArea), v(l.TotalArea))
	p.printf("Quartos: %s (%s suítes) | Banheiros: %s | Vagas: %s\n",
		v(l.Bedrooms), v(l.Suites), v(l.Bathrooms), v(l.ParkingSpots))
	p.printf("Cadastrado em: %s | Atualizado em: %s\n", v(l.RegisteredAt), v(l.LastUpdatedAt))
}

func writeLaunch(p *printer, l models.Launch) {
	p.printf("Código: %s\n", v(l.Code))
	p.printf("Nome: %s\n", v(l.Name))
	p.printf("Endereço: %s, %s - %s, %s/%s\n", v(l.Street), v(l.Number), v(l.District), v(l.City), v(l.State))
	p.printf("Valores: R$ %s a R$ %s\n", v(l.MinPrice), v(l.MaxPrice))
	p.printf("Dormitórios: %s a %s\n", v(l.MinBedrooms), v(l.MaxBedrooms))
	p.printf("Construtora: %s\n", v(l.Builder))
	p.printf("Previsão de entrega: %s\n", v(l.ExpectedDelivery))
}

// printer remembers the first write error and turns later writes into no-ops.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func v(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}
