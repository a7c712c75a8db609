// Package extraction maps feed nodes into flat listing and launch records.
package extraction

import (
	"database/sql"

	"github.com/guttosm/imoveisxml/internal/domain/models"
	"github.com/guttosm/imoveisxml/internal/feed"
)

var (
	listingNodes = feed.Anywhere("Imovel")
	launchNodes  = feed.Anywhere("Lancamento")
)

// Result holds both record sequences of one document.
type Result struct {
	Listings []models.Listing
	Launches []models.Launch
}

// Extract runs both extraction passes over doc.
func Extract(doc *feed.Document) Result {
	return Result{
		Listings: ExtractListings(doc),
		Launches: ExtractLaunches(doc),
	}
}

// ExtractListings builds one Listing per "Imovel" element, at any depth, in
// document order. Missing child elements leave the field absent. A document
// without listings yields an empty slice.
func ExtractListings(doc *feed.Document) []models.Listing {
	nodes := doc.SelectAll(listingNodes)
	out := make([]models.Listing, 0, len(nodes))
	for _, n := range nodes {
		var l models.Listing
		for _, f := range listingFields {
			f.set(&l, lookup(n, f.path))
		}
		out = append(out, l)
	}
	return out
}

// ExtractLaunches builds one Launch per "Lancamento" element, same rules as
// ExtractListings.
func ExtractLaunches(doc *feed.Document) []models.Launch {
	nodes := doc.SelectAll(launchNodes)
	out := make([]models.Launch, 0, len(nodes))
	for _, n := range nodes {
		var l models.Launch
		for _, f := range launchFields {
			f.set(&l, lookup(n, f.path))
		}
		out = append(out, l)
	}
	return out
}

func lookup(n *feed.Node, p feed.Path) sql.NullString {
	text, ok := n.Text(p)
	return sql.NullString{String: text, Valid: ok}
}
