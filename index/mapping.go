package index

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/openplaces/placeindex/document"
)

// indexDoc is the flattened shape a document takes inside the index.
type indexDoc struct {
	Name        map[string]string `json:"name,omitempty"`
	Housenumber string            `json:"housenumber,omitempty"`
	Postcode    string            `json:"postcode,omitempty"`
	OSMID       string            `json:"osm_id,omitempty"`
	OSMKey      string            `json:"osm_key,omitempty"`
	OSMValue    string            `json:"osm_value,omitempty"`
	CountryCode string            `json:"country_code,omitempty"`
	City        string            `json:"city,omitempty"`
	Street      string            `json:"street,omitempty"`
	Centroid    []float64         `json:"centroid"` // lon, lat
	Importance  float64           `json:"importance"`
}

func newIndexDoc(d document.Document) indexDoc {
	out := indexDoc{
		Name:        d.Name,
		Housenumber: d.Housenumber,
		Postcode:    d.Postcode,
		OSMKey:      d.Class,
		OSMValue:    d.Type,
		CountryCode: d.CountryCode,
		City:        d.Address["city"],
		Street:      d.Address["street"],
		Centroid:    []float64{d.Centroid[0], d.Centroid[1]},
		Importance:  d.Importance,
	}
	if d.Object != 0 {
		out.OSMID = d.Object.String()
	}
	return out
}

func buildIndexMapping() mapping.IndexMapping {
	keyword := bleve.NewKeywordFieldMapping()
	text := bleve.NewTextFieldMapping()
	geo := bleve.NewGeoPointFieldMapping()
	numeric := bleve.NewNumericFieldMapping()

	addr := bleve.NewDocumentMapping()
	addr.AddFieldMappingsAt("housenumber", keyword)
	addr.AddFieldMappingsAt("postcode", keyword)
	addr.AddFieldMappingsAt("osm_id", keyword)
	addr.AddFieldMappingsAt("osm_key", keyword)
	addr.AddFieldMappingsAt("osm_value", keyword)
	addr.AddFieldMappingsAt("country_code", keyword)
	addr.AddFieldMappingsAt("city", text)
	addr.AddFieldMappingsAt("street", text)
	addr.AddFieldMappingsAt("centroid", geo)
	addr.AddFieldMappingsAt("importance", numeric)

	m := bleve.NewIndexMapping()
	m.DefaultMapping = addr
	return m
}
