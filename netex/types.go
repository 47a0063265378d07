package netex

// ZonePair is an ordered pair of tariff zone identifiers. The price map is
// stored directionally but read symmetrically by the engine.
type ZonePair struct {
	Start string
	End   string
}

// Document is the usable content of one parsed NeTEx fare tariff: the
// zones it prices and the zone-pair price matrix. Zone identifiers are
// only meaningful within the document they came from.
type Document struct {
	Zones  map[string]string   // zone id -> display name ("fare stage")
	Prices map[ZonePair]string // zone pair -> two-decimal amount
}

// NewDocument creates an empty Document
func NewDocument() Document {
	return Document{
		Zones:  map[string]string{},
		Prices: map[ZonePair]string{},
	}
}
