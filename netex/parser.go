package netex

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// Namespace is the NeTEx XML namespace
const Namespace = "http://www.netex.org.uk/netex"

type fareZoneXML struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"Name"`
}

type priceGroupXML struct {
	ID string `xml:"id,attr"`
	// GeographicalIntervalPrice appears either directly under the group
	// or inside a members wrapper depending on the exporter.
	DirectAmounts []string `xml:"GeographicalIntervalPrice>Amount"`
	MemberAmounts []string `xml:"members>GeographicalIntervalPrice>Amount"`
}

type zoneRefXML struct {
	Ref string `xml:"ref,attr"`
}

type distanceMatrixElementXML struct {
	Start    *zoneRefXML `xml:"StartTariffZoneRef"`
	End      *zoneRefXML `xml:"EndTariffZoneRef"`
	PriceRef *zoneRefXML `xml:"priceGroups>PriceGroupRef"`
}

// Parse reads one NeTEx fare tariff document and extracts the zone lookup
// and the zone-pair price matrix. Matrix records missing a start zone, an
// end zone or a resolvable price group are dropped, not reported: tariff
// exports routinely carry partial rows.
func Parse(r io.Reader) (Document, error) {
	doc := NewDocument()
	priceLookup := map[string]string{}
	var matrix []distanceMatrixElementXML

	d := xml.NewDecoder(r)
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return doc, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if se.Name.Space != "" && se.Name.Space != Namespace {
			continue
		}
		switch se.Name.Local {
		case "FareZone":
			var fz fareZoneXML
			if err := d.DecodeElement(&fz, &se); err != nil {
				return doc, err
			}
			name := strings.TrimSpace(fz.Name)
			if fz.ID != "" && name != "" {
				doc.Zones[fz.ID] = name
			}
		case "PriceGroup":
			var pg priceGroupXML
			if err := d.DecodeElement(&pg, &se); err != nil {
				return doc, err
			}
			if amount, ok := firstAmount(pg); ok && pg.ID != "" {
				priceLookup[pg.ID] = amount
			}
		case "DistanceMatrixElement":
			var dme distanceMatrixElementXML
			if err := d.DecodeElement(&dme, &se); err != nil {
				return doc, err
			}
			matrix = append(matrix, dme)
		}
	}

	for _, dme := range matrix {
		if dme.Start == nil || dme.End == nil || dme.PriceRef == nil {
			continue
		}
		price, ok := priceLookup[dme.PriceRef.Ref]
		if dme.Start.Ref == "" || dme.End.Ref == "" || !ok {
			continue
		}
		doc.Prices[ZonePair{Start: dme.Start.Ref, End: dme.End.Ref}] = price
	}
	return doc, nil
}

// firstAmount normalizes the first parseable amount of a price group to a
// fixed two-decimal string.
func firstAmount(pg priceGroupXML) (string, bool) {
	amounts := pg.DirectAmounts
	if len(amounts) == 0 {
		amounts = pg.MemberAmounts
	}
	for _, raw := range amounts {
		dec, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			continue
		}
		return dec.StringFixed(2), true
	}
	return "", false
}
