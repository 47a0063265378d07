/*
Package netex parses NeTEx fare tariff documents.

Only the constructs the fare engine consumes are read: FareZone elements
(zone id and display name), PriceGroup elements (price-group id and the
first GeographicalIntervalPrice amount, normalized to two decimals), and
DistanceMatrixElement records joining a start zone, an end zone and a
price group. Everything else in a NeTEx document is skipped.

The parser is deliberately forgiving: a matrix record with a missing zone
reference or an unresolvable price group is discarded silently, because
upstream tariff exports are human-maintained and routinely incomplete.
*/
package netex
