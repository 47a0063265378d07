/*
Package dataset loads the fare archive and owns the immutable snapshot the
engine queries.

The archive is one zip file, fetched over HTTP or opened from a local
path, containing NeTEx tariff XML documents plus Routes and Stops Excel
workbooks. Workbooks are read positionally (column meaning is fixed by
position, the header row is dropped); tariff XMLs become netex.Document
values keyed by their basename.

Snapshots are immutable once built. The Store swaps a single atomic
pointer on reload, giving copy-on-reload semantics: readers that picked
up a snapshot keep it for the duration of their query.
*/
package dataset
