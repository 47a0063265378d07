package dataset

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/le0holt/Fares/config"
	"github.com/le0holt/Fares/netex"
)

// Loader builds snapshots from the fare archive. The archive is a single
// zip holding NeTEx tariff XMLs plus Routes and Stops workbooks.
type Loader struct {
	cfg config.DatasetConfig
	log *zap.SugaredLogger
}

// NewLoader creates a loader for the configured archive source
func NewLoader(cfg config.DatasetConfig, log *zap.SugaredLogger) *Loader {
	return &Loader{cfg: cfg, log: log}
}

// Load fetches the archive and builds a fresh snapshot. An unreachable or
// unreadable archive returns an empty snapshot together with the error;
// individual bad entries inside a readable archive are skipped and logged.
func (l *Loader) Load() (*Snapshot, error) {
	data, err := l.fetchArchive()
	if err != nil {
		return NewSnapshot(), err
	}
	return l.loadFromZip(data)
}

func (l *Loader) fetchArchive() ([]byte, error) {
	if l.cfg.ArchivePath != "" {
		data, err := os.ReadFile(l.cfg.ArchivePath)
		if err != nil {
			return nil, fmt.Errorf("read archive %s: %w", l.cfg.ArchivePath, err)
		}
		return data, nil
	}
	if l.cfg.ArchiveURL != "" {
		resp, err := http.Get(l.cfg.ArchiveURL)
		if err != nil {
			return nil, fmt.Errorf("fetch archive: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch archive: unexpected status %s", resp.Status)
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("fetch archive: %w", err)
		}
		return data, nil
	}
	return nil, errors.New("no archive source configured")
}

func (l *Loader) loadFromZip(data []byte) (*Snapshot, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return NewSnapshot(), fmt.Errorf("open archive: %w", err)
	}
	snap := NewSnapshot()
	for _, f := range zr.File {
		if strings.HasSuffix(f.Name, "/") {
			continue
		}
		base := path.Base(f.Name)
		low := strings.ToLower(base)
		buf, err := readZipEntry(f)
		if err != nil {
			l.log.Warnw("skipping unreadable archive entry", "entry", f.Name, "error", err)
			continue
		}

		if strings.HasSuffix(low, ".xml") {
			doc, err := netex.Parse(bytes.NewReader(buf))
			if err != nil {
				l.log.Warnw("skipping unparsable tariff document", "entry", f.Name, "error", err)
				continue
			}
			key := base[:len(base)-len(".xml")]
			snap.Documents[key] = doc
			l.log.Debugw("parsed tariff document", "key", key, "zones", len(doc.Zones), "pairs", len(doc.Prices))
			continue
		}

		stem := strings.TrimSuffix(low, path.Ext(low))
		switch {
		case low == "routes.xlsx" || stem == "routes":
			snap.Routes = l.readWorkbook(base, buf)
		case low == "stops.xlsx" || stem == "stops":
			snap.Stops = l.readWorkbook(base, buf)
		case strings.Contains(low, "routes") && snap.Routes.Empty():
			snap.Routes = l.readWorkbook(base, buf)
		case strings.Contains(low, "stops") && snap.Stops.Empty():
			snap.Stops = l.readWorkbook(base, buf)
		}
	}
	snap.LoadedAt = time.Now()
	l.log.Infow("snapshot loaded",
		"documents", len(snap.Documents),
		"routeRows", len(snap.Routes.Rows),
		"stopRows", len(snap.Stops.Rows))
	return snap, nil
}

func readZipEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// readWorkbook reads the first sheet of an xlsx workbook into a positional
// table, dropping the header row. A workbook that cannot be read yields an
// empty table rather than failing the whole load.
func (l *Loader) readWorkbook(name string, data []byte) Table {
	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		l.log.Warnw("skipping unreadable workbook", "entry", name, "error", err)
		return Table{}
	}
	defer wb.Close()
	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return Table{}
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		l.log.Warnw("skipping unreadable workbook sheet", "entry", name, "sheet", sheets[0], "error", err)
		return Table{}
	}
	if len(rows) <= 1 {
		return Table{}
	}
	t := Table{Rows: make([]Row, 0, len(rows)-1)}
	for _, r := range rows[1:] {
		t.Rows = append(t.Rows, Row(r))
	}
	return t
}
