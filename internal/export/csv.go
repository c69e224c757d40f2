package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/gofrs/flock"

	"firmscrape/internal/domain"
)

var csvHeader = []string{
	"company_name",
	"company_profile_url",
	"company_geo",
	"company_emails",
	"company_phones",
}

// WriteCSV writes one row per record to path. A sibling ".lock" file
// guards the output so two runs pointed at the same file cannot
// interleave; the second run fails fast instead of waiting.
func WriteCSV(path string, records []domain.CompanyRecord) error {
	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock %s: %w", lock.Path(), err)
	}
	if !locked {
		return fmt.Errorf("lock %s: held by another process", lock.Path())
	}
	defer lock.Unlock()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	for _, r := range records {
		row := []string{r.Name, r.ProfileURL, r.Geo, r.Emails, r.Phones}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
