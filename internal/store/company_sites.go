package store

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// Site is a cached discovery result for one company.
type Site struct {
	Website string
	Careers string
}

// GetSite returns the cached site for company, or a zero Site when the
// company has not been seen.
func (d *DB) GetSite(ctx context.Context, company string) (Site, error) {
	company = normalizeCompanyKey(company)
	if company == "" {
		return Site{}, nil
	}

	var s Site
	err := d.Pool.QueryRowContext(ctx,
		`SELECT website, careers FROM company_sites WHERE company = ? LIMIT 1;`,
		company,
	).Scan(&s.Website, &s.Careers)

	if err == sql.ErrNoRows {
		return Site{}, nil
	}
	if err != nil {
		return Site{}, err
	}
	s.Website = strings.TrimSpace(s.Website)
	s.Careers = strings.TrimSpace(s.Careers)
	return s, nil
}

// UpsertSite records the discovered URLs for a company. Empty fields do
// not clear previously cached values.
func (d *DB) UpsertSite(ctx context.Context, company string, site Site) error {
	company = normalizeCompanyKey(company)
	if company == "" {
		return nil
	}
	if site.Website == "" && site.Careers == "" {
		return nil
	}

	_, err := d.Pool.ExecContext(ctx, `
INSERT INTO company_sites(company, website, careers, fetched_at)
VALUES(?,?,?,?)
ON CONFLICT(company) DO UPDATE SET
  website = CASE WHEN excluded.website != '' THEN excluded.website ELSE company_sites.website END,
  careers = CASE WHEN excluded.careers != '' THEN excluded.careers ELSE company_sites.careers END,
  fetched_at = excluded.fetched_at;
`, company, strings.TrimSpace(site.Website), strings.TrimSpace(site.Careers),
		time.Now().UTC().Format(time.RFC3339))

	return err
}

func normalizeCompanyKey(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Join(strings.Fields(s), " ")
	s = strings.ToLower(s)
	return s
}
