package migrate

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

const versionLayout = "20060102150405"

var (
	sqlFileRe     = regexp.MustCompile(`^(\d{14})_([a-z0-9_]+)\.sql$`)
	createTableRe = regexp.MustCompile(`(?i)CREATE TABLE (?:IF NOT EXISTS )?"?([a-z0-9_]+)"?`)
)

// StorefrontTables are the tables the cart service reads and writes.
var StorefrontTables = []string{"products", "product_variants", "carts", "cart_items"}

// ValidateDir checks migration filenames, version uniqueness and goose
// annotations, then requires that every table in requiredTables is created by
// some migration in dir.
func ValidateDir(dir string, requiredTables ...string) error {
	if dir == "" {
		return fmt.Errorf("dir is required")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir %q: %w", dir, err)
	}

	seen := map[string]string{}
	created := map[string]string{}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}

		m := sqlFileRe.FindStringSubmatch(name)
		if m == nil {
			return fmt.Errorf("invalid migration filename %q (expected YYYYMMDDHHMMSS_name.sql)", name)
		}
		version := m[1]
		if prev, ok := seen[version]; ok {
			return fmt.Errorf("duplicate migration version %s in %q and %q", version, prev, name)
		}
		seen[version] = name

		full := filepath.Join(dir, name)
		b, err := os.ReadFile(full)
		if err != nil {
			return fmt.Errorf("read file %q: %w", full, err)
		}
		txt := string(b)
		for _, marker := range []string{"-- +goose Up", "-- +goose Down"} {
			if !strings.Contains(txt, marker) {
				return fmt.Errorf("migration %q missing %q", name, marker)
			}
		}
		if begin, end := strings.Count(txt, "-- +goose StatementBegin"), strings.Count(txt, "-- +goose StatementEnd"); begin != end {
			return fmt.Errorf("migration %q has %d StatementBegin and %d StatementEnd markers", name, begin, end)
		}

		up := txt[:strings.Index(txt, "-- +goose Down")]
		for _, match := range createTableRe.FindAllStringSubmatch(up, -1) {
			created[strings.ToLower(match[1])] = name
		}
	}

	var missing []string
	for _, table := range requiredTables {
		if _, ok := created[table]; !ok {
			missing = append(missing, table)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("no migration in %q creates table(s) %s", dir, strings.Join(missing, ", "))
	}
	return nil
}
