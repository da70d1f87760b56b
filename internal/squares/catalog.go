package squares

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rocketscienceinc/squares-backend/internal/apperror"
	"github.com/rocketscienceinc/squares-backend/internal/entity"
)

const DefaultBoardSize = 20

// CatalogEntry - one starting shape handed to every player.
type CatalogEntry struct {
	Name  string       `yaml:"name"`
	Shape entity.Shape `yaml:"-"`
}

type Catalog []CatalogEntry

type catalogFile struct {
	Pieces []struct {
		Name string   `yaml:"name"`
		Rows []string `yaml:"rows"`
	} `yaml:"pieces"`
}

var defaultCatalog = []struct {
	name string
	rows []string
}{
	{"monomino", []string{"#"}},
	{"domino", []string{"##"}},
	{"tromino-i", []string{"###"}},
	{"tetromino-i", []string{"####"}},
	{"tetromino-o", []string{"##", "##"}},
	{"tetromino-l", []string{"###", "#.."}},
	{"tetromino-j", []string{"##", ".#", ".#"}},
	{"tetromino-t", []string{"###", ".#."}},
	{"tetromino-t-upright", []string{"#.", "##", "#."}},
}

// DefaultCatalog - the starting set used when no catalog file is configured.
func DefaultCatalog() Catalog {
	catalog := make(Catalog, 0, len(defaultCatalog))
	for _, entry := range defaultCatalog {
		shape, err := entity.ParseShape(entry.rows)
		if err != nil {
			panic(fmt.Errorf("default catalog entry %s: %w", entry.name, err))
		}
		catalog = append(catalog, CatalogEntry{Name: entry.name, Shape: shape})
	}
	return catalog
}

// LoadCatalog - reads a YAML catalog:
//
//	pieces:
//	  - name: domino
//	    rows: ["##"]
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidCatalog, err)
	}

	if len(file.Pieces) == 0 {
		return nil, fmt.Errorf("%w: no pieces", apperror.ErrInvalidCatalog)
	}

	catalog := make(Catalog, 0, len(file.Pieces))
	for i, piece := range file.Pieces {
		shape, err := entity.ParseShape(piece.Rows)
		if err != nil {
			return nil, fmt.Errorf("%w: piece %d (%s): %w", apperror.ErrInvalidCatalog, i, piece.Name, err)
		}
		catalog = append(catalog, CatalogEntry{Name: piece.Name, Shape: shape})
	}

	return catalog, nil
}

// TotalCells - area of one full set.
func (that Catalog) TotalCells() int {
	total := 0
	for _, entry := range that {
		total += entry.Shape.CellCount()
	}
	return total
}
