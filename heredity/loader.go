package heredity

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Load reads a pedigree from CSV data with a name,mother,father,trait
// header. The trait column is "1" (observed), "0" (observed absent) or
// empty (unknown). Any structural problem fails here, before inference.
func Load(r io.Reader) (*Population, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	columns := map[string]int{}
	for i, name := range header {
		columns[name] = i
	}
	for _, required := range []string{"name", "mother", "father", "trait"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	var people []Person
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		trait, err := parseTrait(row[columns["trait"]])
		if err != nil {
			return nil, fmt.Errorf("row for %q: %w", row[columns["name"]], err)
		}
		people = append(people, Person{
			Name:   row[columns["name"]],
			Mother: row[columns["mother"]],
			Father: row[columns["father"]],
			Trait:  trait,
		})
	}

	pop, err := NewPopulation(people)
	if err != nil {
		return nil, fmt.Errorf("invalid pedigree: %w", err)
	}
	return pop, nil
}

// LoadFile reads a pedigree from a CSV file on disk.
func LoadFile(path string) (*Population, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pedigree file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func parseTrait(field string) (Evidence, error) {
	switch field {
	case "1":
		return ObservedTrue, nil
	case "0":
		return ObservedFalse, nil
	case "":
		return Unknown, nil
	default:
		return Unknown, fmt.Errorf("invalid trait value %q", field)
	}
}
