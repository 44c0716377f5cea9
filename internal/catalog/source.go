package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type catalogFile struct {
	Products []Product `yaml:"products"`
}

// Decode reads a YAML product list. Unknown keys are rejected so typos in
// the config surface at startup.
func Decode(r io.Reader) ([]Product, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc catalogFile
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return doc.Products, nil
}

// Default is the catalog embedded in the binary.
func Default() (*Catalog, error) {
	products, err := Decode(bytes.NewReader(defaultCatalog))
	if err != nil {
		return nil, err
	}
	return New(products)
}

func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	products, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return New(products)
}
