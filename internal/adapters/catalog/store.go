package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/randomtoy/astro-go/internal/domain"
)

//go:embed data/*.json
var catalogFS embed.FS

const influencesFile = "data/influences.json"

// EmbeddedStore loads influence texts from an embedded JSON file.
type EmbeddedStore struct {
	once       sync.Once
	influences domain.Influences
	err        error
}

func NewEmbeddedStore() *EmbeddedStore {
	return &EmbeddedStore{}
}

func (s *EmbeddedStore) init() {
	raw, err := catalogFS.ReadFile(influencesFile)
	if err != nil {
		s.err = fmt.Errorf("read embedded catalog: %w", err)
		return
	}
	if err := json.Unmarshal(raw, &s.influences); err != nil {
		s.err = fmt.Errorf("parse embedded catalog: %w", err)
	}
}

func (s *EmbeddedStore) GetInfluences(_ context.Context) (domain.Influences, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return domain.Influences{}, s.err
	}
	return s.influences, nil
}
