// Package quotes loads inspirational quote lists and draws random entries.
package quotes

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"stoicfocus/internal/core/model"
	"stoicfocus/resources"
)

// ErrSourceUnavailable is returned when a quote list is missing, unreadable or malformed.
var ErrSourceUnavailable = errors.New("quote source unavailable")

// Parse decodes a JSON or YAML list of {text, author} records.
// Input opening with '[' is tried as JSON first, which accepts escapes such
// as \/ that YAML rejects; YAML flow lists still parse on the second attempt.
func Parse(data []byte) ([]model.Quote, error) {
	var list []model.Quote
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) && json.Unmarshal(data, &list) == nil {
		return nonEmpty(list)
	}
	list = nil
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%w: parse quotes: %v", ErrSourceUnavailable, err)
	}
	return nonEmpty(list)
}

func nonEmpty(list []model.Quote) ([]model.Quote, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: quote list is empty", ErrSourceUnavailable)
	}
	return list, nil
}

// Source draws random quotes from a loader.
type Source struct {
	mu   sync.Mutex
	load func() ([]byte, error)
	rng  *rand.Rand
}

// FileSource reads path on every draw, so edits show up without a restart.
func FileSource(path string, rng *rand.Rand) *Source {
	return newSource(func() ([]byte, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", ErrSourceUnavailable, path, err)
		}
		return data, nil
	}, rng)
}

// BundledSource draws from the quote list embedded in the binary.
func BundledSource(rng *rand.Rand) *Source {
	return newSource(func() ([]byte, error) {
		return resources.QuotesJSON(), nil
	}, rng)
}

func newSource(load func() ([]byte, error), rng *rand.Rand) *Source {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Source{load: load, rng: rng}
}

// Random returns a uniformly chosen quote.
func (source *Source) Random() (model.Quote, error) {
	data, err := source.load()
	if err != nil {
		return model.Quote{}, err
	}
	list, err := Parse(data)
	if err != nil {
		return model.Quote{}, err
	}

	source.mu.Lock()
	index := source.rng.Intn(len(list))
	source.mu.Unlock()
	return list[index], nil
}
