// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package analytics

import (
	"time"

	"github.com/google/uuid"
)

// Synthesizer assembles QueryResults. The id and clock sources are injectable
// so tests can produce stable output; the zero value uses random UUIDs and
// the wall clock.
type Synthesizer struct {
	IDFunc func() string
	Clock  func() time.Time
}

// NewSynthesizer returns a Synthesizer with the default id and clock sources.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{IDFunc: uuid.NewString, Clock: time.Now}
}

// Synthesize classifies the query and builds a complete result record.
func (s *Synthesizer) Synthesize(query string) QueryResult {
	sel := SelectDataset(query)
	return QueryResult{
		ID:          s.newID(),
		Title:       sel.Title,
		Description: sel.Description,
		Data:        sel.Data,
		ChartType:   ClassifyChartType(query),
		Timestamp:   s.now(),
	}
}

func (s *Synthesizer) newID() string {
	if s == nil || s.IDFunc == nil {
		return uuid.NewString()
	}
	return s.IDFunc()
}

func (s *Synthesizer) now() time.Time {
	if s == nil || s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock().UTC()
}
