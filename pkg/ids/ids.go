// Package ids generates globally unique host-node ids. Groups and options
// carry distinct prefixes so structural scans can select by id pattern.
package ids

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Id prefixes per widget family. The option prefix drives the structural
// rank-scan, so it must never collide with the others.
const (
	GroupPrefix       = "hlg-"
	OptionPrefix      = "hlo-"
	LabelPrefix       = "hll-"
	DescriptionPrefix = "hld-"
)

// Generator produces unique id strings. The zero value is ready to use and
// backed by random uuids; NewSequential returns a deterministic generator
// for tests.
type Generator struct {
	next func() string
}

// NewGenerator returns a uuid-backed generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// NewSequential returns a generator producing ids with a stable numeric
// suffix, for deterministic tests.
func NewSequential() *Generator {
	var counter atomic.Uint64
	return &Generator{
		next: func() string {
			return fmt.Sprintf("%06d", counter.Add(1))
		},
	}
}

func (g *Generator) suffix() string {
	if g != nil && g.next != nil {
		return g.next()
	}
	return uuid.NewString()
}

// Group returns a new group id.
func (g *Generator) Group() string { return GroupPrefix + g.suffix() }

// Option returns a new option id.
func (g *Generator) Option() string { return OptionPrefix + g.suffix() }

// Label returns a new label id.
func (g *Generator) Label() string { return LabelPrefix + g.suffix() }

// Description returns a new description id.
func (g *Generator) Description() string { return DescriptionPrefix + g.suffix() }

var defaultGenerator = NewGenerator()

// NewGroupID returns a new group id from the default generator.
func NewGroupID() string { return defaultGenerator.Group() }

// NewOptionID returns a new option id from the default generator.
func NewOptionID() string { return defaultGenerator.Option() }

// NewLabelID returns a new label id from the default generator.
func NewLabelID() string { return defaultGenerator.Label() }

// NewDescriptionID returns a new description id from the default generator.
func NewDescriptionID() string { return defaultGenerator.Description() }
