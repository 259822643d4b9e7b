// Package cli provides the consumer-side view of the Setup Configuration
// component used by vswhere commands.
//
// Commands depend on the [Locator] and [Instance] interfaces rather than on
// pkg/vssetup directly so they can be tested with the mocks in
// internal/cli/mocks.
package cli

import (
	"iter"
	"log/slog"
	"time"

	"github.com/thoreinstein/vssetup/internal/errors"
	"github.com/thoreinstein/vssetup/pkg/vssetup"
)

// Instance is one installed product.
type Instance interface {
	ID() (string, error)
	InstallDate() (time.Time, error)
	Name() (string, error)
	Path() (string, error)
	Version() (string, error)
	DisplayName(lcid vssetup.LCID) (string, error)
	Description(lcid vssetup.LCID) (string, error)
	ResolvePath(relative string) (string, error)
	Close()
}

// Locator finds installed instances.
type Locator interface {
	// Installed reports whether the component is present.
	Installed() bool

	// SupportsAllInstances reports whether incomplete instances can be
	// enumerated.
	SupportsAllInstances() bool

	// Instances returns the installed instances. Each instance is closed
	// when the loop body returns, so it must not be retained.
	Instances(all bool) (iter.Seq[Instance], error)

	// InstanceForPath returns the instance owning path. The caller closes it.
	InstanceForPath(path string) (Instance, error)

	Close() error
}

// Open creates a Locator backed by the Setup Configuration component in a
// new apartment. The Locator must be used and closed on the calling
// goroutine.
func Open(logger *slog.Logger) (Locator, error) {
	cfg, err := vssetup.NewWithApartment(vssetup.WithLogger(logger))
	if err != nil {
		return nil, errors.Wrap(err, "opening setup configuration")
	}
	return NewLocator(cfg), nil
}

// NewLocator adapts cfg to the Locator interface.
func NewLocator(cfg *vssetup.Configuration) Locator {
	return &setupLocator{cfg: cfg}
}

type setupLocator struct {
	cfg *vssetup.Configuration
}

func (l *setupLocator) Installed() bool {
	return l.cfg.Installed()
}

func (l *setupLocator) SupportsAllInstances() bool {
	return l.cfg.SupportsAllInstances()
}

func (l *setupLocator) Instances(all bool) (iter.Seq[Instance], error) {
	seq, err := l.cfg.Instances(all)
	if err != nil {
		return nil, err
	}

	return func(yield func(Instance) bool) {
		if seq == nil {
			return
		}
		defer seq.Close()

		for inst := range seq.All() {
			more := yield(inst)
			inst.Close()
			if !more {
				return
			}
		}
	}, nil
}

func (l *setupLocator) InstanceForPath(path string) (Instance, error) {
	inst, err := l.cfg.InstanceForPath(path)
	if err != nil {
		return nil, err
	}
	return inst, nil
}

func (l *setupLocator) Close() error {
	return l.cfg.Close()
}
