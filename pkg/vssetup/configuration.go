package vssetup

import (
	"log/slog"

	"github.com/cockroachdb/errors"
)

// Configuration is the root of the Setup Configuration component. When the
// component is not installed the Configuration is still usable and reports
// no instances.
//
// A Configuration belongs to the apartment it was created in and must not be
// shared between goroutines.
type Configuration struct {
	root      setupConfiguration
	apartment *Apartment
	ownsApt   bool
	logger    *slog.Logger
	calendar  calendarFunc
	closed    bool
}

// Option configures a Configuration.
type Option func(*Configuration)

// WithApartment records the apartment the Configuration is used from. The
// caller keeps ownership and closes it after the Configuration.
func WithApartment(a *Apartment) Option {
	return func(c *Configuration) {
		c.apartment = a
		c.ownsApt = false
	}
}

// WithLogger sets the logger for diagnostic output. By default nothing is
// logged.
func WithLogger(l *slog.Logger) Option {
	return func(c *Configuration) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates the component root in the calling thread's apartment. The
// caller must already be inside one, see [NewApartment].
//
// A component that is not registered is not an error: the returned
// Configuration reports Installed() == false. Any other failure is returned.
func New(opts ...Option) (*Configuration, error) {
	return newConfiguration(createSetupConfiguration, opts...)
}

// ErrApartmentOption is returned by [NewWithApartment] when it is given
// [WithApartment], since it creates and owns its own apartment.
var ErrApartmentOption = errors.New("NewWithApartment cannot be combined with WithApartment")

// NewWithApartment enters a new single-threaded apartment and creates the
// component root inside it. Close releases both.
func NewWithApartment(opts ...Option) (*Configuration, error) {
	var probe Configuration
	for _, opt := range opts {
		opt(&probe)
	}
	if probe.apartment != nil {
		return nil, ErrApartmentOption
	}

	apt, err := NewApartment()
	if err != nil {
		return nil, err
	}

	c, err := newConfiguration(createSetupConfiguration, opts...)
	if err != nil {
		_ = apt.Close()
		return nil, err
	}
	c.apartment = apt
	c.ownsApt = true
	return c, nil
}

func newConfiguration(create createFunc, opts ...Option) (*Configuration, error) {
	c := &Configuration{
		logger:   slog.New(slog.DiscardHandler),
		calendar: fileTimeToSystemTime,
	}
	for _, opt := range opts {
		opt(c)
	}

	root, err := create()
	if err != nil {
		err = FromError(err)
		if isNotRegistered(err) {
			c.logger.Debug("setup configuration component not available", "code", Code(err).String())
			return c, nil
		}
		return nil, errors.Wrap(err, "creating setup configuration")
	}

	c.root = root
	c.logger.Debug("setup configuration component created")
	return c, nil
}

// Installed reports whether the component is present.
func (c *Configuration) Installed() bool {
	return c != nil && c.root != nil
}

// SupportsAllInstances reports whether the component can enumerate
// incomplete instances.
func (c *Configuration) SupportsAllInstances() bool {
	if !c.Installed() {
		return false
	}
	c2, ok := c.root.QueryConfiguration2()
	if !ok {
		return false
	}
	c2.Release()
	return true
}

// Instances returns a sequence over the installed instances. With
// includeIncomplete, instances that are not fully installed are included as
// well; that requires extended enumeration and yields [ErrNotImplemented]
// where it is unavailable.
//
// When the component is absent both results are nil.
func (c *Configuration) Instances(includeIncomplete bool) (*Instances, error) {
	if !c.Installed() {
		return nil, nil
	}

	var (
		enum enumSetupInstances
		hr   HRESULT
	)
	if includeIncomplete {
		c2, ok := c.root.QueryConfiguration2()
		if !ok {
			return nil, ErrNotImplemented
		}
		defer c2.Release()
		enum, hr = c2.EnumAllInstances()
	} else {
		enum, hr = c.root.EnumInstances()
	}

	if err := FromHRESULT(hr); err != nil {
		if enum != nil {
			enum.Release()
		}
		return nil, err
	}
	return newInstances(enum, c.logger, c.calendar), nil
}

// InstanceForCurrentProcess returns the instance that owns the running
// executable.
func (c *Configuration) InstanceForCurrentProcess() (*Instance, error) {
	if !c.Installed() {
		return nil, ErrNotInstalled
	}
	return c.instanceResult(c.root.GetInstanceForCurrentProcess())
}

// InstanceForPath returns the instance whose installation contains path.
func (c *Configuration) InstanceForPath(path string) (*Instance, error) {
	if !c.Installed() {
		return nil, ErrNotInstalled
	}
	return c.instanceResult(c.root.GetInstanceForPath(path))
}

func (c *Configuration) instanceResult(inst setupInstance, hr HRESULT) (*Instance, error) {
	if err := FromHRESULT(hr); err != nil {
		if inst != nil {
			inst.Release()
		}
		return nil, err
	}
	if inst == nil {
		return nil, FromHRESULT(StatusPointer)
	}
	return newInstance(inst, c.calendar), nil
}

// Close releases the component root and then, if the Configuration owns it,
// the apartment. Calling Close more than once is safe.
func (c *Configuration) Close() error {
	if c == nil || c.closed {
		return nil
	}
	c.closed = true

	if c.root != nil {
		c.root.Release()
		c.root = nil
	}
	if c.ownsApt && c.apartment != nil {
		return c.apartment.Close()
	}
	return nil
}
