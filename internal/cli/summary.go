package cli

import (
	"time"

	"github.com/thoreinstein/vssetup/internal/errors"
	"github.com/thoreinstein/vssetup/pkg/vssetup"
)

// Summary holds every property of an instance, read once.
type Summary struct {
	ID          string    `json:"instanceId"`
	InstallDate time.Time `json:"installDate"`
	Name        string    `json:"installationName"`
	Path        string    `json:"installationPath"`
	Version     string    `json:"installationVersion"`
	DisplayName string    `json:"displayName"`
	Description string    `json:"description"`
}

// Summarize reads every property of inst, localizing for lcid. It stops at
// the first accessor that fails.
func Summarize(inst Instance, lcid vssetup.LCID) (Summary, error) {
	var (
		s   Summary
		err error
	)

	if s.ID, err = inst.ID(); err != nil {
		return Summary{}, errors.Wrap(err, "reading instance id")
	}
	if s.InstallDate, err = inst.InstallDate(); err != nil {
		return Summary{}, errors.Wrapf(err, "reading install date of %s", s.ID)
	}
	if s.Name, err = inst.Name(); err != nil {
		return Summary{}, errors.Wrapf(err, "reading installation name of %s", s.ID)
	}
	if s.Path, err = inst.Path(); err != nil {
		return Summary{}, errors.Wrapf(err, "reading installation path of %s", s.ID)
	}
	if s.Version, err = inst.Version(); err != nil {
		return Summary{}, errors.Wrapf(err, "reading installation version of %s", s.ID)
	}
	if s.DisplayName, err = inst.DisplayName(lcid); err != nil {
		return Summary{}, errors.Wrapf(err, "reading display name of %s", s.ID)
	}
	if s.Description, err = inst.Description(lcid); err != nil {
		return Summary{}, errors.Wrapf(err, "reading description of %s", s.ID)
	}

	return s, nil
}
