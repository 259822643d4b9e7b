package vssetup

import (
	"github.com/thoreinstein/vssetup/pkg/vssetup/bstr"
)

// recorder collects native calls in order across fakes.
type recorder struct {
	calls []string
}

func (r *recorder) add(call string) {
	if r != nil {
		r.calls = append(r.calls, call)
	}
}

type fakeInstance struct {
	rec      *recorder
	name     string
	fields   map[string]string
	date     Filetime
	failures map[string]HRESULT
	lcids    []LCID
	released int
}

func newFakeInstance(rec *recorder, name string) *fakeInstance {
	return &fakeInstance{
		rec:  rec,
		name: name,
		fields: map[string]string{
			"id":          name + "-id",
			"name":        "VisualStudio/17.9.2+34622.214",
			"path":        `C:\Program Files\Microsoft Visual Studio\2022\` + name,
			"version":     "17.9.34622.214",
			"displayName": "Visual Studio " + name + " 2022",
			"description": "Powerful IDE",
		},
		date:     Filetime{LowDateTime: 0x3C120440, HighDateTime: 0x01D6431B},
		failures: map[string]HRESULT{},
	}
}

func (f *fakeInstance) str(field string, out *bstr.String) HRESULT {
	if hr, ok := f.failures[field]; ok {
		return hr
	}
	*out.Out() = bstr.Alloc(f.fields[field])
	return StatusOK
}

func (f *fakeInstance) GetInstanceID(out *bstr.String) HRESULT { return f.str("id", out) }

func (f *fakeInstance) GetInstallDate(out *Filetime) HRESULT {
	if hr, ok := f.failures["date"]; ok {
		return hr
	}
	*out = f.date
	return StatusOK
}

func (f *fakeInstance) GetInstallationName(out *bstr.String) HRESULT { return f.str("name", out) }

func (f *fakeInstance) GetInstallationPath(out *bstr.String) HRESULT { return f.str("path", out) }

func (f *fakeInstance) GetInstallationVersion(out *bstr.String) HRESULT {
	return f.str("version", out)
}

func (f *fakeInstance) GetDisplayName(lcid LCID, out *bstr.String) HRESULT {
	f.lcids = append(f.lcids, lcid)
	return f.str("displayName", out)
}

func (f *fakeInstance) GetDescription(lcid LCID, out *bstr.String) HRESULT {
	f.lcids = append(f.lcids, lcid)
	return f.str("description", out)
}

func (f *fakeInstance) ResolvePath(rel string, out *bstr.String) HRESULT {
	if hr, ok := f.failures["resolve"]; ok {
		return hr
	}
	*out.Out() = bstr.Alloc(f.fields["path"] + `\` + rel)
	return StatusOK
}

func (f *fakeInstance) Release() int32 {
	f.released++
	f.rec.add("release instance " + f.name)
	return 0
}

// fakeEnum yields items one fetch at a time. A non-zero failAt makes the
// fetch with that 1-based index fail.
type fakeEnum struct {
	rec      *recorder
	items    []*fakeInstance
	failAt   int
	failWith HRESULT
	fetches  int
	released int
}

func (e *fakeEnum) Next(celt uint32) ([]setupInstance, HRESULT) {
	e.fetches++
	if e.failAt != 0 && e.fetches == e.failAt {
		return nil, e.failWith
	}
	if len(e.items) == 0 {
		return nil, StatusFalse
	}
	n := min(int(celt), len(e.items))
	out := make([]setupInstance, 0, n)
	for _, item := range e.items[:n] {
		out = append(out, item)
	}
	e.items = e.items[n:]
	if n < int(celt) {
		return out, StatusFalse
	}
	return out, StatusOK
}

func (e *fakeEnum) Release() int32 {
	e.released++
	e.rec.add("release enum")
	return 0
}

type fakeConfiguration2 struct {
	rec      *recorder
	enum     *fakeEnum
	hr       HRESULT
	released int
}

func (c *fakeConfiguration2) EnumAllInstances() (enumSetupInstances, HRESULT) {
	c.rec.add("enum all")
	if c.hr.Failed() {
		return nil, c.hr
	}
	return c.enum, c.hr
}

func (c *fakeConfiguration2) Release() int32 {
	c.released++
	c.rec.add("release configuration2")
	return 0
}

type fakeConfiguration struct {
	rec      *recorder
	enum     *fakeEnum
	enumHR   HRESULT
	config2  *fakeConfiguration2
	byPath   map[string]*fakeInstance
	current  *fakeInstance
	released int
}

func (c *fakeConfiguration) EnumInstances() (enumSetupInstances, HRESULT) {
	c.rec.add("enum")
	if c.enumHR.Failed() {
		return nil, c.enumHR
	}
	return c.enum, c.enumHR
}

func (c *fakeConfiguration) GetInstanceForCurrentProcess() (setupInstance, HRESULT) {
	if c.current == nil {
		return nil, StatusElementNotFound
	}
	return c.current, StatusOK
}

func (c *fakeConfiguration) GetInstanceForPath(path string) (setupInstance, HRESULT) {
	inst, ok := c.byPath[path]
	if !ok {
		return nil, StatusElementNotFound
	}
	return inst, StatusOK
}

func (c *fakeConfiguration) QueryConfiguration2() (setupConfiguration2, bool) {
	if c.config2 == nil {
		return nil, false
	}
	return c.config2, true
}

func (c *fakeConfiguration) Release() int32 {
	c.released++
	c.rec.add("release configuration")
	return 0
}

func createReturning(root setupConfiguration, err error) createFunc {
	return func() (setupConfiguration, error) {
		return root, err
	}
}
