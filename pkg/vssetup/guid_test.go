package vssetup

import (
	"testing"
	"unsafe"

	"github.com/go-ole/go-ole"
)

func TestGUIDs(t *testing.T) {
	tests := []struct {
		name string
		got  *ole.GUID
		want string
	}{
		{name: "CLSID SetupConfiguration", got: &CLSIDSetupConfiguration, want: "{177F0C4A-1CD3-4DE7-A32C-71DBBB9FA36D}"},
		{name: "ISetupConfiguration", got: &IIDSetupConfiguration, want: "{42843719-DB4C-46C2-8E7C-64F1816EFD5B}"},
		{name: "ISetupConfiguration2", got: &IIDSetupConfiguration2, want: "{26AAB78C-4A60-49D6-AF3B-3C35BC93365D}"},
		{name: "ISetupInstance", got: &IIDSetupInstance, want: "{B41463C3-8866-43B5-BC33-2B0676F7F42E}"},
		{name: "IEnumSetupInstances", got: &IIDEnumSetupInstances, want: "{6380BCFF-41D3-4B2E-8B2E-BF8A6810C848}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := ole.NewGUID(tt.want)
			if want == nil {
				t.Fatalf("NewGUID(%q) = nil", tt.want)
			}
			if !ole.IsEqualGUID(tt.got, want) {
				t.Errorf("GUID = %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestVtableLayout(t *testing.T) {
	slot := unsafe.Sizeof(uintptr(0))

	var cfg ISetupConfiguration2Vtbl
	var inst ISetupInstanceVtbl
	var enum IEnumSetupInstancesVtbl

	tests := []struct {
		name   string
		offset uintptr
		index  uintptr
	}{
		{name: "EnumInstances", offset: unsafe.Offsetof(cfg.EnumInstances), index: 3},
		{name: "GetInstanceForCurrentProcess", offset: unsafe.Offsetof(cfg.GetInstanceForCurrentProcess), index: 4},
		{name: "GetInstanceForPath", offset: unsafe.Offsetof(cfg.GetInstanceForPath), index: 5},
		{name: "EnumAllInstances", offset: unsafe.Offsetof(cfg.EnumAllInstances), index: 6},

		{name: "GetInstanceId", offset: unsafe.Offsetof(inst.GetInstanceId), index: 3},
		{name: "GetInstallDate", offset: unsafe.Offsetof(inst.GetInstallDate), index: 4},
		{name: "GetInstallationName", offset: unsafe.Offsetof(inst.GetInstallationName), index: 5},
		{name: "GetInstallationPath", offset: unsafe.Offsetof(inst.GetInstallationPath), index: 6},
		{name: "GetInstallationVersion", offset: unsafe.Offsetof(inst.GetInstallationVersion), index: 7},
		{name: "GetDisplayName", offset: unsafe.Offsetof(inst.GetDisplayName), index: 8},
		{name: "GetDescription", offset: unsafe.Offsetof(inst.GetDescription), index: 9},
		{name: "ResolvePath", offset: unsafe.Offsetof(inst.ResolvePath), index: 10},

		{name: "Next", offset: unsafe.Offsetof(enum.Next), index: 3},
		{name: "Skip", offset: unsafe.Offsetof(enum.Skip), index: 4},
		{name: "Reset", offset: unsafe.Offsetof(enum.Reset), index: 5},
		{name: "Clone", offset: unsafe.Offsetof(enum.Clone), index: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.offset != tt.index*slot {
				t.Errorf("slot = %d, want %d", tt.offset/slot, tt.index)
			}
		})
	}
}
