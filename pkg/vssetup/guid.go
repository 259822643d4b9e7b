package vssetup

import "github.com/go-ole/go-ole"

var (
	// CLSIDSetupConfiguration identifies the Setup Configuration coclass.
	CLSIDSetupConfiguration = ole.GUID{
		Data1: 0x177f0c4a,
		Data2: 0x1cd3,
		Data3: 0x4de7,
		Data4: [8]byte{0xa3, 0x2c, 0x71, 0xdb, 0xbb, 0x9f, 0xa3, 0x6d},
	}

	// IIDSetupConfiguration identifies ISetupConfiguration.
	IIDSetupConfiguration = ole.GUID{
		Data1: 0x42843719,
		Data2: 0xdb4c,
		Data3: 0x46c2,
		Data4: [8]byte{0x8e, 0x7c, 0x64, 0xf1, 0x81, 0x6e, 0xfd, 0x5b},
	}

	// IIDSetupConfiguration2 identifies ISetupConfiguration2, which adds
	// EnumAllInstances.
	IIDSetupConfiguration2 = ole.GUID{
		Data1: 0x26aab78c,
		Data2: 0x4a60,
		Data3: 0x49d6,
		Data4: [8]byte{0xaf, 0x3b, 0x3c, 0x35, 0xbc, 0x93, 0x36, 0x5d},
	}

	// IIDSetupInstance identifies ISetupInstance.
	IIDSetupInstance = ole.GUID{
		Data1: 0xb41463c3,
		Data2: 0x8866,
		Data3: 0x43b5,
		Data4: [8]byte{0xbc, 0x33, 0x2b, 0x06, 0x76, 0xf7, 0xf4, 0x2e},
	}

	// IIDEnumSetupInstances identifies IEnumSetupInstances.
	IIDEnumSetupInstances = ole.GUID{
		Data1: 0x6380bcff,
		Data2: 0x41d3,
		Data3: 0x4b2e,
		Data4: [8]byte{0x8b, 0x2e, 0xbf, 0x8a, 0x68, 0x10, 0xc8, 0x48},
	}
)
