//go:build windows

package guid

import "golang.org/x/sys/windows"

// ToWindows converts the GUID to the Win32 GUID record. The mapping is
// field-for-field: Data1-Data3 keep their integer values and Data4 is
// copied verbatim, so no byte is reinterpreted in either direction.
func (g GUID) ToWindows() windows.GUID {
	return windows.GUID{
		Data1: g.Data1(),
		Data2: g.Data2(),
		Data3: g.Data3(),
		Data4: g.Data4(),
	}
}

// FromWindows converts a Win32 GUID record to a GUID
func FromWindows(w windows.GUID) GUID {
	return FromComponents(w.Data1, w.Data2, w.Data3, w.Data4)
}
