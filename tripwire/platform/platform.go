package platform

// Flag is a named capability flag.
type Flag struct {
	Name string
	Set  bool
}

// CompilerFlags lists every compiler flag in declaration order.
func CompilerFlags() []Flag {
	return []Flag{
		{Name: "COMPILER_GC", Set: CompilerGC},
		{Name: "COMPILER_GCCGO", Set: CompilerGccgo},
		{Name: "COMPILER_UNKNOWN", Set: CompilerUnknown},
	}
}

// OSFlags lists every OS flag in declaration order.
func OSFlags() []Flag {
	return []Flag{
		{Name: "OS_WIN", Set: OSWindows},
		{Name: "OS_LINUX", Set: OSLinux},
		{Name: "OS_MAC", Set: OSMac},
		{Name: "OS_UNKNOWN", Set: OSUnknown},
	}
}

// Compilers returns the names of the set compiler flags.
func Compilers() []string {
	return setNames(CompilerFlags())
}

// OperatingSystems returns the names of the set OS flags.
func OperatingSystems() []string {
	return setNames(OSFlags())
}

func setNames(flags []Flag) []string {
	names := make([]string, 0, 1)

	for _, f := range flags {
		if f.Set {
			names = append(names, f.Name)
		}
	}

	return names
}
