package diag

// Process exit statuses from BSD sysexits(3).
const (
	ExitOK          = 0
	ExitUsage       = 64
	ExitDataErr     = 65
	ExitNoInput     = 66
	ExitSoftware    = 70
	ExitCantCreate  = 73
	ExitIOErr       = 74
	ExitConfigError = 78
)
