package errors

var newCoreCode = WithPrefix("CORE")

var (
	ErrInvalidArgument = newCoreCode().New("invalid argument")
	ErrTimeout         = newCoreCode().New("operation timeout").WithExitCode(ExitTimeout)
	ErrInterrupted     = newCoreCode().New("interrupted").WithExitCode(ExitInterrupted)
)

// Process exit statuses shared by the framework.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitTimeout     = 124
	ExitInterrupted = 130
)
