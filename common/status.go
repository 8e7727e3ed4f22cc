package common

type Statuser interface {
	Status() Status
}

// CheckStatus checks a variadic number of Statusers in order and
// returns the first result that is not Continue
func CheckStatus(cs ...Statuser) Status {
	for _, val := range cs {
		c := val.Status()
		if c != Continue {
			return c
		}
	}
	return Continue
}

// NewStatus is used to get a unique value for Status to avoid any accidental
// collisions. NewStatus is not thread-safe as it is intended to only be used
// during initialization
func NewStatus(str string) Status {
	lastStatus++
	statusStrings[lastStatus] = str
	return Status(lastStatus)
}

var statusStrings map[Status]string

func init() {
	statusStrings = make(map[Status]string)
	statusStrings[Continue] = "Continue"
	statusStrings[BoundsConverged] = "BoundsConverged"
	statusStrings[RootConverged] = "RootConverged"
	statusStrings[ObjAbsTol] = "ObjAbsTol"
	statusStrings[ObjChangeTol] = "ObjChangeTol"

	statusStrings[UserFunctionError] = "ErrorInUserFunction"
	statusStrings[OptimizerError] = "OptimizerError"
	statusStrings[MaximumIterations] = "MaximumIterations"
	statusStrings[MaximumFunctionEvaluations] = "MaximumFunctionEvaluations"
	statusStrings[MaximumRuntime] = "MaximumRuntimeElapsed"
}

// Status is a type for expressing if the optimizer has finished or not.
// Zero signifies no convergence or error so the optimizer should continue.
// Positive values indicate successful convergence.
// Negative values express failure of some kind.
//
// If a custom status value is desired, NewStatus should be called. NewStatus
// is not thread-safe as it is intended to only be used during initialization
type Status int

func (s Status) String() string {
	str, ok := statusStrings[s]
	if !ok {
		return "UnregisteredStatus"
	}
	return str
}

const (
	Continue Status = iota
	BoundsConverged
	RootConverged
	ObjAbsTol
	ObjChangeTol
)

const (
	_                        = iota
	UserFunctionError Status = -1 * iota
	OptimizerError
	MaximumIterations
	MaximumFunctionEvaluations
	MaximumRuntime
)

var lastStatus Status = 256
