package exchange

// Result is the outcome of one execution attempt: either *Success or
// *Failure.
type Result interface {
	isResult()
}

// Success is a fully received response.
type Success struct {
	Status     int
	StatusText string
	Proto      string
	// Headers has lower-cased names; repeated fields are joined with ", ".
	Headers map[string]string
	Data    string
	// Time is the elapsed time in milliseconds.
	Time int64
	// Size is the byte length of Data.
	Size int
}

// Failure is an attempt that did not produce a response.
type Failure struct {
	Error string
	// Time is always zero.
	Time int64
}

func (*Success) isResult() {}
func (*Failure) isResult() {}
