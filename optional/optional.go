package optional

// Optional is a value that may be absent, e.g. the minimum of an empty
// sequence.
type Optional interface {
	Get() interface{}
	IsNone() bool
}

type None struct{}

func (o None) Get() interface{} { return struct{}{} }
func (o None) IsNone() bool     { return true }

type Some struct {
	Value interface{}
}

func (o Some) Get() interface{} { return o.Value }
func (o Some) IsNone() bool     { return false }
