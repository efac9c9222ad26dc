package interpreter

import "github.com/lpahlavi/jlox/pkg/runtime"

type completionKind int

const (
	completeNormal completionKind = iota
	completeReturn
	completeBreak
)

// completion is the outcome of executing a statement. Loops consume
// completeBreak and calls consume completeReturn; neither is an error.
type completion struct {
	kind  completionKind
	value runtime.Value
}

var normalCompletion = completion{kind: completeNormal}

func returnCompletion(value runtime.Value) completion {
	return completion{kind: completeReturn, value: value}
}

func breakCompletion() completion {
	return completion{kind: completeBreak}
}
