package u

import (
	"fmt"
)

func fmtArgs(defaultMsg string, args ...any) string {
	if len(args) == 0 {
		return defaultMsg
	}
	s := fmt.Sprintf("%s", args[0])
	if len(args) > 1 {
		s = fmt.Sprintf(s, args[1:]...)
	}
	return s
}

func Must(err error) {
	if err != nil {
		panic(err)
	}
}

func PanicIf(cond bool, args ...any) {
	if !cond {
		return
	}
	panic(fmtArgs("condition failed", args...))
}

func PanicIfErr(err error, args ...any) {
	if err == nil {
		return
	}
	panic(fmtArgs(err.Error(), args...))
}
