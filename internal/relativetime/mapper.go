package relativetime

import (
	"reflect"
	"time"

	"github.com/alecthomas/kong"

	"github.com/steved/tu/internal/english"
)

// Expr is a time expression given as a flag or argument. It is resolved later, once the
// dialect flag has been decoded.
type Expr string

// Resolve resolves the expression against ref.
func (e Expr) Resolve(ref time.Time, dialect english.Dialect) (time.Time, error) {
	return Parse(string(e), ref, dialect)
}

// Mapper decodes Expr flags and arguments, rejecting text that no dialect can resolve.
var Mapper kong.MapperFunc = func(ctx *kong.DecodeContext, target reflect.Value) error {
	var timeStr string
	if err := ctx.Scan.PopValueInto("string", &timeStr); err != nil {
		return err
	}

	if _, err := Parse(timeStr, now(), english.US); err != nil {
		if _, ukErr := Parse(timeStr, now(), english.UK); ukErr != nil {
			return err
		}
	}
	target.Set(reflect.ValueOf(Expr(timeStr)))
	return nil
}
