package plcerrors_test

import (
	"testing"

	"github.com/plclang/plc/plcerrors"
	"github.com/stretchr/testify/assert"
)

func TestParseErrorFormatsIndexAndMessage(t *testing.T) {
	err := plcerrors.NewParseError(12, "unexpected %q", "}")
	assert.Equal(t, `parse error at 12: unexpected "}"`, err.Error())
	assert.Equal(t, 12, err.Index)
}

func TestSemanticErrorKindsAreDistinct(t *testing.T) {
	cases := []struct {
		err  *plcerrors.SemanticError
		kind plcerrors.SemanticKind
	}{
		{plcerrors.NewTypeError("bad type"), plcerrors.KindType},
		{plcerrors.NewNameError("bad name"), plcerrors.KindName},
		{plcerrors.NewArityError("bad arity"), plcerrors.KindArity},
		{plcerrors.NewRuntimeError("bad runtime"), plcerrors.KindRuntime},
	}
	for _, c := range cases {
		assert.Equal(t, c.kind, c.err.Kind)
	}
}

func TestRedefinitionErrorImplementsError(t *testing.T) {
	var err error = plcerrors.NewRedefinitionError("'%s' already defined", "x")
	assert.Equal(t, "'x' already defined", err.Error())
}
