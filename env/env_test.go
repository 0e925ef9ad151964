package env_test

import (
	"testing"

	"github.com/plclang/plc/env"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildScopeShadowsWithoutMutatingParent(t *testing.T) {
	root := env.NewScope(nil)
	integerType := env.NewType(env.IntegerName, env.IntegerName)
	require.NoError(t, root.DefineVariable(env.NewVariable("x", "x", integerType, false)))

	child := root.Child()
	require.NoError(t, child.DefineVariable(env.NewVariable("x", "x", integerType, false)))

	parentVar, err := root.LookupVariable("x")
	require.NoError(t, err)
	childVar, err := child.LookupVariable("x")
	require.NoError(t, err)
	assert.NotSame(t, parentVar, childVar)
}

func TestDefineVariableTwiceInSameScopeIsRedefinitionError(t *testing.T) {
	scope := env.NewScope(nil)
	integerType := env.NewType(env.IntegerName, env.IntegerName)
	require.NoError(t, scope.DefineVariable(env.NewVariable("x", "x", integerType, false)))
	err := scope.DefineVariable(env.NewVariable("x", "x", integerType, false))
	assert.Error(t, err)
}

func TestLookupVariableWalksToRoot(t *testing.T) {
	root := env.NewScope(nil)
	integerType := env.NewType(env.IntegerName, env.IntegerName)
	require.NoError(t, root.DefineVariable(env.NewVariable("x", "x", integerType, false)))

	grandchild := root.Child().Child()
	v, err := grandchild.LookupVariable("x")
	require.NoError(t, err)
	assert.Equal(t, "x", v.Name)
}

func TestFunctionExistsDistinguishesNameFromArity(t *testing.T) {
	scope := env.NewScope(nil)
	integerType := env.NewType(env.IntegerName, env.IntegerName)
	fn := env.NewFunction("f", "f", []*env.Type{integerType}, integerType, nil)
	require.NoError(t, scope.DefineFunction(fn))

	_, err := scope.LookupFunction("f", 2)
	assert.Error(t, err)
	assert.True(t, scope.FunctionExists("f"))
	assert.False(t, scope.FunctionExists("g"))
}

func TestTypeHasMethodNameDistinguishesNameFromArity(t *testing.T) {
	integerType := env.NewType(env.IntegerName, env.IntegerName)
	stringType := env.NewType(env.StringName, env.StringName)
	integerType.DefineMethod(env.NewFunction("plus", "plus", []*env.Type{integerType}, integerType, nil))

	_, ok := integerType.Method("plus", 2)
	assert.False(t, ok)
	assert.True(t, integerType.HasMethodName("plus"))
	assert.False(t, integerType.HasMethodName("minus"))
	_ = stringType
}

func TestRequireAssignable(t *testing.T) {
	any := env.NewType(env.AnyName, env.AnyName)
	comparable := env.NewType(env.ComparableName, env.ComparableName)
	integerType := env.NewType(env.IntegerName, env.IntegerName)
	stringType := env.NewType(env.StringName, env.StringName)

	assert.True(t, env.RequireAssignable(any, integerType))
	assert.True(t, env.RequireAssignable(comparable, integerType))
	assert.True(t, env.RequireAssignable(comparable, stringType))
	assert.True(t, env.RequireAssignable(integerType, integerType))
	assert.False(t, env.RequireAssignable(integerType, stringType))
}

func TestBuilderDefinesEightFixedTypes(t *testing.T) {
	builder := env.NewBuilder()
	for _, name := range []string{
		env.AnyName, env.NilName, env.ComparableName, env.BooleanName,
		env.IntegerName, env.DecimalName, env.CharacterName, env.StringName,
	} {
		assert.NotNil(t, builder.Type(name), "missing builtin type %s", name)
	}
}
