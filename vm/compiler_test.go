package vm

import (
	"math"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
)

func compile(t *testing.T, src string) (*Chunk, error) {
	t.Helper()
	return NewCompiler().Compile(src)
}

func TestCompileSimpleConstant(t *testing.T) {
	chunk, err := compile(t, "1.5")
	assert.NoError(t, err)
	assert.Equal(t, []byte{byte(OpConstant), 0, byte(OpReturn)}, chunk.code)
	assert.Equal(t, VNum(1.5), chunk.GetConstant(0))
}

func TestCompileUnaryNegate(t *testing.T) {
	chunk, err := compile(t, "-1")
	assert.NoError(t, err)
	assert.Equal(t, []byte{byte(OpConstant), 0, byte(OpNegate), byte(OpReturn)}, chunk.code)
}

func TestCompileLiterals(t *testing.T) {
	for src, op := range map[string]OpCode{"true": OpTrue, "false": OpFalse, "nil": OpNil} {
		chunk, err := compile(t, src)
		assert.NoError(t, err)
		assert.Equal(t, []byte{byte(op), byte(OpReturn)}, chunk.code)
	}
}

func TestCompilePrecedence(t *testing.T) {
	// "1 + 2 * 3" must multiply before adding.
	chunk, err := compile(t, "1 + 2 * 3")
	assert.NoError(t, err)
	assert.Equal(t, []byte{
		byte(OpConstant), 0,
		byte(OpConstant), 1,
		byte(OpConstant), 2,
		byte(OpMultiply),
		byte(OpAdd),
		byte(OpReturn),
	}, chunk.code)
}

func TestCompileLeftAssociativity(t *testing.T) {
	// "1 - 2 - 3" must be (1 - 2) - 3, not 1 - (2 - 3).
	chunk, err := compile(t, "1 - 2 - 3")
	assert.NoError(t, err)
	assert.Equal(t, []byte{
		byte(OpConstant), 0,
		byte(OpConstant), 1,
		byte(OpSubtract),
		byte(OpConstant), 2,
		byte(OpSubtract),
		byte(OpReturn),
	}, chunk.code)
}

func TestCompileErrorAtEnd(t *testing.T) {
	_, err := compile(t, "(1 + 2")
	assert.ErrorContains(t, err, "[line 1] Error at end: Expect ')' after expression.")
}

func TestCompileErrorAtToken(t *testing.T) {
	_, err := compile(t, "1 + + 2")
	assert.ErrorContains(t, err, "Error at '+': Expect expression.")
}

func TestCompileErrorAtErrorToken(t *testing.T) {
	_, err := compile(t, `"unterminated`)
	assert.ErrorContains(t, err, "Error: Unterminated string.")
}

// TestCompilePanicLatchesOneErrorPerCall checks that one Compile call
// reports only the first diagnostic, matching clox's panic-mode
// synchronization even though this grammar has no statement boundary
// to synchronize on.
func TestCompilePanicLatchesOneErrorPerCall(t *testing.T) {
	_, err := compile(t, "1 + + + 2")
	merr, ok := err.(*multierror.Error)
	if assert.True(t, ok) {
		assert.Len(t, merr.WrappedErrors(), 1)
	}
}

func TestCompileTooManyConstants(t *testing.T) {
	c := NewCompiler()
	var src string
	for i := 0; i < 255; i++ {
		src += "1 + "
	}
	src += "1"
	_, err := c.Compile(src)
	assert.NoError(t, err)

	src += " + 1"
	_, err = c.Compile(src)
	assert.ErrorContains(t, err, "Too many constants in one chunk.")
}

func TestNumberNoArgUnreachablePanicNeverFires(t *testing.T) {
	// Guards the "unreachable" assumption in number(): every lexeme the
	// Scanner tags TNumber must parse as a float.
	chunk, err := compile(t, "0.0")
	assert.NoError(t, err)
	assert.Equal(t, VNum(0), chunk.GetConstant(0))
	assert.False(t, math.Signbit(float64(chunk.GetConstant(0).(VNum))))
}
