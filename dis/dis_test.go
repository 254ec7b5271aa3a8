package dis

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/secdlisp/secd/compiler"
	"github.com/secdlisp/secd/object"
	"github.com/secdlisp/secd/op"
	"github.com/secdlisp/secd/parser"
)

func compileSource(t *testing.T, a *object.Arena, src string) object.Handle {
	t.Helper()
	expr, err := parser.Read(src, a)
	require.Nil(t, err)
	code, err := compiler.Compile(expr, a)
	require.Nil(t, err)
	return code
}

func TestDisassemble(t *testing.T) {
	a := object.NewArena()
	instructions, err := Disassemble(a, compileSource(t, a, "(if t 1 2)"))
	require.Nil(t, err)

	expected := []Instruction{
		{Offset: 0, Depth: 0, Name: "ldc", Opcode: op.LoadConst, Operand: "t", Constant: "t"},
		{Offset: 2, Depth: 0, Name: "sel", Opcode: op.Select},
		{Offset: 0, Depth: 1, Block: "then", Name: "ldc", Opcode: op.LoadConst, Operand: "1", Constant: int64(1)},
		{Offset: 2, Depth: 1, Block: "then", Name: "join", Opcode: op.Join},
		{Offset: 0, Depth: 1, Block: "else", Name: "ldc", Opcode: op.LoadConst, Operand: "2", Constant: int64(2)},
		{Offset: 2, Depth: 1, Block: "else", Name: "join", Opcode: op.Join},
		{Offset: 5, Depth: 0, Name: "stop", Opcode: op.Stop},
	}
	require.Equal(t, expected, instructions)
}

func TestPrint(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = saved }()

	a := object.NewArena()
	instructions, err := Disassemble(a, compileSource(t, a, "(if t 1 2)"))
	require.Nil(t, err)

	var buf bytes.Buffer
	Print(instructions, &buf)

	expected := strings.TrimSpace(`
+--------+--------+---------+-------+
| OFFSET | OPCODE | OPERAND | BLOCK |
+--------+--------+---------+-------+
|      0 | ldc    | t       |       |
|      2 | sel    |         |       |
|      0 |   ldc  | 1       | then  |
|      2 |   join |         | then  |
|      0 |   ldc  | 2       | else  |
|      2 |   join |         | else  |
|      5 | stop   |         |       |
+--------+--------+---------+-------+
`)
	require.Equal(t, expected+"\n", buf.String())
}

func TestDisassembleQuotedList(t *testing.T) {
	a := object.NewArena()
	instructions, err := Disassemble(a, compileSource(t, a, "'(a 1.5)"))
	require.Nil(t, err)
	require.Len(t, instructions, 2)
	require.Equal(t, "(a 1.5)", instructions[0].Operand)
	require.Equal(t, []any{"a", 1.5}, instructions[0].Constant)

	data, err := json.Marshal(instructions[0])
	require.Nil(t, err)
	require.JSONEq(t, `{"offset":0,"depth":0,"name":"ldc","opcode":1,"operand":"(a 1.5)","constant":["a",1.5]}`, string(data))
}

func TestDisassembleMalformed(t *testing.T) {
	a := object.NewArena()

	_, err := Disassemble(a, a.List(a.Symbol("push"), a.AllocInt(1)))
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	require.Equal(t, 0, de.Offset)
	require.Contains(t, de.Error(), "unknown instruction push")

	_, err = Disassemble(a, a.List(a.Symbol("stop"), a.Symbol("ldc")))
	require.ErrorAs(t, err, &de)
	require.Equal(t, 1, de.Offset)
	require.Equal(t, "dis: ldc expects 1 operand(s) at offset 1 (depth 0)", de.Error())

	bad := a.List(a.Symbol("ldc"), a.Symbol("t"), a.Symbol("sel"), a.List(a.AllocInt(3)), a.List(a.Symbol("join")))
	_, err = Disassemble(a, bad)
	require.ErrorAs(t, err, &de)
	require.Equal(t, 1, de.Depth)

	_, err = Disassemble(a, a.AllocInt(1))
	require.NotNil(t, err)
}

func TestFormatOperandTruncatesRunes(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = saved }()

	name := strings.Repeat("λ", maxOperandWidth+10)
	text := formatOperand(Instruction{Operand: name, Constant: name})
	require.True(t, utf8.ValidString(text))
	require.Equal(t, strings.Repeat("λ", maxOperandWidth-3)+"...", text)

	short := strings.Repeat("λ", maxOperandWidth)
	require.Equal(t, short, formatOperand(Instruction{Operand: short, Constant: short}))
}
