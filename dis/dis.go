// Package dis decodes compiled instruction lists for display. This works
// with the opcodes defined in the `op` package.
package dis

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/secdlisp/secd/internal/table"
	"github.com/secdlisp/secd/object"
	"github.com/secdlisp/secd/op"
)

// maxOperandWidth is the widest operand Print shows before truncating.
const maxOperandWidth = 60

// Instruction represents a single decoded instruction and its operand.
// Instructions inside a sel branch block have a Depth one greater than the
// sel that owns them, and Block names the branch ("then" or "else").
type Instruction struct {
	Offset   int     `json:"offset"`
	Depth    int     `json:"depth"`
	Block    string  `json:"block,omitempty"`
	Name     string  `json:"name"`
	Opcode   op.Code `json:"opcode"`
	Operand  string  `json:"operand,omitempty"`
	Constant any     `json:"constant,omitempty"`
}

// DecodeError reports a malformed instruction list.
type DecodeError struct {
	Offset int
	Depth  int
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("dis: %s at offset %d (depth %d)", e.Reason, e.Offset, e.Depth)
}

type decoder struct {
	arena        *object.Arena
	instructions []Instruction
}

// Disassemble returns a flattened representation of the given code. Branch
// blocks of each sel are decoded in place, directly after the sel.
func Disassemble(arena *object.Arena, code object.Handle) ([]Instruction, error) {
	d := &decoder{arena: arena}
	if err := d.block(code, 0, ""); err != nil {
		return nil, err
	}
	return d.instructions, nil
}

func (d *decoder) block(code object.Handle, depth int, block string) error {
	items, err := d.arena.Slice(code)
	if err != nil {
		return err
	}
	for offset := 0; offset < len(items); {
		name := d.mnemonic(items[offset])
		opcode, ok := op.Lookup(name)
		if !ok {
			return &DecodeError{
				Offset: offset,
				Depth:  depth,
				Reason: fmt.Sprintf("unknown instruction %s", d.arena.Render(items[offset])),
			}
		}
		info := op.GetInfo(opcode)
		if offset+info.OperandCount >= len(items) {
			return &DecodeError{
				Offset: offset,
				Depth:  depth,
				Reason: fmt.Sprintf("%s expects %d operand(s)", name, info.OperandCount),
			}
		}
		instr := Instruction{
			Offset: offset,
			Depth:  depth,
			Block:  block,
			Name:   info.Name,
			Opcode: opcode,
		}
		switch opcode {
		case op.LoadConst, op.Load:
			operand := items[offset+1]
			instr.Operand = d.arena.Render(operand)
			if instr.Constant, err = d.arena.Interface(operand); err != nil {
				return err
			}
			d.instructions = append(d.instructions, instr)
		case op.Select:
			d.instructions = append(d.instructions, instr)
			if err := d.block(items[offset+1], depth+1, "then"); err != nil {
				return err
			}
			if err := d.block(items[offset+2], depth+1, "else"); err != nil {
				return err
			}
		default:
			d.instructions = append(d.instructions, instr)
		}
		offset += 1 + info.OperandCount
	}
	return nil
}

func (d *decoder) mnemonic(h object.Handle) string {
	node, err := d.arena.Resolve(h)
	if err != nil {
		return ""
	}
	atom, ok := node.Atom()
	if !ok {
		return ""
	}
	name, _ := atom.Name()
	return name
}

var (
	colorName   = color.New(color.Bold)
	colorNumber = color.New(color.FgYellow)
	colorSymbol = color.New(color.FgGreen)
	colorList   = color.New(color.FgMagenta)
	colorBlock  = color.New(color.FgHiCyan)
)

// Print a string representation of the given instructions to the given
// writer. Colors follow color.NoColor.
func Print(instructions []Instruction, writer io.Writer) {
	var lines [][]string
	for _, instr := range instructions {
		lines = append(lines, []string{
			fmt.Sprintf("%d", instr.Offset),
			strings.Repeat("  ", instr.Depth) + colorName.Sprint(instr.Name),
			formatOperand(instr),
			colorBlock.Sprint(instr.Block),
		})
	}
	table.NewTable(writer).
		WithHeader([]string{"OFFSET", "OPCODE", "OPERAND", "BLOCK"}).
		WithColumnAlignment([]table.Alignment{
			table.AlignRight,
			table.AlignLeft,
			table.AlignLeft,
			table.AlignLeft,
		}).
		WithHeaderAlignment([]table.Alignment{
			table.AlignCenter,
			table.AlignCenter,
			table.AlignCenter,
			table.AlignCenter,
		}).
		WithRows(lines).
		Render()
}

func formatOperand(instr Instruction) string {
	if instr.Operand == "" {
		return ""
	}
	text := instr.Operand
	if runes := []rune(text); len(runes) > maxOperandWidth {
		text = string(runes[:maxOperandWidth-3]) + "..."
	}
	switch instr.Constant.(type) {
	case int64, float64:
		return colorNumber.Sprint(text)
	case string:
		return colorSymbol.Sprint(text)
	default:
		return colorList.Sprint(text)
	}
}
