// Package op defines the instructions emitted by the compiler.
//
// Compiled code is an ordinary list in the arena. Each instruction is an
// interned mnemonic symbol followed inline by its operands, so a program is
// read left to right as mnemonic, operands, mnemonic, operands and so on.
package op

// Code is an integer opcode that indicates an operation to execute.
type Code uint16

const (
	Invalid Code = 0

	// Load
	LoadConst Code = 1 // ldc: push the following datum
	Load      Code = 2 // ld: lexical variable load, reserved

	// Control
	Select Code = 10 // sel: pop a value and run one of two branch blocks
	Join   Code = 11 // join: return from a branch block
	Stop   Code = 12 // stop: halt the machine
)

// Info contains information about an opcode.
type Info struct {
	Code         Code
	Name         string
	OperandCount int
}

var (
	infos  = make([]Info, 16)
	byName = map[string]Code{}
)

func init() {
	type opInfo struct {
		op    Code
		name  string
		count int
	}
	ops := []opInfo{
		{LoadConst, "ldc", 1},
		{Load, "ld", 1},
		{Select, "sel", 2},
		{Join, "join", 0},
		{Stop, "stop", 0},
	}
	for _, o := range ops {
		infos[o.op] = Info{
			Name:         o.name,
			Code:         o.op,
			OperandCount: o.count,
		}
		byName[o.name] = o.op
	}
}

// GetInfo returns information about the given opcode. Unknown codes return
// the zero Info.
func GetInfo(op Code) Info {
	if int(op) >= len(infos) {
		return Info{}
	}
	return infos[op]
}

// Lookup returns the opcode for a mnemonic.
func Lookup(name string) (Code, bool) {
	code, ok := byName[name]
	return code, ok
}

// String returns the mnemonic for the opcode.
func (c Code) String() string {
	if name := GetInfo(c).Name; name != "" {
		return name
	}
	return "invalid"
}

// Emitted returns the opcodes the compiler currently generates.
func Emitted() []Code {
	return []Code{LoadConst, Select, Join, Stop}
}
