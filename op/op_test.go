package op

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo(Select)
	require.Equal(t, "sel", info.Name)
	require.Equal(t, 2, info.OperandCount)
	require.Equal(t, Select, info.Code)
}

func TestGetInfoAllOpcodes(t *testing.T) {
	tests := []struct {
		code     Code
		name     string
		operands int
	}{
		{LoadConst, "ldc", 1},
		{Load, "ld", 1},
		{Select, "sel", 2},
		{Join, "join", 0},
		{Stop, "stop", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := GetInfo(tt.code)
			require.Equal(t, tt.name, info.Name)
			require.Equal(t, tt.operands, info.OperandCount)
			require.Equal(t, tt.code, info.Code)

			code, ok := Lookup(tt.name)
			require.True(t, ok)
			require.Equal(t, tt.code, code)
			require.Equal(t, tt.name, tt.code.String())
		})
	}
}

func TestUnknownOpcodes(t *testing.T) {
	require.Equal(t, Info{}, GetInfo(Invalid))
	require.Equal(t, Info{}, GetInfo(Code(9999)))
	require.Equal(t, "invalid", Code(9999).String())

	_, ok := Lookup("LDC")
	require.False(t, ok)
	_, ok = Lookup("")
	require.False(t, ok)
}

func TestEmittedExcludesReserved(t *testing.T) {
	require.NotContains(t, Emitted(), Load)
	require.Len(t, Emitted(), 4)
}
