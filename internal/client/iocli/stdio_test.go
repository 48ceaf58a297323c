package iocli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestPrintlnAndPrintf(t *testing.T) {
	var out bytes.Buffer
	lio := NewLineIO(strings.NewReader(""), &out)

	lio.Println("hello", "world")
	lio.Printf("test %d %s", 1, "abc")
	_, err := lio.Write([]byte("!"))
	require.NoError(t, err)

	assert.Equal(t, "hello world\ntest 1 abc!", out.String())
}

func TestReadInput(t *testing.T) {
	var out bytes.Buffer
	lio := NewLineIO(strings.NewReader("  user input \nsecond\nlast"), &out)

	result, err := lio.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, "user input", result)
	assert.Equal(t, "Prompt: ", out.String())

	// общий буфер не теряет следующие строки
	result, err = lio.ReadInput("")
	require.NoError(t, err)
	assert.Equal(t, "second", result)

	// последняя строка без перевода строки
	result, err = lio.ReadInput("")
	require.NoError(t, err)
	assert.Equal(t, "last", result)

	_, err = lio.ReadInput("")
	assert.ErrorIs(t, err, io.EOF)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "y\n", want: true},
		{input: "YES\n", want: true},
		{input: "n\n", want: false},
		{input: "\n", want: false},
		{input: "maybe\n", want: false},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			lio := NewLineIO(strings.NewReader(tt.input), &out)

			got, err := lio.Confirm("Delete everything?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Delete everything? [y/N]: ")
		})
	}
}

func TestSelect(t *testing.T) {
	options := []string{"local", "server"}

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "by number", input: "2\n", want: "server"},
		{name: "by name", input: "local\n", want: "local"},
		{name: "out of range", input: "3\n", wantErr: true},
		{name: "unknown", input: "both\n", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			lio := NewLineIO(strings.NewReader(tt.input), &out)

			got, err := lio.Select("Keep which version?", options)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidChoice)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "1) local")
		})
	}

	_, err := NewLineIO(strings.NewReader(""), io.Discard).Select("empty", nil)
	assert.ErrorIs(t, err, ErrInvalidChoice)
}
