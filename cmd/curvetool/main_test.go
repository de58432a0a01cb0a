package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/curve/internal/profile"
)

const profileTOML = `
[[curve]]
name = "throttle"
kind = "power2"
bits = 8
saturation = 255

[[curve]]
name = "roll"
kind = "root2"
bits = 16
signed = true
`

func writeProfile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "curves.toml")
	require.NoError(t, os.WriteFile(path, []byte(profileTOML), 0o600))
	return path
}

func TestRunTableFromFlags(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run([]string{"-kind", "power2", "-bits", "8", "-sat", "255", "-steps", "4"}, &out, &errOut)
	require.NoError(t, err)

	s := out.String()
	assert.Contains(t, s, "power2 (power2/u8, saturation 255)")
	assert.Contains(t, s, "143")
	assert.Empty(t, errOut.String())
}

func TestRunTableFromProfile(t *testing.T) {
	path := writeProfile(t)

	var out bytes.Buffer
	require.NoError(t, run([]string{"-profile", path}, &out, &bytes.Buffer{}))
	assert.Contains(t, out.String(), "throttle")
	assert.Contains(t, out.String(), "signed root2/u16")

	out.Reset()
	require.NoError(t, run([]string{"-profile", path, "-curve", "roll"}, &out, &bytes.Buffer{}))
	assert.NotContains(t, out.String(), "throttle")

	err := run([]string{"-profile", path, "-curve", "pitch"}, &out, &bytes.Buffer{})
	assert.ErrorContains(t, err, "pitch")
}

func TestRunPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, run([]string{"-mode", "plot", "-kind", "root2", "-width", "200", "-height", "150", "-o", path}, &bytes.Buffer{}, &bytes.Buffer{}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())

	// A buffer is not a terminal, so the PNG goes to stdout.
	var out bytes.Buffer
	require.NoError(t, run([]string{"-mode", "plot", "-width", "200", "-height", "150"}, &out, &bytes.Buffer{}))
	_, err = png.Decode(&out)
	assert.NoError(t, err)
}

func TestRunVerbose(t *testing.T) {
	var errOut bytes.Buffer
	require.NoError(t, run([]string{"-v", "-steps", "2"}, &bytes.Buffer{}, &errOut))
	assert.Contains(t, errOut.String(), "curve created")
	assert.Contains(t, errOut.String(), "report written")
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown kind", []string{"-kind", "sigmoid"}, nil},
		{"bad bits", []string{"-bits", "12"}, profile.ErrBits},
		{"saturation range", []string{"-sat", "300"}, nil},
		{"unknown mode", []string{"-mode", "chart"}, nil},
		{"bad lang", []string{"-lang", "!!"}, nil},
		{"extra args", []string{"power2"}, nil},
		{"missing profile", []string{"-profile", filepath.Join(t.TempDir(), "none.toml")}, os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args, &bytes.Buffer{}, &bytes.Buffer{})
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}
