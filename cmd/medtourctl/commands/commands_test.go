package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"medtour/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestLink(t *testing.T) {
	t.Setenv("WHATSAPP_PHONE", "+91 98765 43210")
	t.Setenv("WHATSAPP_TEMPLATE", "About {service} at {provider}")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "configured defaults",
			args: []string{"link", "--var", "service=IVF", "--var", "provider=Apollo"},
			want: "https://wa.me/919876543210?text=About%20IVF%20at%20Apollo\n",
		},
		{
			name: "flag overrides",
			args: []string{"link", "--phone", "+1 (555) 010-0000", "--template", "Hi from {name}", "--var", "name=Amina"},
			want: "https://wa.me/15550100000?text=Hi%20from%20Amina\n",
		},
		{
			name: "unknown placeholders kept",
			args: []string{"link", "--var", "service=IVF"},
			want: "https://wa.me/919876543210?text=About%20IVF%20at%20%7Bprovider%7D\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSlides(t *testing.T) {
	out, err := run(t, "slides", "--width", "800", "--count", "5")
	require.NoError(t, err)
	assert.Equal(t, "2 items per slide, 3 slides\n  slide 1: [1 2]\n  slide 2: [3 4]\n  slide 3: [5]\n", out)

	out, err = run(t, "slides", "--width", "500", "--count", "0")
	require.NoError(t, err)
	assert.Equal(t, "1 items per slide, 1 slides\n  slide 1: []\n", out)

	out, err = run(t, "slides", "--width", "700", "--count", "3", "--breakpoints", "400,600")
	require.NoError(t, err)
	assert.Equal(t, "3 items per slide, 1 slides\n  slide 1: [1 2 3]\n", out)

	_, err = run(t, "slides", "--width", "0")
	assert.Error(t, err)
}

func TestSlides_RejectsUnorderedBreakpoints(t *testing.T) {
	for _, bps := range []string{"1024,768", "600,600", "0,400"} {
		_, err := run(t, "slides", "--width", "800", "--count", "4", "--breakpoints", bps)
		require.Error(t, err, bps)
		assert.Contains(t, err.Error(), "--breakpoints must be positive and strictly increasing")
	}
}

func TestSeed_DryRun(t *testing.T) {
	out, err := run(t, "seed", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Catalog is valid")
	assert.Contains(t, out, "providers:    9")
	assert.Contains(t, out, "hospitals:    4")
}

func TestSeed_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("providers:\n  - id: x\n    bogus: true\n"), 0o600))

	_, err := run(t, "seed", "--dry-run", "--file", path)
	assert.Error(t, err)
}

func TestSeed_RequiresSQLStore(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "memory")

	_, err := run(t, "seed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs a SQL store")
}

func TestSeed_SQLite(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "memory")
	dsn := "file:" + filepath.Join(t.TempDir(), "catalog.db")

	out, err := run(t, "seed", "--driver", "sqlite", "--dsn", dsn)
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded sqlite store")

	repo, err := repository.NewSQLRepository("sqlite", dsn, 1, 1)
	require.NoError(t, err)
	defer repo.Close()

	providers, err := repo.ListProviders(context.Background())
	require.NoError(t, err)
	assert.Len(t, providers, 9)
}
