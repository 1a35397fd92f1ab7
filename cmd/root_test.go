package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"finmentor/internal/content"
)

const testBundle = `{
  "lessons": [
    {
      "id": "custom-1",
      "title": "Custom Lesson",
      "introduction": "Hi!",
      "post_test": [
        {
          "question": "Pick A.",
          "options": ["A. Yes", "B. No"],
          "correct_answer": 0
        }
      ]
    }
  ]
}`

func newBundleCmd(path string) *cobra.Command {
	c := &cobra.Command{}
	c.Flags().String("lessons", path, "")
	return c
}

func TestLoadRegistry_Bundle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bundle.json")
	require.NoError(t, os.WriteFile(path, []byte(testBundle), 0o644))

	reg, err := loadRegistry(newBundleCmd(path))
	require.NoError(t, err)
	require.Equal(t, 1, reg.Len())

	l, ok := reg.Get("custom-1")
	require.True(t, ok)
	require.Equal(t, "Custom Lesson", l.Title)
}

func TestLoadRegistry_DefaultsToSeed(t *testing.T) {
	t.Setenv("FINMENTOR_LESSONS", "")

	reg, err := loadRegistry(newBundleCmd(""))
	require.NoError(t, err)
	require.Equal(t, len(content.SeedLessons()), reg.Len())
}

func TestLoadRegistry_EnvBundle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bundle.json")
	require.NoError(t, os.WriteFile(path, []byte(testBundle), 0o644))
	t.Setenv("FINMENTOR_LESSONS", path)

	reg, err := loadRegistry(newBundleCmd(""))
	require.NoError(t, err)
	require.Equal(t, 1, reg.Len())
}

func TestLoadRegistry_InvalidBundle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bundle.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"lessons": [{}]}`), 0o644))

	_, err := loadRegistry(newBundleCmd(path))
	require.Error(t, err)
}
