package headplot_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jaufderheide/torosphere"
	"github.com/jaufderheide/torosphere/headplot"
)

func TestCrossSection(t *testing.T) {
	p := torosphere.Parameters{D: 1000, Rc: 1000, Rk: 100, T: 10, H: 50}
	for _, ext := range []string{"png", "svg"} {
		path := filepath.Join(t.TempDir(), "head."+ext)
		if err := headplot.CrossSection(p, path, headplot.Options{NArc: 32}); err != nil {
			t.Fatal(err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() == 0 {
			t.Errorf("%s: empty figure written", path)
		}
	}
}

func TestCrossSectionInvalid(t *testing.T) {
	bad := torosphere.Parameters{D: 1000, Rc: 1000, Rk: 500, T: 10, H: 50}
	err := headplot.CrossSection(bad, filepath.Join(t.TempDir(), "bad.png"), headplot.Options{})
	if !errors.Is(err, torosphere.ErrKnuckleExceedsBore) {
		t.Fatalf("got %v, want %v", err, torosphere.ErrKnuckleExceedsBore)
	}
}
