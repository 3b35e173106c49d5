package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/teuncm/boggle/config"
)

func testController(t *testing.T) (*ShellController, *bytes.Buffer) {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	return &ShellController{cfg: cfg, out: out}, out
}

func writeWordlist(t *testing.T, words string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(words), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExecuteBoardAndSolve(t *testing.T) {
	is := is.New(t)
	sc, out := testController(t)
	sc.cfg.Wordlist = writeWordlist(t, "ab\nac\nabc\nabd\nba\n")
	sc.cfg.Display = "plain"

	is.True(sc.execute("board ab cd"))
	is.True(strings.Contains(out.String(), "A B"))

	out.Reset()
	is.True(sc.execute("solve"))
	is.True(strings.Contains(out.String(), "5 word(s), 5 point(s)!"))
	is.True(strings.Contains(out.String(), "abc - 1"))
}

func TestExecuteSolveWithoutBoard(t *testing.T) {
	is := is.New(t)
	sc, out := testController(t)
	is.True(sc.execute("solve"))
	is.True(strings.Contains(out.String(), "no board yet"))
}

func TestExecuteShowUnknownWord(t *testing.T) {
	is := is.New(t)
	sc, out := testController(t)
	sc.cfg.Wordlist = writeWordlist(t, "ab\n")
	is.True(sc.execute("board ab cd"))
	is.True(sc.execute("solve"))

	out.Reset()
	is.True(sc.execute("show zebra"))
	is.True(strings.Contains(out.String(), "was not found"))
}

func TestExecuteSet(t *testing.T) {
	is := is.New(t)
	sc, out := testController(t)

	is.True(sc.execute("set neighbors no_diag"))
	is.Equal(sc.cfg.Neighbors, "no_diag")

	out.Reset()
	is.True(sc.execute("set neighbors hex"))
	is.True(strings.Contains(out.String(), "error"))
	is.Equal(sc.cfg.Neighbors, "no_diag")
}

func TestExecuteExit(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	is.True(!sc.execute("exit"))
	is.True(!sc.execute("quit"))
}

func TestGenerateBoard(t *testing.T) {
	is := is.New(t)
	cfg, err := config.Load("")
	is.NoErr(err)

	for _, gen := range []string{"dice", "random"} {
		cfg.Gen = gen
		g, err := GenerateBoard(cfg, 4)
		is.NoErr(err)
		is.Equal(g.Dim(), 4)
	}
}
