package lexicon

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cespare/xxhash"
	lru "github.com/hashicorp/golang-lru"
	"github.com/rs/zerolog/log"
)

// Lexicon construction dominates startup on large wordlists, so built
// lexicons are cached globally, keyed by file contents (not path) and the
// prefix bound. An edited wordlist therefore never serves a stale lexicon.
const cacheSize = 8

var cache *lru.Cache

func init() {
	cache, _ = lru.New(cacheSize)
}

// Load reads a newline-separated wordlist file and builds a lexicon with the
// given prefix bound, consulting the cache first.
func Load(path string, maxPathLength int) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading wordlist: %w", err)
	}
	key := fmt.Sprintf("%016x:%d", xxhash.Sum64(data), maxPathLength)
	if cached, ok := cache.Get(key); ok {
		log.Debug().Str("key", key).Msg("lexicon cache hit")
		return cached.(*Lexicon), nil
	}

	start := time.Now()
	words, err := ReadWords(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("scanning wordlist %q: %w", path, err)
	}
	lex := New(words, maxPathLength)
	cache.Add(key, lex)
	log.Debug().
		Str("path", path).
		Int("words", lex.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("built lexicon")
	return lex, nil
}

// ReadWords collects the non-empty lines of r, trimming line terminators.
// No other normalization happens here; New case-folds.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line != "" {
			words = append(words, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
