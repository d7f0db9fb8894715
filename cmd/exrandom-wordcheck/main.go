// Command exrandom-wordcheck reproduces the standard std::mt19937 test
// vector: the 10000th word drawn from a default-seeded generator.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/cartazio/exrandom-mirror/mt19937"
)

func main() {
	seed := flag.Uint64("seed", uint64(mt19937.DefaultSeed), "mt19937 seed")
	index := flag.Int("index", 10000, "1-based index of the word to print")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if *index < 1 {
		log.Fatal().Int("index", *index).Msg("index must be >= 1")
	}

	g := mt19937.NewSeeded(uint32(*seed))
	var word uint32
	for i := 0; i < *index; i++ {
		word = g.Uint32()
	}
	log.Info().Uint64("seed", *seed).Int("index", *index).Uint32("word", word).Msg("mt19937 word check")
	fmt.Println(word)
}
