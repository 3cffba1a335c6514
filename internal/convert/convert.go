// Package convert runs one hex word file through the codec and writes the
// packed binary.
package convert

import (
	"fmt"
	"os"
	"time"

	"github.com/danmuck/hexword/internal/hexword"
	"github.com/danmuck/hexword/internal/observability"
	"github.com/rs/zerolog/log"
)

// Result summarizes a successful run.
type Result struct {
	Words    int
	Nibbles  int
	Bytes    int
	Duration time.Duration
}

// Run decodes inputFile and writes the packed bytes to outputFile. The output
// file is only created once decoding and encoding both succeeded.
func Run(inputFile, outputFile string) (Result, error) {
	start := time.Now()
	res, err := run(inputFile, outputFile)
	res.Duration = time.Since(start)
	observability.RecordConversion(hexword.ErrorKind(err), res.Duration)
	if err != nil {
		return Result{}, err
	}
	observability.RecordPayload(res.Words, res.Nibbles, res.Bytes)
	return res, nil
}

func run(inputFile, outputFile string) (Result, error) {
	log.Info().Str("input_file", inputFile).Msg("parsing input file")
	nibbles, err := ParseFile(inputFile)
	if err != nil {
		return Result{}, err
	}
	log.Debug().Int("words", nibbles.Words()).Int("nibbles", len(nibbles)).Msg("decoded input")

	data, err := hexword.Encode(nibbles)
	if err != nil {
		return Result{}, err
	}

	log.Info().Str("output_file", outputFile).Int("bytes", len(data)).Msg("writing output file")
	if err := WriteFile(outputFile, data); err != nil {
		return Result{}, err
	}
	return Result{Words: nibbles.Words(), Nibbles: len(nibbles), Bytes: len(data)}, nil
}

// ParseFile decodes the word file at path into a nibble buffer.
func ParseFile(path string) (hexword.Nibbles, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: input file '%s' could not be opened: %w", hexword.ErrNotFound, path, err)
	}
	defer f.Close()

	nibbles, err := hexword.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return nibbles, nil
}

// WriteFile writes data to path, truncating any previous content.
func WriteFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: output file '%s' could not be opened: %w", hexword.ErrNotFound, path, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
