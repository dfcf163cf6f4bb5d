package textlist

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/custodia-labs/roialign/internal/core/domain"
	"github.com/custodia-labs/roialign/internal/core/ports/driven"
	"github.com/custodia-labs/roialign/internal/logger"
)

// Ensure Parser implements the interface.
var _ driven.ListParser = (*Parser)(nil)

// maxLineSize bounds a single input line.
const maxLineSize = 1024 * 1024

// Parser is the line-oriented implementation of driven.ListParser.
type Parser struct{}

// NewParser creates a new list parser.
func NewParser() *Parser {
	return &Parser{}
}

// line is one tokenised input line.
type line struct {
	num    int
	tokens []string
}

// ParseVolumes reads list A.
func (p *Parser) ParseVolumes(r io.Reader, mode domain.VolumeMode) ([]domain.VolumeRecord, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("volume mode %q: %w", mode, domain.ErrInvalidInput)
	}

	lines, err := scanLines(r)
	if err != nil {
		return nil, err
	}

	records := make([]domain.VolumeRecord, 0, len(lines))
	seen := make(map[string]int, len(lines))
	for _, ln := range lines {
		name, raw := ln.tokens[0], ln.tokens[1]

		if first, dup := seen[name]; dup {
			return nil, &domain.ParseError{
				Line:  ln.num,
				Token: name,
				Err:   fmt.Errorf("%w (first seen on line %d)", domain.ErrDuplicateName, first),
			}
		}
		seen[name] = ln.num

		v, err := ParseVolume(raw)
		if err != nil {
			if mode == domain.VolumeModeStrict {
				return nil, &domain.ParseError{Line: ln.num, Token: raw, Err: err}
			}
			logger.Debug("line %d: keeping volume %q as text", ln.num, raw)
		}

		records = append(records, domain.VolumeRecord{Name: name, Volume: v})
	}

	return records, nil
}

// ParseIndex reads list B.
func (p *Parser) ParseIndex(r io.Reader) (domain.IndexMapping, error) {
	lines, err := scanLines(r)
	if err != nil {
		return nil, err
	}

	index := make(domain.IndexMapping, len(lines))
	for _, ln := range lines {
		id, name := ln.tokens[0], ln.tokens[1]
		if prev, ok := index[name]; ok {
			logger.Debug("line %d: %s overwrites id %s with %s", ln.num, name, prev, id)
		}
		index[name] = id
	}

	return index, nil
}

// ParseVolume parses a volume token.
// On failure the returned Volume still carries the raw text.
func ParseVolume(raw string) (domain.Volume, error) {
	v := domain.Volume{Raw: raw}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return v, fmt.Errorf("%w: %v", domain.ErrInvalidVolume, err)
	}
	if d.IsNegative() {
		return v, fmt.Errorf("%w: negative value", domain.ErrInvalidVolume)
	}

	v.Value = d.InexactFloat64()
	v.Numeric = true
	return v, nil
}

// scanLines reads every usable line before returning.
func scanLines(r io.Reader) ([]line, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []line
	num := 0
	for scanner.Scan() {
		num++
		tokens := strings.Fields(scanner.Text())
		switch {
		case len(tokens) == 0:
			continue
		case len(tokens) < 2:
			logger.Debug("line %d: dropped, expected 2 tokens, got %d", num, len(tokens))
			continue
		}
		lines = append(lines, line{num: num, tokens: tokens})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading list: %w", err)
	}

	return lines, nil
}
