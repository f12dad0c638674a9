// Package parser reads raw consumer genotyping exports (23andMe/Ancestry
// flat files) into GenotypeRecord slices in a single streaming pass.
//
// The format: comment lines prefixed "#"; data lines tab- or
// whitespace-delimited with four fields (rsid, chromosome, position,
// genotype). No header row is required, but one is tolerated — a header's
// non-numeric position field makes it indistinguishable from a malformed
// line and it is skipped the same way.
package parser

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dna-health-analyzer/internal/domain"
)

// Result holds the outcome of one parse pass. Skipped counts malformed data
// lines so callers can surface them; comment lines are not counted.
type Result struct {
	Records []domain.GenotypeRecord
	Skipped int
}

// Parser streams genotype exports. Files run to 500k-1M+ records, so the
// raw text is never materialized as a whole; one bufio scan is the only
// pass over the input.
type Parser struct {
	logger       *logrus.Logger
	maxLineBytes int
}

// New creates a parser with the given line-size bound.
func New(cfg *domain.ParserConfig, logger *logrus.Logger) *Parser {
	maxLine := cfg.MaxLineBytes
	if maxLine <= 0 {
		maxLine = 1024 * 1024
	}
	return &Parser{
		logger:       logger,
		maxLineBytes: maxLine,
	}
}

// ParseFile parses the export at path. A missing path is reported as a
// FILE_NOT_FOUND error; everything else follows Parse semantics.
func (p *Parser) ParseFile(path string) (*Result, error) {
	rc, err := openReader(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.NewFileNotFoundError(path, err)
		}
		return nil, err
	}
	defer rc.Close()

	p.logger.WithField("path", path).Debug("Parsing genotype export")
	return p.Parse(rc)
}

// Parse parses an export from a byte stream. Malformed lines (wrong field
// count, non-numeric position, invalid genotype symbols) are counted and
// skipped, never fatal. Zero valid records yields an EMPTY_RESULT error so
// callers can tell a wrong-format file from a genuinely empty genome.
func (p *Parser) Parse(r io.Reader) (*Result, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), p.maxLineBytes)

	result := &Result{}
	linesRead := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		linesRead++
		if strings.HasPrefix(line, "#") {
			continue
		}

		record, ok := parseLine(line)
		if !ok {
			result.Skipped++
			continue
		}
		result.Records = append(result.Records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(result.Records) == 0 {
		return nil, domain.NewEmptyResultError(linesRead)
	}

	p.logger.WithFields(logrus.Fields{
		"records": len(result.Records),
		"skipped": result.Skipped,
	}).Info("Parsed genotype export")

	return result, nil
}

// parseLine splits one data line into a record. The delimiter is a tab in
// vendor exports, but any run of whitespace is accepted.
func parseLine(line string) (domain.GenotypeRecord, bool) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return domain.GenotypeRecord{}, false
	}

	position, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil || position < 0 {
		return domain.GenotypeRecord{}, false
	}

	// Single-character genotypes (haploid calls, under-resolved chip
	// output) are retained verbatim rather than padded; downstream
	// consumers check the length before indexing two alleles.
	genotype := strings.ToUpper(fields[3])
	if !domain.ValidGenotype(genotype) {
		return domain.GenotypeRecord{}, false
	}

	return domain.GenotypeRecord{
		RSID:       fields[0],
		Chromosome: fields[1],
		Position:   position,
		Genotype:   genotype,
	}, true
}
