package deployments

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/concero/chain-registry/internal/domain"
	"github.com/concero/chain-registry/internal/logger"
	"github.com/joho/godotenv"
)

type (
	// Extractor pulls contract proxy addresses out of .env.deployments documents.
	Extractor struct {
		logger *slog.Logger
	}

	assignment struct {
		key   string
		value string
	}
)

// NewExtractor creates a new deployment extractor
func NewExtractor() *Extractor {
	return &Extractor{
		logger: logger.Named("deployments_extractor"),
	}
}

// Join concatenates env documents, one newline apart, so adjacent documents never share a line.
func Join(blobs ...string) string {
	var b strings.Builder
	for _, blob := range blobs {
		if blob == "" {
			continue
		}
		b.WriteString(blob)
		if !strings.HasSuffix(blob, "\n") {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// ExtractAll builds a fresh table from every known category.
func (e *Extractor) ExtractAll(envText string) domain.DeploymentTable {
	table := domain.DeploymentTable{}
	assignments := tokenize(envText)
	for _, r := range rules {
		e.extract(r, assignments, table)
	}
	return table
}

// Extract merges the addresses of one category found in envText into table.
// Sibling categories already in table are preserved; a repeated chain entry overwrites the earlier one.
// It returns the number of entries extracted. Lines that are not valid assignments are skipped.
func (e *Extractor) Extract(envText string, category domain.DeploymentCategory, table domain.DeploymentTable) (int, error) {
	r, ok := ruleFor(category)
	if !ok {
		return 0, fmt.Errorf("no extraction rule for deployment category %q", category)
	}

	return e.extract(r, tokenize(envText), table), nil
}

func (e *Extractor) extract(r rule, assignments []assignment, table domain.DeploymentTable) int {
	logger := e.logger.With("category", r.category)

	extracted := 0
	for _, a := range assignments {
		token, ok := r.chainToken(a.key)
		if !ok {
			continue
		}

		addr, ok := domain.ParseDeploymentAddress(a.value)
		if !ok {
			logger.With("key", a.key).Debug("skipping entry with malformed address")
			continue
		}

		chain := NormalizeChainName(token)
		table.Set(chain, r.category, addr)
		extracted++

		logger.With("chain", chain, "address", addr).Debug("deployment extracted")
	}

	logger.With("count", extracted).Debug("extraction finished")

	return extracted
}

// tokenize parses envText one line at a time so a single malformed line never hides the rest.
func tokenize(envText string) []assignment {
	lines := strings.Split(envText, "\n")
	out := make([]assignment, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parsed, err := godotenv.Unmarshal(line)
		if err != nil {
			continue
		}
		for key, value := range parsed {
			out = append(out, assignment{key: key, value: value})
		}
	}

	return out
}
