package adapter

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/equate/internal/model"
)

const indexFileName = "_index.yaml"

// ReportStore persists check results as YAML documents.
type ReportStore interface {
	// SaveReports writes one document per result into dir.
	SaveReports(dir m.Path, results []m.CheckResult) error
	// LoadReports reads back every document found in dir.
	LoadReports(dir m.Path) ([]ReportYAML, error)
	// RegenerateIndex summarises the documents of dir into _index.yaml.
	RegenerateIndex(dir m.Path) error
}

// ReportYAML is the persisted form of a CheckResult.
type ReportYAML struct {
	File   string          `yaml:"file"`
	Hash   string          `yaml:"hash"`
	Lines  int             `yaml:"lines"`
	Errors []LineErrorYAML `yaml:"errors,omitempty"`
}

// LineErrorYAML is the persisted form of a LineError.
type LineErrorYAML struct {
	Line int    `yaml:"line"`
	Text string `yaml:"text"`
	Err  string `yaml:"err"`
}

type indexEntry struct {
	Files      int      `yaml:"files"`
	Lines      int      `yaml:"lines"`
	BadLines   int      `yaml:"bad_lines"`
	FailedFile []string `yaml:"failed_files,omitempty"`
}

// LocalReportStore writes reports to the local disk.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

// SaveReports writes each result to <hash>.yaml, where hash is derived from
// the file path and content hash.
func (rs *LocalReportStore) SaveReports(dir m.Path, results []m.CheckResult) error {
	if err := os.MkdirAll(string(dir), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	for _, result := range results {
		doc := toReportYAML(result)

		data, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshal report for %s: %w", result.File.Path, err)
		}

		name := rs.computeReportHash(result) + ".yaml"
		if err := os.WriteFile(filepath.Join(string(dir), name), data, 0o600); err != nil {
			return fmt.Errorf("write report %s: %w", name, err)
		}
	}

	return nil
}

// LoadReports reads every report document of dir, ordered by file.
func (rs *LocalReportStore) LoadReports(dir m.Path) ([]ReportYAML, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, fmt.Errorf("read report dir: %w", err)
	}

	var reports []ReportYAML

	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == indexFileName || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(string(dir), entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", entry.Name(), err)
		}

		var doc ReportYAML
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode report %s: %w", entry.Name(), err)
		}

		reports = append(reports, doc)
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].File < reports[j].File })

	return reports, nil
}

// RegenerateIndex rewrites _index.yaml from the reports currently in dir.
func (rs *LocalReportStore) RegenerateIndex(dir m.Path) error {
	reports, err := rs.LoadReports(dir)
	if err != nil {
		return err
	}

	var idx indexEntry

	for _, r := range reports {
		idx.Files++
		idx.Lines += r.Lines
		idx.BadLines += len(r.Errors)

		if len(r.Errors) > 0 {
			idx.FailedFile = append(idx.FailedFile, r.File)
		}
	}

	data, err := yaml.Marshal(idx)
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}

	return os.WriteFile(filepath.Join(string(dir), indexFileName), data, 0o600)
}

func (rs *LocalReportStore) computeReportHash(result m.CheckResult) string {
	sum := sha256.Sum256([]byte(string(result.File.Path) + "\x00" + result.File.Hash))
	return hex.EncodeToString(sum[:8])
}

func toReportYAML(result m.CheckResult) ReportYAML {
	doc := ReportYAML{
		File:  string(result.File.Path),
		Hash:  result.File.Hash,
		Lines: result.Lines,
	}

	for _, le := range result.Errors {
		entry := LineErrorYAML{Line: le.Line, Text: le.Text}
		if le.Err != nil {
			entry.Err = le.Err.Error()
		}

		doc.Errors = append(doc.Errors, entry)
	}

	return doc
}
