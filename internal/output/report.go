package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sipcalc/stepup-calculator/internal/domain"
)

// WriteFormatted runs a formatter and writes the output to a timestamped file in dir.
func WriteFormatted(f Formatter, results *domain.PlanComparison, dir string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", err
	}
	stamp := results.GeneratedAt.Format("20060102_150405")
	name := fmt.Sprintf("%s_%s.%s", f.FilePrefix(), stamp, f.Extension())
	filename := filepath.Join(dir, name)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// GenerateReport writes the report in the given format ("all" writes every
// file-oriented format) and returns the files written.
func GenerateReport(results *domain.PlanComparison, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, f := range builtInFormatters {
			if f.Name() == "console" {
				continue
			}
			name, err := WriteFormatted(f, results, dir)
			if err != nil {
				return files, fmt.Errorf("%s: %w", f.Name(), err)
			}
			files = append(files, name)
		}
		return files, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	name, err := WriteFormatted(f, results, dir)
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}
